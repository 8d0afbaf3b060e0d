package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/careflow/patient-monitoring/internal/pkg/application/alerts"
	"github.com/careflow/patient-monitoring/internal/pkg/application/analytics"
	"github.com/careflow/patient-monitoring/internal/pkg/application/monitoring"
	"github.com/careflow/patient-monitoring/internal/pkg/application/watchdog"
	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/router"
	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/storage"
	"github.com/careflow/patient-monitoring/internal/pkg/presentation/api"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "patient-monitoring"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	thresholdsFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	watchdogInterval
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		thresholdsFile: "/opt/careflow/config/thresholds.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "careflow",
		dbSSLMode:  "disable",

		watchdogInterval: "10m",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	thresholds := loadThresholds(ctx, flags[thresholdsFile], logger)

	mux, teardown, err := initialize(ctx, flags, thresholds)
	exitIf(err, logger, "failed to initialize application")
	defer teardown()

	apiPort := flags[servicePort]
	logger.Info("starting to listen for incoming connections", "port", apiPort)

	err = http.ListenAndServe(flags[listenAddress]+":"+apiPort, mux)
	exitIf(err, logger, "failed to start request router")
}

func initialize(ctx context.Context, flags flagMap, thresholds alerts.Thresholds) (http.Handler, func(), error) {
	log := logging.GetFromContext(ctx)

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	if err != nil {
		return nil, nil, err
	}

	err = s.Initialize(ctx)
	if err != nil {
		return nil, nil, err
	}

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, log))
	if err != nil {
		return nil, nil, err
	}

	alertSvc := alerts.New(s, messenger)
	detector := alerts.NewDetector(s, alertSvc, thresholds)
	monitorSvc := monitoring.New(s, detector, messenger)
	analyticsSvc := analytics.New(s)

	messenger.RegisterTopicMessageHandler("watchdog.deviceNotObserved", alerts.NewDeviceNotObservedHandler(detector, alertSvc))
	messenger.Start()

	staleAfter := time.Duration(thresholds.OfflineAfterSeconds) * time.Second
	sweepEvery, err := time.ParseDuration(flags[watchdogInterval])
	if err != nil {
		sweepEvery = watchdog.DefaultCheckInterval
	}

	wd := watchdog.New(s, messenger, staleAfter, sweepEvery)
	wd.Start(ctx)

	mux, err := api.RegisterHandlers(ctx, router.New(serviceName), monitorSvc, alertSvc, analyticsSvc)
	if err != nil {
		return nil, nil, err
	}

	return mux, func() {
		wd.Stop()
		messenger.Close()
		s.Close()
	}, nil
}

// loadThresholds reads the alert threshold configuration file if one
// exists, falls back to the built-in defaults otherwise, and applies
// environment overrides on top.
func loadThresholds(ctx context.Context, path string, logger *slog.Logger) alerts.Thresholds {
	thresholds := alerts.DefaultThresholds()

	f, err := os.Open(path)
	if err == nil {
		defer f.Close()

		thresholds, err = alerts.LoadThresholds(f)
		exitIf(err, logger, "could not parse thresholds file", "file", path)
	} else {
		logger.Info("no thresholds file found, using defaults", "file", path)
	}

	return thresholds.ApplyEnvOverrides(ctx)
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[watchdogInterval] = envOrDef(ctx, "WATCHDOG_INTERVAL", flags[watchdogInterval])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("thresholds", "alert threshold configuration file", apply(thresholdsFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
