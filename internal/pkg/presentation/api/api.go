package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/careflow/patient-monitoring/internal/pkg/application/alerts"
	"github.com/careflow/patient-monitoring/internal/pkg/application/analytics"
	"github.com/careflow/patient-monitoring/internal/pkg/application/monitoring"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("patient-monitoring/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, svc monitoring.Service, alertSvc alerts.AlertService, analyticsSvc analytics.Service) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/patients", func(r chi.Router) {
			r.Get("/", queryPatientsHandler(log, svc))
			r.Post("/", createPatientHandler(log, svc))
			r.Get("/{patientID}", getPatientHandler(log, svc))
			r.Put("/{patientID}", updatePatientHandler(log, svc))
			r.Get("/{patientID}/measurements", getPatientMeasurementsHandler(log, svc))
			r.Get("/{patientID}/vitals-summary", getVitalsSummaryHandler(log, analyticsSvc))
			r.Get("/{patientID}/health-risk", getHealthRiskHandler(log, analyticsSvc))
		})

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", queryDevicesHandler(log, svc))
			r.Post("/", createDeviceHandler(log, svc))
			r.Get("/{deviceID}", getDeviceHandler(log, svc))
			r.Put("/{deviceID}", updateDeviceHandler(log, svc))
			r.Post("/{deviceID}/sync", syncDeviceHandler(log, svc))
		})

		r.Route("/measurements", func(r chi.Router) {
			r.Get("/", queryMeasurementsHandler(log, svc))
			r.Post("/", createMeasurementHandler(log, svc))
			r.Post("/batch", createMeasurementBatchHandler(log, svc))
			r.Get("/{measurementID}", getMeasurementHandler(log, svc))
			r.Delete("/{measurementID}", deleteMeasurementHandler(log, svc))
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", queryAlertsHandler(log, alertSvc))
			r.Get("/count", countActiveAlertsHandler(log, alertSvc))
			r.Get("/{alertID}", getAlertHandler(log, alertSvc))
			r.Post("/{alertID}/acknowledge", alertStatusHandler(log, alertSvc, "acknowledge"))
			r.Post("/{alertID}/resolve", alertStatusHandler(log, alertSvc, "resolve"))
			r.Post("/{alertID}/dismiss", alertStatusHandler(log, alertSvc, "dismiss"))
		})
	})

	return router, nil
}

func parseOffsetAndLimit(r *http.Request) (int, int) {
	offset := 0
	limit := 50

	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	return offset, limit
}
