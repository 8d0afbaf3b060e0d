package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/careflow/patient-monitoring/internal/pkg/application/monitoring"
	"github.com/careflow/patient-monitoring/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func createMeasurementHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-measurement")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var m types.Measurement
		err = json.Unmarshal(body, &m)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if m.PatientID == "" {
			requestLogger.Error("measurement has no patientID")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		stored, created, err := svc.AddMeasurement(ctx, m)
		if err != nil {
			requestLogger.Error("unable to store measurement", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		response := struct {
			Measurement types.Measurement `json:"measurement"`
			Alerts      []types.Alert     `json:"alerts"`
		}{
			Measurement: stored,
			Alerts:      created,
		}
		if response.Alerts == nil {
			response.Alerts = []types.Alert{}
		}

		b, _ := json.Marshal(response)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func createMeasurementBatchHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-measurement-batch")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var measurements []types.Measurement
		err = json.Unmarshal(body, &measurements)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		stored, created, err := svc.AddMeasurements(ctx, measurements)
		if errors.Is(err, monitoring.ErrPatientNotFound) {
			requestLogger.Error("batch references unknown patient")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to store measurement batch", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		response := struct {
			Measurements []types.Measurement `json:"measurements"`
			Alerts       []types.Alert       `json:"alerts"`
		}{
			Measurements: stored,
			Alerts:       created,
		}
		if response.Alerts == nil {
			response.Alerts = []types.Alert{}
		}

		b, _ := json.Marshal(response)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func queryMeasurementsHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-measurements")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := parseOffsetAndLimit(r)
		patientID := r.URL.Query().Get("patientID")
		deviceID := r.URL.Query().Get("deviceID")

		var from, to time.Time
		if v := r.URL.Query().Get("from"); v != "" {
			from, err = time.Parse(time.RFC3339, v)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}
		if v := r.URL.Query().Get("to"); v != "" {
			to, err = time.Parse(time.RFC3339, v)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		measurements, err := svc.QueryMeasurements(ctx, offset, limit, patientID, deviceID, from, to)
		if err != nil {
			requestLogger.Error("unable to fetch measurements", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(measurements)
		if err != nil {
			requestLogger.Error("unable to marshal measurements", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getMeasurementHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-measurement")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		measurementID := chi.URLParam(r, "measurementID")

		m, err := svc.GetMeasurement(ctx, measurementID)
		if errors.Is(err, monitoring.ErrMeasurementNotFound) {
			requestLogger.Debug("measurement not found", "measurement_id", measurementID)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch measurement", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(m)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func deleteMeasurementHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "delete-measurement")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		measurementID := chi.URLParam(r, "measurementID")

		err = svc.DeleteMeasurement(ctx, measurementID)
		if errors.Is(err, monitoring.ErrMeasurementNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to delete measurement", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
