package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/careflow/patient-monitoring/internal/pkg/application/analytics"
	"github.com/careflow/patient-monitoring/internal/pkg/application/monitoring"
	"github.com/careflow/patient-monitoring/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func createPatientHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-patient")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var p types.Patient
		err = json.Unmarshal(body, &p)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.AddPatient(ctx, p)
		if err != nil {
			if errors.Is(err, monitoring.ErrAlreadyExists) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			requestLogger.Error("unable to create patient", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		b, _ := json.Marshal(created)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func queryPatientsHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-patients")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := parseOffsetAndLimit(r)

		patients, err := svc.QueryPatients(ctx, offset, limit)
		if err != nil {
			requestLogger.Error("unable to fetch patients", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(patients)
		if err != nil {
			requestLogger.Error("unable to marshal patients", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getPatientHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-patient")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := chi.URLParam(r, "patientID")
		if patientID != "" {
			requestLogger = requestLogger.With(slog.String("patient_id", patientID))
		}

		patient, err := svc.GetPatient(ctx, patientID)
		if errors.Is(err, monitoring.ErrPatientNotFound) {
			requestLogger.Debug("patient not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch patient", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(patient)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func updatePatientHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-patient")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := chi.URLParam(r, "patientID")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var p types.Patient
		err = json.Unmarshal(body, &p)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		p.ID = patientID

		err = svc.UpdatePatient(ctx, p)
		if errors.Is(err, monitoring.ErrPatientNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update patient", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func getPatientMeasurementsHandler(log *slog.Logger, svc monitoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-patient-measurements")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := chi.URLParam(r, "patientID")
		days := daysParam(r, 7)

		measurements, err := svc.GetRecentMeasurements(ctx, patientID, days)
		if err != nil {
			requestLogger.Error("unable to fetch measurements", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(measurements)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getVitalsSummaryHandler(log *slog.Logger, svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-vitals-summary")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := chi.URLParam(r, "patientID")
		days := daysParam(r, 7)

		summary, err := svc.GetVitalsSummary(ctx, patientID, days)
		if err != nil {
			requestLogger.Error("unable to compute vitals summary", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(summary)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getHealthRiskHandler(log *slog.Logger, svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-health-risk")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := chi.URLParam(r, "patientID")

		assessment, err := svc.PredictHealthRisk(ctx, patientID)
		if err != nil {
			requestLogger.Error("unable to predict health risk", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(assessment)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func daysParam(r *http.Request, def int) int {
	days := def
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}
	return days
}
