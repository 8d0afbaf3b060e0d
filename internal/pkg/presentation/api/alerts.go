package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/careflow/patient-monitoring/internal/pkg/application/alerts"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
)

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset, limit := parseOffsetAndLimit(r)
		patientID := r.URL.Query().Get("patientID")
		status := r.URL.Query().Get("status")

		result, err := svc.Query(ctx, offset, limit, patientID, status)
		if err != nil {
			requestLogger.Error("unable to fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(result)
		if err != nil {
			requestLogger.Error("unable to marshal alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func getAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		alert, err := svc.GetByID(ctx, alertID)
		if errors.Is(err, alerts.ErrAlertNotFound) {
			requestLogger.Debug("alert not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch alert", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(alert)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func countActiveAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "count-active-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		patientID := r.URL.Query().Get("patientID")

		count, err := svc.CountActive(ctx, patientID)
		if err != nil {
			requestLogger.Error("unable to count alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, _ := json.Marshal(struct {
			Count int64 `json:"count"`
		}{Count: count})

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

// alertStatusHandler serves the acknowledge, resolve and dismiss
// transitions, which differ only in which service method they call.
func alertStatusHandler(log *slog.Logger, svc alerts.AlertService, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), action+"-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		req := struct {
			By    string `json:"by"`
			Notes string `json:"notes"`
		}{}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(body) > 0 {
			err = json.Unmarshal(body, &req)
			if err != nil {
				requestLogger.Error("unable to unmarshal body", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		switch action {
		case "acknowledge":
			err = svc.Acknowledge(ctx, alertID, req.By, req.Notes)
		case "resolve":
			err = svc.Resolve(ctx, alertID, req.By, req.Notes)
		case "dismiss":
			err = svc.Dismiss(ctx, alertID, req.By, req.Notes)
		}

		if errors.Is(err, alerts.ErrAlertNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update alert status", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	}
}
