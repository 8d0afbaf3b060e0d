package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("patient-monitoring/alerts")

//go:generate moq -rm -out measurementgetter_mock.go . MeasurementGetter
type MeasurementGetter interface {
	GetRecentMeasurements(ctx context.Context, patientID string, days int) ([]types.Measurement, error)
}

//go:generate moq -rm -out detector_mock.go . Detector
type Detector interface {
	CheckMeasurement(ctx context.Context, m types.Measurement) ([]types.Alert, error)
	CheckDeviceOffline(ctx context.Context, patientID, deviceID string, lastSyncTime time.Time) (types.Alert, bool)
}

type detector struct {
	measurements MeasurementGetter
	alerts       AlertService
	thresholds   Thresholds
	now          func() time.Time
}

func NewDetector(measurements MeasurementGetter, alerts AlertService, thresholds Thresholds) Detector {
	return &detector{
		measurements: measurements,
		alerts:       alerts,
		thresholds:   thresholds,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CheckMeasurement runs every detection rule against a freshly ingested
// measurement and persists whatever triggered. Each candidate is stored
// independently: a failing write is logged and skipped, alerts already
// stored stay stored. The persisted set is returned together with any
// joined write errors.
func (d *detector) CheckMeasurement(ctx context.Context, m types.Measurement) ([]types.Alert, error) {
	ctx, span := tracer.Start(ctx, "check-measurement")
	defer span.End()

	log := logging.GetFromContext(ctx)

	candidates := evaluateThresholds(m, d.thresholds)
	candidates = append(candidates, d.checkHeartRateTrend(ctx, m)...)

	created := make([]types.Alert, 0, len(candidates))
	var errs []error

	for _, candidate := range candidates {
		alert, err := d.alerts.Add(ctx, candidate)
		if err != nil {
			log.Error("could not store alert", "alert_type", candidate.AlertType, "patient_id", candidate.PatientID, "err", err.Error())
			errs = append(errs, fmt.Errorf("store %s alert: %w", candidate.AlertType, err))
			continue
		}
		created = append(created, alert)
	}

	return created, errors.Join(errs...)
}

// checkHeartRateTrend pulls the last three days of measurements and emits
// a rapid-increase candidate when the heart rate series has been strictly
// climbing. Needs at least five measurements to say anything.
func (d *detector) checkHeartRateTrend(ctx context.Context, m types.Measurement) []types.Alert {
	log := logging.GetFromContext(ctx)

	recent, err := d.measurements.GetRecentMeasurements(ctx, m.PatientID, 3)
	if err != nil {
		log.Error("could not fetch recent measurements for trend analysis", "patient_id", m.PatientID, "err", err.Error())
		return nil
	}

	if len(recent) < 5 || m.HeartRate == nil {
		return nil
	}

	series := lo.FilterMap(recent, func(r types.Measurement, _ int) (float64, bool) {
		if r.HeartRate == nil {
			return 0, false
		}
		return *r.HeartRate, true
	})

	if classifyTrend(series) != TrendIncreasing {
		return nil
	}

	return []types.Alert{{
		PatientID:   m.PatientID,
		AlertType:   types.AlertHeartRateHigh,
		Severity:    types.SeverityMedium,
		Title:       "Rapid Heart Rate Increase Detected",
		Description: "Patient's heart rate has been increasing rapidly over the past few hours.",
		Data: map[string]any{
			"measurement_id": m.ID,
			"heart_rate":     *m.HeartRate,
			"trend":          TrendIncreasing,
			"timestamp":      m.MeasurementTime.Format(time.RFC3339),
		},
		MeasurementID: m.ID,
	}}
}

// CheckDeviceOffline produces a device-offline candidate when the device
// has not synced within the configured cutoff. The caller must resolve
// the owning patient; this check does not guess one.
func (d *detector) CheckDeviceOffline(ctx context.Context, patientID, deviceID string, lastSyncTime time.Time) (types.Alert, bool) {
	offlineAfter := time.Duration(d.thresholds.OfflineAfterSeconds) * time.Second
	sinceSync := d.now().Sub(lastSyncTime)

	if sinceSync <= offlineAfter {
		return types.Alert{}, false
	}

	hoursOffline := int(sinceSync.Hours())

	return types.Alert{
		PatientID:   patientID,
		AlertType:   types.AlertDeviceOffline,
		Severity:    types.SeverityMedium,
		Title:       fmt.Sprintf("Device Offline Alert: %s", deviceID),
		Description: fmt.Sprintf("Device has not synced data for %d hours.", hoursOffline),
		Data: map[string]any{
			"device_id":      deviceID,
			"last_sync_time": lastSyncTime.Format(time.RFC3339),
			"hours_offline":  hoursOffline,
		},
	}, true
}
