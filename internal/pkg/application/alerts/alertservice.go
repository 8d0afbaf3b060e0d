package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/storage"
	"github.com/careflow/patient-monitoring/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Query(ctx context.Context, offset, limit int, patientID, status string) (types.Collection[types.Alert], error)
	GetByID(ctx context.Context, alertID string) (types.Alert, error)
	CountActive(ctx context.Context, patientID string) (int64, error)

	Add(ctx context.Context, alert types.Alert) (types.Alert, error)
	Acknowledge(ctx context.Context, alertID, by, notes string) error
	Resolve(ctx context.Context, alertID, by, notes string) error
	Dismiss(ctx context.Context, alertID, by, notes string) error
}

//go:generate moq -rm -out alertstorage_mock.go . AlertStorage
type AlertStorage interface {
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	AddAlert(ctx context.Context, alert types.Alert) error
	SetAlertStatus(ctx context.Context, alertID, status, by, notes string) error
	CountActiveAlerts(ctx context.Context, patientID string) (int64, error)
}

type alertSvc struct {
	storage   AlertStorage
	messenger messaging.MsgContext
}

func New(s AlertStorage, m messaging.MsgContext) AlertService {
	return &alertSvc{
		storage:   s,
		messenger: m,
	}
}

func (svc alertSvc) Query(ctx context.Context, offset, limit int, patientID, status string) (types.Collection[types.Alert], error) {
	conditions := []storage.ConditionFunc{
		storage.WithOffset(offset),
		storage.WithLimit(limit),
		storage.WithSortBy("created_on"),
		storage.WithSortDesc(true),
	}

	if patientID != "" {
		conditions = append(conditions, storage.WithPatientID(patientID))
	}
	if status != "" {
		conditions = append(conditions, storage.WithStatus(status))
	}

	alerts, err := svc.storage.QueryAlerts(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc alertSvc) GetByID(ctx context.Context, alertID string) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID))
	if err != nil {
		if err == storage.ErrNoRows {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc alertSvc) CountActive(ctx context.Context, patientID string) (int64, error) {
	return svc.storage.CountActiveAlerts(ctx, patientID)
}

// Add persists a candidate alert. The alert always enters the store with
// status active and a creation timestamp, regardless of what the caller
// filled in.
func (svc alertSvc) Add(ctx context.Context, alert types.Alert) (types.Alert, error) {
	if alert.PatientID == "" {
		return types.Alert{}, fmt.Errorf("no patientID is set on alert")
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}

	alert.Status = types.AlertStatusActive
	alert.CreatedAt = time.Now().UTC()

	err := svc.storage.AddAlert(ctx, alert)
	if err != nil {
		return types.Alert{}, err
	}

	err = svc.messenger.PublishOnTopic(ctx, &AlertCreated{
		Alert:     alert,
		Timestamp: alert.CreatedAt,
	})
	if err != nil {
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc alertSvc) Acknowledge(ctx context.Context, alertID, by, notes string) error {
	return svc.setStatus(ctx, alertID, types.AlertStatusAcknowledged, by, notes)
}

func (svc alertSvc) Resolve(ctx context.Context, alertID, by, notes string) error {
	return svc.setStatus(ctx, alertID, types.AlertStatusResolved, by, notes)
}

func (svc alertSvc) Dismiss(ctx context.Context, alertID, by, notes string) error {
	return svc.setStatus(ctx, alertID, types.AlertStatusDismissed, by, notes)
}

func (svc alertSvc) setStatus(ctx context.Context, alertID, status, by, notes string) error {
	err := svc.storage.SetAlertStatus(ctx, alertID, status, by, notes)
	if err != nil {
		if err == storage.ErrNoRows {
			return ErrAlertNotFound
		}
		return err
	}

	return svc.messenger.PublishOnTopic(ctx, &AlertStatusChanged{
		ID:        alertID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}
