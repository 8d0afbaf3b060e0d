package alerts

import (
	"context"
	"testing"

	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/storage"
	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestAddForcesActiveStatusAndPublishes(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var stored types.Alert
	s := &AlertStorageMock{
		AddAlertFunc: func(ctx context.Context, alert types.Alert) error {
			stored = alert
			return nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m)

	created, err := svc.Add(ctx, types.Alert{
		PatientID: "p-01",
		AlertType: types.AlertTemperatureHigh,
		Severity:  types.SeverityMedium,
		Status:    "resolved",
	})

	is.NoErr(err)
	is.Equal(types.AlertStatusActive, created.Status)
	is.True(created.ID != "")
	is.Equal(stored.ID, created.ID)
	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("alerts.alertCreated", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestAddRequiresPatientID(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	svc := New(&AlertStorageMock{}, &messaging.MsgContextMock{})

	_, err := svc.Add(ctx, types.Alert{AlertType: types.AlertFallDetected})

	is.True(err != nil)
}

func TestAcknowledgePublishesStatusChange(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlertStorageMock{
		SetAlertStatusFunc: func(ctx context.Context, alertID, status, by, notes string) error {
			return nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, m)

	err := svc.Acknowledge(ctx, "a-01", "nurse-7", "patient contacted")

	is.NoErr(err)
	is.Equal(1, len(s.SetAlertStatusCalls()))
	is.Equal(types.AlertStatusAcknowledged, s.SetAlertStatusCalls()[0].Status)
	is.Equal("alerts.alertStatusChanged", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestStatusChangeOnUnknownAlert(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlertStorageMock{
		SetAlertStatusFunc: func(ctx context.Context, alertID, status, by, notes string) error {
			return storage.ErrNoRows
		},
	}

	svc := New(s, &messaging.MsgContextMock{})

	err := svc.Resolve(ctx, "missing", "", "")

	is.Equal(ErrAlertNotFound, err)
}

func TestGetByIDOnUnknownAlert(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &AlertStorageMock{
		GetAlertFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
			return types.Alert{}, storage.ErrNoRows
		},
	}

	svc := New(s, &messaging.MsgContextMock{})

	_, err := svc.GetByID(ctx, "missing")

	is.Equal(ErrAlertNotFound, err)
}
