package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/careflow/patient-monitoring/internal/pkg/application/alerts"
	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/storage"
	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestAddPatientAssignsIDAndActivates(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		AddPatientFunc: func(ctx context.Context, p types.Patient) error {
			return nil
		},
	}

	svc := New(s, &alerts.DetectorMock{}, &messaging.MsgContextMock{})

	created, err := svc.AddPatient(ctx, types.Patient{FirstName: "Maja", LastName: "Lindberg"})

	is.NoErr(err)
	is.True(created.ID != "")
	is.True(created.Active)
	is.Equal(1, len(s.AddPatientCalls()))
}

func TestAddPatientConflict(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		AddPatientFunc: func(ctx context.Context, p types.Patient) error {
			return storage.ErrAlreadyExist
		},
	}

	svc := New(s, &alerts.DetectorMock{}, &messaging.MsgContextMock{})

	_, err := svc.AddPatient(ctx, types.Patient{ID: "p-01"})

	is.Equal(ErrAlreadyExists, err)
}

func TestAddDeviceRequiresKnownPatient(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		GetPatientFunc: func(ctx context.Context, patientID string) (types.Patient, error) {
			return types.Patient{}, storage.ErrNoRows
		},
	}

	svc := New(s, &alerts.DetectorMock{}, &messaging.MsgContextMock{})

	_, err := svc.AddDevice(ctx, types.Device{DeviceID: "dev-42", PatientID: "missing"})

	is.Equal(ErrPatientNotFound, err)
}

func TestAddDeviceDefaultsToActiveStatus(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		GetPatientFunc: func(ctx context.Context, patientID string) (types.Patient, error) {
			return types.Patient{ID: patientID}, nil
		},
		AddDeviceFunc: func(ctx context.Context, d types.Device) error {
			return nil
		},
	}

	svc := New(s, &alerts.DetectorMock{}, &messaging.MsgContextMock{})

	created, err := svc.AddDevice(ctx, types.Device{DeviceID: "dev-42", PatientID: "p-01"})

	is.NoErr(err)
	is.Equal(types.DeviceStatusActive, created.Status)
	is.True(created.ID != "")
}

func TestAddMeasurementDerivesBMI(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var stored types.Measurement
	s := &StorageMock{
		AddMeasurementFunc: func(ctx context.Context, m types.Measurement) error {
			stored = m
			return nil
		},
	}
	d := &alerts.DetectorMock{
		CheckMeasurementFunc: func(ctx context.Context, m types.Measurement) ([]types.Alert, error) {
			return nil, nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, d, m)

	weight, height := 80.0, 180.0
	_, _, err := svc.AddMeasurement(ctx, types.Measurement{
		PatientID: "p-01",
		Weight:    &weight,
		Height:    &height,
	})

	is.NoErr(err)
	is.True(stored.BMI != nil)

	// 80 / 1.8^2
	bmi := *stored.BMI
	is.True(bmi > 24.6 && bmi < 24.8)
}

func TestAddMeasurementReturnsTriggeredAlerts(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		AddMeasurementFunc: func(ctx context.Context, m types.Measurement) error {
			return nil
		},
	}
	detector := &alerts.DetectorMock{
		CheckMeasurementFunc: func(ctx context.Context, m types.Measurement) ([]types.Alert, error) {
			return []types.Alert{{AlertType: types.AlertHeartRateHigh, PatientID: m.PatientID}}, nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, detector, m)

	hr := 160.0
	stored, created, err := svc.AddMeasurement(ctx, types.Measurement{PatientID: "p-01", HeartRate: &hr})

	is.NoErr(err)
	is.True(stored.ID != "")
	is.True(!stored.MeasurementTime.IsZero())
	is.Equal(1, len(created))
	is.Equal(types.AlertHeartRateHigh, created[0].AlertType)
	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("monitoring.measurementCreated", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestFailedDetectionDoesNotUndoStoredMeasurement(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		AddMeasurementFunc: func(ctx context.Context, m types.Measurement) error {
			return nil
		},
	}
	detector := &alerts.DetectorMock{
		CheckMeasurementFunc: func(ctx context.Context, m types.Measurement) ([]types.Alert, error) {
			return nil, storage.ErrStoreFailed
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, detector, m)

	hr := 160.0
	stored, created, err := svc.AddMeasurement(ctx, types.Measurement{PatientID: "p-01", HeartRate: &hr})

	is.NoErr(err)
	is.True(stored.ID != "")
	is.Equal(0, len(created))
}

func TestSyncDeviceOnUnknownDevice(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		SetDeviceSyncFunc: func(ctx context.Context, deviceID string, syncTime time.Time, batteryLevel *int) error {
			return storage.ErrNoRows
		},
	}

	svc := New(s, &alerts.DetectorMock{}, &messaging.MsgContextMock{})

	err := svc.SyncDevice(ctx, "missing", time.Now().UTC(), nil)

	is.Equal(ErrDeviceNotFound, err)
}

func TestAddMeasurementsStoresWholeBatch(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		GetPatientFunc: func(ctx context.Context, patientID string) (types.Patient, error) {
			return types.Patient{ID: patientID}, nil
		},
		AddMeasurementFunc: func(ctx context.Context, m types.Measurement) error {
			return nil
		},
	}
	detector := &alerts.DetectorMock{
		CheckMeasurementFunc: func(ctx context.Context, m types.Measurement) ([]types.Alert, error) {
			return []types.Alert{{AlertType: types.AlertHeartRateHigh, PatientID: m.PatientID}}, nil
		},
	}
	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, detector, m)

	hr := 162.0
	stored, created, err := svc.AddMeasurements(ctx, []types.Measurement{
		{PatientID: "p-01", HeartRate: &hr},
		{PatientID: "p-01", HeartRate: &hr},
	})

	is.NoErr(err)
	is.Equal(2, len(stored))
	is.True(stored[0].ID != "")
	is.Equal(2, len(created))
	is.Equal(2, len(s.AddMeasurementCalls()))
}

func TestAddMeasurementsRejectsUnknownPatientBeforeStoring(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &StorageMock{
		GetPatientFunc: func(ctx context.Context, patientID string) (types.Patient, error) {
			if patientID == "missing" {
				return types.Patient{}, storage.ErrNoRows
			}
			return types.Patient{ID: patientID}, nil
		},
	}

	svc := New(s, &alerts.DetectorMock{}, &messaging.MsgContextMock{})

	_, _, err := svc.AddMeasurements(ctx, []types.Measurement{
		{PatientID: "p-01"},
		{PatientID: "missing"},
	})

	is.Equal(ErrPatientNotFound, err)
	is.Equal(0, len(s.AddMeasurementCalls()))
}

func TestAddMeasurementsRequiresAtLeastOne(t *testing.T) {
	is := is.New(t)

	svc := New(&StorageMock{}, &alerts.DetectorMock{}, &messaging.MsgContextMock{})

	_, _, err := svc.AddMeasurements(context.Background(), nil)

	is.True(err != nil)
}
