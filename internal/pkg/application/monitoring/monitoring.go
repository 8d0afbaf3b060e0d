package monitoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careflow/patient-monitoring/internal/pkg/application/alerts"
	"github.com/careflow/patient-monitoring/internal/pkg/infrastructure/storage"
	"github.com/careflow/patient-monitoring/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("patient-monitoring/monitoring")

var ErrPatientNotFound = fmt.Errorf("patient not found")
var ErrDeviceNotFound = fmt.Errorf("device not found")
var ErrMeasurementNotFound = fmt.Errorf("measurement not found")
var ErrAlreadyExists = fmt.Errorf("already exists")

//go:generate moq -rm -out monitoring_mock.go . Service
type Service interface {
	AddPatient(ctx context.Context, patient types.Patient) (types.Patient, error)
	UpdatePatient(ctx context.Context, patient types.Patient) error
	GetPatient(ctx context.Context, patientID string) (types.Patient, error)
	QueryPatients(ctx context.Context, offset, limit int) (types.Collection[types.Patient], error)

	AddDevice(ctx context.Context, device types.Device) (types.Device, error)
	UpdateDevice(ctx context.Context, device types.Device) error
	GetDevice(ctx context.Context, deviceID string) (types.Device, error)
	QueryDevices(ctx context.Context, offset, limit int, patientID string) (types.Collection[types.Device], error)
	SyncDevice(ctx context.Context, deviceID string, syncTime time.Time, batteryLevel *int) error

	AddMeasurement(ctx context.Context, m types.Measurement) (types.Measurement, []types.Alert, error)
	AddMeasurements(ctx context.Context, measurements []types.Measurement) ([]types.Measurement, []types.Alert, error)
	GetMeasurement(ctx context.Context, measurementID string) (types.Measurement, error)
	DeleteMeasurement(ctx context.Context, measurementID string) error
	QueryMeasurements(ctx context.Context, offset, limit int, patientID, deviceID string, from, to time.Time) (types.Collection[types.Measurement], error)
	GetRecentMeasurements(ctx context.Context, patientID string, days int) ([]types.Measurement, error)
}

//go:generate moq -rm -out monitoringstorage_mock.go . Storage
type Storage interface {
	AddPatient(ctx context.Context, p types.Patient) error
	UpdatePatient(ctx context.Context, p types.Patient) error
	GetPatient(ctx context.Context, patientID string) (types.Patient, error)
	QueryPatients(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Patient], error)

	AddDevice(ctx context.Context, d types.Device) error
	UpdateDevice(ctx context.Context, d types.Device) error
	GetDevice(ctx context.Context, deviceID string) (types.Device, error)
	QueryDevices(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Device], error)
	SetDeviceSync(ctx context.Context, deviceID string, syncTime time.Time, batteryLevel *int) error

	AddMeasurement(ctx context.Context, m types.Measurement) error
	GetMeasurement(ctx context.Context, measurementID string) (types.Measurement, error)
	DeleteMeasurement(ctx context.Context, measurementID string) error
	QueryMeasurements(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Measurement], error)
	GetRecentMeasurements(ctx context.Context, patientID string, days int) ([]types.Measurement, error)
}

type service struct {
	storage   Storage
	detector  alerts.Detector
	messenger messaging.MsgContext
}

func New(s Storage, detector alerts.Detector, messenger messaging.MsgContext) Service {
	return &service{
		storage:   s,
		detector:  detector,
		messenger: messenger,
	}
}

func (s service) AddPatient(ctx context.Context, patient types.Patient) (types.Patient, error) {
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}
	patient.Active = true

	err := s.storage.AddPatient(ctx, patient)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			return types.Patient{}, ErrAlreadyExists
		}
		return types.Patient{}, err
	}

	return patient, nil
}

func (s service) UpdatePatient(ctx context.Context, patient types.Patient) error {
	err := s.storage.UpdatePatient(ctx, patient)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrPatientNotFound
	}
	return err
}

func (s service) GetPatient(ctx context.Context, patientID string) (types.Patient, error) {
	patient, err := s.storage.GetPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Patient{}, ErrPatientNotFound
		}
		return types.Patient{}, err
	}

	return patient, nil
}

func (s service) QueryPatients(ctx context.Context, offset, limit int) (types.Collection[types.Patient], error) {
	return s.storage.QueryPatients(ctx, storage.WithOffset(offset), storage.WithLimit(limit))
}

func (s service) AddDevice(ctx context.Context, device types.Device) (types.Device, error) {
	if device.ID == "" {
		device.ID = uuid.NewString()
	}
	if device.DeviceID == "" {
		return types.Device{}, fmt.Errorf("no deviceID is set on device")
	}
	if device.Status == "" {
		device.Status = types.DeviceStatusActive
	}

	_, err := s.GetPatient(ctx, device.PatientID)
	if err != nil {
		return types.Device{}, err
	}

	err = s.storage.AddDevice(ctx, device)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExist) {
			return types.Device{}, ErrAlreadyExists
		}
		return types.Device{}, err
	}

	return device, nil
}

func (s service) UpdateDevice(ctx context.Context, device types.Device) error {
	err := s.storage.UpdateDevice(ctx, device)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrDeviceNotFound
	}
	return err
}

func (s service) GetDevice(ctx context.Context, deviceID string) (types.Device, error) {
	device, err := s.storage.GetDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Device{}, ErrDeviceNotFound
		}
		return types.Device{}, err
	}

	return device, nil
}

func (s service) QueryDevices(ctx context.Context, offset, limit int, patientID string) (types.Collection[types.Device], error) {
	conditions := []storage.ConditionFunc{storage.WithOffset(offset), storage.WithLimit(limit)}
	if patientID != "" {
		conditions = append(conditions, storage.WithPatientID(patientID))
	}

	return s.storage.QueryDevices(ctx, conditions...)
}

func (s service) SyncDevice(ctx context.Context, deviceID string, syncTime time.Time, batteryLevel *int) error {
	err := s.storage.SetDeviceSync(ctx, deviceID, syncTime, batteryLevel)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrDeviceNotFound
	}
	return err
}

// AddMeasurement stores one sample and synchronously runs alert
// detection on it. The created alerts come back with the measurement so
// ingestion responses can surface them. A detection failure does not
// undo the stored measurement.
func (s service) AddMeasurement(ctx context.Context, m types.Measurement) (types.Measurement, []types.Alert, error) {
	ctx, span := tracer.Start(ctx, "add-measurement")
	defer span.End()

	log := logging.GetFromContext(ctx)

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.MeasurementTime.IsZero() {
		m.MeasurementTime = time.Now().UTC()
	}

	deriveBMI(&m)

	err := s.storage.AddMeasurement(ctx, m)
	if err != nil {
		return types.Measurement{}, nil, err
	}

	err = s.messenger.PublishOnTopic(ctx, &MeasurementCreated{
		Measurement: m,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		log.Error("could not publish measurement created", "measurement_id", m.ID, "err", err.Error())
	}

	created, err := s.detector.CheckMeasurement(ctx, m)
	if err != nil {
		log.Error("alert detection failed for one or more candidates", "measurement_id", m.ID, "err", err.Error())
	}

	return m, created, nil
}

// AddMeasurements ingests a batch of samples. All patients are resolved
// up front so a bad reference rejects the whole batch before anything is
// stored. Each stored sample then goes through the same detection path
// as single ingestion.
func (s service) AddMeasurements(ctx context.Context, measurements []types.Measurement) ([]types.Measurement, []types.Alert, error) {
	ctx, span := tracer.Start(ctx, "add-measurements")
	defer span.End()

	if len(measurements) == 0 {
		return nil, nil, fmt.Errorf("no measurements provided")
	}

	for _, m := range measurements {
		if m.PatientID == "" {
			return nil, nil, fmt.Errorf("no patientID is set on measurement")
		}
		_, err := s.GetPatient(ctx, m.PatientID)
		if err != nil {
			return nil, nil, err
		}
	}

	stored := make([]types.Measurement, 0, len(measurements))
	created := []types.Alert{}

	for _, m := range measurements {
		m, triggered, err := s.AddMeasurement(ctx, m)
		if err != nil {
			return stored, created, err
		}

		stored = append(stored, m)
		created = append(created, triggered...)
	}

	return stored, created, nil
}

func (s service) GetMeasurement(ctx context.Context, measurementID string) (types.Measurement, error) {
	m, err := s.storage.GetMeasurement(ctx, measurementID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Measurement{}, ErrMeasurementNotFound
		}
		return types.Measurement{}, err
	}

	return m, nil
}

func (s service) DeleteMeasurement(ctx context.Context, measurementID string) error {
	err := s.storage.DeleteMeasurement(ctx, measurementID)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrMeasurementNotFound
	}
	return err
}

func (s service) QueryMeasurements(ctx context.Context, offset, limit int, patientID, deviceID string, from, to time.Time) (types.Collection[types.Measurement], error) {
	conditions := []storage.ConditionFunc{storage.WithOffset(offset), storage.WithLimit(limit)}

	if patientID != "" {
		conditions = append(conditions, storage.WithPatientID(patientID))
	}
	if deviceID != "" {
		conditions = append(conditions, storage.WithDeviceID(deviceID))
	}
	if !from.IsZero() {
		conditions = append(conditions, storage.WithTimeAt(from))
	}
	if !to.IsZero() {
		conditions = append(conditions, storage.WithTimeUntil(to))
	}

	return s.storage.QueryMeasurements(ctx, conditions...)
}

func (s service) GetRecentMeasurements(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
	return s.storage.GetRecentMeasurements(ctx, patientID, days)
}

// deriveBMI fills in bmi when the sample carries both weight and height.
// Height comes in centimeters.
func deriveBMI(m *types.Measurement) {
	if m.Weight == nil || m.Height == nil || m.BMI != nil {
		return
	}

	heightM := *m.Height / 100
	if heightM <= 0 {
		return
	}

	bmi := *m.Weight / (heightM * heightM)
	m.BMI = &bmi
}
