package types

import (
	"time"
)

type Patient struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	ModifiedAt  time.Time  `json:"modifiedAt"`
}

const (
	DeviceTypeSmartwatch           = "smartwatch"
	DeviceTypeBloodPressureMonitor = "blood_pressure_monitor"
	DeviceTypeGlucoseMeter         = "glucose_meter"
	DeviceTypePulseOximeter        = "pulse_oximeter"
	DeviceTypeECGMonitor           = "ecg_monitor"
	DeviceTypeTemperatureSensor    = "temperature_sensor"
	DeviceTypeActivityTracker      = "activity_tracker"
)

const (
	DeviceStatusActive      = "active"
	DeviceStatusInactive    = "inactive"
	DeviceStatusMaintenance = "maintenance"
	DeviceStatusRetired     = "retired"
)

type Device struct {
	ID              string     `json:"id"`
	DeviceID        string     `json:"deviceID"`
	PatientID       string     `json:"patientID"`
	DeviceType      string     `json:"deviceType"`
	Manufacturer    string     `json:"manufacturer,omitempty"`
	Model           string     `json:"model,omitempty"`
	SerialNumber    string     `json:"serialNumber,omitempty"`
	FirmwareVersion string     `json:"firmwareVersion,omitempty"`
	LastSyncTime    *time.Time `json:"lastSyncTime,omitempty"`
	BatteryLevel    *int       `json:"batteryLevel,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	ModifiedAt      time.Time  `json:"modifiedAt"`
}

// Measurement carries one sample from a device. Every vital field is
// optional; a nil pointer means the device did not report that parameter.
type Measurement struct {
	ID        string `json:"id"`
	PatientID string `json:"patientID"`
	DeviceID  string `json:"deviceID"`

	HeartRate       *float64 `json:"heartRate,omitempty"`
	SystolicBP      *float64 `json:"systolicBP,omitempty"`
	DiastolicBP     *float64 `json:"diastolicBP,omitempty"`
	BloodOxygen     *float64 `json:"bloodOxygen,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	RespiratoryRate *float64 `json:"respiratoryRate,omitempty"`
	BloodGlucose    *float64 `json:"bloodGlucose,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	Height          *float64 `json:"height,omitempty"`
	BMI             *float64 `json:"bmi,omitempty"`

	Steps          *int     `json:"steps,omitempty"`
	CaloriesBurned *float64 `json:"caloriesBurned,omitempty"`
	Distance       *float64 `json:"distance,omitempty"`
	ActiveMinutes  *int     `json:"activeMinutes,omitempty"`

	MeasurementTime time.Time `json:"measurementTime"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	Accuracy        *float64  `json:"accuracy,omitempty"`
	DataSource      string    `json:"dataSource,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

const (
	AlertHeartRateHigh       = "heart_rate_high"
	AlertHeartRateLow        = "heart_rate_low"
	AlertBloodPressureHigh   = "blood_pressure_high"
	AlertBloodOxygenLow      = "blood_oxygen_low"
	AlertTemperatureHigh     = "temperature_high"
	AlertGlucoseHigh         = "glucose_high"
	AlertGlucoseLow          = "glucose_low"
	AlertFallDetected        = "fall_detected"
	AlertDeviceOffline       = "device_offline"
	AlertMedicationReminder  = "medication_reminder"
	AlertAppointmentReminder = "appointment_reminder"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

const (
	AlertStatusActive       = "active"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
	AlertStatusDismissed    = "dismissed"
)

// Alert is produced by the detection pipeline and persisted with an
// initial active status. Data holds the values and thresholds that
// triggered it; keys vary by alert type and the map is stored as JSONB
// at the storage boundary only.
type Alert struct {
	ID          string         `json:"id"`
	PatientID   string         `json:"patientID"`
	AlertType   string         `json:"alertType"`
	Severity    string         `json:"severity"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Data        map[string]any `json:"data,omitempty"`

	MeasurementID string `json:"measurementID,omitempty"`

	Status           string     `json:"status"`
	AcknowledgedBy   string     `json:"acknowledgedBy,omitempty"`
	AcknowledgedAt   *time.Time `json:"acknowledgedAt,omitempty"`
	AcknowledgeNotes string     `json:"acknowledgeNotes,omitempty"`
	ResolvedBy       string     `json:"resolvedBy,omitempty"`
	ResolvedAt       *time.Time `json:"resolvedAt,omitempty"`
	ResolutionNotes  string     `json:"resolutionNotes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	ModifiedAt       time.Time  `json:"modifiedAt"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
