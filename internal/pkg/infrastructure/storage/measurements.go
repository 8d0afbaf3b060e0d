package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/jackc/pgx/v5"
)

type activityData struct {
	Steps          *int     `json:"steps,omitempty"`
	CaloriesBurned *float64 `json:"caloriesBurned,omitempty"`
	Distance       *float64 `json:"distance,omitempty"`
	ActiveMinutes  *int     `json:"activeMinutes,omitempty"`
}

func (s *Storage) AddMeasurement(ctx context.Context, m types.Measurement) error {
	if m.ID == "" {
		return ErrNoID
	}

	activity, err := json.Marshal(activityData{
		Steps:          m.Steps,
		CaloriesBurned: m.CaloriesBurned,
		Distance:       m.Distance,
		ActiveMinutes:  m.ActiveMinutes,
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO measurements (measurement_id, patient_id, device_id, heart_rate, systolic_bp, diastolic_bp, blood_oxygen, temperature, respiratory_rate, blood_glucose, weight, height, bmi, activity, measurement_time, latitude, longitude, accuracy, data_source, notes)
		VALUES (@measurement_id, @patient_id, @device_id, @heart_rate, @systolic_bp, @diastolic_bp, @blood_oxygen, @temperature, @respiratory_rate, @blood_glucose, @weight, @height, @bmi, @activity, @measurement_time, @latitude, @longitude, @accuracy, @data_source, @notes);
	`, pgx.NamedArgs{
		"measurement_id":   m.ID,
		"patient_id":       m.PatientID,
		"device_id":        m.DeviceID,
		"heart_rate":       m.HeartRate,
		"systolic_bp":      m.SystolicBP,
		"diastolic_bp":     m.DiastolicBP,
		"blood_oxygen":     m.BloodOxygen,
		"temperature":      m.Temperature,
		"respiratory_rate": m.RespiratoryRate,
		"blood_glucose":    m.BloodGlucose,
		"weight":           m.Weight,
		"height":           m.Height,
		"bmi":              m.BMI,
		"activity":         activity,
		"measurement_time": m.MeasurementTime.UTC(),
		"latitude":         m.Latitude,
		"longitude":        m.Longitude,
		"accuracy":         m.Accuracy,
		"data_source":      m.DataSource,
		"notes":            m.Notes,
	})
	if err != nil {
		if isDuplicateKeyErr(err) {
			return ErrAlreadyExist
		}
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) GetMeasurement(ctx context.Context, measurementID string) (types.Measurement, error) {
	coll, err := s.QueryMeasurements(ctx, WithMeasurementID(measurementID))
	if err != nil {
		return types.Measurement{}, err
	}
	if coll.Count == 0 {
		return types.Measurement{}, ErrNoRows
	}

	return coll.Data[0], nil
}

func (s *Storage) DeleteMeasurement(ctx context.Context, measurementID string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM measurements WHERE measurement_id=@measurement_id;
	`, pgx.NamedArgs{"measurement_id": measurementID})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// GetRecentMeasurements returns the patient's measurements over the last
// N days in chronological order, the shape the trend and regression code
// expects.
func (s *Storage) GetRecentMeasurements(ctx context.Context, patientID string, days int) ([]types.Measurement, error) {
	coll, err := s.QueryMeasurements(ctx, WithPatientID(patientID), WithLastNDays(days))
	if err != nil {
		return nil, err
	}

	return coll.Data, nil
}

func (s *Storage) QueryMeasurements(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Measurement], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("measurement_time")

	query := fmt.Sprintf(`
		SELECT measurement_id, patient_id, device_id, heart_rate, systolic_bp, diastolic_bp, blood_oxygen, temperature, respiratory_rate, blood_glucose, weight, height, bmi, activity, measurement_time, latitude, longitude, accuracy, data_source, notes, created_on, count(*) OVER () AS total
		FROM measurements
		%s
		ORDER BY %s %s
		%s;
	`, where, condition.SortBy("measurement_time"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Measurement]{}, err
	}

	var (
		m        types.Measurement
		activity []byte
		total    int64
	)

	measurements := make([]types.Measurement, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&m.ID, &m.PatientID, &m.DeviceID, &m.HeartRate, &m.SystolicBP, &m.DiastolicBP,
		&m.BloodOxygen, &m.Temperature, &m.RespiratoryRate, &m.BloodGlucose,
		&m.Weight, &m.Height, &m.BMI, &activity, &m.MeasurementTime,
		&m.Latitude, &m.Longitude, &m.Accuracy, &m.DataSource, &m.Notes, &m.CreatedAt, &total,
	}, func() error {
		if len(activity) > 0 {
			a := activityData{}
			if err := json.Unmarshal(activity, &a); err != nil {
				return err
			}
			m.Steps = a.Steps
			m.CaloriesBurned = a.CaloriesBurned
			m.Distance = a.Distance
			m.ActiveMinutes = a.ActiveMinutes
		}

		measurements = append(measurements, m)
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Collection[types.Measurement]{}, ErrNoRows
		}
		return types.Collection[types.Measurement]{}, err
	}

	return types.Collection[types.Measurement]{
		Data:       measurements,
		Count:      uint64(len(measurements)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
