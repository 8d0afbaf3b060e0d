package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddDevice(ctx context.Context, d types.Device) error {
	if d.ID == "" || d.DeviceID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO devices (id, device_id, patient_id, device_type, manufacturer, model, serial_number, firmware_version, last_sync_time, battery_level, status)
		VALUES (@id, @device_id, @patient_id, @device_type, @manufacturer, @model, @serial_number, @firmware_version, @last_sync_time, @battery_level, @status);
	`, pgx.NamedArgs{
		"id":               d.ID,
		"device_id":        d.DeviceID,
		"patient_id":       d.PatientID,
		"device_type":      d.DeviceType,
		"manufacturer":     d.Manufacturer,
		"model":            d.Model,
		"serial_number":    d.SerialNumber,
		"firmware_version": d.FirmwareVersion,
		"last_sync_time":   d.LastSyncTime,
		"battery_level":    d.BatteryLevel,
		"status":           d.Status,
	})
	if err != nil {
		if isDuplicateKeyErr(err) {
			return ErrAlreadyExist
		}
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

func (s *Storage) UpdateDevice(ctx context.Context, d types.Device) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE devices
		SET device_type=@device_type, manufacturer=@manufacturer, model=@model,
		    serial_number=@serial_number, firmware_version=@firmware_version,
		    battery_level=@battery_level, status=@status, modified_on=@modified_on
		WHERE device_id=@device_id;
	`, pgx.NamedArgs{
		"device_id":        d.DeviceID,
		"device_type":      d.DeviceType,
		"manufacturer":     d.Manufacturer,
		"model":            d.Model,
		"serial_number":    d.SerialNumber,
		"firmware_version": d.FirmwareVersion,
		"battery_level":    d.BatteryLevel,
		"status":           d.Status,
		"modified_on":      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// SetDeviceSync records a successful sync from the device. A nil battery
// level leaves the stored level untouched.
func (s *Storage) SetDeviceSync(ctx context.Context, deviceID string, syncTime time.Time, batteryLevel *int) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE devices
		SET last_sync_time=@last_sync_time,
		    battery_level=COALESCE(@battery_level, battery_level),
		    modified_on=@modified_on
		WHERE device_id=@device_id;
	`, pgx.NamedArgs{
		"device_id":      deviceID,
		"last_sync_time": syncTime.UTC(),
		"battery_level":  batteryLevel,
		"modified_on":    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetDevice(ctx context.Context, deviceID string) (types.Device, error) {
	d := types.Device{}

	err := s.pool.QueryRow(ctx, `
		SELECT id, device_id, patient_id, device_type, manufacturer, model, serial_number, firmware_version, last_sync_time, battery_level, status, created_on, modified_on
		FROM devices
		WHERE device_id=@device_id;
	`, pgx.NamedArgs{"device_id": deviceID}).Scan(
		&d.ID, &d.DeviceID, &d.PatientID, &d.DeviceType, &d.Manufacturer, &d.Model,
		&d.SerialNumber, &d.FirmwareVersion, &d.LastSyncTime, &d.BatteryLevel,
		&d.Status, &d.CreatedAt, &d.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Device{}, ErrNoRows
		}
		return types.Device{}, err
	}

	return d, nil
}

func (s *Storage) QueryDevices(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Device], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("last_sync_time")

	query := fmt.Sprintf(`
		SELECT id, device_id, patient_id, device_type, manufacturer, model, serial_number, firmware_version, last_sync_time, battery_level, status, created_on, modified_on, count(*) OVER () AS total
		FROM devices
		%s
		ORDER BY %s %s
		%s;
	`, where, condition.SortBy("device_id"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	var (
		d     types.Device
		total int64
	)

	devices := make([]types.Device, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&d.ID, &d.DeviceID, &d.PatientID, &d.DeviceType, &d.Manufacturer, &d.Model,
		&d.SerialNumber, &d.FirmwareVersion, &d.LastSyncTime, &d.BatteryLevel,
		&d.Status, &d.CreatedAt, &d.ModifiedAt, &total,
	}, func() error {
		devices = append(devices, d)
		return nil
	})
	if err != nil {
		return types.Collection[types.Device]{}, err
	}

	return types.Collection[types.Device]{
		Data:       devices,
		Count:      uint64(len(devices)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}
