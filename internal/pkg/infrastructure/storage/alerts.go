package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/careflow/patient-monitoring/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddAlert(ctx context.Context, a types.Alert) error {
	if a.ID == "" {
		return ErrNoID
	}

	var data []byte
	if a.Data != nil {
		b, err := json.Marshal(a.Data)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
		}
		data = b
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO alerts (alert_id, patient_id, alert_type, severity, title, description, data, measurement_id, status, created_on)
		VALUES (@alert_id, @patient_id, @alert_type, @severity, @title, @description, @data, @measurement_id, @status, @created_on);
	`, pgx.NamedArgs{
		"alert_id":       a.ID,
		"patient_id":     a.PatientID,
		"alert_type":     a.AlertType,
		"severity":       a.Severity,
		"title":          a.Title,
		"description":    a.Description,
		"data":           data,
		"measurement_id": nullableString(a.MeasurementID),
		"status":         a.Status,
		"created_on":     a.CreatedAt.UTC(),
	})
	if err != nil {
		if isDuplicateKeyErr(err) {
			return ErrAlreadyExist
		}
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

// SetAlertStatus performs a status transition and records who made it and
// why. The acknowledged/resolved audit columns are written only for the
// matching transition.
func (s *Storage) SetAlertStatus(ctx context.Context, alertID, status, by, notes string) error {
	now := time.Now().UTC()

	args := pgx.NamedArgs{
		"alert_id":    alertID,
		"status":      status,
		"modified_on": now,
	}

	set := "status=@status, modified_on=@modified_on"

	switch status {
	case types.AlertStatusAcknowledged:
		set += ", acknowledged_by=@by, acknowledged_on=@on, acknowledge_notes=@notes"
		args["by"] = by
		args["on"] = now
		args["notes"] = notes
	case types.AlertStatusResolved, types.AlertStatusDismissed:
		set += ", resolved_by=@by, resolved_on=@on, resolution_notes=@notes"
		args["by"] = by
		args["on"] = now
		args["notes"] = notes
	}

	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`UPDATE alerts SET %s WHERE alert_id=@alert_id;`, set), args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	coll, err := s.QueryAlerts(ctx, conditions...)
	if err != nil {
		return types.Alert{}, err
	}
	if coll.Count == 0 {
		return types.Alert{}, ErrNoRows
	}

	return coll.Data[0], nil
}

func (s *Storage) CountActiveAlerts(ctx context.Context, patientID string) (int64, error) {
	args := pgx.NamedArgs{"status": types.AlertStatusActive}

	query := `SELECT count(*) FROM alerts WHERE status=@status`
	if patientID != "" {
		query += ` AND patient_id=@patient_id`
		args["patient_id"] = patientID
	}

	var count int64
	err := s.pool.QueryRow(ctx, query+";", args).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("created_on")

	query := fmt.Sprintf(`
		SELECT alert_id, patient_id, alert_type, severity, title, description, data, measurement_id, status, acknowledged_by, acknowledged_on, acknowledge_notes, resolved_by, resolved_on, resolution_notes, created_on, modified_on, count(*) OVER () AS total
		FROM alerts
		%s
		ORDER BY %s %s
		%s;
	`, where, condition.SortBy("created_on"), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	var (
		a             types.Alert
		data          []byte
		measurementID *string
		ackBy, resBy  *string
		ackNotes      *string
		resNotes      *string
		description   *string
		total         int64
	)

	alerts := make([]types.Alert, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&a.ID, &a.PatientID, &a.AlertType, &a.Severity, &a.Title, &description, &data,
		&measurementID, &a.Status, &ackBy, &a.AcknowledgedAt, &ackNotes,
		&resBy, &a.ResolvedAt, &resNotes, &a.CreatedAt, &a.ModifiedAt, &total,
	}, func() error {
		a.Description = derefString(description)
		a.MeasurementID = derefString(measurementID)
		a.AcknowledgedBy = derefString(ackBy)
		a.AcknowledgeNotes = derefString(ackNotes)
		a.ResolvedBy = derefString(resBy)
		a.ResolutionNotes = derefString(resNotes)

		a.Data = nil
		if len(data) > 0 {
			if err := json.Unmarshal(data, &a.Data); err != nil {
				return err
			}
		}

		alerts = append(alerts, a)
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Collection[types.Alert]{}, ErrNoRows
		}
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(total),
	}, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
