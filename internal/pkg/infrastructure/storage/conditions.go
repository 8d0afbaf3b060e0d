package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	PatientID     string
	DeviceID      string
	AlertID       string
	MeasurementID string

	AlertType string
	Severity  string
	Status    []string

	Active *bool

	TimeRel   string
	TimeAt    time.Time
	TimeUntil time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.PatientID != "" {
		args["patient_id"] = c.PatientID
	}
	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.MeasurementID != "" {
		args["measurement_id"] = c.MeasurementID
	}
	if c.AlertType != "" {
		args["alert_type"] = c.AlertType
	}
	if c.Severity != "" {
		args["severity"] = c.Severity
	}
	if len(c.Status) > 0 {
		args["status"] = c.Status
	}
	if c.Active != nil {
		args["active"] = *c.Active
	}
	if !c.TimeAt.IsZero() {
		args["time_at"] = c.TimeAt.UTC()
	}
	if !c.TimeUntil.IsZero() {
		args["time_until"] = c.TimeUntil.UTC()
	}

	return args
}

func (c Condition) Where(timeColumn string) string {
	where := []string{}

	if c.PatientID != "" {
		where = append(where, "patient_id = @patient_id")
	}
	if c.DeviceID != "" {
		where = append(where, "device_id = @device_id")
	}
	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.MeasurementID != "" {
		where = append(where, "measurement_id = @measurement_id")
	}
	if c.AlertType != "" {
		where = append(where, "alert_type = @alert_type")
	}
	if c.Severity != "" {
		where = append(where, "severity = @severity")
	}
	if len(c.Status) > 0 {
		where = append(where, "status = ANY(@status)")
	}
	if c.Active != nil {
		where = append(where, "active = @active")
	}
	if !c.TimeAt.IsZero() {
		where = append(where, fmt.Sprintf("%s >= @time_at", timeColumn))
	}
	if !c.TimeUntil.IsZero() {
		where = append(where, fmt.Sprintf("%s <= @time_until", timeColumn))
	}

	if len(where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(where, " AND ")
}

func (c Condition) SortBy(def string) string {
	if c.sortBy == "" {
		return def
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) OffsetLimit() string {
	s := ""
	if c.offset != nil {
		s += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		s += fmt.Sprintf("LIMIT %d ", *c.limit)
	}
	return s
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func WithPatientID(patientID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.PatientID = patientID
		return c
	}
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithMeasurementID(measurementID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.MeasurementID = measurementID
		return c
	}
}

func WithAlertType(alertType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertType = alertType
		return c
	}
}

func WithSeverity(severity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severity = severity
		return c
	}
}

func WithStatus(status ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithActive(active bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Active = &active
		return c
	}
}

func WithTimeAt(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TimeAt = t
		return c
	}
}

func WithTimeUntil(t time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.TimeUntil = t
		return c
	}
}

// WithLastNDays bounds the query to the window ending now. Measurements
// come back in chronological order so trend analysis can consume them
// without re-sorting.
func WithLastNDays(days int) ConditionFunc {
	return func(c *Condition) *Condition {
		now := time.Now().UTC()
		c.TimeAt = now.AddDate(0, 0, -days)
		c.TimeUntil = now
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = sortBy
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}
