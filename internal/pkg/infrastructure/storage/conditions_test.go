package storage

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func apply(conditions ...ConditionFunc) *Condition {
	c := &Condition{}
	for _, f := range conditions {
		f(c)
	}
	return c
}

func TestEmptyConditionHasNoWhereClause(t *testing.T) {
	is := is.New(t)

	c := apply()

	is.Equal("", c.Where("measurement_time"))
	is.Equal(0, len(c.NamedArgs()))
}

func TestWhereJoinsConditionsWithAnd(t *testing.T) {
	is := is.New(t)

	c := apply(WithPatientID("p-01"), WithDeviceID("dev-42"))

	is.Equal("WHERE patient_id = @patient_id AND device_id = @device_id", c.Where("measurement_time"))

	args := c.NamedArgs()
	is.Equal("p-01", args["patient_id"])
	is.Equal("dev-42", args["device_id"])
}

func TestTimeWindowUsesGivenColumn(t *testing.T) {
	is := is.New(t)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	c := apply(WithTimeAt(from), WithTimeUntil(to))

	is.Equal("WHERE measurement_time >= @time_at AND measurement_time <= @time_until", c.Where("measurement_time"))
	is.Equal("WHERE created_on >= @time_at AND created_on <= @time_until", c.Where("created_on"))
}

func TestLastNDaysSetsBothBounds(t *testing.T) {
	is := is.New(t)

	c := apply(WithLastNDays(7))

	is.True(!c.TimeAt.IsZero())
	is.True(!c.TimeUntil.IsZero())

	window := c.TimeUntil.Sub(c.TimeAt)
	is.Equal(7*24*time.Hour, window)
}

func TestStatusConditionMatchesAny(t *testing.T) {
	is := is.New(t)

	c := apply(WithStatus("active", "acknowledged"))

	is.Equal("WHERE status = ANY(@status)", c.Where("created_on"))
	is.Equal(2, len(c.NamedArgs()["status"].([]string)))
}

func TestSortDefaultsAndOverrides(t *testing.T) {
	is := is.New(t)

	c := apply()
	is.Equal("measurement_time", c.SortBy("measurement_time"))
	is.Equal("ASC", c.SortOrder())

	c = apply(WithSortBy("created_on"), WithSortDesc(true))
	is.Equal("created_on", c.SortBy("measurement_time"))
	is.Equal("DESC", c.SortOrder())
}

func TestOffsetLimitClause(t *testing.T) {
	is := is.New(t)

	c := apply()
	is.Equal("", c.OffsetLimit())

	c = apply(WithOffset(20), WithLimit(10))
	is.Equal("OFFSET 20 LIMIT 10 ", c.OffsetLimit())
	is.Equal(20, c.Offset())
	is.Equal(10, c.Limit())
}
