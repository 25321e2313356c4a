package entity

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"ucsbapi/internal/errors"
)

// LocalDateTimeLayout is the ISO-8601 local date-time form, without zone.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime is a wall-clock timestamp with no zone, e.g. "2022-01-03T00:00:00".
type LocalDateTime struct {
	time.Time
}

// localDateTimeMinutes is the same form with the seconds omitted.
const localDateTimeMinutes = "2006-01-02T15:04"

// ParseLocalDateTime accepts the local layout, with optional fractional seconds
// or without seconds. Values carrying a zone or offset are rejected.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{LocalDateTimeLayout, localDateTimeMinutes} {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalDateTime{Time: t}, nil
		}
	}

	return LocalDateTime{}, errors.Errorf("invalid local date-time %q, want %s without zone", s, LocalDateTimeLayout)
}

// String formats the value in the local layout.
func (l LocalDateTime) String() string {
	return l.Format(LocalDateTimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}

// UnmarshalParam lets echo bind the value from query and form parameters.
func (l *LocalDateTime) UnmarshalParam(param string) error {
	parsed, err := ParseLocalDateTime(param)
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}

// Value implements driver.Valuer.
func (l LocalDateTime) Value() (driver.Value, error) {
	return l.Time, nil
}

// Scan implements sql.Scanner. SQLite may hand back text rather than a time.
func (l *LocalDateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		l.Time = v

		return nil
	case string:
		return l.scanText(v)
	case []byte:
		return l.scanText(string(v))
	case nil:
		l.Time = time.Time{}

		return nil
	default:
		return errors.Errorf("cannot scan %T into LocalDateTime", src)
	}
}

func (l *LocalDateTime) scanText(s string) error {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05", LocalDateTimeLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			l.Time = t

			return nil
		}
	}

	return errors.Errorf("cannot parse %q as LocalDateTime", s)
}
