package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dateType = reflect.TypeOf(Date{})

// Date is a calendar date without a time component, held as UTC midnight.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate accepts YYYY-MM-DD or any RFC 3339 timestamp, keeping only the calendar day.
func ParseDate(raw string) (Date, error) {
	value := strings.TrimSpace(raw)
	if len(value) >= len(DateLayout) {
		if t, err := time.Parse(DateLayout, value[:len(DateLayout)]); err == nil {
			rest := value[len(DateLayout):]
			if rest == "" {
				return DateOf(t), nil
			}
			if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
				return DateOf(ts), nil
			}
			// Postgres renders timestamps as "2006-01-02 15:04:05+00".
			if rest[0] == ' ' || rest[0] == 'T' {
				return DateOf(t), nil
			}
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }

func (d Date) After(other Date) bool { return d.Time.After(other.Time) }

func (d Date) Equal(other Date) bool { return d.Time.Equal(other.Time) }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	// Type errors let encoding/json attach the offending field name.
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: dateType}
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(raw), Type: dateType}
	}
	*d = parsed
	return nil
}
