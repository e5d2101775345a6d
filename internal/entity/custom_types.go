package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// FlexibleTime accepts the date shapes the booking form and older clients send.
type FlexibleTime struct {
	time.Time
}

var flexibleTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func ParseFlexibleTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range flexibleTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", s)
}

func (ft *FlexibleTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		ft.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a string, got %s", s)
	}
	t, err := ParseFlexibleTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	ft.Time = t
	return nil
}

// UnmarshalParam lets gin bind the same formats from form fields.
func (ft *FlexibleTime) UnmarshalParam(param string) error {
	if strings.TrimSpace(param) == "" {
		ft.Time = time.Time{}
		return nil
	}
	t, err := ParseFlexibleTime(param)
	if err != nil {
		return err
	}
	ft.Time = t
	return nil
}

func (ft FlexibleTime) MarshalJSON() ([]byte, error) {
	if ft.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + ft.UTC().Format(time.RFC3339) + `"`), nil
}

func (ft FlexibleTime) Value() (driver.Value, error) {
	return ft.Time, nil
}

func (ft *FlexibleTime) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ft.Time = v
	case []byte:
		t, err := ParseFlexibleTime(string(v))
		if err != nil {
			return err
		}
		ft.Time = t
	case string:
		t, err := ParseFlexibleTime(v)
		if err != nil {
			return err
		}
		ft.Time = t
	default:
		return fmt.Errorf("cannot scan type %T into FlexibleTime", value)
	}
	return nil
}
