package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormValue is a scalar that arrives either as JSON (string, number or bool)
// or as a multipart form field.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FormValue(s)
		return nil
	}
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw[0] == '{' || raw[0] == '[' {
		return fmt.Errorf("expected a scalar, got %s", raw)
	}
	*v = FormValue(raw)
	return nil
}

// UnmarshalParam lets gin bind form fields.
func (v *FormValue) UnmarshalParam(param string) error {
	*v = FormValue(param)
	return nil
}

func (v FormValue) String() string {
	return strings.TrimSpace(string(v))
}

func (v FormValue) Int() (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Float rejects Inf and NaN: they cannot be encoded back to JSON.
func (v FormValue) Float() (float64, error) {
	f, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("not a finite number: %q", v.String())
	}
	return f, nil
}

// Bool is true only for true, 1, on and yes, case-insensitively.
func (v FormValue) Bool() bool {
	switch strings.ToLower(v.String()) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}

// boolOr reads an optional flag.
func boolOr(v *FormValue, def bool) bool {
	if v == nil {
		return def
	}
	return v.Bool()
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
