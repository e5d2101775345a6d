package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValue_UnmarshalJSON(t *testing.T) {
	var in CarInput
	body := `{"year": 2021, "pricePerDay": "45.5", "isAvailable": true, "seating_capacity": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	require.NotNil(t, in.Year)
	year, err := in.Year.Int()
	require.NoError(t, err)
	assert.Equal(t, 2021, year)

	price, err := in.PricePerDay.Float()
	require.NoError(t, err)
	assert.Equal(t, 45.5, price)

	assert.True(t, in.IsAvailable.Bool())
	assert.Nil(t, in.SeatingCapacity)

	assert.Error(t, json.Unmarshal([]byte(`{"year": [2021]}`), &in))
}

func TestFormValue_Bool(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "1", "on", " yes "} {
		assert.True(t, FormValue(raw).Bool(), raw)
	}
	for _, raw := range []string{"false", "0", "off", "no", "", "y"} {
		assert.False(t, FormValue(raw).Bool(), raw)
	}
}

func TestFormValue_RejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"Inf", "+Inf", "-inf", "Infinity", "NaN", "1e400"} {
		_, err := FormValue(raw).Float()
		assert.Error(t, err, raw)
		_, err = FormValue(raw).Int()
		assert.Error(t, err, raw)
	}

	f, err := FormValue("1e3").Float()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, f)
}
