package airnow

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateZipCode(t *testing.T) {
	for _, zip := range []string{"01234", "98109", "02133", "00000"} {
		got, err := ValidateZipCode(zip)
		require.NoError(t, err)
		assert.Equal(t, zip, got)
	}

	for _, zip := range []string{"", "0123", "666666", "0213a", " 2133", "-1234", "٠١٢٣٤"} {
		t.Run("reject "+zip, func(t *testing.T) {
			_, err := ValidateZipCode(zip)
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, zip, verr.Value)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2020-09-01", time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"2020-09-01T12:00:00", time.Date(2020, 9, 1, 12, 0, 0, 0, time.UTC)},
		{"2020-09-01T12", time.Date(2020, 9, 1, 12, 0, 0, 0, time.UTC)},
		{"2020-09-01T12:30", time.Date(2020, 9, 1, 12, 30, 0, 0, time.UTC)},
		{"2020-09-01 08:15:30", time.Date(2020, 9, 1, 8, 15, 30, 0, time.UTC)},
		{"2020-09-01T08:15:30.250", time.Date(2020, 9, 1, 8, 15, 30, 250000000, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ValidateDate(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	t.Run("timezone", func(t *testing.T) {
		for _, in := range []string{
			"2020-09-01T00:00:00+00:00",
			"2020-09-01T00:00:00Z",
			"2020-09-01T00:00-0700",
			"2020-09-01T05+02",
		} {
			_, err := ValidateDate(in)
			assert.ErrorIs(t, err, ErrTimezonePresent, in)
		}
	})

	t.Run("parse failure", func(t *testing.T) {
		for _, in := range []string{"202009", "", "yesterday", "2020-13-01", "09/01/2020"} {
			_, err := ValidateDate(in)
			assert.ErrorIs(t, err, ErrParseFailure, in)
		}
	})
}

func TestValidateLatitude(t *testing.T) {
	for _, n := range []float64{0, -90, 90, 42.3, -89.999} {
		got, err := ValidateLatitude(n)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	for _, n := range []float64{90.0001, -91, 180, math.NaN(), math.Inf(1)} {
		_, err := ValidateLatitude(n)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestValidateLongitude(t *testing.T) {
	for _, n := range []float64{0, -180, 180, -71.0} {
		got, err := ValidateLongitude(n)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	for _, n := range []float64{180.5, -181, math.NaN(), math.Inf(-1)} {
		_, err := ValidateLongitude(n)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestValidateDistance(t *testing.T) {
	got, err := ValidateDistance(25)
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	_, err = ValidateDistance(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ValidateDistance(-3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "1.0", formatCoord(1))
	assert.Equal(t, "-71.0", formatCoord(-71))
	assert.Equal(t, "42.3", formatCoord(42.3))
	assert.Equal(t, "-71.05", formatCoord(-71.05))
	assert.Equal(t, "0.0", formatCoord(0))
}
