package airnow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuilder = Builder{APIKey: "secret", Format: FormatJSON}

func param(t *testing.T, req *Request, key string) string {
	t.Helper()
	v, ok := req.Params.Get(key)
	require.True(t, ok, "missing parameter %q", key)
	return v
}

func TestBuilder_LocationModes(t *testing.T) {
	t.Run("zip", func(t *testing.T) {
		req, err := testBuilder.Conditions(Location{ZipCode: "02133"})
		require.NoError(t, err)
		assert.Equal(t, "02133", param(t, req, ParamZipCode))
		assert.False(t, req.Params.Has(ParamLatitude))
		assert.False(t, req.Params.Has(ParamLongitude))
		assert.Equal(t, "/aq/observation/zipCode/current/", req.Endpoint)
	})

	t.Run("lat lon", func(t *testing.T) {
		req, err := testBuilder.Conditions(LatLon(42.3, -71.0))
		require.NoError(t, err)
		assert.Equal(t, "42.3", param(t, req, ParamLatitude))
		assert.Equal(t, "-71.0", param(t, req, ParamLongitude))
		assert.False(t, req.Params.Has(ParamZipCode))
		assert.Equal(t, "/aq/observation/latLong/current/", req.Endpoint)
	})

	t.Run("zip wins over coordinates", func(t *testing.T) {
		loc := LatLon(42.3, -71.0)
		loc.ZipCode = "98109"
		req, err := testBuilder.Conditions(loc)
		require.NoError(t, err)
		assert.Equal(t, "98109", param(t, req, ParamZipCode))
		assert.False(t, req.Params.Has(ParamLatitude))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := testBuilder.Conditions(Location{})
		assert.ErrorIs(t, err, ErrMissingLocation)

		lat := 42.3
		_, err = testBuilder.Forecast(Location{Latitude: &lat}, time.Now())
		assert.ErrorIs(t, err, ErrMissingLocation)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := testBuilder.Conditions(Location{ZipCode: "2133"})
		assert.ErrorIs(t, err, ErrInvalidFormat)

		_, err = testBuilder.Conditions(LatLon(91, 0))
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = testBuilder.Conditions(Location{ZipCode: "02133", Distance: -1})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestBuilder_CommonParams(t *testing.T) {
	req, err := testBuilder.Conditions(Location{ZipCode: "02133"})
	require.NoError(t, err)
	assert.Equal(t, "25", param(t, req, ParamDistance))
	assert.Equal(t, "application/json", param(t, req, ParamFormat))
	assert.Equal(t, "secret", param(t, req, ParamAPIKey))
	assert.Equal(t, CommandConditions, req.Command)

	b := Builder{APIKey: "k", Format: FormatCSV}
	req, err = b.Conditions(Location{ZipCode: "02133", Distance: 10})
	require.NoError(t, err)
	assert.Equal(t, "10", param(t, req, ParamDistance))
	assert.Equal(t, "text/csv", param(t, req, ParamFormat))

	_, err = Builder{}.Conditions(Location{ZipCode: "02133"})
	assert.ErrorIs(t, err, ErrMissingCredential)

	// location problems are reported before the credential
	_, err = Builder{}.Conditions(Location{})
	assert.ErrorIs(t, err, ErrMissingLocation)
}

func TestBuilder_ForecastAndHistorical(t *testing.T) {
	date := time.Date(2020, 9, 1, 15, 0, 0, 0, time.UTC)

	req, err := testBuilder.Forecast(Location{ZipCode: "02133"}, date)
	require.NoError(t, err)
	assert.Equal(t, "/aq/forecast/zipCode/", req.Endpoint)
	assert.Equal(t, "2020-09-01", param(t, req, ParamDate))

	req, err = testBuilder.Forecast(LatLon(47.6, -122.3), date)
	require.NoError(t, err)
	assert.Equal(t, "/aq/forecast/latLong/", req.Endpoint)

	req, err = testBuilder.Historical(Location{ZipCode: "02133"}, date)
	require.NoError(t, err)
	assert.Equal(t, "/aq/observation/zipCode/historical/", req.Endpoint)
	assert.Equal(t, "2020-09-01T00-0000", param(t, req, ParamDate))

	req, err = testBuilder.Historical(LatLon(47.6, -122.3), date)
	require.NoError(t, err)
	assert.Equal(t, "/aq/observation/latLong/historical/", req.Endpoint)
	assert.Equal(t, CommandHistorical, req.Command)
}

func TestBuilder_Build(t *testing.T) {
	date := time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)
	req, err := testBuilder.Build(CommandForecast, Location{ZipCode: "02133"}, date)
	require.NoError(t, err)
	assert.Equal(t, CommandForecast, req.Command)

	_, err = testBuilder.Build(CommandObservations, Location{ZipCode: "02133"}, date)
	assert.Error(t, err)
}

func TestBuilder_Observations(t *testing.T) {
	box := BoundingBox{MinX: 1.0, MinY: 2.0, MaxX: 3.0, MaxY: 4.0}

	t.Run("defaults", func(t *testing.T) {
		req, err := testBuilder.Observations(ObservationQuery{BBox: box})
		require.NoError(t, err)
		assert.Equal(t, ObservationsEndpoint, req.Endpoint)
		assert.Equal(t, "1.0,2.0,3.0,4.0", param(t, req, "bbox"))
		assert.Equal(t, "o3", param(t, req, "parameters"))
		assert.Equal(t, "b", param(t, req, "datatype"))
		assert.Equal(t, "0", param(t, req, "verbose"))
		assert.Equal(t, "0", param(t, req, "nowcastonly"))
		assert.Equal(t, "0", param(t, req, "includerawconcentrations"))
		assert.Equal(t, "ppb", param(t, req, "unit"))
		assert.False(t, req.Params.Has("startdate"))
		assert.False(t, req.Params.Has("enddate"))
		assert.Equal(t, "secret", param(t, req, ParamAPIKey))
	})

	t.Run("selections", func(t *testing.T) {
		start := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2020, 9, 2, 0, 0, 0, 0, time.UTC)
		req, err := testBuilder.Observations(ObservationQuery{
			BBox:                     box,
			Dates:                    DateRange{Start: &start, End: &end},
			Pollutants:               NewPollutantSet(PollutantCO, PollutantPM25),
			DataType:                 DataTypeAQI,
			Verbose:                  true,
			IncludeRawConcentrations: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "pm25,co", param(t, req, "parameters"))
		assert.Equal(t, "a", param(t, req, "datatype"))
		assert.Equal(t, "2020-09-01T00", param(t, req, "startdate"))
		assert.Equal(t, "2020-09-02T00", param(t, req, "enddate"))
		assert.Equal(t, "1", param(t, req, "verbose"))
		assert.Equal(t, "0", param(t, req, "nowcastonly"))
		assert.Equal(t, "1", param(t, req, "includerawconcentrations"))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := testBuilder.Observations(ObservationQuery{BBox: BoundingBox{MinX: 3, MinY: 2, MaxX: 1, MaxY: 4}})
		assert.ErrorIs(t, err, ErrOutOfRange)

		start := time.Date(2020, 9, 2, 0, 0, 0, 0, time.UTC)
		end := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
		_, err = testBuilder.Observations(ObservationQuery{BBox: box, Dates: DateRange{Start: &start, End: &end}})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}
