package airnow

import (
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"

	modeZipCode = "zipCode"
	modeLatLong = "latLong"

	// ObservationsEndpoint serves monitoring-site data for a bounding box.
	ObservationsEndpoint = "/aq/data/"
)

// Builder produces Requests for each API command. It is pure: no clock, no
// network.
type Builder struct {
	APIKey string
	Format Format
}

// Conditions builds a current-observations request.
func (b Builder) Conditions(loc Location) (*Request, error) {
	req, mode, err := b.located(CommandConditions, loc)
	if err != nil {
		return nil, err
	}
	req.Endpoint = "/aq/observation/" + mode + "/current/"
	return b.finish(req)
}

// Forecast builds a forecast request for the given date.
func (b Builder) Forecast(loc Location, date time.Time) (*Request, error) {
	req, mode, err := b.located(CommandForecast, loc)
	if err != nil {
		return nil, err
	}
	req.Endpoint = "/aq/forecast/" + mode + "/"
	req.Params.Set(ParamDate, date.Format(dateLayout))
	return b.finish(req)
}

// Historical builds a request for the observations recorded on date.
func (b Builder) Historical(loc Location, date time.Time) (*Request, error) {
	req, mode, err := b.located(CommandHistorical, loc)
	if err != nil {
		return nil, err
	}
	req.Endpoint = "/aq/observation/" + mode + "/historical/"
	req.Params.Set(ParamDate, date.Format(dateLayout)+"T00-0000")
	return b.finish(req)
}

// Observations builds a monitoring-site request over a bounding box.
func (b Builder) Observations(q ObservationQuery) (*Request, error) {
	if err := q.BBox.Validate(); err != nil {
		return nil, err
	}
	if err := q.Dates.Validate(); err != nil {
		return nil, err
	}

	req := &Request{Command: CommandObservations, Endpoint: ObservationsEndpoint}
	if q.Dates.Start != nil {
		req.Params.Set("startdate", q.Dates.Start.Format(dateLayout)+"T00")
	}
	if q.Dates.End != nil {
		req.Params.Set("enddate", q.Dates.End.Format(dateLayout)+"T00")
	}
	req.Params.Set("parameters", strings.Join(q.Pollutants.Codes(), ","))
	req.Params.Set("bbox", q.BBox.String())
	req.Params.Set("datatype", q.DataType.Code())
	req.Params.Set("verbose", boolParam(q.Verbose))
	req.Params.Set("nowcastonly", boolParam(q.NowcastOnly))
	req.Params.Set("includerawconcentrations", boolParam(q.IncludeRawConcentrations))
	req.Params.Set("unit", "ppb")
	return b.finish(req)
}

// Build dispatches on cmd. Observations requests must use Observations.
func (b Builder) Build(cmd Command, loc Location, date time.Time) (*Request, error) {
	switch cmd {
	case CommandConditions:
		return b.Conditions(loc)
	case CommandForecast:
		return b.Forecast(loc, date)
	case CommandHistorical:
		return b.Historical(loc, date)
	default:
		return nil, invalid("command", string(cmd), ErrInvalidFormat)
	}
}

// located resolves the location mode. Only the keys of the chosen mode are
// set.
func (b Builder) located(cmd Command, loc Location) (*Request, string, error) {
	if err := loc.Validate(); err != nil {
		return nil, "", err
	}
	distance := loc.Distance
	if distance == 0 {
		distance = DefaultDistance
	}

	req := &Request{Command: cmd}
	var mode string
	if loc.ZipCode != "" {
		req.Params.Set(ParamZipCode, loc.ZipCode)
		mode = modeZipCode
	} else {
		req.Params.Set(ParamLatitude, formatCoord(*loc.Latitude))
		req.Params.Set(ParamLongitude, formatCoord(*loc.Longitude))
		mode = modeLatLong
	}
	req.Params.Set(ParamDistance, strconv.Itoa(distance))
	return req, mode, nil
}

func (b Builder) finish(req *Request) (*Request, error) {
	if b.APIKey == "" {
		return nil, ErrMissingCredential
	}
	format := b.Format
	if format == "" {
		format = FormatJSON
	}
	req.Params.Set(ParamFormat, format.MIMEType())
	req.Params.Set(ParamAPIKey, b.APIKey)
	return req, nil
}

func boolParam(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
