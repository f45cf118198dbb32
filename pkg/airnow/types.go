package airnow

import (
	"strconv"
	"strings"
	"time"
)

// DefaultDistance is the search radius in miles used when no reporting area
// matches the requested location.
const DefaultDistance = 25

// Command identifies an API operation.
type Command string

const (
	CommandConditions   Command = "conditions"
	CommandForecast     Command = "forecast"
	CommandHistorical   Command = "historical"
	CommandObservations Command = "observations"
)

// Format is the response format requested from the API.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat converts a user supplied format name. The empty string maps to
// FormatJSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", invalid("format", s, ErrInvalidFormat)
	}
}

// MIMEType returns the value sent as the format query parameter.
func (f Format) MIMEType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXML:
		return "application/xml"
	default:
		return "application/json"
	}
}

// Pollutant is a monitored parameter accepted by the observations endpoint.
type Pollutant string

const (
	PollutantO3   Pollutant = "o3"
	PollutantPM25 Pollutant = "pm25"
	PollutantPM10 Pollutant = "pm10"
	PollutantCO   Pollutant = "co"
	PollutantNO2  Pollutant = "no2"
	PollutantSO2  Pollutant = "so2"
)

// Pollutants lists every pollutant in canonical order.
var Pollutants = []Pollutant{
	PollutantO3,
	PollutantPM25,
	PollutantPM10,
	PollutantCO,
	PollutantNO2,
	PollutantSO2,
}

// ParsePollutant accepts a pollutant code case-insensitively. "pm2.5" is an
// alias for pm25.
func ParsePollutant(s string) (Pollutant, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "pm2.5" {
		v = string(PollutantPM25)
	}
	for _, p := range Pollutants {
		if string(p) == v {
			return p, nil
		}
	}
	return "", invalid("pollutant", s, ErrInvalidFormat)
}

// PollutantSet is a set of pollutants.
type PollutantSet map[Pollutant]bool

// NewPollutantSet builds a set from the given pollutants.
func NewPollutantSet(ps ...Pollutant) PollutantSet {
	set := make(PollutantSet, len(ps))
	for _, p := range ps {
		set[p] = true
	}
	return set
}

// Codes returns the selected codes in canonical order. An empty set selects
// ozone.
func (s PollutantSet) Codes() []string {
	var codes []string
	for _, p := range Pollutants {
		if s[p] {
			codes = append(codes, string(p))
		}
	}
	if len(codes) == 0 {
		codes = []string{string(PollutantO3)}
	}
	return codes
}

// DataType selects AQI values, raw concentrations, or both.
type DataType int

const (
	DataTypeBoth DataType = iota
	DataTypeAQI
	DataTypeConcentrations
)

// Code returns the single letter the API expects.
func (d DataType) Code() string {
	switch d {
	case DataTypeAQI:
		return "a"
	case DataTypeConcentrations:
		return "c"
	default:
		return "b"
	}
}

func (d DataType) String() string {
	switch d {
	case DataTypeAQI:
		return "AQI"
	case DataTypeConcentrations:
		return "Concentrations"
	default:
		return "Both"
	}
}

// Location selects a reporting area either by ZIP code or by coordinates.
// When ZipCode is set it takes precedence over the coordinates.
type Location struct {
	ZipCode   string
	Latitude  *float64
	Longitude *float64
	// Distance is the search radius in miles. Zero means DefaultDistance.
	Distance int
}

// Validate checks the selected location mode and the search distance.
func (l Location) Validate() error {
	if l.Distance != 0 {
		if _, err := ValidateDistance(l.Distance); err != nil {
			return err
		}
	}
	switch {
	case l.ZipCode != "":
		_, err := ValidateZipCode(l.ZipCode)
		return err
	case l.Latitude != nil && l.Longitude != nil:
		if _, err := ValidateLatitude(*l.Latitude); err != nil {
			return err
		}
		_, err := ValidateLongitude(*l.Longitude)
		return err
	default:
		return ErrMissingLocation
	}
}

// LatLon is a convenience constructor for a coordinate location.
func LatLon(lat, lon float64) Location {
	return Location{Latitude: &lat, Longitude: &lon}
}

// DateRange bounds an observations query. Either end may be nil.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Validate ensures End does not precede Start.
func (r DateRange) Validate() error {
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return invalid("date range", r.Start.Format(dateLayout)+"/"+r.End.Format(dateLayout), ErrOutOfRange)
	}
	return nil
}

// BoundingBox is a rectangle in longitude (X) and latitude (Y).
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// ParseBoundingBox parses "minX,minY,maxX,maxY".
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, invalid("bounding box", s, ErrInvalidFormat)
	}
	var coords [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BoundingBox{}, invalid("bounding box", s, ErrInvalidFormat)
		}
		coords[i] = v
	}
	box := BoundingBox{MinX: coords[0], MinY: coords[1], MaxX: coords[2], MaxY: coords[3]}
	if err := box.Validate(); err != nil {
		return BoundingBox{}, err
	}
	return box, nil
}

// Validate checks coordinate ranges and that each minimum does not exceed
// its maximum.
func (b BoundingBox) Validate() error {
	for _, x := range []float64{b.MinX, b.MaxX} {
		if _, err := ValidateLongitude(x); err != nil {
			return invalid("bounding box", b.String(), ErrOutOfRange)
		}
	}
	for _, y := range []float64{b.MinY, b.MaxY} {
		if _, err := ValidateLatitude(y); err != nil {
			return invalid("bounding box", b.String(), ErrOutOfRange)
		}
	}
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return invalid("bounding box", b.String(), ErrOutOfRange)
	}
	return nil
}

// String encodes the box in minX,minY,maxX,maxY order.
func (b BoundingBox) String() string {
	return strings.Join([]string{
		formatCoord(b.MinX),
		formatCoord(b.MinY),
		formatCoord(b.MaxX),
		formatCoord(b.MaxY),
	}, ",")
}

// ObservationQuery describes a monitoring-site query over a bounding box.
type ObservationQuery struct {
	BBox       BoundingBox
	Dates      DateRange
	Pollutants PollutantSet
	DataType   DataType

	Verbose                  bool
	NowcastOnly              bool
	IncludeRawConcentrations bool
}
