package airnow

import (
	"net/url"
	"strings"
)

// Query parameter names used by the API.
const (
	ParamAPIKey    = "API_KEY"
	ParamFormat    = "format"
	ParamZipCode   = "zipCode"
	ParamLatitude  = "latitude"
	ParamLongitude = "longitude"
	ParamDistance  = "distance"
	ParamDate      = "date"
)

// Params is an ordered set of query parameters. Keys are unique; setting an
// existing key replaces its value in place.
type Params struct {
	keys   []string
	values map[string]string
}

// Set adds or replaces key.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Del removes key.
func (p *Params) Del(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (p Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p.keys)
}

// Values converts the parameters to url.Values.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p.keys))
	for _, k := range p.keys {
		v.Set(k, p.values[k])
	}
	return v
}

// Encode renders the parameters as a query string in insertion order.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.values[k]))
	}
	return sb.String()
}

// Request is a fully built API call.
type Request struct {
	Command  Command
	Endpoint string
	Params   Params
}
