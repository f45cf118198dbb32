package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/robert-malhotra/go-airnow-client/pkg/airnow"
)

const redacted = "REDACTED"

// APIKeyMiddleware sets the API_KEY query parameter when the request does
// not already carry one.
func APIKeyMiddleware(key string) Middleware {
	return func(_ context.Context, req *http.Request) error {
		if key == "" {
			return nil
		}
		q := req.URL.Query()
		if q.Get(airnow.ParamAPIKey) != "" {
			return nil
		}
		if req.URL.RawQuery == "" {
			req.URL.RawQuery = airnow.ParamAPIKey + "=" + url.QueryEscape(key)
		} else {
			req.URL.RawQuery += "&" + airnow.ParamAPIKey + "=" + url.QueryEscape(key)
		}
		return nil
	}
}

// RedactURL renders u with the API key value replaced. Parameter order is
// preserved.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	if u.RawQuery == "" {
		return u.String()
	}
	parts := strings.Split(u.RawQuery, "&")
	for i, part := range parts {
		name, _, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		if decoded, err := url.QueryUnescape(name); err == nil && strings.EqualFold(decoded, airnow.ParamAPIKey) {
			parts[i] = name + "=" + redacted
		}
	}
	cp := *u
	cp.RawQuery = strings.Join(parts, "&")
	return cp.String()
}

// RedactParams returns a copy of p with the API key value replaced, for
// logging.
func RedactParams(p airnow.Params) airnow.Params {
	var out airnow.Params
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		if k == airnow.ParamAPIKey {
			v = redacted
		}
		out.Set(k, v)
	}
	return out
}
