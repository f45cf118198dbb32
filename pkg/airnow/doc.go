// Package airnow provides the domain types, input validators and request
// builder for the AirNow air quality API.
//
// The package performs no I/O. A Builder turns validated inputs into a
// Request carrying the endpoint path and the exact query parameters the API
// expects; pkg/client sends it.
//
// Example usage:
//
//	b := airnow.Builder{APIKey: key, Format: airnow.FormatJSON}
//	req, err := b.Conditions(airnow.Location{ZipCode: "02133", Distance: 25})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(req.Endpoint, req.Params.Encode())
package airnow
