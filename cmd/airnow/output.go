package main

import (
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/robert-malhotra/go-airnow-client/pkg/airnow"
)

// writeBody prints the response as received. With pretty set, valid JSON
// bodies are reindented; anything else passes through.
func writeBody(w io.Writer, body string, format airnow.Format, pretty bool) error {
	if pretty && format == airnow.FormatJSON && gjson.Valid(body) {
		body = gjson.Get(body, "@pretty").Raw
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, err := io.WriteString(w, body)
	return err
}
