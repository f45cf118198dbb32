package main

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-airnow-client/internal/config"
	"github.com/robert-malhotra/go-airnow-client/internal/logger"
	"github.com/robert-malhotra/go-airnow-client/pkg/airnow"
	"github.com/robert-malhotra/go-airnow-client/pkg/client"
)

// session bundles what a subcommand needs: configuration resolved once,
// the logger, the request builder and the API client.
type session struct {
	cfg     *config.Config
	log     *logger.Logger
	builder airnow.Builder
	client  *client.Client
	format  airnow.Format
	pretty  bool
}

// newSession resolves configuration with flag > env > file > default
// precedence.
func (a *app) newSession(cmd *cli.Command) (*session, error) {
	cfg, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return nil, cli.Exit(err.Error(), exitUsage)
	}
	if cmd.IsSet(flagKey) {
		cfg.APIKey = cmd.String(flagKey)
	}
	if cmd.IsSet(flagBaseURL) {
		cfg.BaseURL = cmd.String(flagBaseURL)
	}
	if cmd.IsSet(flagTimeout) {
		cfg.Timeout = cmd.Duration(flagTimeout)
	}
	if cmd.IsSet(flagFormat) {
		cfg.Format = cmd.String(flagFormat)
	}
	if cmd.Bool(flagDebug) {
		cfg.Debug = true
	}

	format, err := airnow.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Level(cfg.Debug), a.stderr)
	if cfg.File != "" {
		log.Debugw("loaded config", "file", cfg.File)
	}

	opts := []client.ClientOption{
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(log),
		client.WithUserAgent("go-airnow-client/" + version),
	}
	if a.httpClient != nil {
		opts = append(opts, client.WithHTTPClient(a.httpClient))
	}
	c, err := client.NewClient(cfg.BaseURL, opts...)
	if err != nil {
		return nil, cli.Exit(err.Error(), exitUsage)
	}

	return &session{
		cfg:     cfg,
		log:     log,
		builder: airnow.Builder{APIKey: cfg.APIKey, Format: format},
		client:  c,
		format:  format,
		pretty:  cmd.Bool(flagPretty),
	}, nil
}

// execute sends req and writes the body to w. Nothing is written unless the
// request succeeds.
func (s *session) execute(ctx context.Context, w io.Writer, req *airnow.Request) error {
	defer s.log.Sync()

	s.log.Debugw("request built",
		"command", req.Command,
		"endpoint", req.Endpoint,
		"params", client.RedactParams(req.Params).Encode(),
	)
	body, err := s.client.Get(ctx, req)
	if err != nil {
		return err
	}
	return writeBody(w, body, s.format, s.pretty)
}
