package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-airnow-client/pkg/airnow"
)

const (
	flagBBox           = "bbox"
	flagStart          = "start"
	flagEnd            = "end"
	flagAQI            = "aqi"
	flagBoth           = "both"
	flagConcentrations = "concentrations"
	flagVerbose        = "verbose"
	flagNowcastOnly    = "nowcastonly"
	flagIncludeRaw     = "includerawconcentrations"
)

func (a *app) observationsCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     flagBBox,
			Usage:    "Bounding box as minX,minY,maxX,maxY (longitude, latitude)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  flagStart,
			Usage: "Start date as YYYY-MM-DD",
		},
		&cli.StringFlag{
			Name:  flagEnd,
			Usage: "End date as YYYY-MM-DD",
		},
		&cli.BoolFlag{
			Name:  flagVerbose,
			Usage: "Include site name, agency and AQS ID",
		},
		&cli.BoolFlag{
			Name:  flagNowcastOnly,
			Usage: "Return NowCast values only",
		},
		&cli.BoolFlag{
			Name:  flagIncludeRaw,
			Usage: "Include raw hourly concentrations",
		},
	}
	for _, p := range airnow.Pollutants {
		flags = append(flags, &cli.BoolFlag{
			Name:  string(p),
			Usage: "Include " + pollutantLabel(p),
		})
	}

	return &cli.Command{
		Name:  string(airnow.CommandObservations),
		Usage: "Retrieve monitoring site observations within a bounding box",
		Flags: flags,
		MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{{
			Flags: [][]cli.Flag{
				{&cli.BoolFlag{Name: flagAQI, Aliases: []string{"a"}, Usage: "Return AQI values"}},
				{&cli.BoolFlag{Name: flagBoth, Aliases: []string{"b"}, Usage: "Return AQI values and concentrations (default)"}},
				{&cli.BoolFlag{Name: flagConcentrations, Aliases: []string{"c"}, Usage: "Return concentrations"}},
			},
		}},
		OnUsageError: onUsageError,
		Action:       a.observationsAction,
	}
}

func (a *app) observationsAction(ctx context.Context, cmd *cli.Command) error {
	q, err := observationQuery(cmd)
	if err != nil {
		return err
	}
	s, err := a.newSession(cmd)
	if err != nil {
		return err
	}
	s.log.Debugw("options",
		"command", airnow.CommandObservations,
		"bbox", q.BBox.String(),
		"parameters", q.Pollutants.Codes(),
		"datatype", q.DataType.String(),
	)
	req, err := s.builder.Observations(q)
	if err != nil {
		return err
	}
	return s.execute(ctx, a.stdout, req)
}

func observationQuery(cmd *cli.Command) (airnow.ObservationQuery, error) {
	box, err := airnow.ParseBoundingBox(cmd.String(flagBBox))
	if err != nil {
		return airnow.ObservationQuery{}, err
	}
	q := airnow.ObservationQuery{
		BBox:                     box,
		Pollutants:               airnow.PollutantSet{},
		DataType:                 airnow.DataTypeBoth,
		Verbose:                  cmd.Bool(flagVerbose),
		NowcastOnly:              cmd.Bool(flagNowcastOnly),
		IncludeRawConcentrations: cmd.Bool(flagIncludeRaw),
	}
	if q.Dates.Start, err = optionalDate(cmd, flagStart); err != nil {
		return airnow.ObservationQuery{}, err
	}
	if q.Dates.End, err = optionalDate(cmd, flagEnd); err != nil {
		return airnow.ObservationQuery{}, err
	}
	for _, p := range airnow.Pollutants {
		if cmd.Bool(string(p)) {
			q.Pollutants[p] = true
		}
	}
	switch {
	case cmd.Bool(flagAQI):
		q.DataType = airnow.DataTypeAQI
	case cmd.Bool(flagConcentrations):
		q.DataType = airnow.DataTypeConcentrations
	}
	return q, nil
}

func optionalDate(cmd *cli.Command, name string) (*time.Time, error) {
	raw := cmd.String(name)
	if raw == "" {
		return nil, nil
	}
	t, err := airnow.ValidateDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func pollutantLabel(p airnow.Pollutant) string {
	switch p {
	case airnow.PollutantO3:
		return "ozone (default when no pollutant is selected)"
	case airnow.PollutantPM25:
		return "PM2.5"
	case airnow.PollutantPM10:
		return "PM10"
	case airnow.PollutantCO:
		return "carbon monoxide"
	case airnow.PollutantNO2:
		return "nitrogen dioxide"
	default:
		return "sulfur dioxide"
	}
}
