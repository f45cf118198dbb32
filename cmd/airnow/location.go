package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-airnow-client/pkg/airnow"
)

const (
	flagZip       = "zip"
	flagLatitude  = "latitude"
	flagLongitude = "longitude"
	flagDistance  = "distance"
	flagDate      = "date"
)

// locationFlags returns the flags shared by the location-based commands.
// Flags carry parse state, so every command gets fresh instances.
func locationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    flagDistance,
			Aliases: []string{"d"},
			Usage:   "Search distance in miles when no reporting area matches",
			Value:   airnow.DefaultDistance,
		},
	}
}

// locationModes makes ZIP and latitude/longitude mutually exclusive.
func locationModes() []cli.MutuallyExclusiveFlags {
	return []cli.MutuallyExclusiveFlags{{
		Flags: [][]cli.Flag{
			{
				&cli.StringFlag{
					Name:    flagZip,
					Aliases: []string{"z"},
					Usage:   "Target ZIP code",
				},
			},
			{
				&cli.FloatFlag{
					Name:    flagLatitude,
					Aliases: []string{"lat"},
					Usage:   "Target latitude",
				},
				&cli.FloatFlag{
					Name:    flagLongitude,
					Aliases: []string{"lon"},
					Usage:   "Target longitude",
				},
			},
		},
	}}
}

func dateFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagDate,
		Aliases: []string{"D"},
		Usage:   "Target date as YYYY-MM-DD (default: today)",
	}
}

func locationFromCommand(cmd *cli.Command) airnow.Location {
	loc := airnow.Location{Distance: cmd.Int(flagDistance)}
	if cmd.IsSet(flagZip) {
		loc.ZipCode = cmd.String(flagZip)
	}
	if cmd.IsSet(flagLatitude) {
		lat := cmd.Float(flagLatitude)
		loc.Latitude = &lat
	}
	if cmd.IsSet(flagLongitude) {
		lon := cmd.Float(flagLongitude)
		loc.Longitude = &lon
	}
	return loc
}

// dateFromCommand parses --date, defaulting to today's local date.
func (a *app) dateFromCommand(cmd *cli.Command) (time.Time, error) {
	raw := cmd.String(flagDate)
	if raw == "" {
		raw = a.now().Format("2006-01-02")
	}
	return airnow.ValidateDate(raw)
}

func (a *app) conditionsCommand() *cli.Command {
	return &cli.Command{
		Name:                   string(airnow.CommandConditions),
		Usage:                  "Retrieve current air quality conditions for a given location",
		Flags:                  locationFlags(),
		MutuallyExclusiveFlags: locationModes(),
		OnUsageError:           onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loc := locationFromCommand(cmd)
			if err := loc.Validate(); err != nil {
				return err
			}
			s, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			req, err := s.builder.Conditions(loc)
			if err != nil {
				return err
			}
			return s.execute(ctx, a.stdout, req)
		},
	}
}

func (a *app) forecastCommand() *cli.Command {
	return a.datedCommand(airnow.CommandForecast, "Retrieve air quality forecast for a given location")
}

func (a *app) historicalCommand() *cli.Command {
	return a.datedCommand(airnow.CommandHistorical, "Retrieve historical air quality observations for a given location")
}

func (a *app) datedCommand(name airnow.Command, usage string) *cli.Command {
	return &cli.Command{
		Name:                   string(name),
		Usage:                  usage,
		Flags:                  append(locationFlags(), dateFlag()),
		MutuallyExclusiveFlags: locationModes(),
		OnUsageError:           onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loc := locationFromCommand(cmd)
			if err := loc.Validate(); err != nil {
				return err
			}
			s, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			date, err := a.dateFromCommand(cmd)
			if err != nil {
				return err
			}
			s.log.Debugw("options", "command", name, "zip", loc.ZipCode, "date", date.Format("2006-01-02"), "distance", loc.Distance)
			req, err := s.builder.Build(name, loc, date)
			if err != nil {
				return err
			}
			return s.execute(ctx, a.stdout, req)
		},
	}
}
