package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dashcisos/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdSignals(w io.Writer) *cli.Command {
	var levelName string
	var colorName string

	return &cli.Command{
		Name:    "signals",
		Aliases: []string{"s"},
		Usage:   "Render the siganio of every risk level",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "level",
				Usage:       "Render only this risk level [low|medium|high|info]",
				Destination: &levelName,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "Tint siganios with their color [auto|always|never]",
				Value:       string(colorAuto),
				Destination: &colorName,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			mode, err := parseColorMode(colorName)
			if err != nil {
				return err
			}

			levels := types.AllRiskLevels()
			if levelName != "" {
				level, err := types.ParseRiskLevel(levelName)
				if err != nil {
					return err
				}
				levels = []types.RiskLevel{level}
			}

			dash := newDashboard(ctx)
			for _, level := range levels {
				line, err := dash.RenderSignal(level)
				if err != nil {
					return err
				}
				if dash.Status().SiganiosEnabled {
					s, err := dash.GetSignal(level)
					if err != nil {
						return err
					}
					line = tint(line, s, mode)
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return goerr.Wrap(err, "failed to write signal", goerr.V("level", level))
				}
			}
			return nil
		},
	}
}
