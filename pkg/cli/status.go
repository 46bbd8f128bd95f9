package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/dashcisos/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdStatus(w io.Writer) *cli.Command {
	var format string

	return &cli.Command{
		Name:  "status",
		Usage: "Show the dashboard activation flags",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format [text|json|toml]",
				Value:       "text",
				Destination: &format,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			out, err := formatStatus(newDashboard(ctx).Status(), format)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, out); err != nil {
				return goerr.Wrap(err, "failed to write status")
			}
			return nil
		},
	}
}

func formatStatus(status model.DashboardStatus, format string) (string, error) {
	switch format {
	case "text":
		return fmt.Sprintf("active: %t\nsiganios_enabled: %t\nalerts_enabled: %t\n",
			status.Active, status.SiganiosEnabled, status.AlertsEnabled), nil

	case "json":
		raw, err := json.Marshal(status)
		if err != nil {
			return "", goerr.Wrap(err, "failed to marshal status to JSON")
		}
		return string(raw) + "\n", nil

	case "toml":
		raw, err := toml.Marshal(status)
		if err != nil {
			return "", goerr.Wrap(err, "failed to marshal status to TOML")
		}
		return string(raw), nil

	default:
		return "", goerr.New("unsupported status format", goerr.V("format", format))
	}
}
