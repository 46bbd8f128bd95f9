package cli

import (
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dashcisos/pkg/domain/model"
)

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func parseColorMode(s string) (colorMode, error) {
	switch mode := colorMode(strings.ToLower(s)); mode {
	case colorAuto, colorAlways, colorNever:
		return mode, nil
	default:
		return "", goerr.New("invalid color mode", goerr.V("color", s))
	}
}

// terminal attributes by signal color name, lower-cased
var signalColors = map[string]color.Attribute{
	"green":  color.FgGreen,
	"yellow": color.FgYellow,
	"red":    color.FgRed,
	"blue":   color.FgBlue,
}

// tint wraps a rendered line in the terminal color of its signal. Lines for
// unknown color names are returned as is. In auto mode fatih/color decides
// from the terminal.
func tint(line string, s model.Signal, mode colorMode) string {
	attr, ok := signalColors[strings.ToLower(s.Color)]
	if !ok || mode == colorNever {
		return line
	}

	c := color.New(attr)
	if mode == colorAlways {
		c.EnableColor()
	}
	return c.Sprint(line)
}
