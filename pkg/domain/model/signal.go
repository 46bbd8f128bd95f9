package model

import (
	"github.com/secmon-lab/dashcisos/pkg/domain/types"
)

// Signal is the visual security indicator (siganio) shown for a risk level
type Signal struct {
	Icon      string
	Color     string
	Meaning   string
	RiskLevel types.RiskLevel
}

// String renders the signal as "<icon> [<color>] <meaning>"
func (s Signal) String() string {
	return s.Icon + " [" + s.Color + "] " + s.Meaning
}
