package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dashcisos/pkg/domain/types"
)

// Sentinel errors for signal registry construction
var (
	ErrDuplicateRiskLevel = goerr.New("duplicate risk level")
	ErrDuplicateIcon      = goerr.New("duplicate signal icon")
	ErrDuplicateColor     = goerr.New("duplicate signal color")
	ErrMissingRiskLevel   = goerr.New("risk level has no signal")
	ErrEmptySignalField   = goerr.New("signal field is empty")
)

// SignalDefinition is one row of the source table a registry is built from
type SignalDefinition struct {
	Level   types.RiskLevel
	Icon    string
	Color   string
	Meaning string
}

// SignalRegistry maps every risk level to exactly one Signal. It is never
// mutated after construction and is safe for concurrent reads.
type SignalRegistry struct {
	signals map[types.RiskLevel]Signal
}

// NewSignalRegistry builds a registry from definitions. Every declared risk
// level must appear exactly once, and icons and colors must be unique.
func NewSignalRegistry(defs []SignalDefinition) (*SignalRegistry, error) {
	signals := make(map[types.RiskLevel]Signal, len(defs))
	icons := make(map[string]types.RiskLevel, len(defs))
	colors := make(map[string]types.RiskLevel, len(defs))

	for i, def := range defs {
		if !def.Level.IsValid() {
			return nil, goerr.Wrap(types.ErrInvalidRiskLevel, "invalid signal definition",
				goerr.V("index", i), goerr.V("level", def.Level))
		}
		if def.Icon == "" || def.Color == "" || def.Meaning == "" {
			return nil, goerr.Wrap(ErrEmptySignalField, "invalid signal definition",
				goerr.V("index", i), goerr.V("level", def.Level))
		}
		if _, ok := signals[def.Level]; ok {
			return nil, goerr.Wrap(ErrDuplicateRiskLevel, "invalid signal definition",
				goerr.V("index", i), goerr.V("level", def.Level))
		}
		if other, ok := icons[def.Icon]; ok {
			return nil, goerr.Wrap(ErrDuplicateIcon, "invalid signal definition",
				goerr.V("index", i), goerr.V("icon", def.Icon), goerr.V("conflict", other))
		}
		if other, ok := colors[def.Color]; ok {
			return nil, goerr.Wrap(ErrDuplicateColor, "invalid signal definition",
				goerr.V("index", i), goerr.V("color", def.Color), goerr.V("conflict", other))
		}

		signals[def.Level] = Signal{
			Icon:      def.Icon,
			Color:     def.Color,
			Meaning:   def.Meaning,
			RiskLevel: def.Level,
		}
		icons[def.Icon] = def.Level
		colors[def.Color] = def.Level
	}

	for _, level := range types.AllRiskLevels() {
		if _, ok := signals[level]; !ok {
			return nil, goerr.Wrap(ErrMissingRiskLevel, "incomplete signal definitions",
				goerr.V("level", level))
		}
	}

	return &SignalRegistry{signals: signals}, nil
}

// Get returns the signal for level
func (r *SignalRegistry) Get(level types.RiskLevel) (Signal, bool) {
	s, ok := r.signals[level]
	return s, ok
}

// Signals returns all signals in risk level declared order
func (r *SignalRegistry) Signals() []Signal {
	levels := types.AllRiskLevels()
	result := make([]Signal, 0, len(levels))
	for _, level := range levels {
		result = append(result, r.signals[level])
	}
	return result
}

// DefaultSignalDefinitions returns the source table of the built-in siganios
func DefaultSignalDefinitions() []SignalDefinition {
	return []SignalDefinition{
		{Level: types.RiskLevelLow, Icon: "✅", Color: "Green", Meaning: "Compliant / Low Risk"},
		{Level: types.RiskLevelMedium, Icon: "⚠️", Color: "Yellow", Meaning: "Warning / Medium Risk"},
		{Level: types.RiskLevelHigh, Icon: "🔴", Color: "Red", Meaning: "Critical / High Risk"},
		{Level: types.RiskLevelInfo, Icon: "ℹ️", Color: "Blue", Meaning: "Informational"},
	}
}

// Built at package initialization so a broken table stops the process at startup.
var defaultSignalRegistry = mustNewSignalRegistry(DefaultSignalDefinitions())

func mustNewSignalRegistry(defs []SignalDefinition) *SignalRegistry {
	r, err := NewSignalRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultSignalRegistry returns the process-wide registry of built-in siganios
func DefaultSignalRegistry() *SignalRegistry {
	return defaultSignalRegistry
}
