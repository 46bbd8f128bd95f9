package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dashcisos/pkg/domain/model"
	"github.com/secmon-lab/dashcisos/pkg/domain/types"
)

func TestDefaultSignalRegistry(t *testing.T) {
	reg := model.DefaultSignalRegistry()

	t.Run("every risk level has a signal", func(t *testing.T) {
		for _, level := range types.AllRiskLevels() {
			s, ok := reg.Get(level)
			gt.B(t, ok).Describef("no signal for %s", level).True()
			gt.V(t, s.RiskLevel).Equal(level)
		}
	})

	t.Run("icons are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, s := range reg.Signals() {
			gt.B(t, seen[s.Icon]).Describef("duplicate icon %s", s.Icon).False()
			seen[s.Icon] = true
		}
	})

	t.Run("colors are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, s := range reg.Signals() {
			gt.B(t, seen[s.Color]).Describef("duplicate color %s", s.Color).False()
			seen[s.Color] = true
		}
	})

	t.Run("signals follow declared order", func(t *testing.T) {
		signals := reg.Signals()
		levels := types.AllRiskLevels()
		gt.A(t, signals).Length(len(levels))
		for i, s := range signals {
			gt.V(t, s.RiskLevel).Equal(levels[i])
		}
	})

	t.Run("unknown level is not found", func(t *testing.T) {
		_, ok := reg.Get(types.RiskLevel("CRITICAL"))
		gt.B(t, ok).False()
	})

	t.Run("same instance on every call", func(t *testing.T) {
		gt.V(t, model.DefaultSignalRegistry()).Equal(reg)
	})
}

func TestSignal_String(t *testing.T) {
	s, ok := model.DefaultSignalRegistry().Get(types.RiskLevelLow)
	gt.B(t, ok).True()

	rendered := s.String()
	gt.S(t, rendered).Equal("✅ [Green] Compliant / Low Risk")
	gt.B(t, strings.Contains(rendered, s.Icon)).True()
	gt.B(t, strings.Contains(rendered, s.Color)).True()
	gt.B(t, strings.Contains(rendered, s.Meaning)).True()
}

func TestNewSignalRegistry(t *testing.T) {
	valid := model.DefaultSignalDefinitions

	tests := []struct {
		name    string
		defs    func() []model.SignalDefinition
		wantErr error
	}{
		{
			name: "valid definitions",
			defs: valid,
		},
		{
			name: "duplicate risk level",
			defs: func() []model.SignalDefinition {
				return append(valid(), model.SignalDefinition{
					Level: types.RiskLevelHigh, Icon: "🟥", Color: "Purple", Meaning: "Again",
				})
			},
			wantErr: model.ErrDuplicateRiskLevel,
		},
		{
			name: "duplicate icon",
			defs: func() []model.SignalDefinition {
				defs := valid()
				defs[1].Icon = defs[0].Icon
				return defs
			},
			wantErr: model.ErrDuplicateIcon,
		},
		{
			name: "duplicate color",
			defs: func() []model.SignalDefinition {
				defs := valid()
				defs[3].Color = defs[2].Color
				return defs
			},
			wantErr: model.ErrDuplicateColor,
		},
		{
			name: "missing risk level",
			defs: func() []model.SignalDefinition {
				return valid()[:3]
			},
			wantErr: model.ErrMissingRiskLevel,
		},
		{
			name: "undeclared risk level",
			defs: func() []model.SignalDefinition {
				return append(valid(), model.SignalDefinition{
					Level: types.RiskLevel("CRITICAL"), Icon: "💀", Color: "Black", Meaning: "Critical",
				})
			},
			wantErr: types.ErrInvalidRiskLevel,
		},
		{
			name: "empty meaning",
			defs: func() []model.SignalDefinition {
				defs := valid()
				defs[0].Meaning = ""
				return defs
			},
			wantErr: model.ErrEmptySignalField,
		},
		{
			name: "empty definitions",
			defs: func() []model.SignalDefinition {
				return nil
			},
			wantErr: model.ErrMissingRiskLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := model.NewSignalRegistry(tt.defs())
			if tt.wantErr != nil {
				gt.Error(t, err)
				gt.B(t, errors.Is(err, tt.wantErr)).
					Describef("expected %v, got %v", tt.wantErr, err).
					True()
				gt.V(t, reg).Nil()
				return
			}
			gt.NoError(t, err).Required()
			gt.A(t, reg.Signals()).Length(len(types.AllRiskLevels()))
		})
	}
}

func TestNewSignalRegistry_DoesNotAliasInput(t *testing.T) {
	defs := model.DefaultSignalDefinitions()
	reg, err := model.NewSignalRegistry(defs)
	gt.NoError(t, err).Required()

	defs[0].Meaning = "changed"
	s, ok := reg.Get(types.RiskLevelLow)
	gt.B(t, ok).True()
	gt.S(t, s.Meaning).Equal("Compliant / Low Risk")
}
