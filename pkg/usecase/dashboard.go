package usecase

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dashcisos/pkg/domain/model"
	"github.com/secmon-lab/dashcisos/pkg/domain/types"
)

// Dashboard renders siganios according to the activation flags captured at
// construction. The flags are never re-read afterwards.
type Dashboard struct {
	registry *model.SignalRegistry
	status   model.DashboardStatus
}

type dashboardConfig struct {
	lookup   EnvLookup
	registry *model.SignalRegistry
}

// DashboardOption configures NewDashboard
type DashboardOption func(*dashboardConfig)

// WithEnvLookup replaces the environment the flags are read from
func WithEnvLookup(lookup EnvLookup) DashboardOption {
	return func(cfg *dashboardConfig) {
		cfg.lookup = lookup
	}
}

// WithRegistry replaces the process-wide signal registry
func WithRegistry(registry *model.SignalRegistry) DashboardOption {
	return func(cfg *dashboardConfig) {
		cfg.registry = registry
	}
}

// NewDashboard captures ACTIVE, SIGANIOS_ENABLED and ALERTS_ENABLED from the environment
func NewDashboard(opts ...DashboardOption) *Dashboard {
	cfg := &dashboardConfig{
		lookup:   os.LookupEnv,
		registry: model.DefaultSignalRegistry(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Dashboard{
		registry: cfg.registry,
		status: model.DashboardStatus{
			Active:          envFlag(cfg.lookup, EnvActive),
			SiganiosEnabled: envFlag(cfg.lookup, EnvSiganiosEnabled),
			AlertsEnabled:   envFlag(cfg.lookup, EnvAlertsEnabled),
		},
	}
}

// GetSignal returns the registered signal for level
func (d *Dashboard) GetSignal(level types.RiskLevel) (model.Signal, error) {
	s, ok := d.registry.Get(level)
	if !ok {
		return model.Signal{}, goerr.Wrap(ErrUnknownRiskLevel, "signal not found",
			goerr.V(RiskLevelKey, level))
	}
	return s, nil
}

// RenderSignal renders the signal for level. Icon and color are shown only
// when siganios are enabled.
func (d *Dashboard) RenderSignal(level types.RiskLevel) (string, error) {
	s, err := d.GetSignal(level)
	if err != nil {
		return "", err
	}
	return d.render(s), nil
}

// RenderAllSignals renders every risk level in declared order
func (d *Dashboard) RenderAllSignals() []string {
	signals := d.registry.Signals()
	lines := make([]string, 0, len(signals))
	for _, s := range signals {
		lines = append(lines, d.render(s))
	}
	return lines
}

// Status returns the flags captured at construction
func (d *Dashboard) Status() model.DashboardStatus {
	return d.status
}

func (d *Dashboard) render(s model.Signal) string {
	if !d.status.SiganiosEnabled {
		return "[" + s.Meaning + "]"
	}
	return s.String()
}
