package model

import "log/slog"

// DashboardStatus is the activation snapshot captured when a dashboard is created
type DashboardStatus struct {
	Active          bool `json:"active" toml:"active"`
	SiganiosEnabled bool `json:"siganios_enabled" toml:"siganios_enabled"`
	// AlertsEnabled is forwarded for alerting collaborators; nothing here dispatches alerts.
	AlertsEnabled bool `json:"alerts_enabled" toml:"alerts_enabled"`
}

// LogValue implements slog.LogValuer
func (s DashboardStatus) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("active", s.Active),
		slog.Bool("siganios_enabled", s.SiganiosEnabled),
		slog.Bool("alerts_enabled", s.AlertsEnabled),
	)
}
