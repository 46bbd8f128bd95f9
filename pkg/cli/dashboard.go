package cli

import (
	"context"

	"github.com/secmon-lab/dashcisos/pkg/usecase"
	"github.com/secmon-lab/dashcisos/pkg/utils/logging"
)

// newDashboard snapshots the dashboard flags from the process environment
func newDashboard(ctx context.Context) *usecase.Dashboard {
	dash := usecase.NewDashboard()
	status := dash.Status()

	logger := logging.From(ctx)
	logger.Debug("Dashboard created", "status", status)
	if !status.Active {
		logger.Warn("Dashboard is not active, set " + usecase.EnvActive + "=true to enable it")
	}

	return dash
}
