package model_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dashcisos/pkg/domain/model"
)

func TestDashboardStatus_JSON(t *testing.T) {
	raw, err := json.Marshal(model.DashboardStatus{Active: true, AlertsEnabled: true})
	gt.NoError(t, err).Required()
	gt.S(t, string(raw)).Equal(`{"active":true,"siganios_enabled":false,"alerts_enabled":true}`)
}

func TestDashboardStatus_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("status", "dashboard", model.DashboardStatus{SiganiosEnabled: true})

	out := buf.String()
	gt.B(t, strings.Contains(out, "dashboard.active=false")).True()
	gt.B(t, strings.Contains(out, "dashboard.siganios_enabled=true")).True()
	gt.B(t, strings.Contains(out, "dashboard.alerts_enabled=false")).True()
}
