package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrUnknownRiskLevel = goerr.New("unknown risk level")
)

// Context keys for error values
const (
	RiskLevelKey = "risk_level"
)
