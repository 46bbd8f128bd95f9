package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidRiskLevel is returned when a value is outside the RiskLevel enumeration
var ErrInvalidRiskLevel = goerr.New("invalid risk level")

// RiskLevel represents one of the fixed risk categories shown on the dashboard
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
	RiskLevelInfo   RiskLevel = "INFO"
)

// AllRiskLevels returns all risk levels in declared order
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelInfo,
	}
}

// IsValid checks if the risk level is one of the declared levels
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelInfo:
		return true
	default:
		return false
	}
}

// Label returns the human readable name of the risk level
func (l RiskLevel) Label() string {
	switch l {
	case RiskLevelLow:
		return "Low Risk"
	case RiskLevelMedium:
		return "Medium Risk"
	case RiskLevelHigh:
		return "High Risk"
	case RiskLevelInfo:
		return "Informational"
	default:
		return ""
	}
}

// String returns the string representation of the risk level
func (l RiskLevel) String() string {
	return string(l)
}

// ParseRiskLevel parses a risk level identifier, ignoring case
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(strings.ToUpper(strings.TrimSpace(s)))
	if !level.IsValid() {
		return "", goerr.Wrap(ErrInvalidRiskLevel, "failed to parse risk level", goerr.V("value", s))
	}
	return level, nil
}
