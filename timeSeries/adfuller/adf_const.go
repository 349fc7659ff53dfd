package adfuller

// Deterministic terms included in the test regression.
const (
	TREND_N  = "n"  // no deterministic terms
	TREND_C  = "c"  // constant
	TREND_CT = "ct" // constant and linear trend
)

// trendTerms returns the number of deterministic regressors, -1 if unknown.
func trendTerms(trend string) int {
	switch trend {
	case TREND_N:
		return 0
	case TREND_C:
		return 1
	case TREND_CT:
		return 2
	}
	return -1
}

type LagMode int

const (
	LAG_MODE_AIC LagMode = iota // "AIC"
	LAG_MODE_BIC                // "BIC"
	LAG_MODE_TSTAT              // "t-stat"
	LAG_MODE_ERROR              // "ERROR"
)

func (s LagMode) String() string {
	switch s {
	case LAG_MODE_AIC:
		return "AIC"
	case LAG_MODE_BIC:
		return "BIC"
	case LAG_MODE_TSTAT:
		return "t-stat"
	default:
		return "ERROR"
	}
}

func ParseLagMode(s string) LagMode {
	switch s {
	case "AIC":
		return LAG_MODE_AIC
	case "BIC":
		return LAG_MODE_BIC
	case "t-stat":
		return LAG_MODE_TSTAT
	default:
		return LAG_MODE_ERROR
	}
}
