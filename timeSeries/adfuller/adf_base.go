package adfuller

import (
	"math"

	"github.com/gonum/stat"
	"gonum.org/v1/gonum/mat"

	"macrostat/infra/errorx"
	"macrostat/ml/ols"
	"macrostat/timeSeries/series"
)

// Result of a unit-root test. H0: the series has a unit root (non-stationary);
// rejecting at the configured significance level marks the series stationary.
type Result struct {
	Variable     string
	Statistic    float64 // t-ratio of the lagged-level coefficient
	PValue       float64
	UsedLag      int
	NObs         int
	AIC          float64
	BIC          float64
	Trend        string
	LagSelection LagMode
	Alpha        float64
	Criticals    map[string]float64 // thresholds at 1%, 5%, 10%
	Stationary   bool
}

const (
	minObservations = 10
	varianceFloor   = 1e-12
)

// Test runs the augmented Dickey-Fuller regression
//
//	Δy[t] = γ·y[t-1] + deterministic terms + Σ φ_j·Δy[t-j] + ε
//
// selecting the lag order over 0..maxLag (maxLag <= 0 means the Schwert bound
// floor(12·(n/100)^¼)). Candidates are fitted on the common sample trimmed at
// maxLag so the criteria are comparable, scanned in ascending order with a
// strict improvement test, then the winner is refitted on the full usable
// sample.
func Test(s series.Series, trend string, maxLag int, mode LagMode, alpha float64) (Result, error) {
	n := len(s.Values)
	ntrend := trendTerms(trend)
	if ntrend < 0 {
		return Result{}, errorx.Newf(errorx.INVALID_VALUE, "%s: unknown trend %q", s.Name, trend)
	}
	if mode != LAG_MODE_AIC && mode != LAG_MODE_BIC && mode != LAG_MODE_TSTAT {
		return Result{}, errorx.Newf(errorx.INVALID_VALUE, "%s: unknown lag-selection mode", s.Name)
	}
	if alpha <= 0 || alpha >= 1 {
		return Result{}, errorx.Newf(errorx.INVALID_VALUE, "%s: significance %v outside (0,1)", s.Name, alpha)
	}
	if n < minObservations {
		return Result{}, errorx.Newf(errorx.INSUFFICIENT_LENGTH,
			"%s: %d observations, need at least %d", s.Name, n, minObservations)
	}
	if stat.Variance(s.Values, nil) < varianceFloor {
		return Result{}, errorx.Newf(errorx.DEGENERATE_SERIES,
			"%s: near-zero variance, unit-root regression is underdetermined", s.Name)
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(12 * math.Pow(float64(n)/100, 0.25)))
	}
	// keep positive degrees of freedom on the trimmed comparison sample
	if bound := (n-1)/2 - ntrend - 1; maxLag > bound {
		maxLag = bound
	}
	if maxLag < 0 {
		return Result{}, errorx.Newf(errorx.INSUFFICIENT_LENGTH,
			"%s: too short for any lag order with trend %q", s.Name, trend)
	}

	ds, err := s.Diff()
	if err != nil {
		return Result{}, err
	}
	dy := ds.Values
	ylag := s.Values[:n-1]

	bestLag := -1
	bestCrit := math.Inf(1)
	for lag := 0; lag <= maxLag; lag++ {
		model, err := fit(dy, ylag, trend, lag, maxLag)
		if err != nil {
			continue
		}
		var crit float64
		switch mode {
		case LAG_MODE_AIC:
			crit = model.AIC
		case LAG_MODE_BIC:
			crit = model.BIC
		case LAG_MODE_TSTAT:
			crit = model.TStats[0]
		}
		if math.IsNaN(crit) {
			continue
		}
		if crit < bestCrit {
			bestCrit = crit
			bestLag = lag
		}
	}
	if bestLag < 0 {
		return Result{}, errorx.Newf(errorx.INSUFFICIENT_LENGTH,
			"%s: no candidate lag leaves positive degrees of freedom", s.Name)
	}

	final, err := fit(dy, ylag, trend, bestLag, bestLag)
	if err != nil {
		return Result{}, err
	}

	tStat := final.TStats[0]
	if math.IsNaN(tStat) || math.IsInf(tStat, 0) {
		return Result{}, errorx.Newf(errorx.DEGENERATE_SERIES,
			"%s: unit-root statistic is not finite", s.Name)
	}
	p := mackinnonPValue(tStat, trend)

	return Result{
		Variable:     s.Name,
		Statistic:    tStat,
		PValue:       p,
		UsedLag:      bestLag,
		NObs:         final.NObs,
		AIC:          final.AIC,
		BIC:          final.BIC,
		Trend:        trend,
		LagSelection: mode,
		Alpha:        alpha,
		Criticals:    criticalValues(final.NObs, trend),
		Stationary:   p < alpha,
	}, nil
}

// fit regresses dy trimmed at trim on the lagged level, the deterministic
// terms and lag lagged differences. Column 0 is always the lagged level, so
// TStats[0] is the unit-root statistic.
func fit(dy, ylag []float64, trend string, lag, trim int) (ols.MultiLinearModel, error) {
	nRow := len(dy) - trim
	if nRow <= 0 {
		return ols.MultiLinearModel{}, errorx.New(errorx.INSUFFICIENT_LENGTH, "empty regression sample")
	}
	nCol := 1 + trendTerms(trend) + lag

	X := make([]float64, 0, nRow*nCol)
	for i := 0; i < nRow; i++ {
		t := trim + i
		X = append(X, ylag[t])
		if trend != TREND_N {
			X = append(X, 1)
		}
		if trend == TREND_CT {
			X = append(X, float64(i+1))
		}
		for j := 1; j <= lag; j++ {
			X = append(X, dy[t-j])
		}
	}
	return ols.MultiRegressionMat(mat.NewDense(nRow, nCol, X), mat.NewVecDense(nRow, dy[trim:]))
}
