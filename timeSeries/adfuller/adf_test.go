package adfuller

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macrostat/infra/errorx"
	"macrostat/timeSeries/series"
)

func whiteNoise(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

func randomWalk(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	sum := 0.0
	for i := range out {
		sum += rng.NormFloat64()
		out[i] = sum
	}
	return out
}

func TestWhiteNoiseIsStationary(t *testing.T) {
	stationary := 0
	for seed := int64(0); seed < 20; seed++ {
		s := series.New("wn", whiteNoise(seed, 200))
		res, err := Test(s, TREND_C, 0, LAG_MODE_AIC, 0.05)
		require.NoError(t, err)
		if res.Stationary {
			stationary++
		}
	}
	// white noise of this length should reject the unit root nearly always
	assert.GreaterOrEqual(t, stationary, 18)
}

func TestRandomWalkIsNonStationary(t *testing.T) {
	nonStationary := 0
	for seed := int64(100); seed < 120; seed++ {
		s := series.New("rw", randomWalk(seed, 200))
		res, err := Test(s, TREND_C, 0, LAG_MODE_AIC, 0.05)
		require.NoError(t, err)
		if !res.Stationary {
			nonStationary++
		}
	}
	// the test has a 5% false-rejection rate per draw
	assert.GreaterOrEqual(t, nonStationary, 15)
}

func TestDifferencedRandomWalkIsStationary(t *testing.T) {
	for seed := int64(200); seed < 205; seed++ {
		s := series.New("rw", randomWalk(seed, 200))
		d, err := s.Diff()
		require.NoError(t, err)

		res, err := Test(d, TREND_C, 0, LAG_MODE_AIC, 0.05)
		require.NoError(t, err)
		assert.True(t, res.Stationary, "seed %d: differenced walk should be stationary", seed)
	}
}

func TestResultFields(t *testing.T) {
	s := series.New("wn", whiteNoise(3, 150))
	res, err := Test(s, TREND_C, 0, LAG_MODE_AIC, 0.05)
	require.NoError(t, err)

	assert.Equal(t, "wn", res.Variable)
	assert.Equal(t, TREND_C, res.Trend)
	assert.Equal(t, LAG_MODE_AIC, res.LagSelection)
	assert.GreaterOrEqual(t, res.UsedLag, 0)
	assert.Equal(t, 150-res.UsedLag-1, res.NObs)
	assert.GreaterOrEqual(t, res.PValue, 0.0)
	assert.LessOrEqual(t, res.PValue, 1.0)
	assert.Equal(t, res.PValue < 0.05, res.Stationary)
}

func TestCriticalValuesStrictlyOrdered(t *testing.T) {
	for _, trend := range []string{TREND_N, TREND_C, TREND_CT} {
		for _, nobs := range []int{25, 50, 100, 500} {
			cv := criticalValues(nobs, trend)
			require.Len(t, cv, 3)
			assert.Less(t, cv["1%"], cv["5%"], "trend %s nobs %d", trend, nobs)
			assert.Less(t, cv["5%"], cv["10%"], "trend %s nobs %d", trend, nobs)
		}
	}
}

func TestPValueMonotoneAndConsistentWithCriticals(t *testing.T) {
	// p must increase with the statistic and agree with the critical values:
	// a statistic below the 5% threshold has p < 0.05, above the 10% one p > 0.10.
	prev := -1.0
	for _, tau := range []float64{-6, -4, -3, -2.5, -2, -1, 0, 1} {
		p := mackinnonPValue(tau, TREND_C)
		assert.Greater(t, p, prev)
		prev = p
	}

	cv := criticalValues(10000, TREND_C) // close to asymptotic
	assert.Less(t, mackinnonPValue(cv["5%"]-0.05, TREND_C), 0.05)
	assert.Greater(t, mackinnonPValue(cv["10%"]+0.05, TREND_C), 0.10)
}

func TestPValueBounds(t *testing.T) {
	assert.Equal(t, 0.0, mackinnonPValue(-25, TREND_C))
	assert.Equal(t, 1.0, mackinnonPValue(5, TREND_C))
}

func TestConstantSeriesIsDegenerate(t *testing.T) {
	s := series.New("flat", []float64{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3})
	_, err := Test(s, TREND_C, 0, LAG_MODE_AIC, 0.05)
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.DEGENERATE_SERIES))
}

func TestTooShortSeries(t *testing.T) {
	s := series.New("short", []float64{1, 2, 1, 2, 1})
	_, err := Test(s, TREND_C, 0, LAG_MODE_AIC, 0.05)
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.INSUFFICIENT_LENGTH))
}

func TestInvalidArguments(t *testing.T) {
	s := series.New("wn", whiteNoise(4, 60))

	_, err := Test(s, "qc", 0, LAG_MODE_AIC, 0.05)
	assert.True(t, errorx.Is(err, errorx.INVALID_VALUE))

	_, err = Test(s, TREND_C, 0, LAG_MODE_ERROR, 0.05)
	assert.True(t, errorx.Is(err, errorx.INVALID_VALUE))

	_, err = Test(s, TREND_C, 0, LAG_MODE_AIC, 1.5)
	assert.True(t, errorx.Is(err, errorx.INVALID_VALUE))
}

func TestLagModeRoundTrip(t *testing.T) {
	for _, mode := range []LagMode{LAG_MODE_AIC, LAG_MODE_BIC, LAG_MODE_TSTAT} {
		assert.Equal(t, mode, ParseLagMode(mode.String()))
	}
	assert.Equal(t, LAG_MODE_ERROR, ParseLagMode("gibberish"))
}

func TestBICSelectsNoMoreLagsThanAIC(t *testing.T) {
	// BIC penalizes extra terms harder, so its chosen lag cannot exceed AIC's
	// on the same data.
	for seed := int64(300); seed < 305; seed++ {
		s := series.New("wn", whiteNoise(seed, 200))
		aic, err := Test(s, TREND_C, 0, LAG_MODE_AIC, 0.05)
		require.NoError(t, err)
		bic, err := Test(s, TREND_C, 0, LAG_MODE_BIC, 0.05)
		require.NoError(t, err)
		assert.LessOrEqual(t, bic.UsedLag, aic.UsedLag)
	}
}
