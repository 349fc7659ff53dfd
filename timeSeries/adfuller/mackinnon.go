package adfuller

import "gonum.org/v1/gonum/stat/distuv"

// p-value approximation after MacKinnon (1994): Φ of a polynomial in the
// test statistic, with separate small-p and large-p fits joined at tauStar
// and hard 0/1 bounds outside the fitted range.
var (
	tauStar = map[string]float64{TREND_N: -1.04, TREND_C: -1.61, TREND_CT: -2.89}
	tauMin  = map[string]float64{TREND_N: -19.04, TREND_C: -18.83, TREND_CT: -16.18}
	tauMax  = map[string]float64{TREND_N: 2.74, TREND_C: 2.74, TREND_CT: 0.70}

	tauSmallP = map[string][]float64{
		TREND_N:  {0.6344, 1.2378, 0.032496},
		TREND_C:  {2.1659, 1.4412, 0.038269},
		TREND_CT: {3.2512, 1.6047, 0.049588},
	}
	tauLargeP = map[string][]float64{
		TREND_N:  {0.4797, 0.93557, -0.06999, 0.033066},
		TREND_C:  {1.7339, 0.93202, -0.12745, -0.010368},
		TREND_CT: {2.5261, 0.61654, -0.37956, -0.060285},
	}
)

func mackinnonPValue(stat float64, trend string) float64 {
	if stat <= tauMin[trend] {
		return 0
	}
	if stat >= tauMax[trend] {
		return 1
	}
	coefs := tauLargeP[trend]
	if stat <= tauStar[trend] {
		coefs = tauSmallP[trend]
	}
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	return norm.CDF(polyval(coefs, stat))
}

func polyval(coefs []float64, x float64) float64 {
	v, p := 0.0, 1.0
	for _, c := range coefs {
		v += c * p
		p *= x
	}
	return v
}

// Finite-sample critical values after MacKinnon (2010):
// cv = b0 + b1/T + b2/T² + b3/T³.
var critSurface = map[string]map[string][4]float64{
	TREND_N: {
		"1%":  {-2.56574, -2.2358, -3.627, 0},
		"5%":  {-1.94100, -0.2686, -3.365, 31.223},
		"10%": {-1.61682, 0.2656, -2.714, 25.364},
	},
	TREND_C: {
		"1%":  {-3.43035, -6.5393, -16.786, -79.433},
		"5%":  {-2.86154, -2.8903, -4.234, -40.040},
		"10%": {-2.56677, -1.5384, -2.809, 0},
	},
	TREND_CT: {
		"1%":  {-3.95877, -9.0531, -28.428, -134.155},
		"5%":  {-3.41049, -4.3904, -9.036, -45.374},
		"10%": {-3.12705, -2.5856, -3.925, -22.380},
	},
}

func criticalValues(nobs int, trend string) map[string]float64 {
	t := float64(nobs)
	out := make(map[string]float64, 3)
	for level, b := range critSurface[trend] {
		out[level] = b[0] + b[1]/t + b[2]/(t*t) + b[3]/(t*t*t)
	}
	return out
}
