package ols

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"macrostat/infra/errorx"
)

// MultiLinearModel holds an OLS fit: point estimates plus the diagnostics
// the analysis passes report.
type MultiLinearModel struct {
	Coeffs      []float64
	SE          []float64
	TStats      []float64
	PValues     []float64 // two-tailed, Student-t
	Resids      []float64
	AIC         float64
	BIC         float64
	Sigma2      float64
	RSquared    float64
	AdjRSquared float64
	NObs        int
	NVars       int
}

// MultiRegressionMat solves y = Xβ + ε by normal equations. A singular X'X
// falls back to the SVD pseudo-inverse instead of failing outright.
func MultiRegressionMat(matX *mat.Dense, matY *mat.VecDense) (MultiLinearModel, error) {
	n, k := matX.Dims()
	if n == 0 || k == 0 {
		return MultiLinearModel{}, errorx.New(errorx.EMPTY_VALUE, "empty design matrix")
	}
	df := float64(n - k)
	if df <= 0 {
		return MultiLinearModel{}, errorx.Newf(errorx.INVALID_VALUE,
			"degrees of freedom %v: need more observations (%d) than regressors (%d)", df, n, k)
	}

	var xt mat.Dense
	xt.CloneFrom(matX.T())

	var xtx mat.Dense
	xtx.Mul(&xt, matX)

	var invXTX mat.Dense
	if err := invXTX.Inverse(&xtx); err != nil {
		pinv, errSVD := pseudoInverse(&xtx)
		if errSVD != nil {
			return MultiLinearModel{}, errSVD
		}
		invXTX.CloneFrom(pinv)
	}

	var xty mat.VecDense
	xty.MulVec(&xt, matY)

	// β = (X'X)^(-1) X'y
	var beta mat.VecDense
	beta.MulVec(&invXTX, &xty)

	yhat := mat.NewVecDense(n, nil)
	yhat.MulVec(matX, &beta)
	resid := mat.NewVecDense(n, nil)
	resid.SubVec(matY, yhat)

	rss := mat.Dot(resid, resid)
	sigma2 := rss / df

	se := make([]float64, k)
	for i := 0; i < k; i++ {
		se[i] = math.Sqrt(sigma2 * invXTX.At(i, i))
	}

	tStats := make([]float64, k)
	for i := 0; i < k; i++ {
		tStats[i] = beta.AtVec(i) / se[i]
	}

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValues := make([]float64, k)
	for i := 0; i < k; i++ {
		pValues[i] = 2 * tdist.Survival(math.Abs(tStats[i]))
	}

	yMean := mat.Sum(matY) / float64(n)
	tss := 0.0
	for i := 0; i < n; i++ {
		d := matY.AtVec(i) - yMean
		tss += d * d
	}
	rsq := 1 - rss/tss
	adjRsq := 1 - (1-rsq)*float64(n-1)/df

	// Gaussian log-likelihood
	logLik := -0.5 * float64(n) * (1 + math.Log(2*math.Pi*rss/float64(n)))
	aic := -2*logLik + 2*float64(k)
	bic := -2*logLik + float64(k)*math.Log(float64(n))

	coeffs := make([]float64, k)
	for i := 0; i < k; i++ {
		coeffs[i] = beta.AtVec(i)
	}
	return MultiLinearModel{
		Coeffs:      coeffs,
		SE:          se,
		TStats:      tStats,
		PValues:     pValues,
		Resids:      resid.RawVector().Data,
		AIC:         aic,
		BIC:         bic,
		Sigma2:      sigma2,
		RSquared:    rsq,
		AdjRSquared: adjRsq,
		NObs:        n,
		NVars:       k,
	}, nil
}

// MultiRegression is the row-slice convenience entry point. With withConst a
// constant column is prepended, so Coeffs[0] is the intercept.
func MultiRegression(X [][]float64, Y []float64, withConst bool) (MultiLinearModel, error) {
	n := len(Y)
	if n == 0 || len(X) == 0 {
		return MultiLinearModel{}, errorx.New(errorx.EMPTY_VALUE, "empty regression input")
	}
	if n != len(X) {
		return MultiLinearModel{}, errorx.Newf(errorx.INVALID_VALUE,
			"X has %d rows, y has %d", len(X), n)
	}
	if withConst {
		X = addConstantColumn(X)
	}

	k := len(X[0])
	data := make([]float64, n*k)
	for i := 0; i < n; i++ {
		if len(X[i]) != k {
			return MultiLinearModel{}, errorx.Newf(errorx.INVALID_VALUE,
				"row %d has %d values, want %d", i, len(X[i]), k)
		}
		copy(data[i*k:(i+1)*k], X[i])
	}
	return MultiRegressionMat(mat.NewDense(n, k, data), mat.NewVecDense(n, Y))
}

// pseudoInverse computes the Moore-Penrose inverse via thin SVD.
func pseudoInverse(a *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errorx.New(errorx.INVALID_VALUE, "SVD factorization failed")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	sigma := svd.Values(nil)
	m, n := a.Dims()
	sInv := mat.NewDense(n, m, nil)

	const tol = 1e-12 // singular values below this are treated as zero
	for i, val := range sigma {
		if val > tol {
			sInv.Set(i, i, 1.0/val)
		}
	}

	var tmp mat.Dense
	tmp.Mul(&v, sInv)
	var ut mat.Dense
	ut.CloneFrom(u.T())

	var pinv mat.Dense
	pinv.Mul(&tmp, &ut)
	return &pinv, nil
}

func addConstantColumn(X [][]float64) [][]float64 {
	n := len(X)
	if n == 0 {
		return X
	}
	k := len(X[0])
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k+1)
		row[0] = 1.0
		copy(row[1:], X[i])
		out[i] = row
	}
	return out
}
