package analysis

import (
	"fmt"
	"io"
	"strings"

	"macrostat/config"
	"macrostat/dataset"
	"macrostat/infra/staticlog"
	"macrostat/ml/ols"
	"macrostat/report"
	"macrostat/timeSeries/adfuller"
	"macrostat/timeSeries/series"
	"macrostat/viz"
)

// Runner executes the full pipeline: load, level regression, level ADF pass,
// first-difference regression, difference ADF pass, panel plot, narrative.
// The first error aborts the run: all variables share one dataset, so a
// single failure indicates a data problem to fix upstream, not to retry.
type Runner struct {
	Cfg *config.Config
	Out io.Writer
}

// Outcome retains the two summaries for callers that inspect verdicts.
type Outcome struct {
	Levels      report.Summary
	Differences report.Summary
}

func (r *Runner) Run() (*Outcome, error) {
	cfg := r.Cfg
	w := r.Out

	report.Banner(w,
		"MACROECONOMIC DATA ANALYSIS",
		"Augmented Dickey-Fuller Stationarity Testing")

	staticlog.Log.Infof("loading dataset from %s", cfg.Data)
	required := append([]string{cfg.TimeColumn}, cfg.Variables()...)
	tbl, err := dataset.LoadCSV(cfg.Data, required)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "\nData loaded successfully. Shape: (%d, %d)\n", tbl.Len(), len(tbl.Names()))
	fmt.Fprintln(w, "\nFirst few rows:")
	tbl.Head(w, 5)
	fmt.Fprintln(w, "\nData Description:")
	tbl.Describe(w)

	if _, err := r.regression(tbl, false); err != nil {
		return nil, err
	}
	levels, err := r.adfPass(tbl, false)
	if err != nil {
		return nil, err
	}
	if _, err := r.regression(tbl, true); err != nil {
		return nil, err
	}
	diffs, err := r.adfPass(tbl, true)
	if err != nil {
		return nil, err
	}

	staticlog.Log.Infof("rendering panel to %s", cfg.Plot)
	if err := viz.SavePanel(tbl, cfg.TimeColumn, cfg.Variables(), cfg.Plot); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "\nVisualization saved as %q\n", cfg.Plot)

	report.WriteNarrative(w, cfg.Dependent, cfg.Regressors, levels, diffs)
	return &Outcome{Levels: levels, Differences: diffs}, nil
}

// regression fits dependent ~ const + regressors, at levels or at first
// differences, and writes the model summary.
func (r *Runner) regression(tbl *dataset.Table, differenced bool) (ols.MultiLinearModel, error) {
	cfg := r.Cfg

	y, err := r.variable(tbl, cfg.Dependent, differenced)
	if err != nil {
		return ols.MultiLinearModel{}, err
	}
	cols := make([]series.Series, len(cfg.Regressors))
	for i, name := range cfg.Regressors {
		cols[i], err = r.variable(tbl, name, differenced)
		if err != nil {
			return ols.MultiLinearModel{}, err
		}
	}

	n := y.Len()
	X := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = cols[j].Values[i]
		}
		X[i] = row
	}

	model, err := ols.MultiRegression(X, y.Values, true)
	if err != nil {
		return ols.MultiLinearModel{}, err
	}

	title := "LEVEL REGRESSION ANALYSIS"
	if differenced {
		title = "FIRST DIFFERENCE MODEL"
	}
	names := make([]string, 0, len(cols)+1)
	names = append(names, "const")
	terms := make([]string, len(cols))
	for i, c := range cols {
		names = append(names, c.Name)
		terms[i] = fmt.Sprintf("β%d*%s", i+1, c.Name)
	}
	equation := fmt.Sprintf("%s = β0 + %s + ε", y.Name, strings.Join(terms, " + "))
	report.WriteRegression(r.Out, title, equation, names, model)
	return model, nil
}

// adfPass tests every configured variable, at levels or first differences,
// printing a block per variable and the pass summary table.
func (r *Runner) adfPass(tbl *dataset.Table, differenced bool) (report.Summary, error) {
	cfg := r.Cfg
	pass := "Stationarity of Level Variables"
	banner := "ADF STATIONARITY TEST - LEVEL VARIABLES"
	if differenced {
		pass = "Stationarity of First Differences"
		banner = "ADF STATIONARITY TEST - FIRST DIFFERENCES"
	}
	report.Banner(r.Out, banner)

	mode := adfuller.ParseLagMode(cfg.LagMode)
	results := make([]adfuller.Result, 0, len(cfg.Variables()))
	for _, name := range cfg.Variables() {
		s, err := r.variable(tbl, name, differenced)
		if err != nil {
			return report.Summary{}, err
		}
		res, err := adfuller.Test(s, cfg.Trend, cfg.MaxLag, mode, cfg.Significance)
		if err != nil {
			return report.Summary{}, err
		}
		results = append(results, res)
		report.WriteADFBlock(r.Out, res)
	}

	summary := report.Summary{Pass: pass, Results: results}
	report.WriteSummaryTable(r.Out, summary)
	return summary, nil
}

func (r *Runner) variable(tbl *dataset.Table, name string, differenced bool) (series.Series, error) {
	col, err := tbl.Column(name)
	if err != nil {
		return series.Series{}, err
	}
	s := series.New(name, col)
	if differenced {
		return s.Diff()
	}
	return s, nil
}
