package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"macrostat/ml/ols"
	"macrostat/timeSeries/adfuller"
)

const (
	ruleWide  = 70
	ruleBlock = 60
)

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("=", n))
}

// Banner prints a framed section header.
func Banner(w io.Writer, lines ...string) {
	fmt.Fprintln(w)
	rule(w, ruleWide)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	rule(w, ruleWide)
}

// WriteADFBlock prints one per-variable result block.
func WriteADFBlock(w io.Writer, r adfuller.Result) {
	fmt.Fprintf(w, "\nADF Test Results for %s:\n", r.Variable)
	rule(w, ruleBlock)
	fmt.Fprintf(w, "ADF Statistic: %.6f\n", r.Statistic)
	fmt.Fprintf(w, "p-value: %.6f\n", r.PValue)
	fmt.Fprintf(w, "Lags Used: %d\n", r.UsedLag)
	fmt.Fprintf(w, "Number of Observations: %d\n", r.NObs)
	fmt.Fprintln(w, "\nCritical Values:")
	for _, level := range []string{"1%", "5%", "10%"} {
		fmt.Fprintf(w, "  %s: %.4f\n", level, r.Criticals[level])
	}
	if r.Stationary {
		fmt.Fprintf(w, "\nConclusion: %s is STATIONARY (p-value < %.2f)\n", r.Variable, r.Alpha)
	} else {
		fmt.Fprintf(w, "\nConclusion: %s is NON-STATIONARY (p-value >= %.2f)\n", r.Variable, r.Alpha)
	}
	rule(w, ruleBlock)
}

// Summary aggregates one pass of ADF results in test order.
type Summary struct {
	Pass    string
	Results []adfuller.Result
}

func (s Summary) StationaryCount() int {
	n := 0
	for _, r := range s.Results {
		if r.Stationary {
			n++
		}
	}
	return n
}

func (s Summary) NonStationaryCount() int {
	return len(s.Results) - s.StationaryCount()
}

// Result returns the entry for a variable, preserving no-match as ok=false.
func (s Summary) Result(variable string) (adfuller.Result, bool) {
	for _, r := range s.Results {
		if r.Variable == variable {
			return r, true
		}
	}
	return adfuller.Result{}, false
}

func WriteSummaryTable(w io.Writer, s Summary) {
	Banner(w, "SUMMARY: "+s.Pass)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Variable\tADF Statistic\tp-value\tIs Stationary")
	for _, r := range s.Results {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%t\n", r.Variable, r.Statistic, r.PValue, r.Stationary)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// WriteRegression prints a fitted model: the equation, a coefficient table
// and the fit diagnostics. names must align with m.Coeffs.
func WriteRegression(w io.Writer, title, equation string, names []string, m ols.MultiLinearModel) {
	Banner(w, title)
	fmt.Fprintf(w, "\nModel: %s\n\n", equation)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tcoef\tstd err\tt\tP>|t|")
	for i, name := range names {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.4f\t%.4f\n", name, m.Coeffs[i], m.SE[i], m.TStats[i], m.PValues[i])
	}
	tw.Flush()

	fmt.Fprintf(w, "\nR-squared: %.4f\n", m.RSquared)
	fmt.Fprintf(w, "Adj. R-squared: %.4f\n", m.AdjRSquared)
	fmt.Fprintf(w, "AIC: %.4f\n", m.AIC)
	fmt.Fprintf(w, "BIC: %.4f\n", m.BIC)
	fmt.Fprintf(w, "No. Observations: %d\n", m.NObs)
}

// WriteNarrative prints the closing four-point summary with computed counts.
func WriteNarrative(w io.Writer, dependent string, regressors []string, levels, diffs Summary) {
	Banner(w, "FINAL SUMMARY")

	fmt.Fprintln(w, "\n1. Level Regression:")
	fmt.Fprintf(w, "   - Model fitted with %s as dependent variable\n", dependent)
	fmt.Fprintf(w, "   - Predictors: %s\n", strings.Join(regressors, ", "))

	fmt.Fprintln(w, "\n2. ADF Test on Level Variables:")
	fmt.Fprintf(w, "   - All %d variables tested\n", len(levels.Results))
	fmt.Fprintf(w, "   - %d variables are NON-STATIONARY\n", levels.NonStationaryCount())
	if levels.NonStationaryCount() > 0 {
		fmt.Fprintln(w, "   - This indicates the presence of unit roots in level data")
	}

	fmt.Fprintln(w, "\n3. First Difference Model:")
	fmt.Fprintln(w, "   - Model fitted with first differences of all variables")
	fmt.Fprintln(w, "   - This transformation removes the trend component")

	fmt.Fprintln(w, "\n4. ADF Test on First Differences:")
	fmt.Fprintf(w, "   - All %d differenced variables tested\n", len(diffs.Results))
	fmt.Fprintf(w, "   - %d variables are STATIONARY after differencing\n", diffs.StationaryCount())
	if diffs.StationaryCount() == len(diffs.Results) && levels.NonStationaryCount() == len(levels.Results) {
		fmt.Fprintln(w, "   - First differencing successfully removed the unit roots")
	}

	Banner(w, "ANALYSIS COMPLETE")
	vars := append([]string{dependent}, regressors...)
	fmt.Fprintln(w, "\nConclusion:")
	switch {
	case levels.NonStationaryCount() == len(levels.Results) && diffs.StationaryCount() == len(diffs.Results):
		fmt.Fprintf(w, "The variables (%s) are integrated of order 1, I(1):\n", strings.Join(vars, ", "))
		fmt.Fprintln(w, "non-stationary at levels but stationary after first differencing, which")
		fmt.Fprintln(w, "is typical for macroeconomic time series data.")
	default:
		fmt.Fprintf(w, "%d of %d variables are non-stationary at levels; %d of %d become\n",
			levels.NonStationaryCount(), len(levels.Results), diffs.StationaryCount(), len(diffs.Results))
		fmt.Fprintln(w, "stationary after first differencing.")
	}
	rule(w, ruleWide)
}
