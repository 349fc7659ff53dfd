package viz

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"macrostat/dataset"
	"macrostat/infra/errorx"
	"macrostat/timeSeries/series"
)

var (
	diffColor = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	zeroColor = color.RGBA{R: 0xcc, G: 0x00, B: 0x00, A: 0xff}
)

// SavePanel renders a two-row grid: level series on top, first differences
// below with a dashed zero reference line. One column per variable.
func SavePanel(tbl *dataset.Table, timeCol string, vars []string, path string) error {
	if len(vars) == 0 {
		return errorx.New(errorx.EMPTY_VALUE, "no variables to plot")
	}
	years, err := tbl.Column(timeCol)
	if err != nil {
		return err
	}

	const rows = 2
	cols := len(vars)
	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}

	for c, name := range vars {
		values, err := tbl.Column(name)
		if err != nil {
			return err
		}
		s := series.New(name, values)
		d, err := s.Diff()
		if err != nil {
			return err
		}

		top, err := levelPanel(s, years)
		if err != nil {
			return err
		}
		bottom, err := diffPanel(d, years[1:])
		if err != nil {
			return err
		}
		plots[0][c] = top
		plots[1][c] = bottom
	}

	img := vgimg.New(vg.Points(float64(cols)*320), vg.Points(440))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Points(8), PadY: vg.Points(8),
		PadTop: vg.Points(4), PadBottom: vg.Points(4),
		PadLeft: vg.Points(4), PadRight: vg.Points(4),
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return nil
}

func levelPanel(s series.Series, years []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Name + " (Level)"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = s.Name
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(xyPairs(years, s.Values))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line, points)
	return p, nil
}

func diffPanel(d series.Series, years []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = d.Name + " (First Difference)"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = d.Name
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(xyPairs(years, d.Values))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = diffColor
	points.GlyphStyle.Color = diffColor
	p.Add(line, points)

	zero, err := plotter.NewLine(plotter.XYs{
		{X: years[0], Y: 0},
		{X: years[len(years)-1], Y: 0},
	})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Color = zeroColor
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(zero)
	return p, nil
}

func xyPairs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(y))
	for i := range y {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}
