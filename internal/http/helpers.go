package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"sintomi/internal/core"
)

// summaryView is the prepared template data for the month-summary partial.
type summaryView struct {
	HasData bool
	Names   []string
	Rows    []summaryRow
	Charts  []chartView
	Labels  []axisLabel
}

// summaryRow is one table row: a year-month label plus a formatted
// prevalence cell per symptom.
type summaryRow struct {
	Label string
	Cells []string
}

// chartView is one symptom's trend line, precomputed as SVG coordinates.
type chartView struct {
	Name     string
	Polyline string
	Points   []point
}

type point struct {
	X, Y int
}

type axisLabel struct {
	X    int
	Text string
}

// Chart geometry, shared with the SVG viewBox in the template.
const (
	chartWidth  = 640
	chartHeight = 150
	chartPadL   = 40
	chartPadR   = 20
	chartPadT   = 10
	chartPlotH  = 120
)

// buildSummaryView converts summary rows into table rows and one chart
// per symptom, months on the x axis and prevalence (0-100) on the y axis.
func buildSummaryView(rows []core.MonthSummary) summaryView {
	view := summaryView{
		HasData: len(rows) > 0,
		Names:   core.Symptoms,
	}
	if !view.HasData {
		return view
	}

	for _, row := range rows {
		cells := make([]string, len(core.Symptoms))
		for i := range core.Symptoms {
			cells[i] = formatPercent(row.Prevalence[i])
		}
		view.Rows = append(view.Rows, summaryRow{Label: monthLabel(row.Year, row.Month), Cells: cells})
	}

	for i := range rows {
		view.Labels = append(view.Labels, axisLabel{X: chartX(i, len(rows)), Text: monthLabel(rows[i].Year, rows[i].Month)})
	}

	for si, name := range core.Symptoms {
		c := chartView{Name: name}
		var poly []byte
		for i, row := range rows {
			p := point{X: chartX(i, len(rows)), Y: chartY(row.Prevalence[si])}
			c.Points = append(c.Points, p)
			if i > 0 {
				poly = append(poly, ' ')
			}
			poly = append(poly, []byte(fmt.Sprintf("%d,%d", p.X, p.Y))...)
		}
		c.Polyline = string(poly)
		view.Charts = append(view.Charts, c)
	}
	return view
}

// chartX spaces n points evenly across the plot area; a single point
// sits in the middle.
func chartX(i, n int) int {
	plotW := chartWidth - chartPadL - chartPadR
	if n <= 1 {
		return chartPadL + plotW/2
	}
	return chartPadL + i*plotW/(n-1)
}

// chartY maps a 0-100 prevalence to SVG coordinates (y grows downward).
func chartY(prevalence float64) int {
	return chartPadT + int((100-prevalence)*chartPlotH/100)
}

// formatPercent renders a prevalence with one decimal, e.g. "50.0%".
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// monthLabel renders a (year, month) pair as "2024-01".
func monthLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
