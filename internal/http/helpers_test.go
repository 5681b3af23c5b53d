package http

import (
	"strings"
	"testing"

	"sintomi/internal/core"
)

func TestBuildSummaryViewEmpty(t *testing.T) {
	view := buildSummaryView(nil)
	if view.HasData {
		t.Fatalf("expected HasData=false for no rows")
	}
	if len(view.Rows) != 0 || len(view.Charts) != 0 {
		t.Fatalf("expected empty view, got %d rows, %d charts", len(view.Rows), len(view.Charts))
	}
}

func TestBuildSummaryView(t *testing.T) {
	prevA := make([]float64, len(core.Symptoms))
	prevB := make([]float64, len(core.Symptoms))
	prevA[0] = 50
	prevB[0] = 100

	rows := []core.MonthSummary{
		{Year: 2024, Month: 1, Prevalence: prevA},
		{Year: 2024, Month: 2, Prevalence: prevB},
	}

	view := buildSummaryView(rows)
	if !view.HasData {
		t.Fatalf("expected HasData=true")
	}
	if len(view.Rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(view.Rows))
	}
	if view.Rows[0].Label != "2024-01" || view.Rows[1].Label != "2024-02" {
		t.Fatalf("unexpected labels: %q %q", view.Rows[0].Label, view.Rows[1].Label)
	}
	if view.Rows[0].Cells[0] != "50.0%" || view.Rows[1].Cells[0] != "100.0%" {
		t.Fatalf("unexpected cells: %q %q", view.Rows[0].Cells[0], view.Rows[1].Cells[0])
	}
	if len(view.Charts) != len(core.Symptoms) {
		t.Fatalf("charts=%d, want %d", len(view.Charts), len(core.Symptoms))
	}
	if len(view.Charts[0].Points) != 2 {
		t.Fatalf("points=%d, want 2", len(view.Charts[0].Points))
	}
	if !strings.Contains(view.Charts[0].Polyline, " ") {
		t.Fatalf("polyline should join two points: %q", view.Charts[0].Polyline)
	}
}

func TestChartGeometry(t *testing.T) {
	// Single point sits in the middle of the plot area
	if got, want := chartX(0, 1), chartPadL+(chartWidth-chartPadL-chartPadR)/2; got != want {
		t.Errorf("chartX(0,1)=%d, want %d", got, want)
	}
	// First and last points hit the plot edges
	if got := chartX(0, 3); got != chartPadL {
		t.Errorf("chartX(0,3)=%d, want %d", got, chartPadL)
	}
	if got, want := chartX(2, 3), chartWidth-chartPadR; got != want {
		t.Errorf("chartX(2,3)=%d, want %d", got, want)
	}

	// 0% maps to the bottom of the plot, 100% to the top
	if got, want := chartY(0), chartPadT+chartPlotH; got != want {
		t.Errorf("chartY(0)=%d, want %d", got, want)
	}
	if got := chartY(100); got != chartPadT {
		t.Errorf("chartY(100)=%d, want %d", got, chartPadT)
	}
	if got, want := chartY(50), chartPadT+chartPlotH/2; got != want {
		t.Errorf("chartY(50)=%d, want %d", got, want)
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0%"},
		{50, "50.0%"},
		{33.333333, "33.3%"},
		{100, "100.0%"},
	}
	for _, c := range cases {
		if got := formatPercent(c.in); got != c.want {
			t.Errorf("formatPercent(%v)=%q, want %q", c.in, got, c.want)
		}
	}
}
