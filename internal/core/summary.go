package core

import "sort"

// MonthSummary is the aggregated prevalence for one (year, month):
// the percentage of recorded days each symptom was present, aligned
// with Symptoms.
type MonthSummary struct {
	Year       int
	Month      int // 1-12
	Prevalence []float64
}

// PrevalenceOf returns the prevalence percentage for the named symptom,
// or 0 if the name is not recognized.
func (m MonthSummary) PrevalenceOf(name string) float64 {
	for i, s := range Symptoms {
		if s == name {
			return m.Prevalence[i]
		}
	}
	return 0
}

// Summarize groups the table by (year, month) and computes, per symptom,
// the mean of its flags over the group scaled to 0-100. One row per group,
// sorted ascending by year then month. Identical input always yields
// identical output; an empty table yields an empty, non-nil slice.
func Summarize(t Table) []MonthSummary {
	type group struct {
		days   int
		counts []int
	}
	groups := make(map[int]*group)
	for _, r := range t {
		key := r.Date.Year()*100 + r.Date.Month()
		g, ok := groups[key]
		if !ok {
			g = &group{counts: make([]int, len(Symptoms))}
			groups[key] = g
		}
		g.days++
		for i, name := range Symptoms {
			if r.Flag(name) {
				g.counts[i]++
			}
		}
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]MonthSummary, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		row := MonthSummary{
			Year:       k / 100,
			Month:      k % 100,
			Prevalence: make([]float64, len(Symptoms)),
		}
		for i := range Symptoms {
			row.Prevalence[i] = float64(g.counts[i]) / float64(g.days) * 100
		}
		out = append(out, row)
	}
	return out
}
