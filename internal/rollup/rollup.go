// Package rollup derives coarser summaries from the unified daily table.
package rollup

import (
	"cmp"
	"slices"

	"uidaiprep/internal/models"
)

type districtKey struct {
	State    string
	District string
}

type monthKey struct {
	State    string
	District string
	Month    string
}

// ByState sums every measure per state, ordered by state.
func ByState(daily []models.DailyRecord) []models.StateSummary {
	sums := make(map[string]models.Measures)
	for _, r := range daily {
		sums[r.State] = sums[r.State].Add(r.Measures)
	}

	out := make([]models.StateSummary, 0, len(sums))
	for state, m := range sums {
		out = append(out, models.StateSummary{State: state, Measures: m})
	}

	slices.SortFunc(out, func(a, b models.StateSummary) int {
		return cmp.Compare(a.State, b.State)
	})

	return out
}

// ByDistrict sums every measure per (state, district), ordered by state then district.
func ByDistrict(daily []models.DailyRecord) []models.DistrictSummary {
	sums := make(map[districtKey]models.Measures)
	for _, r := range daily {
		k := districtKey{State: r.State, District: r.District}
		sums[k] = sums[k].Add(r.Measures)
	}

	out := make([]models.DistrictSummary, 0, len(sums))
	for k, m := range sums {
		out = append(out, models.DistrictSummary{State: k.State, District: k.District, Measures: m})
	}

	slices.SortFunc(out, func(a, b models.DistrictSummary) int {
		return cmp.Or(cmp.Compare(a.State, b.State), cmp.Compare(a.District, b.District))
	})

	return out
}

// Monthly sums every measure per (state, district, month). Rows with a
// missing date land in the models.UnknownMonth bucket, which sorts last.
func Monthly(daily []models.DailyRecord) []models.MonthlySummary {
	sums := make(map[monthKey]models.Measures)
	for _, r := range daily {
		k := monthKey{State: r.State, District: r.District, Month: r.Date.MonthLabel()}
		sums[k] = sums[k].Add(r.Measures)
	}

	out := make([]models.MonthlySummary, 0, len(sums))
	for k, m := range sums {
		out = append(out, models.MonthlySummary{State: k.State, District: k.District, Month: k.Month, Measures: m})
	}

	slices.SortFunc(out, func(a, b models.MonthlySummary) int {
		return cmp.Or(
			cmp.Compare(a.State, b.State),
			cmp.Compare(a.District, b.District),
			compareMonth(a.Month, b.Month),
		)
	})

	return out
}

func compareMonth(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == models.UnknownMonth:
		return 1
	case b == models.UnknownMonth:
		return -1
	default:
		return cmp.Compare(a, b)
	}
}
