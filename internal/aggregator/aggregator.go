// Package aggregator builds the unified daily table from the normalized family tables.
package aggregator

import (
	"sort"

	"uidaiprep/internal/models"
)

// Row is a projected record: the grouping key plus measures, pincode dropped.
type Row struct {
	Key      models.Key
	Measures models.Measures
}

// Groups maps each (date, state, district) key to its summed measures.
type Groups map[models.Key]models.Measures

// Project keeps the key columns and measures of every record.
func Project(records []models.Record) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{
			Key:      models.Key{Date: r.Date, State: r.State, District: r.District},
			Measures: r.Measures,
		}
	}

	return rows
}

// GroupByKey sums measures of rows sharing the exact same key.
func GroupByKey(rows []Row) Groups {
	groups := make(Groups)
	for _, r := range rows {
		groups[r.Key] = groups[r.Key].Add(r.Measures)
	}

	return groups
}

// Merge full-outer-joins per-family groups on their key. A key missing from a
// family contributes zero for that family's measures. Families own disjoint
// measure columns, so summing the groups is the join.
func Merge(groups ...Groups) []models.DailyRecord {
	merged := make(Groups)
	for _, g := range groups {
		for key, m := range g {
			merged[key] = merged[key].Add(m)
		}
	}

	keys := make([]models.Key, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	daily := make([]models.DailyRecord, len(keys))
	for i, key := range keys {
		daily[i] = models.DailyRecord{
			Date:     key.Date,
			State:    key.State,
			District: key.District,
			Measures: merged[key],
		}
	}

	return daily
}

// Aggregate projects, groups and merges the family tables in one pass.
func Aggregate(families map[models.Family][]models.Record) []models.DailyRecord {
	groups := make([]Groups, 0, len(families))

	for _, family := range models.Families {
		records, ok := families[family]
		if !ok {
			continue
		}

		groups = append(groups, GroupByKey(Project(records)))
	}

	return Merge(groups...)
}
