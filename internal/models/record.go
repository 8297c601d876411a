package models

// Canonical measure columns, in output order.
const (
	DemoChild   = "demo_child"
	DemoAdult   = "demo_adult"
	BioChild    = "bio_child"
	BioAdult    = "bio_adult"
	EnrolInfant = "enrol_infant"
	EnrolChild  = "enrol_child"
	EnrolAdult  = "enrol_adult"
)

// MeasureColumns lists the seven canonical measures in output order.
var MeasureColumns = []string{DemoChild, DemoAdult, BioChild, BioAdult, EnrolInfant, EnrolChild, EnrolAdult}

// RawRecord is one CSV row as read from disk. Values are keyed by source header.
type RawRecord struct {
	Values   map[string]int64
	Date     string
	State    string
	District string
	Pincode  string
}

// Measures holds the seven canonical counts.
type Measures struct {
	DemoChild   int64 `json:"demo_child"`
	DemoAdult   int64 `json:"demo_adult"`
	BioChild    int64 `json:"bio_child"`
	BioAdult    int64 `json:"bio_adult"`
	EnrolInfant int64 `json:"enrol_infant"`
	EnrolChild  int64 `json:"enrol_child"`
	EnrolAdult  int64 `json:"enrol_adult"`
}

// Field returns a pointer to the measure named by a canonical column, or nil.
func (m *Measures) Field(column string) *int64 {
	switch column {
	case DemoChild:
		return &m.DemoChild
	case DemoAdult:
		return &m.DemoAdult
	case BioChild:
		return &m.BioChild
	case BioAdult:
		return &m.BioAdult
	case EnrolInfant:
		return &m.EnrolInfant
	case EnrolChild:
		return &m.EnrolChild
	case EnrolAdult:
		return &m.EnrolAdult
	default:
		return nil
	}
}

// Add returns the field-wise sum of m and o.
func (m Measures) Add(o Measures) Measures {
	return Measures{
		DemoChild:   m.DemoChild + o.DemoChild,
		DemoAdult:   m.DemoAdult + o.DemoAdult,
		BioChild:    m.BioChild + o.BioChild,
		BioAdult:    m.BioAdult + o.BioAdult,
		EnrolInfant: m.EnrolInfant + o.EnrolInfant,
		EnrolChild:  m.EnrolChild + o.EnrolChild,
		EnrolAdult:  m.EnrolAdult + o.EnrolAdult,
	}
}

// Total returns the sum of all seven measures.
func (m Measures) Total() int64 {
	return m.DemoChild + m.DemoAdult + m.BioChild + m.BioAdult + m.EnrolInfant + m.EnrolChild + m.EnrolAdult
}

// Record is a normalized row of one family. Only that family's measures are set.
type Record struct {
	State    string
	District string
	Pincode  string
	Measures
	Date Date
}

// Key identifies a unified daily row.
type Key struct {
	State    string
	District string
	Date     Date
}

// Less orders keys by date (missing last), then state, then district.
func (k Key) Less(o Key) bool {
	if k.Date != o.Date {
		return k.Date.Less(o.Date)
	}

	if k.State != o.State {
		return k.State < o.State
	}

	return k.District < o.District
}

// DailyRecord is one row of the unified daily table.
type DailyRecord struct {
	Date     Date   `json:"date"`
	State    string `json:"state"`
	District string `json:"district"`
	Measures
}

// Key returns the row's grouping key.
func (r DailyRecord) Key() Key {
	return Key{Date: r.Date, State: r.State, District: r.District}
}

// StateSummary is one row of state_summary.json.
type StateSummary struct {
	State string `json:"state"`
	Measures
}

// DistrictSummary is one row of district_summary.json.
type DistrictSummary struct {
	State    string `json:"state"`
	District string `json:"district"`
	Measures
}

// MonthlySummary is one row of monthly_summary.json.
type MonthlySummary struct {
	State    string `json:"state"`
	District string `json:"district"`
	Month    string `json:"month"`
	Measures
}

// Columns returns the output column list for a table grouped by keys.
func Columns(keys ...string) []string {
	cols := make([]string, 0, len(keys)+len(MeasureColumns))
	cols = append(cols, keys...)

	return append(cols, MeasureColumns...)
}
