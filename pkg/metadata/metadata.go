// Package metadata builds the descriptor written next to the exported datasets.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"uidaiprep/internal/models"
)

// FileName is the descriptor's file name in the output directory.
const FileName = "metadata.json"

// rangeLayout formats date_range bounds as midnight timestamps without a zone.
const rangeLayout = "2006-01-02T15:04:05"

// Dataset describes one exported artifact.
type Dataset struct {
	Columns     []string `json:"columns"`
	Description string   `json:"description"`
	Records     int      `json:"records"`
}

// DateRange is the span of real dates in the unified table. Both ends are
// null when no row carries a parseable date.
type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Coverage summarizes the unsampled unified table.
type Coverage struct {
	States       int `json:"states"`
	Districts    int `json:"districts"`
	TotalRecords int `json:"total_records"`
}

// Metadata is the content of metadata.json.
type Metadata struct {
	GeneratedAt string             `json:"generated_at"`
	Datasets    map[string]Dataset `json:"datasets"`
	DateRange   DateRange          `json:"date_range"`
	Coverage    Coverage           `json:"coverage"`
}

// Build creates the descriptor. daily must be the full, unsampled table.
func Build(now time.Time, datasets map[string]Dataset, daily []models.DailyRecord) *Metadata {
	return &Metadata{
		GeneratedAt: now.Format(time.RFC3339Nano),
		Datasets:    datasets,
		DateRange:   dateRange(daily),
		Coverage:    coverage(daily),
	}
}

func dateRange(daily []models.DailyRecord) DateRange {
	var lo, hi models.Date

	for _, r := range daily {
		if r.Date.IsMissing() {
			continue
		}

		if lo.IsMissing() || r.Date < lo {
			lo = r.Date
		}

		if hi.IsMissing() || r.Date > hi {
			hi = r.Date
		}
	}

	if lo.IsMissing() {
		return DateRange{}
	}

	start := lo.Time().Format(rangeLayout)
	end := hi.Time().Format(rangeLayout)

	return DateRange{Start: &start, End: &end}
}

// coverage counts distinct state names and distinct district names.
func coverage(daily []models.DailyRecord) Coverage {
	states := make(map[string]struct{})
	districts := make(map[string]struct{})

	for _, r := range daily {
		states[r.State] = struct{}{}
		districts[r.District] = struct{}{}
	}

	return Coverage{
		States:       len(states),
		Districts:    len(districts),
		TotalRecords: len(daily),
	}
}

// CalculateHash computes the hex SHA-256 of an artifact's bytes.
func CalculateHash(content []byte) string {
	hash := sha256.Sum256(content)

	return hex.EncodeToString(hash[:])
}
