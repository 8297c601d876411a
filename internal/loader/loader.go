// Package loader reads the chunked CSV files of each record family.
package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"uidaiprep/internal/config"
	"uidaiprep/internal/logger"
	"uidaiprep/internal/models"
)

// Load errors. All of them are fatal for the run.
var (
	ErrMissingDirectory = errors.New("source directory not found")
	ErrEmptyDirectory   = errors.New("source directory contains no CSV files")
	ErrMissingColumn    = errors.New("required column missing from header")
	ErrInvalidMeasure   = errors.New("invalid measure value")
)

// FileStat describes one loaded chunk.
type FileStat struct {
	Name    string
	Records int
}

// Table is every raw record of one family, in sorted-file then file order.
type Table struct {
	Family  models.Family
	Files   []FileStat
	Records []models.RawRecord
}

// Loader reads family tables from a source layout.
type Loader struct {
	log *logger.Logger
	src config.SourceConfig
}

// New creates a loader for the given source layout.
func New(src config.SourceConfig, log *logger.Logger) *Loader {
	return &Loader{src: src, log: log}
}

// LoadAll loads every family. It stops at the first failure.
func (l *Loader) LoadAll() (map[models.Family]*Table, error) {
	tables := make(map[models.Family]*Table, len(models.Families))

	for _, family := range models.Families {
		table, err := l.Load(family)
		if err != nil {
			return nil, err
		}

		tables[family] = table
	}

	return tables, nil
}

// Load reads and concatenates every CSV file of family.
func (l *Loader) Load(family models.Family) (*Table, error) {
	dir := l.src.Path(family)

	files, err := listCSV(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", family, err)
	}

	l.log.Info("loading family", "family", family, "files", len(files), "dir", dir)

	table := &Table{Family: family}

	for _, path := range files {
		records, err := readFile(path, family)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", family, err)
		}

		name := filepath.Base(path)
		table.Files = append(table.Files, FileStat{Name: name, Records: len(records)})
		table.Records = append(table.Records, records...)

		l.log.Debug("loaded file", "family", family, "file", name, "records", len(records))
	}

	l.log.Info("family loaded", "family", family, "records", len(table.Records))

	return table, nil
}

// listCSV returns the CSV files of dir sorted by name.
func listCSV(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingDirectory, dir)
		}

		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDirectory, dir)
	}

	sort.Strings(files)

	return files, nil
}

// readFile parses one CSV chunk of family.
func readFile(path string, family models.Family) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := parse(bufio.NewReader(f), family)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// parse reads a header row followed by data rows.
func parse(r io.Reader, family models.Family) ([]models.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}

		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := indexHeader(header, family)
	if err != nil {
		return nil, err
	}

	measures := family.SourceColumns()

	var records []models.RawRecord

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := reader.FieldPos(0)

		rec := models.RawRecord{
			Date:     strings.TrimSpace(row[idx[models.ColumnDate]]),
			State:    strings.TrimSpace(row[idx[models.ColumnState]]),
			District: strings.TrimSpace(row[idx[models.ColumnDistrict]]),
			Pincode:  strings.TrimSpace(row[idx[models.ColumnPincode]]),
			Values:   make(map[string]int64, len(measures)),
		}

		for _, col := range measures {
			v, err := parseMeasure(row[idx[col]])
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, col, err)
			}

			rec.Values[col] = v
		}

		records = append(records, rec)
	}

	return records, nil
}

// indexHeader maps every required column to its position.
func indexHeader(header []string, family models.Family) (map[string]int, error) {
	pos := make(map[string]int, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}

		if _, seen := pos[name]; !seen {
			pos[name] = i
		}
	}

	required := append([]string{
		models.ColumnDate, models.ColumnState, models.ColumnDistrict, models.ColumnPincode,
	}, family.SourceColumns()...)

	idx := make(map[string]int, len(required))

	for _, col := range required {
		i, ok := pos[col]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}

		idx[col] = i
	}

	return idx, nil
}

// parseMeasure reads a count cell. Empty cells are zero; integral floats are
// accepted. Counts must be non-negative and fit in an int64.
func parseMeasure(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("%w: negative count %q", ErrInvalidMeasure, s)
		}

		return v, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMeasure, s)
	}

	if f < 0 {
		return 0, fmt.Errorf("%w: negative count %q", ErrInvalidMeasure, s)
	}

	if f >= 1<<63 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidMeasure, s)
	}

	return int64(f), nil
}

// Layout describes the directory structure the loader expects.
func Layout(src config.SourceConfig) string {
	var sb strings.Builder

	sb.WriteString("Expected folder structure:\n")
	fmt.Fprintf(&sb, "  %s/\n", filepath.Clean(src.BaseDir))

	for _, family := range []models.Family{models.Biometric, models.Demographic, models.Enrolment} {
		fmt.Fprintf(&sb, "    %s/*.csv\n", src.Dir(family))
	}

	return sb.String()
}
