// Package pipeline runs the load, normalize, aggregate and export stages in order.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"uidaiprep/internal/aggregator"
	"uidaiprep/internal/config"
	"uidaiprep/internal/exporter"
	"uidaiprep/internal/loader"
	"uidaiprep/internal/logger"
	"uidaiprep/internal/metrics"
	"uidaiprep/internal/models"
	"uidaiprep/internal/normalizer"
	"uidaiprep/internal/rollup"
	"uidaiprep/pkg/metadata"
)

// Artifact names, without the .json extension.
const (
	StateSummary    = "state_summary"
	DistrictSummary = "district_summary"
	MonthlySummary  = "monthly_summary"
	DistrictDaily   = "district_daily"
)

// Stage names used in logs and metrics.
const (
	StageLoad      = "load"
	StageNormalize = "normalize"
	StageAggregate = "aggregate"
	StageExport    = "export"
)

// ErrLoad wraps every loader failure. Nothing has been written when it is returned.
var ErrLoad = errors.New("failed to load source data")

// Result holds every table built during a run.
type Result struct {
	Tables     map[models.Family]*loader.Table
	Normalized map[models.Family]*normalizer.Result
	Metadata   *metadata.Metadata
	Daily      []models.DailyRecord
	Sampled    []models.DailyRecord
	States     []models.StateSummary
	Districts  []models.DistrictSummary
	Monthly    []models.MonthlySummary
	Artifacts  []exporter.Artifact
}

// Pipeline is one configured preparation run.
type Pipeline struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// New creates a pipeline. A nil recorder gets a fresh one.
func New(cfg *config.Config, log *logger.Logger, rec *metrics.Recorder) *Pipeline {
	if rec == nil {
		rec = metrics.NewRecorder()
	}

	return &Pipeline{
		cfg:     cfg,
		log:     log.With("run_id", uuid.NewString()),
		metrics: rec,
		now:     time.Now,
	}
}

// Run executes every stage. A load failure returns an error wrapping ErrLoad
// before the output directory is touched.
func (p *Pipeline) Run() (*Result, error) {
	res := &Result{}

	start := time.Now()
	if err := p.load(res); err != nil {
		return nil, err
	}

	p.metrics.Stage(StageLoad, time.Since(start))

	start = time.Now()
	if err := p.normalize(res); err != nil {
		return nil, err
	}

	p.metrics.Stage(StageNormalize, time.Since(start))

	start = time.Now()
	p.aggregate(res)
	p.metrics.Stage(StageAggregate, time.Since(start))

	start = time.Now()
	if err := p.export(res); err != nil {
		return nil, err
	}

	p.metrics.Stage(StageExport, time.Since(start))
	p.metrics.Succeeded(p.now())

	if path := p.cfg.Metrics.TextfilePath; path != "" {
		if err := p.metrics.WriteTextfile(path); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (p *Pipeline) load(res *Result) error {
	log := p.log.Stage(StageLoad)
	start := time.Now()

	tables, err := loader.New(p.cfg.Source, log).LoadAll()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	for _, family := range models.Families {
		for _, f := range tables[family].Files {
			p.metrics.FileLoaded(family.String(), f.Records)
		}
	}

	res.Tables = tables
	log.Done("source data loaded", start)

	return nil
}

func (p *Pipeline) normalize(res *Result) error {
	log := p.log.Stage(StageNormalize)
	start := time.Now()
	proc := normalizer.NewProcessor()

	res.Normalized = make(map[models.Family]*normalizer.Result, len(res.Tables))

	for _, family := range models.Families {
		out, err := proc.Process(family, res.Tables[family].Records)
		if err != nil {
			return fmt.Errorf("%s: %w", family, err)
		}

		res.Normalized[family] = out
		p.metrics.MissingDates(family.String(), out.Dates.Missing)

		log.Info("dates parsed",
			"family", family,
			"measures", strings.Join(normalizer.Targets(family), ","),
			"missing", out.Dates.Missing,
			"missing_pct", fmt.Sprintf("%.2f", out.Dates.Percent()),
		)
	}

	log.Done("normalization complete", start)

	return nil
}

func (p *Pipeline) aggregate(res *Result) {
	log := p.log.Stage(StageAggregate)
	start := time.Now()

	families := make(map[models.Family][]models.Record, len(res.Normalized))
	for family, out := range res.Normalized {
		families[family] = out.Records
	}

	res.Daily = aggregator.Aggregate(families)
	res.States = rollup.ByState(res.Daily)
	res.Districts = rollup.ByDistrict(res.Daily)
	res.Monthly = rollup.Monthly(res.Daily)
	res.Sampled = rollup.Sample(res.Daily, p.cfg.Sampling.MaxDailyRecords, p.cfg.Sampling.Seed)

	p.metrics.DailyRows(len(res.Daily))

	if len(res.Sampled) < len(res.Daily) {
		log.Info("daily table sampled",
			"from", humanize.Comma(int64(len(res.Daily))),
			"to", humanize.Comma(int64(len(res.Sampled))),
			"seed", p.cfg.Sampling.Seed,
		)
	}

	log.Done("aggregation complete", start,
		"daily", len(res.Daily),
		"states", len(res.States),
		"districts", len(res.Districts),
		"monthly", len(res.Monthly),
	)
}

func (p *Pipeline) export(res *Result) error {
	log := p.log.Stage(StageExport)
	start := time.Now()
	exp := exporter.New(p.cfg.Output, log)

	writes := []func() (exporter.Artifact, error){
		func() (exporter.Artifact, error) { return exporter.WriteRows(exp, StateSummary, res.States) },
		func() (exporter.Artifact, error) { return exporter.WriteRows(exp, DistrictSummary, res.Districts) },
		func() (exporter.Artifact, error) { return exporter.WriteRows(exp, MonthlySummary, res.Monthly) },
		func() (exporter.Artifact, error) { return exporter.WriteRows(exp, DistrictDaily, res.Sampled) },
	}

	for _, write := range writes {
		art, err := write()
		if err != nil {
			return err
		}

		res.Artifacts = append(res.Artifacts, art)
		p.metrics.Artifact(art.Name, art.Records, art.Bytes)
	}

	res.Metadata = metadata.Build(p.now(), p.datasets(res), res.Daily)

	art, err := exp.WriteMetadata(res.Metadata)
	if err != nil {
		return err
	}

	res.Artifacts = append(res.Artifacts, art)
	p.metrics.Artifact(art.Name, art.Records, art.Bytes)

	log.Done("artifacts exported", start, "files", len(res.Artifacts), "dir", exp.Dir())

	return nil
}

func (p *Pipeline) datasets(res *Result) map[string]metadata.Dataset {
	return map[string]metadata.Dataset{
		StateSummary: {
			Records:     len(res.States),
			Columns:     models.Columns(models.ColumnState),
			Description: "State-level aggregated metrics",
		},
		DistrictSummary: {
			Records:     len(res.Districts),
			Columns:     models.Columns(models.ColumnState, models.ColumnDistrict),
			Description: "District-level aggregated metrics",
		},
		MonthlySummary: {
			Records:     len(res.Monthly),
			Columns:     models.Columns(models.ColumnState, models.ColumnDistrict, models.ColumnMonth),
			Description: "Monthly time-series by district",
		},
		DistrictDaily: {
			Records:     len(res.Sampled),
			Columns:     models.Columns(models.ColumnDate, models.ColumnState, models.ColumnDistrict),
			Description: fmt.Sprintf("Daily district-level data (sampled if >%s records)", humanize.Comma(int64(p.cfg.Sampling.MaxDailyRecords))),
		},
	}
}
