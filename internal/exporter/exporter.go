// Package exporter writes the dashboard artifacts to the output directory.
package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"uidaiprep/internal/config"
	"uidaiprep/internal/logger"
	"uidaiprep/pkg/metadata"
)

// Artifact describes one written file.
type Artifact struct {
	Name    string
	Path    string
	SHA256  string
	Records int
	Bytes   int64
}

// Exporter serializes tables as JSON arrays of row objects.
type Exporter struct {
	log    *logger.Logger
	dir    string
	pretty bool
}

// New creates an exporter for cfg. The directory is created on first write.
func New(cfg config.OutputConfig, log *logger.Logger) *Exporter {
	return &Exporter{dir: cfg.Dir, pretty: cfg.PrettyPrint, log: log}
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// WriteRows writes rows to <dir>/<name>.json. A nil table is written as [].
func WriteRows[T any](e *Exporter, name string, rows []T) (Artifact, error) {
	if rows == nil {
		rows = []T{}
	}

	return e.write(name+".json", rows, len(rows), e.pretty)
}

// WriteMetadata writes the descriptor, always indented.
func (e *Exporter) WriteMetadata(meta *metadata.Metadata) (Artifact, error) {
	return e.write(metadata.FileName, meta, 1, true)
}

func (e *Exporter) write(file string, v any, records int, indent bool) (Artifact, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(v); err != nil {
		return Artifact{}, fmt.Errorf("failed to marshal %s: %w", file, err)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return Artifact{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(e.dir, file)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return Artifact{}, fmt.Errorf("failed to write %s: %w", file, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return Artifact{}, fmt.Errorf("failed to move %s into place: %w", file, err)
	}

	art := Artifact{
		Name:    file,
		Path:    path,
		SHA256:  metadata.CalculateHash(buf.Bytes()),
		Records: records,
		Bytes:   int64(buf.Len()),
	}

	e.log.Info("artifact written",
		"file", file,
		"records", humanize.Comma(int64(records)),
		"size", humanize.Bytes(uint64(art.Bytes)),
		"sha256", art.SHA256[:12],
	)

	return art, nil
}
