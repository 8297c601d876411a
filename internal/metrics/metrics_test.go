package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.FileLoaded("biometric", 10)
	r.FileLoaded("biometric", 5)
	r.MissingDates("biometric", 2)
	r.Artifact("state_summary.json", 36, 4096)
	r.DailyRows(120)

	if got := testutil.ToFloat64(r.filesLoaded.WithLabelValues("biometric")); got != 2 {
		t.Errorf("files_loaded_total = %v, want 2", got)
	}

	if got := testutil.ToFloat64(r.rowsLoaded.WithLabelValues("biometric")); got != 15 {
		t.Errorf("rows_loaded_total = %v, want 15", got)
	}

	if got := testutil.ToFloat64(r.missingDates.WithLabelValues("biometric")); got != 2 {
		t.Errorf("missing_dates_total = %v, want 2", got)
	}

	if got := testutil.ToFloat64(r.artifactBytes.WithLabelValues("state_summary.json")); got != 4096 {
		t.Errorf("artifact_bytes = %v, want 4096", got)
	}

	if got := testutil.ToFloat64(r.dailyRows); got != 120 {
		t.Errorf("unified_daily_rows = %v, want 120", got)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Stage("aggregate", 1500*time.Millisecond)
	r.Succeeded(time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "uidaiprep.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	for _, want := range []string{
		`uidaiprep_stage_duration_seconds{stage="aggregate"} 1.5`,
		"uidaiprep_last_success_timestamp_seconds 1.7e+09",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q:\n%s", want, data)
		}
	}
}
