package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFirstExistingCandidate(t *testing.T) {
	tmp := t.TempDir()
	primary := writeFile(t, tmp, "extracted_tp_data_v2_2.csv",
		"Country,TaxAuthority,TPLaw,TPStartDate\nNL,Belastingdienst,Yes,2002\nDE,BZSt,Yes,2003\n")
	older := writeFile(t, tmp, "extracted_tp_data.csv",
		"Country,TaxAuthority,TPLaw,TPStartDate\nFR,DGFiP,Yes,1996\n")

	l := &Loader{Candidates: []string{filepath.Join(tmp, "missing.csv"), primary, older}}
	res := l.Load()

	if res.Source != primary {
		t.Fatalf("expected source %s, got %s", primary, res.Source)
	}
	if len(res.Table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Table.Rows))
	}
	if got := res.Table.Value(0, "Country"); got != "NL" {
		t.Fatalf("expected NL, got %q", got)
	}
	for _, n := range res.Notices {
		if n.Level == LevelWarn {
			t.Fatalf("unexpected warning: %s", n.Message)
		}
	}
}

func TestLoadParseFailureFallsThrough(t *testing.T) {
	tmp := t.TempDir()
	bad := writeFile(t, tmp, "bad.csv", "Country,TaxAuthority\n\"unterminated\n")
	good := writeFile(t, tmp, "good.csv",
		"Country,TaxAuthority,TPLaw,TPStartDate\nNL,Belastingdienst,Yes,2002\n")

	l := &Loader{Candidates: []string{bad, good}}
	res := l.Load()

	if res.Source != good {
		t.Fatalf("expected fallthrough to %s, got %s", good, res.Source)
	}
	foundWarn := false
	for _, n := range res.Notices {
		if n.Level == LevelWarn && strings.Contains(n.Message, "bad.csv") {
			foundWarn = true
		}
	}
	if !foundWarn {
		t.Fatalf("expected a warning about bad.csv, notices: %v", res.Notices)
	}
}

func TestLoadJSONLFallbackNormalization(t *testing.T) {
	tmp := t.TempDir()
	jsonl := writeFile(t, tmp, "extracted_data.jsonl",
		`{"MF deadline": "12 months"}`+"\n"+
			`{"Country": "NL", "Tax authority": "Belastingdienst", "APA available": "Yes"}`+"\n"+
			"not json at all\n")

	l := &Loader{Candidates: []string{filepath.Join(tmp, "absent.csv")}, JSONLPath: jsonl}
	res := l.Load()

	if res.Source != jsonl {
		t.Fatalf("expected jsonl source, got %q", res.Source)
	}
	// Column set is exactly the normalized identifiers from the mapping.
	if !res.Table.HasColumn("MF_deadline") || !res.Table.HasColumn("TaxAuthority") {
		t.Fatalf("missing normalized columns, got %v", res.Table.Columns)
	}
	if len(res.Table.Rows) != 2 {
		t.Fatalf("expected 2 rows (bad line skipped), got %d", len(res.Table.Rows))
	}
	if got := res.Table.Value(0, "MF_deadline"); got != "12 months" {
		t.Fatalf("expected remapped MF deadline, got %q", got)
	}
	// Every other mapped column on that record is filled with the sentinel.
	if got := res.Table.Value(0, "Country"); got != MissingValue {
		t.Fatalf("expected %q for missing Country, got %q", MissingValue, got)
	}
	if got := res.Table.Value(1, "TaxAuthority"); got != "Belastingdienst" {
		t.Fatalf("expected remapped Tax authority, got %q", got)
	}
}

func TestLoadNothingFoundReturnsEmptyTable(t *testing.T) {
	tmp := t.TempDir()
	l := &Loader{
		Candidates: []string{filepath.Join(tmp, "a.csv"), filepath.Join(tmp, "b.csv")},
		JSONLPath:  filepath.Join(tmp, "state.jsonl"),
	}
	res := l.Load()
	if res == nil || res.Table == nil {
		t.Fatal("expected a result with an empty table, not nil")
	}
	if !res.Table.Empty() {
		t.Fatalf("expected empty table, got %d rows", len(res.Table.Rows))
	}
	if res.Source != "" {
		t.Fatalf("expected no source, got %q", res.Source)
	}
}

func TestLoadWarnsOnMissingCoreColumns(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "extracted_tp_data_v2_2.csv", "Country,Notes\nNL,some note\n")

	l := &Loader{Candidates: []string{path}}
	res := l.Load()

	if res.Table.Empty() {
		t.Fatal("load should succeed despite missing core columns")
	}
	found := false
	for _, n := range res.Notices {
		if n.Level == LevelWarn && strings.Contains(n.Message, "TaxAuthority") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing-core-columns warning, notices: %v", res.Notices)
	}
}

func TestLoadCachedDoesNotReadBetweenCalls(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "extracted_tp_data_v2_2.csv",
		"Country,TaxAuthority,TPLaw,TPStartDate\nNL,Belastingdienst,Yes,2002\n")

	InvalidateCache()
	l := &Loader{Candidates: []string{path}}
	first := l.LoadCached()

	// Removing the file must not affect the cached session table.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	second := l.LoadCached()
	if first != second {
		t.Fatal("expected the cached result to be reused")
	}
	if second.Table.Empty() {
		t.Fatal("cached table lost its rows")
	}
}

func TestShortCSVRecordsArePadded(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "data.csv",
		"Country,TaxAuthority,TPLaw,TPStartDate\nNL,Belastingdienst\n")

	l := &Loader{Candidates: []string{path}}
	res := l.Load()
	if got := res.Table.Value(0, "TPStartDate"); got != "" {
		t.Fatalf("expected padded empty value, got %q", got)
	}
}
