package dataset

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCandidates lists the CSV paths tried in priority order. The
// newest extraction file names come first; older names are kept for
// backwards compatibility with earlier extraction runs.
var DefaultCandidates = []string{
	"extracted_tp_data_v2_2.csv",
	filepath.Join("..", "extracted_tp_data_v2_2.csv"),
	"extracted_tp_data_v2.csv",
	"extracted_tp_data.csv",
	filepath.Join("..", "extracted_tp_data_v2.csv"),
	filepath.Join("..", "extracted_tp_data.csv"),
}

// DefaultJSONLPath is the newline-delimited-JSON state file used only
// when none of the CSV candidates can be loaded.
var DefaultJSONLPath = filepath.Join("..", "extracted_data.jsonl")

// jsonlColumns maps the human-readable labels used by the JSONL state
// file to the identifier-style column names used by the CSV extracts.
// Order defines the column order of a JSONL-sourced table.
var jsonlColumns = []struct {
	Label  string
	Column string
}{
	{"Country", "Country"},
	{"Tax authority", "TaxAuthority"},
	{"TP law", "TPLaw"},
	{"TP start date", "TPStartDate"},
	{"TP filing requirement", "TPFilingRequirement"},
	{"MF deadline", "MF_deadline"},
	{"LF deadline", "LF_deadline"},
	{"CbCR deadline", "CbCR_deadline"},
	{"TP return deadline", "TPReturnDeadline"},
	{"APA available", "APAAvailable"},
	{"OECD or BEPS", "OECDorBEPS"},
	{"Documentation threshold", "DocumentationThreshold"},
	{"Penalties", "Penalties"},
	{"Notes", "Notes"},
}

// Notice levels for load-time observations.
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

// Notice is an observational message produced while locating and parsing
// data sources. Notices never affect the returned table.
type Notice struct {
	Level   string
	Message string
}

// Result is the outcome of a load: the table, which source produced it,
// and any notices collected along the way. An empty table with no
// remaining fallback is a displayable state, not an error.
type Result struct {
	Table   *Table
	Source  string
	Notices []Notice
}

func (r *Result) warnf(format string, args ...any) {
	r.Notices = append(r.Notices, Notice{Level: LevelWarn, Message: fmt.Sprintf(format, args...)})
}

func (r *Result) infof(format string, args ...any) {
	r.Notices = append(r.Notices, Notice{Level: LevelInfo, Message: fmt.Sprintf(format, args...)})
}

// Loader locates the dataset among an ordered list of CSV candidates,
// falling back to a JSONL state file when none can be read.
type Loader struct {
	Candidates []string
	JSONLPath  string
}

// NewLoader returns a loader over the default candidate paths.
func NewLoader() *Loader {
	return &Loader{Candidates: DefaultCandidates, JSONLPath: DefaultJSONLPath}
}

// Load tries each CSV candidate in priority order, then the JSONL
// fallback. Missing paths are skipped silently; parse failures degrade
// to the next source with a warning. The returned table is empty (never
// nil) when no source yields usable rows.
func (l *Loader) Load() *Result {
	res := &Result{Table: &Table{}}

	for _, p := range l.Candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		t, err := readCSV(p)
		if err != nil {
			res.warnf("could not read %s: %v", filepath.Base(p), err)
			continue
		}
		res.Table = t
		res.Source = p
		res.infof("loaded %s", filepath.Base(p))
		validate(res)
		return res
	}

	res.infof("CSV not found, trying JSONL fallback")
	if l.JSONLPath != "" {
		if _, err := os.Stat(l.JSONLPath); err == nil {
			t, err := readJSONL(l.JSONLPath)
			if err != nil {
				res.warnf("could not read %s: %v", filepath.Base(l.JSONLPath), err)
			} else if !t.Empty() {
				res.Table = t
				res.Source = l.JSONLPath
				res.infof("loaded %s", filepath.Base(l.JSONLPath))
				validate(res)
			}
		}
	}
	return res
}

// validate checks that the core columns survived the load. Missing core
// columns are a warning; processing continues with whatever exists.
func validate(res *Result) {
	var missing []string
	for _, c := range CoreColumns {
		if !res.Table.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		res.warnf("missing core columns: %s", strings.Join(missing, ", "))
	}
}

// readCSV parses a delimited file into a Table. The header row defines
// the column set; short records are padded so every row carries every
// column.
func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	t := &Table{Columns: cols}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			if i < len(rec) {
				row[c] = strings.TrimSpace(rec[i])
			} else {
				row[c] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// readJSONL parses a newline-delimited JSON file into a Table. Keys are
// remapped from human-readable labels to identifier-style column names;
// lines that fail to parse are skipped. The resulting column set is
// exactly the mapped identifiers, with MissingValue filled in for any
// key a record does not carry.
func readJSONL(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jsonl: %w", err)
	}
	defer f.Close()

	cols := make([]string, len(jsonlColumns))
	for i, m := range jsonlColumns {
		cols[i] = m.Column
	}
	t := &Table{Columns: cols}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		row := make(Row, len(jsonlColumns))
		for _, m := range jsonlColumns {
			row[m.Column] = stringValue(rec[m.Label])
		}
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan jsonl: %w", err)
	}
	return t, nil
}

func stringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return MissingValue
	case string:
		if x == "" {
			return MissingValue
		}
		return x
	case float64:
		// JSON numbers arrive as float64; render integers without a
		// trailing ".0" so they compare like CSV cells.
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprintf("%v", x)
	}
}
