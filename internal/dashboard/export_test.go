package dashboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

func TestEncodeCSVHasBOMAndProjectedColumns(t *testing.T) {
	table := sampleTable()
	c := Defaults(table)
	c.VisibleColumns = []string{"Country", "TaxAuthority"}
	view := Apply(table, c)

	b, err := EncodeCSV(view)
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}
	if !bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("export must start with a UTF-8 BOM")
	}
	body := string(bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF}))
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if lines[0] != "Country,TaxAuthority" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[1] != "NL,Belastingdienst" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}

func TestEncodeCSVQuotesCellsWithCommas(t *testing.T) {
	table := &dataset.Table{
		Columns: []string{"Country", "Notes"},
		Rows:    []dataset.Row{{"Country": "NL", "Notes": "documentation, on request"}},
	}
	b, err := EncodeCSV(table)
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}
	if !strings.Contains(string(b), `"documentation, on request"`) {
		t.Fatalf("expected quoted cell, got %s", b)
	}
}

func TestEncodeCSVEmptySelection(t *testing.T) {
	table := sampleTable()
	view := Apply(table, Criteria{})
	b, err := EncodeCSV(view)
	if err != nil {
		t.Fatalf("EncodeCSV: %v", err)
	}
	body := strings.TrimSpace(strings.TrimPrefix(string(b), "\xef\xbb\xbf"))
	if body != "Country,TaxAuthority,TPLaw,APAAvailable,Notes" {
		t.Fatalf("empty selection should export header only, got %q", body)
	}
}
