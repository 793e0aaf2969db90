package dashboard

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

func TestRenderSummary(t *testing.T) {
	table := sampleTable()
	res := &dataset.Result{
		Table:  table,
		Source: "extracted_tp_data_v2_2.csv",
		Notices: []dataset.Notice{
			{Level: dataset.LevelInfo, Message: "loaded extracted_tp_data_v2_2.csv"},
			{Level: dataset.LevelWarn, Message: "missing core columns: TPStartDate"},
		},
	}
	filtered := Apply(table, Defaults(table))
	m := ComputeMetrics(table, filtered, []string{"APAAvailable", "OECDorBEPS"})
	charts := ChartData(filtered, []string{"TaxAuthority", "MF_deadline"}, 10)

	md := RenderSummary(res, dataset.Profile(table), m, charts)

	if !strings.Contains(md, "[TP DATASET SUMMARY]") {
		t.Fatalf("missing summary header: %s", md)
	}
	if !strings.Contains(md, "Source: extracted_tp_data_v2_2.csv") {
		t.Fatalf("missing source: %s", md)
	}
	if !strings.Contains(md, "Countries: 3") {
		t.Fatalf("missing country count: %s", md)
	}
	if !strings.Contains(md, "- % APAAvailable: 33%") {
		t.Fatalf("missing indicator line: %s", md)
	}
	if !strings.Contains(md, "- % OECDorBEPS: n/a") {
		t.Fatalf("missing n/a indicator: %s", md)
	}
	if !strings.Contains(md, "[DISTRIBUTION: TaxAuthority]") || !strings.Contains(md, "- BZSt: 1") {
		t.Fatalf("missing distribution: %s", md)
	}
	if !strings.Contains(md, "[DISTRIBUTION: MF_deadline]") || !strings.Contains(md, "- no data") {
		t.Fatalf("missing empty distribution: %s", md)
	}
	if !strings.Contains(md, "[NOTES]") || !strings.Contains(md, "missing core columns") {
		t.Fatalf("missing notes: %s", md)
	}
	if !strings.Contains(md, "filterable: No, Yes") {
		t.Fatalf("missing categorical profile values: %s", md)
	}
}
