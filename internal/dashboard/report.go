package dashboard

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

// RenderSummary renders a compact dataset report suitable for the
// terminal or a standalone Markdown doc.
func RenderSummary(res *dataset.Result, profiles []dataset.ColumnProfile, m Metrics, charts []ValueCounts) string {
	var b strings.Builder
	b.WriteString("[TP DATASET SUMMARY]\n")
	if res.Source != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", res.Source))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", len(res.Table.Rows)))
	b.WriteString(fmt.Sprintf("Countries: %d\n", m.TotalCountries))
	b.WriteString(fmt.Sprintf("Columns: %d\n", len(res.Table.Columns)))

	b.WriteString("\n[INDICATORS]\n")
	for _, in := range m.Indicators {
		b.WriteString(fmt.Sprintf("- %% %s: %s\n", in.Column, in.Display()))
	}

	b.WriteString("\n[COLUMN PROFILES]\n")
	for _, p := range profiles {
		b.WriteString(fmt.Sprintf("- %s: %d distinct", p.Name, p.Distinct))
		if p.Categorical() {
			b.WriteString(" — filterable: ")
			for i, v := range p.Values {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(v)
			}
		}
		b.WriteString("\n")
	}

	for _, vc := range charts {
		b.WriteString(fmt.Sprintf("\n[DISTRIBUTION: %s]\n", vc.Column))
		if vc.Empty() {
			b.WriteString("- no data\n")
			continue
		}
		for _, c := range vc.Counts {
			b.WriteString(fmt.Sprintf("- %s: %d\n", c.Value, c.Count))
		}
	}

	warns := 0
	for _, n := range res.Notices {
		if n.Level == dataset.LevelWarn {
			warns++
		}
	}
	if warns > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, n := range res.Notices {
			if n.Level == dataset.LevelWarn {
				b.WriteString("- " + n.Message + "\n")
			}
		}
	}
	return b.String()
}
