package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tpdash-cli/internal/dashboard"
	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

// Shared selection flags for commands that operate on a filtered view.
var (
	selCountries []string
	selSearch    string
	selFilters   []string
	selColumns   []string
)

func addSelectionFlags(c *cobra.Command) {
	c.Flags().StringSliceVar(&selCountries, "countries", nil, "country selection (default: all; pass an empty value for none)")
	c.Flags().StringVar(&selSearch, "search", "", "case-insensitive substring matched against every column")
	c.Flags().StringArrayVar(&selFilters, "filter", nil, "categorical filter as Column=value1|value2 (repeatable)")
	c.Flags().StringSliceVar(&selColumns, "columns", nil, "visible columns in order (default: all)")
}

// buildCriteria turns the selection flags into dashboard.Criteria. The
// --countries flag left unset means all countries; explicitly passing
// an empty selection means none, matching the dashboard policy.
func buildCriteria(c *cobra.Command, t *dataset.Table) (dashboard.Criteria, error) {
	crit := dashboard.Defaults(t)
	if c.Flags().Changed("countries") {
		crit.Countries = nil
		for _, v := range selCountries {
			if v = strings.TrimSpace(v); v != "" {
				crit.Countries = append(crit.Countries, v)
			}
		}
	}
	crit.Search = selSearch
	crit.VisibleColumns = selColumns
	if len(selFilters) > 0 {
		crit.Categorical = make(map[string][]string)
		for _, f := range selFilters {
			col, vals, ok := strings.Cut(f, "=")
			if !ok {
				return crit, fmt.Errorf("invalid --filter %q (use Column=value1|value2)", f)
			}
			var allowed []string
			for _, v := range strings.Split(vals, "|") {
				if v = strings.TrimSpace(v); v != "" {
					allowed = append(allowed, v)
				}
			}
			crit.Categorical[strings.TrimSpace(col)] = allowed
		}
	}
	return crit, nil
}
