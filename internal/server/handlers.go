package server

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/KaramelBytes/tpdash-cli/internal/charts"
	"github.com/KaramelBytes/tpdash-cli/internal/dashboard"
	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

// criteriaFromQuery rebuilds dashboard.Criteria from a request's query
// string. A request without the apply marker (first visit, reset) gets
// the defaults: all countries, no search, everything visible.
//
// A submitted form that selects every value of a categorical column is
// treated as that filter being inactive, so rows with blank cells are
// not silently dropped.
func (s *Server) criteriaFromQuery(q url.Values) dashboard.Criteria {
	if q.Get("apply") == "" {
		return dashboard.Defaults(s.res.Table)
	}
	c := dashboard.Criteria{
		Countries:      q["country"],
		Search:         q.Get("q"),
		VisibleColumns: q["cols"],
		Categorical:    make(map[string][]string),
	}
	for _, p := range s.profiles {
		if !p.Categorical() {
			continue
		}
		selected := q["f."+p.Name]
		if len(selected) == 0 || len(selected) == len(p.Values) {
			continue
		}
		c.Categorical[p.Name] = selected
	}
	return c
}

// rowCriteria strips the projection so metrics and chart aggregates see
// full rows; only the table view and the export apply visible columns.
func rowCriteria(c dashboard.Criteria) dashboard.Criteria {
	c.VisibleColumns = nil
	return c
}

type categoricalControl struct {
	Name     string
	Values   []string
	Selected map[string]bool
}

type chartSlot struct {
	Column string
	Empty  bool
}

type pageData struct {
	Source            string
	Notices           []dataset.Notice
	Metrics           dashboard.Metrics
	Countries         []string
	SelectedCountries map[string]bool
	Search            string
	Categoricals      []categoricalControl
	Columns           []string
	VisibleSet        map[string]bool
	Table             *dataset.Table
	Deadlines         *dataset.Table
	Charts            []chartSlot
	Query             template.URL
	ExportFilename    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.res.Table.Empty() {
		// Terminal state: both formats exhausted with zero usable rows.
		http.Error(w, "No data found. Place 'extracted_tp_data_v2_2.csv' (or an earlier fallback file) or the state file 'extracted_data.jsonl'.", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	criteria := s.criteriaFromQuery(q)
	rows := dashboard.Apply(s.res.Table, rowCriteria(criteria))
	view := dashboard.Apply(s.res.Table, criteria)

	data := pageData{
		Source:            s.res.Source,
		Notices:           s.res.Notices,
		Metrics:           dashboard.ComputeMetrics(s.res.Table, rows, s.cfg.IndicatorColumns),
		Countries:         s.res.Table.DistinctValues("Country"),
		SelectedCountries: toSet(criteria.Countries),
		Search:            criteria.Search,
		Columns:           s.res.Table.Columns,
		VisibleSet:        toSet(view.Columns),
		Table:             view,
		Deadlines:         dashboard.DeadlineView(rows),
		Query:             template.URL(r.URL.RawQuery),
		ExportFilename:    s.cfg.ExportFilename,
	}
	for _, p := range s.profiles {
		if !p.Categorical() || p.Name == "Country" {
			continue
		}
		ctl := categoricalControl{Name: p.Name, Values: p.Values, Selected: make(map[string]bool)}
		selected := criteria.Categorical[p.Name]
		if len(selected) == 0 {
			selected = p.Values // inactive filter renders as all selected
		}
		for _, v := range selected {
			ctl.Selected[v] = true
		}
		data.Categoricals = append(data.Categoricals, ctl)
	}
	for _, col := range s.chartColumns() {
		vc := dashboard.CountValues(rows, col, s.chartTopN())
		data.Charts = append(data.Charts, chartSlot{Column: col, Empty: vc.Empty()})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		http.Error(w, fmt.Sprintf("render: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria := s.criteriaFromQuery(r.URL.Query())
	view := dashboard.Apply(s.res.Table, criteria)
	b, err := dashboard.EncodeCSV(view)
	if err != nil {
		http.Error(w, fmt.Sprintf("export: %v", err), http.StatusInternalServerError)
		return
	}
	name := s.cfg.ExportFilename
	if name == "" {
		name = dashboard.DefaultExportFilename
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(b)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	col := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/chart/"), ".png")
	if col == "" {
		http.NotFound(w, r)
		return
	}
	criteria := rowCriteria(s.criteriaFromQuery(r.URL.Query()))
	rows := dashboard.Apply(s.res.Table, criteria)
	vc := dashboard.CountValues(rows, col, s.chartTopN())
	b, err := charts.RenderBarPNG(vc, col)
	if err != nil {
		if err == charts.ErrNoData {
			http.Error(w, "no data", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("chart: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(b)
}

func (s *Server) chartColumns() []string {
	if len(s.cfg.ChartColumns) > 0 {
		return s.cfg.ChartColumns
	}
	return dashboard.DefaultChartColumns
}

func (s *Server) chartTopN() int {
	if s.cfg.ChartTopN > 0 {
		return s.cfg.ChartTopN
	}
	return dashboard.DefaultChartTopN
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
