package server

// dashboardTemplate is the whole single-page UI. Filter state lives in
// the query string; submitting the form reruns the pipeline server-side.
const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>TP Worldwide Data Dashboard</title>
<style>
body { font-family: system-ui, sans-serif; margin: 1.5rem; color: #1f2430; }
h1 { font-size: 1.4rem; }
.notices p { margin: 0.15rem 0; font-size: 0.85rem; }
.notice-warn { color: #b45309; }
.notice-info { color: #047857; }
.kpis { display: flex; gap: 1rem; margin: 1rem 0; }
.kpi { border: 1px solid #d4d8e2; border-radius: 6px; padding: 0.6rem 1rem; min-width: 9rem; }
.kpi .label { font-size: 0.75rem; color: #6b7280; }
.kpi .value { font-size: 1.4rem; font-weight: 600; }
form.filters { border: 1px solid #d4d8e2; border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
form.filters fieldset { border: none; margin: 0 0 0.75rem; padding: 0; }
form.filters legend { font-weight: 600; font-size: 0.85rem; }
select[multiple] { min-width: 12rem; }
table.data { border-collapse: collapse; font-size: 0.85rem; }
table.data th, table.data td { border: 1px solid #d4d8e2; padding: 0.3rem 0.5rem; text-align: left; }
table.data th { background: #f3f4f8; }
.charts { display: flex; gap: 1.5rem; flex-wrap: wrap; margin: 1rem 0; }
.charts .empty { color: #6b7280; font-style: italic; }
a.export { display: inline-block; margin: 0.75rem 0; }
details { margin: 1rem 0; }
</style>
</head>
<body>
<h1>Transfer Pricing Worldwide Data Dashboard</h1>

<div class="notices">
{{range .Notices}}<p class="notice-{{.Level}}">{{if eq .Level "warn"}}&#9888;{{else}}&#10003;{{end}} {{.Message}}</p>{{end}}
</div>

<div class="kpis">
  <div class="kpi"><div class="label">Countries</div><div class="value">{{.Metrics.TotalCountries}}</div></div>
  <div class="kpi"><div class="label">Records selected</div><div class="value">{{.Metrics.FilteredRows}}</div></div>
{{range .Metrics.Indicators}}
  <div class="kpi"><div class="label">% {{.Column}}</div><div class="value">{{.Display}}</div></div>
{{end}}
</div>

<form class="filters" method="get" action="/">
  <input type="hidden" name="apply" value="1">
  <fieldset>
    <legend>Countries</legend>
    <select name="country" multiple size="6">
    {{$sel := .SelectedCountries}}
    {{range .Countries}}<option value="{{.}}"{{if index $sel .}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </fieldset>
  <fieldset>
    <legend>Search</legend>
    <input type="text" name="q" value="{{.Search}}" placeholder="Search all columns">
  </fieldset>
{{range .Categoricals}}
  <fieldset>
    <legend>{{.Name}}</legend>
    <select name="f.{{.Name}}" multiple size="4">
    {{$s := .Selected}}
    {{range .Values}}<option value="{{.}}"{{if index $s .}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </fieldset>
{{end}}
  <fieldset>
    <legend>Visible columns</legend>
    <select name="cols" multiple size="6">
    {{$vis := .VisibleSet}}
    {{range .Columns}}<option value="{{.}}"{{if index $vis .}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </fieldset>
  <button type="submit">Apply</button>
  <a href="/reset">Reset</a>
</form>

<div class="charts">
{{$q := .Query}}
{{range .Charts}}
  {{if .Empty}}<p class="empty">{{.Column}}: no data</p>{{else}}<img src="/chart/{{.Column}}.png?{{$q}}" alt="{{.Column}} distribution">{{end}}
{{end}}
</div>

<a class="export" href="/export.csv?{{.Query}}" download="{{.ExportFilename}}">Download selection (CSV)</a>

<h2>Data</h2>
{{if .Table.Rows}}
<table class="data">
  <tr>{{range .Table.Columns}}<th>{{.}}</th>{{end}}</tr>
  {{$t := .Table}}
  {{range $i, $row := .Table.Rows}}
  <tr>{{range $t.Columns}}<td>{{index $row .}}</td>{{end}}</tr>
  {{end}}
</table>
{{else}}
<p class="empty">No rows match the current selection.</p>
{{end}}

{{if .Deadlines}}
<details>
  <summary>Deadlines</summary>
  <table class="data">
    <tr>{{range .Deadlines.Columns}}<th>{{.}}</th>{{end}}</tr>
    {{$d := .Deadlines}}
    {{range $i, $row := .Deadlines.Rows}}
    <tr>{{range $d.Columns}}<td>{{index $row .}}</td>{{end}}</tr>
    {{end}}
  </table>
</details>
{{end}}

<p><em>Filter, analyze and export TP data.</em> {{if .Source}}<small>Source: {{.Source}}</small>{{end}}</p>
</body>
</html>
`
