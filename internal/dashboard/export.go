package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

// DefaultExportFilename is the fixed name offered for downloaded
// selections.
const DefaultExportFilename = "tp_selection.csv"

// utf8BOM makes spreadsheet tools detect the encoding correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// EncodeCSV renders the filtered, column-projected table as CSV bytes
// prefixed with a UTF-8 byte-order mark.
func EncodeCSV(t *dataset.Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	rec := make([]string, len(t.Columns))
	for i := range t.Rows {
		for j, col := range t.Columns {
			rec[j] = t.Value(i, col)
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
