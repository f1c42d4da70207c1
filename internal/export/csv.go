// Package export serializes transactions to the dashboard's CSV dialect
// and hands the result to a file-delivery collaborator.
package export

import (
	"strings"
	"time"

	"kobo/internal/core"
)

// MIMEType is the content type of an exported file.
const MIMEType = "text/csv"

var header = []string{"ID", "Description", "Amount", "Type", "Date"}

// BuildCSV renders the transactions in their stored order using raw stored
// values; amounts are the plain magnitudes, not the display formatting.
//
// The escaping rule is intentionally minimal: a field is double-quoted iff
// it contains a comma, and nothing else is escaped. Embedded quotes or
// newlines in a description pass through verbatim. Earlier exports used
// exactly this dialect, so consumers of old files keep working; do not
// "fix" it to full RFC 4180 quoting. Rows are newline-separated with no
// trailing newline.
func BuildCSV(transactions core.Ledger) string {
	var b strings.Builder
	writeRow(&b, header)
	for _, t := range transactions {
		b.WriteByte('\n')
		writeRow(&b, []string{t.ID, t.Description, t.Amount.String(), string(t.Type), t.Date})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if strings.Contains(f, ",") {
			b.WriteByte('"')
			b.WriteString(f)
			b.WriteByte('"')
		} else {
			b.WriteString(f)
		}
	}
}

// Filename names an export after the day it was taken.
func Filename(now time.Time) string {
	return "transactions-" + now.Format("2006-01-02") + ".csv"
}
