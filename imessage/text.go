package imessage

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mattt/typedstream"
)

// ExtractPlainText concatenates the plain-text runs of a decoded
// attributed-string sequence, in wire order, and returns the result
// NFC-normalized. It never inspects attribute ranges or styles; it only
// calls StringValue on each record.
func ExtractPlainText(archivables []typedstream.Archivable) string {
	var b strings.Builder
	for _, a := range archivables {
		if s, ok := a.StringValue(); ok {
			b.WriteString(s)
		}
	}
	return norm.NFC.String(b.String())
}
