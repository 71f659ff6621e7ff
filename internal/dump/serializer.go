package dump

import (
	"strings"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// Serialize re-emits records in the dump file format. Parsing the output
// yields the same records back (round-trip identity). Zero timestamps
// are omitted rather than written as the zero time.
func Serialize(records []sprocdiff.ProcedureRecord) []byte {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(BlockStartMarker)
		b.WriteString("\n")
		writeHeader(&b, headerDatabase, r.Database)
		writeHeader(&b, headerSchema, r.Schema)
		writeHeader(&b, headerName, r.Name)
		if !r.CreateDate.IsZero() {
			writeHeader(&b, headerCreateDate, r.CreateDate.Format(sprocdiff.TimestampLayout))
		}
		if !r.ModifyDate.IsZero() {
			writeHeader(&b, headerModifyDate, r.ModifyDate.Format(sprocdiff.TimestampLayout))
		}
		b.WriteString(DefinitionStartMarker)
		b.WriteString("\n")
		if r.Definition != "" {
			b.WriteString(r.Definition)
			// Restore the newline the parser strips before the end marker.
			b.WriteString("\n")
		}
		b.WriteString(DefinitionEndMarker)
		b.WriteString("\n")
		b.WriteString(BlockEndMarker)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func writeHeader(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
