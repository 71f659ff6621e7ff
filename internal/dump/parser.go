package dump

import (
	"fmt"
	"strings"
	"time"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// Block and definition markers. Case-sensitive literals matched at the
// start of a line with no leading whitespace.
const (
	BlockStartMarker      = "=== STORED PROCEDURE START ==="
	BlockEndMarker        = "=== STORED PROCEDURE END ==="
	DefinitionStartMarker = "--- DEFINITION START ---"
	DefinitionEndMarker   = "--- DEFINITION END ---"
)

// Required header keys. A block missing any of these is recorded as an
// anomaly and skipped.
const (
	headerDatabase   = "Database"
	headerSchema     = "Schema"
	headerName       = "Name"
	headerCreateDate = "CreateDate"
	headerModifyDate = "ModifyDate"
)

const utf8BOM = "\xef\xbb\xbf"

// line is one scanned input line with the byte offsets needed to slice
// definition bodies verbatim out of the original content.
type line struct {
	text  string // line content without its ending
	num   int    // 1-based line number
	start int    // byte offset of the first character
}

// Parse converts raw dump text into an ordered sequence of procedure
// records plus a list of anomalies. It never returns an error: malformed
// blocks are reported as anomalies and parsing resumes at the next block
// start marker. An empty input produces an empty set.
//
// The source label (usually the file path) is attached to the set and to
// every anomaly.
func Parse(content []byte, source string) sprocdiff.ParsedSet {
	text := strings.TrimPrefix(string(content), utf8BOM)

	set := sprocdiff.ParsedSet{Source: source}
	if text == "" {
		return set
	}

	lines := scanLines(text)
	seen := make(map[string]int) // key -> index into set.Records

	i := 0
	for i < len(lines) {
		if lines[i].text != BlockStartMarker {
			// Text outside blocks (blank separators, file banners) is
			// not part of the format and is skipped.
			i++
			continue
		}

		record, next, anomalies := parseBlock(text, lines, i, source)
		set.Anomalies = append(set.Anomalies, anomalies...)
		i = next

		if record == nil {
			continue
		}

		key := record.Key()
		if _, dup := seen[key]; dup {
			set.Anomalies = append(set.Anomalies, sprocdiff.Anomaly{
				Kind:    sprocdiff.AnomalyDuplicateKey,
				Source:  source,
				Line:    record.line,
				Key:     key,
				Message: fmt.Sprintf("duplicate key %s; first occurrence retained", key),
			})
			continue
		}
		seen[key] = len(set.Records)
		set.Records = append(set.Records, record.ProcedureRecord)
	}

	return set
}

// parsedBlock pairs a record with the line its block started on, for
// anomaly reporting.
type parsedBlock struct {
	sprocdiff.ProcedureRecord
	line int
}

// parseBlock parses one block starting at lines[start] (the block start
// marker). It returns the parsed record (nil if the block was malformed),
// the index of the line parsing should resume at, and any anomalies.
func parseBlock(text string, lines []line, start int, source string) (*parsedBlock, int, []sprocdiff.Anomaly) {
	blockLine := lines[start].num
	headers := make(map[string]string)
	var anomalies []sprocdiff.Anomaly

	anomaly := func(kind sprocdiff.AnomalyKind, format string, args ...interface{}) {
		anomalies = append(anomalies, sprocdiff.Anomaly{
			Kind:    kind,
			Source:  source,
			Line:    blockLine,
			Message: fmt.Sprintf(format, args...),
		})
	}

	// Header section: Key: Value lines up to the definition start.
	i := start + 1
	for {
		if i >= len(lines) {
			anomaly(sprocdiff.AnomalyUnterminatedBlock, "block reached end of input before %s", DefinitionStartMarker)
			return nil, i, anomalies
		}
		cur := lines[i].text
		if cur == BlockStartMarker {
			anomaly(sprocdiff.AnomalyUnterminatedBlock, "new block started before %s", DefinitionStartMarker)
			return nil, i, anomalies
		}
		if cur == BlockEndMarker {
			anomaly(sprocdiff.AnomalyUnterminatedDefinition, "block has no definition section")
			return nil, i + 1, anomalies
		}
		if cur == DefinitionStartMarker {
			i++
			break
		}
		if key, value, ok := strings.Cut(cur, ":"); ok {
			// Unknown header keys are ignored.
			headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		i++
	}

	// Definition section: verbatim bytes up to the end marker, excluding
	// exactly the newline that precedes it.
	bodyStart := 0
	if i < len(lines) {
		bodyStart = lines[i].start
	} else {
		bodyStart = len(text)
	}

	definition := ""
	for {
		if i >= len(lines) {
			anomaly(sprocdiff.AnomalyUnterminatedDefinition, "definition reached end of input before %s", DefinitionEndMarker)
			return nil, i, anomalies
		}
		if lines[i].text == BlockStartMarker {
			anomaly(sprocdiff.AnomalyUnterminatedDefinition, "new block started before %s", DefinitionEndMarker)
			return nil, i, anomalies
		}
		if lines[i].text == DefinitionEndMarker {
			bodyEnd := lines[i].start
			if bodyEnd > bodyStart {
				// Strip exactly the newline preceding the end marker.
				if bodyEnd >= 2 && text[bodyEnd-2:bodyEnd] == "\r\n" {
					bodyEnd -= 2
				} else if text[bodyEnd-1] == '\n' {
					bodyEnd--
				}
			}
			definition = text[bodyStart:bodyEnd]
			i++
			break
		}
		i++
	}

	// Require the block end marker; interior blank lines after the
	// definition are tolerated.
	for {
		if i >= len(lines) {
			anomaly(sprocdiff.AnomalyUnterminatedBlock, "block reached end of input before %s", BlockEndMarker)
			return nil, i, anomalies
		}
		if lines[i].text == BlockStartMarker {
			anomaly(sprocdiff.AnomalyUnterminatedBlock, "new block started before %s", BlockEndMarker)
			return nil, i, anomalies
		}
		if lines[i].text == BlockEndMarker {
			i++
			break
		}
		i++
	}

	var missing []string
	for _, required := range []string{headerDatabase, headerSchema, headerName} {
		if headers[required] == "" {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		anomaly(sprocdiff.AnomalyMissingHeader, "missing required header(s): %s", strings.Join(missing, ", "))
		return nil, i, anomalies
	}

	record := &parsedBlock{
		ProcedureRecord: sprocdiff.ProcedureRecord{
			Database:   headers[headerDatabase],
			Schema:     headers[headerSchema],
			Name:       headers[headerName],
			Definition: definition,
		},
		line: blockLine,
	}

	record.CreateDate = parseTimestamp(headers, headerCreateDate, anomaly)
	record.ModifyDate = parseTimestamp(headers, headerModifyDate, anomaly)
	if !record.CreateDate.IsZero() && !record.ModifyDate.IsZero() &&
		record.ModifyDate.Before(record.CreateDate) {
		anomaly(sprocdiff.AnomalyModifyBeforeCreate,
			"%s modified (%s) before created (%s)",
			record.FullName(),
			record.ModifyDate.Format(sprocdiff.TimestampLayout),
			record.CreateDate.Format(sprocdiff.TimestampLayout))
	}

	return record, i, anomalies
}

// parseTimestamp parses one timestamp header. An absent header yields
// the zero time silently; an unparseable value yields the zero time plus
// a warning anomaly. Neither skips the block.
func parseTimestamp(headers map[string]string, key string, anomaly func(sprocdiff.AnomalyKind, string, ...interface{})) time.Time {
	value, ok := headers[key]
	if !ok || value == "" {
		return time.Time{}
	}
	ts, err := time.Parse(sprocdiff.TimestampLayout, value)
	if err != nil {
		anomaly(sprocdiff.AnomalyBadTimestamp, "%s %q does not match %s", key, value, sprocdiff.TimestampLayout)
		return time.Time{}
	}
	return ts
}

// scanLines splits text into lines while keeping byte offsets, so
// definition bodies can be sliced verbatim. Both LF and CRLF endings are
// recognized; the ending itself is not part of the line text.
func scanLines(text string) []line {
	var lines []line
	num := 1
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			end := i
			if end > start && text[end-1] == '\r' {
				end--
			}
			lines = append(lines, line{text: text[start:end], num: num, start: start})
			start = i + 1
			num++
		}
	}
	if start < len(text) {
		lines = append(lines, line{text: text[start:], num: num, start: start})
	}
	return lines
}
