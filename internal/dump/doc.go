// Package dump parses flat-text database object dump files into ordered
// sequences of procedure records.
//
// The dump format is line-oriented. Each stored procedure occupies one
// block delimited by fixed, case-sensitive markers matched at the start
// of a line with no leading whitespace:
//
//	=== STORED PROCEDURE START ===
//	Database: <string>
//	Schema: <string>
//	Name: <string>
//	CreateDate: <YYYY-MM-DD HH:MM:SS.fff>
//	ModifyDate: <YYYY-MM-DD HH:MM:SS.fff>
//	--- DEFINITION START ---
//	<verbatim multi-line body>
//	--- DEFINITION END ---
//	=== STORED PROCEDURE END ===
//
// Blocks repeat, separated by zero or more blank lines. The definition
// body is captured byte-for-byte, excluding the marker lines themselves
// and excluding exactly the newline immediately preceding the definition
// end marker.
//
// Parsing never fails on malformed content: malformed blocks become
// anomalies and the parser resynchronizes at the next block start
// marker, so one bad block never affects its siblings.
//
// Known ambiguity: a definition body that itself contains a marker
// string at the start of a line mis-terminates the block. The resulting
// shape surfaces as an unterminated-block anomaly rather than silent
// corruption; the format offers no escaping mechanism to do better.
package dump
