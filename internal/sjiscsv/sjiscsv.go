// Package sjiscsv writes the legacy CSV format the booking system imports:
// comma-separated, every field quoted, CRLF records, Shift_JIS encoded.
//
// encoding/csv only quotes fields that need it, and the import side of the
// booking system requires quotes on every field, so the framing is done by
// hand here. It is an encoder only: the matching reader in tests uses the
// stdlib csv reader over a Shift_JIS decoder, which accepts this output.
package sjiscsv

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Encode serializes records into the legacy format. Runes with no Shift_JIS
// representation are substituted, not rejected — a best-effort policy the
// import side expects, at the cost of silently mangling such characters.
// No header row is written.
func Encode(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder()))

	for _, record := range records {
		if _, err := w.Write([]byte(frame(record))); err != nil {
			return nil, fmt.Errorf("sjiscsv.Encode: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("sjiscsv.Encode: %w", err)
	}
	return buf.Bytes(), nil
}

// frame renders one record as a fully-quoted CRLF-terminated CSV line.
// Embedded quotes are doubled per RFC 4180.
func frame(record []string) string {
	quoted := make([]string, len(record))
	for i, field := range record {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\r\n"
}
