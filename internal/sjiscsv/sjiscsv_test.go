package sjiscsv_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/pkordes/travelops/backend/internal/sjiscsv"
)

// decodeCSV reads Shift_JIS CSV bytes back into records using the stdlib
// reader over a Shift_JIS decoder — the matching reader of the round-trip
// property.
func decodeCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	r := csv.NewReader(transform.NewReader(bytes.NewReader(data), japanese.ShiftJIS.NewDecoder()))
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestEncode_RoundTrip(t *testing.T) {
	records := [][]string{
		{"143522", "グランドホテル東京", "tokyo", "shinjuku", "HND"},
		{"98", "Grand Hotel, Annex", `quote "inside"`, "", "2024/06/01"},
	}

	data, err := sjiscsv.Encode(records)

	require.NoError(t, err)
	assert.Equal(t, records, decodeCSV(t, data))
}

// Every field is quoted, including empty ones, and records end with CRLF.
func TestEncode_AllFieldsQuotedCRLF(t *testing.T) {
	data, err := sjiscsv.Encode([][]string{{"a", "", "c"}})

	require.NoError(t, err)
	assert.Equal(t, "\"a\",\"\",\"c\"\r\n", string(data))
}

func TestEncode_NoHeaderRow(t *testing.T) {
	data, err := sjiscsv.Encode([][]string{{"only", "row"}})

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\r\n"))
}

func TestEncode_JapaneseTextIsShiftJIS(t *testing.T) {
	data, err := sjiscsv.Encode([][]string{{"東京"}})

	require.NoError(t, err)
	// "東京" in Shift_JIS is 0x938C 0x8B9E — the UTF-8 bytes must not appear.
	assert.NotContains(t, string(data), "東京")
	assert.Contains(t, string(data), "\x93\x8c\x8b\x9e")
}

// Characters outside the Shift_JIS repertoire are substituted, not rejected:
// the encode succeeds, the affected field comes back changed, and every
// other field survives intact.
func TestEncode_UnencodableRuneIsReplaced(t *testing.T) {
	records := [][]string{{"😀", "ホテル", "plain"}}

	data, err := sjiscsv.Encode(records)

	require.NoError(t, err)
	decoded := decodeCSV(t, data)
	require.Len(t, decoded, 1)
	require.Len(t, decoded[0], 3)
	assert.NotEqual(t, "😀", decoded[0][0], "unencodable rune must have been substituted")
	assert.NotEmpty(t, decoded[0][0], "substitution writes a replacement, not nothing")
	assert.Equal(t, "ホテル", decoded[0][1])
	assert.Equal(t, "plain", decoded[0][2])
}

func TestEncode_Empty(t *testing.T) {
	data, err := sjiscsv.Encode(nil)

	require.NoError(t, err)
	assert.Empty(t, data)
}
