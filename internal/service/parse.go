package service

import (
	"fmt"
	"strings"
)

// parsedRateLine is one tokenized rate line before date normalization.
// Fields are kept raw here; ConvertService normalizes the two dates later,
// per facility, so date failures are reported in expansion order.
type parsedRateLine struct {
	departureFrom string
	departureTo   string
	rate1         string
	rate2         string
	rate3         string
}

// parsedFacilityLine is one tokenized facility line: the numeric id and the
// expected facility name it will be validated against.
type parsedFacilityLine struct {
	id   string
	name string
}

// splitLines breaks multi-line form input into trimmed, non-empty lines.
// Textareas routinely end with a trailing newline; blank lines are not
// records and are skipped rather than reported.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseRateLine tokenizes one rate line. The grammar is exactly five
// whitespace-separated tokens: departure-from, departure-to, rate1-3.
func parseRateLine(line string) (parsedRateLine, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return parsedRateLine{}, fmt.Errorf("expected 5 fields, got %d: %q", len(fields), line)
	}
	return parsedRateLine{
		departureFrom: fields[0],
		departureTo:   fields[1],
		rate1:         fields[2],
		rate2:         fields[3],
		rate3:         fields[4],
	}, nil
}

// parseFacilityLine tokenizes one facility line. The first whitespace-
// delimited token is the facility id; the remainder of the line is the name.
// Splitting only at the first gap keeps internal spacing of names like
// "Grand Hotel  Annex" intact.
func parseFacilityLine(line string) (parsedFacilityLine, error) {
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return parsedFacilityLine{}, fmt.Errorf("expected id and name, got %q", line)
	}
	name := strings.TrimSpace(line[idx:])
	if name == "" {
		return parsedFacilityLine{}, fmt.Errorf("expected id and name, got %q", line)
	}
	return parsedFacilityLine{id: line[:idx], name: name}, nil
}

// participantValues resolves the participant-count selector into the list of
// values rows are fanned out over: "all" expands to both counts, "1" and "2"
// to themselves. Anything else is a selector error.
func participantValues(selector string) ([]string, error) {
	switch selector {
	case "all":
		return []string{"1", "2"}, nil
	case "1", "2":
		return []string{selector}, nil
	default:
		return nil, fmt.Errorf("no participant option selected")
	}
}
