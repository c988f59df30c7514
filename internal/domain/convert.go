// Package domain contains the core data types for the travelops backend.
// This package has zero external dependencies and is imported by every other
// internal package (rakuten, repo, service, handler).
package domain

// WeekdayCodes lists the weekday column values in the fixed order rows are
// fanned out: Sunday first, matching the upload format of the booking system
// the generated CSV is imported into.
var WeekdayCodes = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// ConversionRequest carries the raw form fields of one CSV conversion.
// All values are free text exactly as submitted; parsing and validation
// happen in the service layer so the grammar can be unit-tested in isolation.
type ConversionRequest struct {
	// Facilities is multi-line text, one "id name" pair per line.
	Facilities string

	// RateLines is multi-line text, one rate line per line. Each line holds
	// five whitespace-separated tokens: departure-from, departure-to, and
	// three rate fields.
	RateLines string

	// SaleFrom and SaleTo are date tokens, either YYYYMMDD or YYYY/MM/DD.
	SaleFrom string
	SaleTo   string

	// Airport is the departure airport code, free text.
	Airport string

	// Participants selects the participant-count fan-out: "1", "2", or "all".
	Participants string
}

// FacilityInfo is the result of resolving one facility id against the
// external hotel registry. It is immutable after creation; one value is
// produced per facility line and shared by every row built from it.
type FacilityInfo struct {
	ID            string
	Name          string
	RegionCode    string // prefecture-level classification code
	SubRegionCode string // city-level classification code
}

// RateLine is one parsed rate-line record: a departure date range plus
// three profit-rate fields. The rate fields are opaque strings; the booking
// system validates them numerically on import, not us.
type RateLine struct {
	DepartureFrom string
	DepartureTo   string
	Rate1         string
	Rate2         string
	Rate3         string
}

// OutputRow is one record of the generated CSV. The column layout is fixed
// at 18 fields; Record returns them in upload order.
type OutputRow struct {
	FacilityID    string
	FacilityName  string
	RegionCode    string
	SubRegionCode string
	Airport       string
	SaleFrom      string
	SaleTo        string
	DepartureFrom string
	DepartureTo   string
	Weekday       string
	Participants  string
	Rate1         string
	Rate2         string
	Rate3         string
	GeneratedAt   string // "YYYY/MM/DD HH:MM:SS" in JST, captured once per template
}

// recordMarker is the constant final column of every row. The booking
// system treats it as a "record valid" flag.
const recordMarker = "1"

// Record returns the row as the 18 ordered CSV columns. Columns 16 and 17
// are reserved by the upload format and always empty.
func (r OutputRow) Record() []string {
	return []string{
		r.FacilityID,
		r.FacilityName,
		r.RegionCode,
		r.SubRegionCode,
		r.Airport,
		r.SaleFrom,
		r.SaleTo,
		r.DepartureFrom,
		r.DepartureTo,
		r.Weekday,
		r.Participants,
		r.Rate1,
		r.Rate2,
		r.Rate3,
		r.GeneratedAt,
		"",
		"",
		recordMarker,
	}
}

// ErrorList is the ordered collection of human-readable validation and
// lookup failures gathered during one conversion. The pipeline is
// all-or-nothing: if the list is non-empty no rows are returned, even when
// some facilities expanded cleanly.
type ErrorList []string

// Add appends a failure message, preserving insertion order.
func (e *ErrorList) Add(msg string) {
	*e = append(*e, msg)
}
