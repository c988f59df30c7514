package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/travelops/backend/internal/domain"
)

// jst is the fixed time zone generation timestamps are stamped in. Japan has
// no DST, so a fixed offset is equivalent to Asia/Tokyo and never depends on
// the host's tzdata.
var jst = time.FixedZone("JST", 9*60*60)

// generatedAtLayout formats the per-template generation timestamp.
const generatedAtLayout = "2006/01/02 15:04:05"

// FacilityResolver looks up a facility id in the external hotel registry and
// validates the returned name against the expected one. Defined here, in the
// consumer package, so ConvertService can be unit-tested with a mock instead
// of a live API client.
type FacilityResolver interface {
	Resolve(ctx context.Context, facilityID, expectedName string) (domain.FacilityInfo, error)
}

// ConvertService expands a raw conversion request into the ordered CSV rows
// of the travel-package upload format.
type ConvertService struct {
	resolver FacilityResolver

	// now is swappable so tests can pin the generation timestamp.
	now func() time.Time
}

// NewConvertService constructs a ConvertService backed by the given resolver.
func NewConvertService(resolver FacilityResolver) *ConvertService {
	return &ConvertService{resolver: resolver, now: time.Now}
}

// Convert runs the full expansion pipeline:
//
//  1. Tokenize rate lines and validate the sale period and participant
//     selector, collecting every failure.
//  2. Gate: if anything failed so far, return the error list without making
//     a single lookup call — resolving facilities is the expensive step and
//     a malformed request is already doomed.
//  3. Resolve each facility line and cross-multiply: facility × rate line ×
//     participant value × active weekday. Failures are collected per
//     facility and per rate line; siblings keep processing.
//  4. Gate: if anything failed during expansion, every accumulated row is
//     discarded and only the errors are returned. All-or-nothing — a row
//     list is only ever produced when each of its rows passed validation.
//
// Row order is facility line order, then rate line order, then participant
// value, then the fixed weekday order SUN through SAT.
func (s *ConvertService) Convert(ctx context.Context, req domain.ConversionRequest) ([]domain.OutputRow, domain.ErrorList) {
	var errs domain.ErrorList

	// --- Cheap validation: tokens, dates, selector ----------------------
	var rates []parsedRateLine
	for i, line := range splitLines(req.RateLines) {
		rl, err := parseRateLine(line)
		if err != nil {
			errs.Add(fmt.Sprintf("rate line %d: %v", i+1, err))
			continue
		}
		rates = append(rates, rl)
	}

	saleFrom, err := NormalizeDate(req.SaleFrom)
	if err != nil {
		errs.Add(fmt.Sprintf("sale period from: invalid date format: %q", req.SaleFrom))
	}
	saleTo, err := NormalizeDate(req.SaleTo)
	if err != nil {
		errs.Add(fmt.Sprintf("sale period to: invalid date format: %q", req.SaleTo))
	}
	if saleFrom != "" && saleTo != "" {
		// The ordering check only runs when both endpoints are real calendar
		// dates; the lenient slashed passthrough can let non-dates through
		// and those stay untouched, as documented on NormalizeDate.
		from, errF := parseCanonical(saleFrom)
		to, errT := parseCanonical(saleTo)
		if errF == nil && errT == nil && from.After(to) {
			errs.Add(fmt.Sprintf("sale period: inverted range: %s > %s", saleFrom, saleTo))
		}
	}

	participants, err := participantValues(req.Participants)
	if err != nil {
		errs.Add(err.Error())
	}

	if len(errs) > 0 {
		return nil, errs
	}

	// --- Expansion: facility × rate line × participant × weekday --------
	var rows []domain.OutputRow
	for i, line := range splitLines(req.Facilities) {
		fl, err := parseFacilityLine(line)
		if err != nil {
			errs.Add(fmt.Sprintf("facility line %d: %v", i+1, err))
			continue
		}

		info, err := s.resolver.Resolve(ctx, fl.id, fl.name)
		if err != nil {
			errs.Add(err.Error())
			continue
		}

		for j, rl := range rates {
			depFrom, depTo, period, ok := s.departurePeriod(j, rl, &errs)
			if !ok {
				continue
			}
			active := ActiveWeekdays(period.from, period.to)

			for _, p := range participants {
				template := domain.OutputRow{
					FacilityID:    info.ID,
					FacilityName:  info.Name,
					RegionCode:    info.RegionCode,
					SubRegionCode: info.SubRegionCode,
					Airport:       req.Airport,
					SaleFrom:      saleFrom,
					SaleTo:        saleTo,
					DepartureFrom: depFrom,
					DepartureTo:   depTo,
					Participants:  p,
					Rate1:         rl.rate1,
					Rate2:         rl.rate2,
					Rate3:         rl.rate3,
					GeneratedAt:   s.now().In(jst).Format(generatedAtLayout),
				}
				for _, code := range domain.WeekdayCodes {
					if !active[code] {
						continue
					}
					row := template
					row.Weekday = code
					rows = append(rows, row)
				}
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rows, nil
}

// datePeriod is a parsed departure range ready for weekday expansion.
type datePeriod struct {
	from, to time.Time
}

// departurePeriod normalizes and parses one rate line's departure range.
// Unlike the sale period, departure dates must be real calendar dates — the
// weekday fan-out iterates them — so a slashed non-date that survived the
// lenient normalizer is still rejected here. Failures are recorded on errs
// and reported with the 1-based rate line number.
func (s *ConvertService) departurePeriod(idx int, rl parsedRateLine, errs *domain.ErrorList) (string, string, datePeriod, bool) {
	n := idx + 1

	depFrom, err := NormalizeDate(rl.departureFrom)
	if err != nil {
		errs.Add(fmt.Sprintf("rate line %d: departure from: invalid date format: %q", n, rl.departureFrom))
		return "", "", datePeriod{}, false
	}
	depTo, err := NormalizeDate(rl.departureTo)
	if err != nil {
		errs.Add(fmt.Sprintf("rate line %d: departure to: invalid date format: %q", n, rl.departureTo))
		return "", "", datePeriod{}, false
	}

	from, err := parseCanonical(depFrom)
	if err != nil {
		errs.Add(fmt.Sprintf("rate line %d: departure from: invalid calendar date: %q", n, depFrom))
		return "", "", datePeriod{}, false
	}
	to, err := parseCanonical(depTo)
	if err != nil {
		errs.Add(fmt.Sprintf("rate line %d: departure to: invalid calendar date: %q", n, depTo))
		return "", "", datePeriod{}, false
	}
	if from.After(to) {
		errs.Add(fmt.Sprintf("rate line %d: departure period: inverted range: %s > %s", n, depFrom, depTo))
		return "", "", datePeriod{}, false
	}

	return depFrom, depTo, datePeriod{from: from, to: to}, true
}
