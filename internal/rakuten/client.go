// Package rakuten implements the facility resolver against the Rakuten
// Travel SimpleHotelSearch API. It is the only package that talks to the
// outside network; the service layer depends on it through the
// service.FacilityResolver interface, never on this concrete type.
package rakuten

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/travelops/backend/internal/domain"
)

// DefaultBaseURL is the production SimpleHotelSearch endpoint.
const DefaultBaseURL = "https://app.rakuten.co.jp/services/api/Travel/SimpleHotelSearch/20170426"

// DefaultDelay is the courtesy pause inserted before every lookup call.
// It is a fixed wait, not a backoff: the API's rate limit is generous, and
// conversions resolve facilities sequentially, so a small constant gap is
// enough to stay well under it.
const DefaultDelay = 100 * time.Millisecond

// Credentials are the two values every SimpleHotelSearch request must carry.
// They come from process configuration; Resolve rejects empty credentials
// before attempting any network call.
type Credentials struct {
	ApplicationID string
	AffiliateID   string
}

// Client resolves facility ids against the hotel registry.
type Client struct {
	httpc   *http.Client
	baseURL string
	creds   Credentials
	delay   time.Duration
}

// Option customizes a Client. Used by tests to point at an httptest server
// and to drop the courtesy delay.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithDelay overrides the courtesy delay before each call.
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// NewClient constructs a Client. Credentials may be empty at construction —
// the rest of the application must still boot without them — but every
// Resolve call checks them first and fails with domain.ErrConfiguration.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		// Explicit timeout rather than http.DefaultClient's none: a hung
		// lookup would otherwise pin the conversion request forever.
		httpc:   &http.Client{Timeout: 10 * time.Second},
		baseURL: DefaultBaseURL,
		creds:   creds,
		delay:   DefaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse mirrors the slice of the SimpleHotelSearch JSON we consume.
// The "hotel" array mixes object shapes by position: index 0 carries the
// basic info, index 2 the detail info. Pointers stay nil when an element is
// a different shape, which Resolve treats as a malformed response.
type searchResponse struct {
	Hotels []struct {
		Hotel []hotelEntry `json:"hotel"`
	} `json:"hotels"`
}

type hotelEntry struct {
	HotelBasicInfo  *hotelBasicInfo  `json:"hotelBasicInfo"`
	HotelDetailInfo *hotelDetailInfo `json:"hotelDetailInfo"`
}

type hotelBasicInfo struct {
	HotelName string `json:"hotelName"`
}

type hotelDetailInfo struct {
	MiddleClassCode string `json:"middleClassCode"`
	SmallClassCode  string `json:"smallClassCode"`
}

// Resolve looks up facilityID and validates the registry's name against
// expectedName (exact match after trimming edge whitespace, case-sensitive).
//
// Error taxonomy: domain.ErrConfiguration for missing credentials (checked
// before any network activity), domain.ErrLookupFailed for transport,
// decode, or response-shape failures, domain.ErrNameMismatch when the names
// disagree. Error messages are user-facing — the conversion pipeline
// collects them verbatim into its error list.
func (c *Client) Resolve(ctx context.Context, facilityID, expectedName string) (domain.FacilityInfo, error) {
	if c.creds.ApplicationID == "" || c.creds.AffiliateID == "" {
		return domain.FacilityInfo{}, fmt.Errorf("%w: lookup service credentials are not set", domain.ErrConfiguration)
	}

	// Courtesy pause before every call; see DefaultDelay.
	time.Sleep(c.delay)

	q := url.Values{}
	q.Set("format", "json")
	q.Set("responseType", "large")
	q.Set("hotelNo", facilityID)
	q.Set("applicationId", c.creds.ApplicationID)
	q.Set("affiliateId", c.creds.AffiliateID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.FacilityInfo{}, c.lookupErr(facilityID, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.FacilityInfo{}, c.lookupErr(facilityID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.FacilityInfo{}, c.lookupErr(facilityID, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.FacilityInfo{}, c.lookupErr(facilityID, err)
	}

	if len(body.Hotels) == 0 || len(body.Hotels[0].Hotel) < 3 {
		return domain.FacilityInfo{}, c.lookupErr(facilityID, fmt.Errorf("response has no hotel entries"))
	}
	basic := body.Hotels[0].Hotel[0].HotelBasicInfo
	detail := body.Hotels[0].Hotel[2].HotelDetailInfo
	if basic == nil || detail == nil {
		return domain.FacilityInfo{}, c.lookupErr(facilityID, fmt.Errorf("response is missing hotel info fields"))
	}

	if strings.TrimSpace(expectedName) != strings.TrimSpace(basic.HotelName) {
		return domain.FacilityInfo{}, fmt.Errorf("facility %s: %w: expected %q, got %q",
			facilityID, domain.ErrNameMismatch, strings.TrimSpace(expectedName), strings.TrimSpace(basic.HotelName))
	}

	return domain.FacilityInfo{
		ID:            facilityID,
		Name:          basic.HotelName,
		RegionCode:    detail.MiddleClassCode,
		SubRegionCode: detail.SmallClassCode,
	}, nil
}

// lookupErr wraps a transport or shape failure with the facility id and the
// ErrLookupFailed sentinel.
func (c *Client) lookupErr(facilityID string, err error) error {
	return fmt.Errorf("facility %s: %w: %v", facilityID, domain.ErrLookupFailed, err)
}
