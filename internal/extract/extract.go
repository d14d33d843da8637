// Package extract pulls structured attributes out of free post text.
// It is purely functional: no I/O, deterministic for identical input.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"housing_signals/internal/domain"
)

// Default sanity bounds for extracted purchase prices. Matches below the
// floor or above the ceiling are treated as false positives and discarded.
const (
	DefaultMinPrice = 10_000
	DefaultMaxPrice = 50_000_000
)

var (
	// priceSuffixRe matches $450K, 450k, $1.2M and similar.
	priceSuffixRe = regexp.MustCompile(`(?i)\$?\s*(\d+(?:\.\d+)?)\s*([km])\b`)
	// priceFullRe matches $450,000 or $45000 (5+ digits, comma groups allowed).
	priceFullRe = regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})+|\d{5,})`)
	// cityStateRe matches "City, ST" with a two-letter state abbreviation.
	cityStateRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z]{2})\b`)
)

// usStates holds the 50 USPS state abbreviations plus DC.
var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {},
}

// Config controls the extractor's sanity bounds and city list.
// Zero values fall back to the package defaults.
type Config struct {
	MinPrice float64
	MaxPrice float64
	Cities   []string
}

// Extractor applies the pattern-matching rules to post text.
type Extractor struct {
	minPrice float64
	maxPrice float64
	cities   []cityPattern
}

type cityPattern struct {
	name string
	re   *regexp.Regexp
}

// New builds an Extractor from cfg.
func New(cfg Config) *Extractor {
	if cfg.MinPrice == 0 {
		cfg.MinPrice = DefaultMinPrice
	}
	if cfg.MaxPrice == 0 {
		cfg.MaxPrice = DefaultMaxPrice
	}
	if len(cfg.Cities) == 0 {
		cfg.Cities = DefaultCities
	}

	e := &Extractor{
		minPrice: cfg.MinPrice,
		maxPrice: cfg.MaxPrice,
	}
	for _, name := range cfg.Cities {
		e.cities = append(e.cities, cityPattern{
			name: name,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}
	return e
}

// Extract runs all three sub-extractors over title+selftext. Each may come
// back empty without affecting the others; all-nil fields are the expected
// majority case.
func (e *Extractor) Extract(title, selftext string) domain.ExtractedFields {
	text := title + "\n\n" + selftext

	return domain.ExtractedFields{
		Location:      e.Location(text),
		PurchasePrice: e.Price(text),
		CityMentions:  e.CityMentions(text),
	}
}

// Location returns the first "City, ST" occurrence with a valid state
// abbreviation, or nil.
func (e *Extractor) Location(text string) *string {
	for _, m := range cityStateRe.FindAllStringSubmatch(text, -1) {
		if _, ok := usStates[m[2]]; ok {
			loc := m[1] + ", " + m[2]
			return &loc
		}
	}
	return nil
}

// Price returns the first plausible dollar amount in the text, normalized to
// an absolute float (K -> x1,000, M -> x1,000,000), or nil when no match
// passes the sanity bounds.
func (e *Extractor) Price(text string) *float64 {
	if m := priceSuffixRe.FindStringSubmatch(text); m != nil {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch strings.ToUpper(m[2]) {
			case "K":
				amount *= 1_000
			case "M":
				amount *= 1_000_000
			}
			if e.minPrice <= amount && amount <= e.maxPrice {
				return &amount
			}
		}
	}

	if m := priceFullRe.FindStringSubmatch(text); m != nil {
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err == nil && e.minPrice <= amount && amount <= e.maxPrice {
			return &amount
		}
	}

	return nil
}

// CityMentions returns the distinct configured city names found in the text,
// ordered by first appearance, or nil when none match.
func (e *Extractor) CityMentions(text string) []string {
	type hit struct {
		name string
		pos  int
	}

	var hits []hit
	for _, c := range e.cities {
		if loc := c.re.FindStringIndex(text); loc != nil {
			hits = append(hits, hit{name: c.name, pos: loc[0]})
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.name)
	}
	return names
}

// JoinCities renders a mentions list as the pipe-delimited warehouse value,
// or nil for an empty list.
func JoinCities(cities []string) *string {
	if len(cities) == 0 {
		return nil
	}
	joined := strings.Join(cities, "|")
	return &joined
}
