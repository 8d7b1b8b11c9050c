package models

import "strconv"

// SortOption selects the ordering of a catalog query result.
type SortOption string

const (
	SortByName         SortOption = "name"
	SortByPriceAsc     SortOption = "price-asc"
	SortByPriceDesc    SortOption = "price-desc"
	SortByDurationAsc  SortOption = "duration-asc"
	SortByDurationDesc SortOption = "duration-desc"
)

// ParseSortOption maps a raw query value to a SortOption. Unknown or empty
// values fall back to sorting by name.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortByPriceAsc, SortByPriceDesc, SortByDurationAsc, SortByDurationDesc, SortByName:
		return SortOption(raw)
	}
	return SortByName
}

// FilterState carries the active constraints of a single catalog query.
// It is rebuilt from request query parameters on every call and never
// persisted. Nil bounds mean "unconstrained".
type FilterState struct {
	Region   *Region    `json:"region,omitempty"`
	MinPrice *int       `json:"minPrice,omitempty"`
	MaxPrice *int       `json:"maxPrice,omitempty"`
	MinDays  *int       `json:"minDays,omitempty"`
	MaxDays  *int       `json:"maxDays,omitempty"`
	Sort     SortOption `json:"sort"`
}

// IsEmpty reports whether no filtering constraint is active (sort is an
// ordering concern, not a constraint).
func (f FilterState) IsEmpty() bool {
	return f.Region == nil && f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinDays == nil && f.MaxDays == nil
}

// Values renders the state back into query-parameter form. Used by tests to
// check the parse round-trip and by callers building canonical listing URLs.
func (f FilterState) Values() map[string]string {
	out := make(map[string]string)
	if f.Region != nil {
		out["region"] = string(*f.Region)
	}
	if f.MinPrice != nil {
		out["minPrice"] = strconv.Itoa(*f.MinPrice)
	}
	if f.MaxPrice != nil {
		out["maxPrice"] = strconv.Itoa(*f.MaxPrice)
	}
	if f.MinDays != nil {
		out["minDays"] = strconv.Itoa(*f.MinDays)
	}
	if f.MaxDays != nil {
		out["maxDays"] = strconv.Itoa(*f.MaxDays)
	}
	if f.Sort != "" {
		out["sort"] = string(f.Sort)
	}
	return out
}
