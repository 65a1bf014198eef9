package query

import (
	"net/url"
	"strconv"
)

// URL parameter names for shareable listing links.
const (
	paramTerm = "q"
	paramSort = "sort"
	paramPage = "page"
)

// Values encodes the state as URL query parameters so a listing view
// is bookmarkable. Defaults (empty term, relevance sort, page 1) are
// omitted; an absent parameter means its default.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Term != "" {
		v.Set(paramTerm, s.Term)
	}
	if s.Sort != "" && s.Sort != SortRelevance {
		v.Set(paramSort, string(s.Sort))
	}
	if s.Page > 1 {
		v.Set(paramPage, strconv.Itoa(s.Page))
	}
	return v
}

// ParseState reads query parameters back into a State. Unknown sort
// values fall back to relevance, a missing or bad page to 1.
func ParseState(v url.Values) State {
	page := 1
	if raw := v.Get(paramPage); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return State{
		Term: v.Get(paramTerm),
		Sort: ParseSortMode(v.Get(paramSort)),
		Page: page,
	}
}
