// Package query holds the pure list-view pipeline: a raw product list
// is filtered by search term, sorted, paginated and reduced to
// autocomplete suggestions. Nothing in here hits the network or keeps
// state, so every step can be re-run whenever an input changes.
package query

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
)

// SortMode selects the ordering applied after filtering.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNameAsc   SortMode = "name-asc"
	SortNameDesc  SortMode = "name-desc"
)

// ParseSortMode maps a raw string onto a SortMode, falling back to
// relevance for anything unknown.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return SortMode(raw)
	default:
		return SortRelevance
	}
}

const (
	DefaultPageSize        = 9
	DefaultSuggestionLimit = 6

	// MinSuggestTermLen is the minimum number of runes a search term
	// needs before suggestions (and the no-matches signal) kick in.
	MinSuggestTermLen = 2
)

// State is the view-local query state: what the visitor typed, how the
// list is sorted and which page is shown. The zero value means "no
// search, relevance order"; Page is 1-indexed.
type State struct {
	Term string
	Sort SortMode
	Page int
}

// Options configures the pipeline. Zero fields take the defaults.
type Options struct {
	PageSize        int
	SuggestionLimit int
}

// PageInfo describes where the returned window sits in the full
// filtered result. TotalPages is 0 for an empty result set.
type PageInfo struct {
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
}

// Suggestion is one autocomplete entry shown under the search box.
type Suggestion struct {
	ID       string
	Title    string
	ImageURL string
	Alt      string
	Price    float64
}

// Result is the outcome of one pipeline run.
type Result struct {
	Items       []entity.Product
	PageInfo    PageInfo
	Suggestions []Suggestion

	// NoProducts means the source list itself was empty; NoMatches
	// means a non-empty search term filtered everything out. The two
	// are signaled separately so the view can tell "catalog is empty"
	// from "no matches for the term".
	NoProducts bool
	NoMatches  bool
}

// Filter keeps products whose title contains the trimmed term,
// case-insensitively. An empty or whitespace-only term passes the
// input through unchanged.
func Filter(products []entity.Product, term string) []entity.Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return products
	}

	needle := strings.ToLower(term)
	matched := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Sort returns the products ordered by mode. The sort is stable and
// does not mutate its input; relevance is the identity ordering.
func Sort(products []entity.Product, mode SortMode) []entity.Product {
	if mode == SortRelevance || mode == "" {
		return products
	}

	sorted := make([]entity.Product, len(products))
	copy(sorted, products)

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectivePrice() < sorted[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectivePrice() > sorted[j].EffectivePrice()
		})
	case SortNameAsc:
		byName := newNameCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return byName.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case SortNameDesc:
		byName := newNameCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return byName.CompareString(sorted[i].Title, sorted[j].Title) > 0
		})
	}
	return sorted
}

// The store sells in NOK, so names collate the Norwegian way.
func newNameCollator() *collate.Collator {
	return collate.New(language.Norwegian, collate.IgnoreCase)
}

// Paginate cuts the page-sized window out of products. The requested
// page is clamped into [1, TotalPages]; out-of-range requests never
// error.
func Paginate(products []entity.Product, page, pageSize int) ([]entity.Product, PageInfo) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalItems := len(products)
	totalPages := (totalItems + pageSize - 1) / pageSize
	page = ClampPage(page, totalPages)

	info := PageInfo{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}

	if totalItems == 0 {
		return nil, info
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return products[start:end], info
}

// ClampPage forces page into [1, totalPages]. With zero pages the
// result is still page 1, matching an empty but navigable view.
func ClampPage(page, totalPages int) int {
	if page < 1 || totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Suggest returns up to limit suggestions from an already filtered and
// sorted list. Terms shorter than MinSuggestTermLen runes yield none.
func Suggest(products []entity.Product, term string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	if utf8.RuneCountInString(strings.TrimSpace(term)) < MinSuggestTermLen {
		return nil
	}

	if len(products) < limit {
		limit = len(products)
	}
	suggestions := make([]Suggestion, 0, limit)
	for _, p := range products[:limit] {
		suggestions = append(suggestions, Suggestion{
			ID:       p.ID,
			Title:    p.Title,
			ImageURL: p.Image.URL,
			Alt:      p.Image.Alt,
			Price:    p.EffectivePrice(),
		})
	}
	return suggestions
}

// Run executes the whole pipeline for one query state.
func Run(products []entity.Product, state State, opts Options) Result {
	filtered := Filter(products, state.Term)
	sorted := Sort(filtered, state.Sort)
	items, info := Paginate(sorted, state.Page, opts.PageSize)

	term := strings.TrimSpace(state.Term)
	return Result{
		Items:       items,
		PageInfo:    info,
		Suggestions: Suggest(sorted, state.Term, opts.SuggestionLimit),
		NoProducts:  len(products) == 0,
		NoMatches:   len(products) > 0 && term != "" && len(filtered) == 0,
	}
}
