package query

// Ellipsis marks a gap in a page-button window.
const Ellipsis = -1

const defaultMaxButtons = 7

// PageWindow computes the numbered buttons a pagination control shows:
// a window of up to maxButtons page numbers around current, with the
// first and last page pinned and Ellipsis filling the gaps. A single
// page needs no controls, so the window is empty.
func PageWindow(current, totalPages, maxButtons int) []int {
	if totalPages <= 1 {
		return nil
	}
	if maxButtons <= 0 {
		maxButtons = defaultMaxButtons
	}
	current = ClampPage(current, totalPages)

	half := maxButtons / 2
	start := current - half
	if start < 1 {
		start = 1
	}
	end := start + maxButtons - 1
	if end > totalPages {
		end = totalPages
	}
	// Re-anchor so the window stays maxButtons wide near the last page.
	start = end - maxButtons + 1
	if start < 1 {
		start = 1
	}

	var pages []int
	if start > 1 {
		pages = append(pages, 1)
		if start > 2 {
			pages = append(pages, Ellipsis)
		}
	}
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	if end < totalPages {
		if end < totalPages-1 {
			pages = append(pages, Ellipsis)
		}
		pages = append(pages, totalPages)
	}
	return pages
}
