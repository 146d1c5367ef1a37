package domain

import "time"

// Page is a Confluence content node as returned by the content API.
// Immutable once fetched.
type Page struct {
	ID       string // e.g. "123456"
	Title    string // e.g. "Release Notes"
	HTMLBody string // rendered body (body.view.value)
}

// ChildRef identifies an immediate child page. Order follows the server
// response; stable but not guaranteed sorted.
type ChildRef struct {
	ID    string
	Title string
}

// ExportEntry is one manifest row describing an exported page.
type ExportEntry struct {
	PageID     string
	Title      string
	Path       string // relative to the export root
	Depth      int
	ExportedAt time.Time
}
