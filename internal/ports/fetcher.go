package ports

import (
	"context"

	"confex/internal/domain"
)

// ContentFetcher retrieves pages and page hierarchies from a wiki backend.
type ContentFetcher interface {
	// GetPage returns the page record for the given ID.
	GetPage(ctx context.Context, pageID string) (*domain.Page, error)

	// GetChildPages returns the immediate children of the given page, in
	// the order the backend reports them.
	GetChildPages(ctx context.Context, pageID string) ([]domain.ChildRef, error)
}
