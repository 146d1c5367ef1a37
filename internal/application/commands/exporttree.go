package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"confex/internal/application"
	"confex/internal/domain"
	"confex/internal/ports"
)

// ExportTreeResult contains the result of a recursive export
type ExportTreeResult struct {
	PagesExported int
}

// ExportTreeCommand exports a page and its descendants as a directory tree:
// one Markdown file per page, one subdirectory per page that has children.
//
// The walk is depth-first and fully sequential, children in server order.
// There is no cycle detection; the depth bound is the only guard against a
// page graph that loops back on itself. Sibling pages whose titles sanitize
// to the same filename collide, last write wins.
type ExportTreeCommand struct {
	fetcher  ports.ContentFetcher
	status   ports.StatusReporter
	manifest ports.ExportManifest // optional, may be nil

	PageID    string
	OutputDir string
	MaxDepth  int

	exported int
}

// NewExportTreeCommand creates a new ExportTreeCommand. manifest may be nil
// when no manifest should be recorded.
func NewExportTreeCommand(fetcher ports.ContentFetcher, status ports.StatusReporter, manifest ports.ExportManifest, pageID, outputDir string, maxDepth int) *ExportTreeCommand {
	return &ExportTreeCommand{
		fetcher:   fetcher,
		status:    status,
		manifest:  manifest,
		PageID:    pageID,
		OutputDir: outputDir,
		MaxDepth:  maxDepth,
	}
}

// Validate checks if the export operation is valid
func (c *ExportTreeCommand) Validate() error {
	if c.PageID == "" {
		return &application.ValidationError{
			Field:   "pageID",
			Message: "page ID is required",
		}
	}
	if c.OutputDir == "" {
		return &application.ValidationError{
			Field:   "outputDir",
			Message: "output directory is required",
		}
	}
	if c.MaxDepth < 0 {
		return &application.ValidationError{
			Field:   "maxDepth",
			Message: "max depth must not be negative",
		}
	}
	return nil
}

// Execute runs the tree export command
func (c *ExportTreeCommand) Execute(ctx context.Context) (*ExportTreeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	c.exported = 0
	if err := c.exportNode(ctx, c.PageID, c.OutputDir, 0); err != nil {
		return nil, err
	}

	return &ExportTreeResult{PagesExported: c.exported}, nil
}

func (c *ExportTreeCommand) exportNode(ctx context.Context, pageID, dir string, depth int) error {
	// A failed page fetch is fatal for the whole run.
	page, err := c.fetcher.GetPage(ctx, pageID)
	if err != nil {
		return err
	}

	c.status.Pagef(depth, "Exporting: %s", page.Title)

	safeTitle := domain.SanitizeFilename(page.Title)
	outputFile := filepath.Join(dir, safeTitle+".md")
	markdown := domain.RenderDocument(page.Title, page.HTMLBody)
	if err := os.WriteFile(outputFile, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	c.exported++

	if c.manifest != nil {
		rel, err := filepath.Rel(c.OutputDir, outputFile)
		if err != nil {
			rel = outputFile
		}
		entry := domain.ExportEntry{
			PageID:     page.ID,
			Title:      page.Title,
			Path:       rel,
			Depth:      depth,
			ExportedAt: time.Now(),
		}
		if err := c.manifest.Record(entry); err != nil {
			c.status.Warnf("could not record page %s in manifest: %v", page.ID, err)
		}
	}

	children, err := c.fetcher.GetChildPages(ctx, pageID)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// A failed child listing only degrades this subtree to "no
		// children"; the page itself is already on disk.
		c.status.Warnf("could not get children for page %s: %v", pageID, err)
		return nil
	}
	if len(children) == 0 {
		return nil
	}

	c.status.Pagef(depth, "└─ Found %d child page(s)", len(children))

	// Children would sit at depth+1. The node at exactly MaxDepth is
	// still exported above; only its children are cut off, before any of
	// their bodies are fetched and before their directory is created.
	if depth >= c.MaxDepth {
		c.status.Warnf("max depth reached, skipping further children")
		return nil
	}

	childDir := filepath.Join(dir, safeTitle)
	if err := os.MkdirAll(childDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", childDir, err)
	}

	for _, child := range children {
		if err := c.exportNode(ctx, child.ID, childDir, depth+1); err != nil {
			return err
		}
	}
	return nil
}
