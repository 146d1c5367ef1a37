package commands

import (
	"context"
	"fmt"
	"os"

	"confex/internal/application"
	"confex/internal/domain"
	"confex/internal/ports"
)

// ExportPageResult contains the result of exporting a single page
type ExportPageResult struct {
	Title    string
	Markdown string
	Path     string // empty when the page was not written to disk
}

// ExportPageCommand exports one page to a Markdown file, or returns the
// Markdown for the caller to print when no output file is given.
type ExportPageCommand struct {
	fetcher    ports.ContentFetcher
	PageID     string
	OutputFile string
}

// NewExportPageCommand creates a new ExportPageCommand
func NewExportPageCommand(fetcher ports.ContentFetcher, pageID, outputFile string) *ExportPageCommand {
	return &ExportPageCommand{
		fetcher:    fetcher,
		PageID:     pageID,
		OutputFile: outputFile,
	}
}

// Validate checks if the export operation is valid
func (c *ExportPageCommand) Validate() error {
	if c.PageID == "" {
		return &application.ValidationError{
			Field:   "pageID",
			Message: "page ID is required",
		}
	}
	return nil
}

// Execute runs the export page command
func (c *ExportPageCommand) Execute(ctx context.Context) (*ExportPageResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	page, err := c.fetcher.GetPage(ctx, c.PageID)
	if err != nil {
		return nil, err
	}

	markdown := domain.RenderDocument(page.Title, page.HTMLBody)

	result := &ExportPageResult{
		Title:    page.Title,
		Markdown: markdown,
	}

	if c.OutputFile != "" {
		if err := os.WriteFile(c.OutputFile, []byte(markdown), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", c.OutputFile, err)
		}
		result.Path = c.OutputFile
	}

	return result, nil
}
