package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"confex/internal/domain"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestExportPageCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pageID  string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid export",
			pageID:  "123456",
			wantErr: false,
		},
		{
			name:    "empty page ID",
			pageID:  "",
			wantErr: true,
			errMsg:  "page ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ExportPageCommand{PageID: tt.pageID}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestExportPageToFile(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]*domain.Page{
			"42": {ID: "42", Title: "Answer", HTMLBody: "<h2>Title</h2><p>Hello <strong>world</strong></p>"},
		},
		pageErr:  map[string]error{},
		childErr: map[string]error{},
	}

	path := filepath.Join(t.TempDir(), "out.md")
	cmd := NewExportPageCommand(fetcher, "42", path)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Title != "Answer" || result.Path != path {
		t.Errorf("unexpected result: %+v", result)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "# Answer\n\n## Title\nHello **world**\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestExportPageWithoutFile(t *testing.T) {
	fetcher := &fakeFetcher{
		pages: map[string]*domain.Page{
			"42": {ID: "42", Title: "Answer", HTMLBody: "<p>body</p>"},
		},
		pageErr:  map[string]error{},
		childErr: map[string]error{},
	}

	cmd := NewExportPageCommand(fetcher, "42", "")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Path != "" {
		t.Errorf("Path = %q, want empty", result.Path)
	}
	if result.Markdown != "# Answer\n\nbody\n" {
		t.Errorf("Markdown = %q", result.Markdown)
	}
}

func TestExportPageFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{
		pages:    map[string]*domain.Page{},
		pageErr:  map[string]error{"42": errors.New("page not found")},
		childErr: map[string]error{},
	}

	path := filepath.Join(t.TempDir(), "out.md")
	cmd := NewExportPageCommand(fetcher, "42", path)

	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written when the fetch fails")
	}
}
