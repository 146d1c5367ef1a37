package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"confex/internal/adapters/confluence"
	"confex/internal/adapters/sqlite"
	"confex/internal/adapters/term"
	"confex/internal/application"
	"confex/internal/application/commands"
	"confex/internal/config"
	"confex/internal/ports"
)

// DefaultOutputDir is where tree exports land when no output is named.
const DefaultOutputDir = "confluence-export"

var (
	envFile      string
	withChildren bool
	maxDepth     int
	withManifest bool
)

var rootCmd = &cobra.Command{
	Use:   "confex <page-id> [output]",
	Short: "Export Confluence pages to Markdown",
	Long: `confex exports Confluence wiki pages to Markdown files.

Without --with-children a single page is exported to the given output file,
or printed to stdout when no output is named. With --with-children the page
and all its descendants are exported into a directory tree, one Markdown
file per page and one subdirectory per page that has children.

Credentials are resolved from an env file (default .env) with the OS
environment as fallback: CONFLUENCE_BASE_URL, CONFLUENCE_USERNAME and
CONFLUENCE_API_TOKEN.

Examples:
  confex 123456 page.md
  confex 123456 --with-children docs/ --max-depth 3`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if withManifest && !withChildren {
			return &application.ValidationError{
				Field:   "manifest",
				Message: "--manifest requires --with-children",
			}
		}

		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		pageID := args[0]
		output := ""
		if len(args) == 2 {
			output = args[1]
		}

		fetcher := confluence.NewClient(cfg.BaseURL, cfg.Username, cfg.APIToken)
		reporter := term.NewReporter(os.Stdout, os.Stderr)

		if !withChildren {
			return exportSinglePage(cmd.Context(), fetcher, reporter, pageID, output)
		}
		return exportTree(cmd.Context(), cfg, fetcher, reporter, pageID, output)
	},
}

func exportSinglePage(ctx context.Context, fetcher ports.ContentFetcher, reporter *term.Reporter, pageID, output string) error {
	exportCmd := commands.NewExportPageCommand(fetcher, pageID, output)
	result, err := exportCmd.Execute(ctx)
	if err != nil {
		return err
	}

	if result.Path != "" {
		reporter.Infof("Exported %q to %s", result.Title, result.Path)
	} else {
		fmt.Print(result.Markdown)
	}
	return nil
}

func exportTree(ctx context.Context, cfg *config.Config, fetcher ports.ContentFetcher, reporter *term.Reporter, pageID, output string) error {
	outputDir := output
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	reporter.Infof("Starting export of page %s and all children...", pageID)
	reporter.Infof("Output directory: %s", outputDir)
	reporter.Infof("Connecting to: %s", cfg.BaseURL)

	var manifest ports.ExportManifest
	if withManifest {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		m, err := sqlite.OpenManifest(outputDir)
		if err != nil {
			return err
		}
		defer m.Close()
		manifest = m
	}

	treeCmd := commands.NewExportTreeCommand(fetcher, reporter, manifest, pageID, outputDir, maxDepth)
	result, err := treeCmd.Execute(ctx)
	if err != nil {
		return err
	}

	reporter.Infof("Export complete: %d page(s) in %s/", result.PagesExported, outputDir)
	return nil
}

// Execute runs the root command and maps failures to exit codes: 1 for
// configuration or API errors, 130 when the user interrupted the run.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&withChildren, "with-children", false, "export the page and all its descendant pages recursively")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 10, "maximum depth for recursive export")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "path to env file with Confluence credentials")
	rootCmd.Flags().BoolVar(&withManifest, "manifest", false, "record exported pages in a SQLite manifest inside the output directory")
}
