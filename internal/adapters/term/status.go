package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"confex/internal/ports"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")) // Green

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")) // Amber
)

// Reporter renders progress lines for an export run: page and run-level
// progress on out, warnings on errOut. Page lines are indented two spaces
// per tree depth.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
}

// Ensure Reporter implements StatusReporter
var _ ports.StatusReporter = (*Reporter)(nil)

// NewReporter creates a Reporter writing to the given streams.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut}
}

func (r *Reporter) Pagef(depth int, format string, args ...any) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintln(r.out, indent+pageStyle.Render(fmt.Sprintf(format, args...)))
}

func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintln(r.out, infoStyle.Render(fmt.Sprintf(format, args...)))
}

func (r *Reporter) Warnf(format string, args ...any) {
	fmt.Fprintln(r.errOut, warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

type discard struct{}

func (discard) Pagef(int, string, ...any) {}
func (discard) Infof(string, ...any)      {}
func (discard) Warnf(string, ...any)      {}

// Discard drops all status lines. Used where no status stream exists, such
// as the MCP surface.
var Discard ports.StatusReporter = discard{}
