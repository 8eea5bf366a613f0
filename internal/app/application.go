package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	fsutil "github.com/kk-code-lab/rls/internal/fs"
	"github.com/kk-code-lab/rls/internal/listing"
	textutil "github.com/kk-code-lab/rls/internal/textutil"
	renderui "github.com/kk-code-lab/rls/internal/ui/render"
	"golang.org/x/term"
)

// Application lists the configured paths once and exits.
type Application struct {
	cfg      Config
	stdout   io.Writer
	stderr   io.Writer
	renderer *renderui.Renderer
	width    int
}

// NewApplication resolves the output width and color mode against stdout.
func NewApplication(cfg Config, stdout *os.File, stderr io.Writer) *Application {
	fd := int(stdout.Fd())

	width := cfg.Width
	switch {
	case cfg.OnePerLine:
		width = 0
	case width <= 0:
		width = TerminalWidth(fd)
	}

	colorize := shouldColorize(cfg.Color, fd, term.IsTerminal, envLookup)
	debugf("width=%d color=%s colorize=%v", width, cfg.Color, colorize)

	return newApplication(cfg, stdout, stderr, width, colorize)
}

func newApplication(cfg Config, stdout, stderr io.Writer, width int, colorize bool) *Application {
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}
	return &Application{
		cfg:      cfg,
		stdout:   stdout,
		stderr:   stderr,
		renderer: renderui.NewRenderer(colorize),
		width:    width,
	}
}

// Run lists every path. A path that cannot be enumerated is reported on
// stderr and skipped; the joined enumeration errors are returned.
func (app *Application) Run() error {
	out := bufio.NewWriter(app.stdout)
	multi := len(app.cfg.Paths) > 1

	var failures []error
	printed := false
	for _, path := range app.cfg.Paths {
		dir, err := fsutil.ReadPath(path)
		if err != nil {
			// Keep stdout and stderr ordered when both go to a terminal.
			if flushErr := out.Flush(); flushErr != nil {
				return fmt.Errorf("write output: %w", flushErr)
			}
			_, _ = fmt.Fprintf(app.stderr, "rls: %v\n", err)
			failures = append(failures, err)
			continue
		}
		app.reportIssues(dir)

		if multi {
			if printed {
				_ = out.WriteByte('\n')
			}
			_, _ = fmt.Fprintf(out, "%s:\n", textutil.SanitizeTerminalText(path))
		}
		for _, line := range app.layout(dir.Entries) {
			_, _ = out.WriteString(line)
			_ = out.WriteByte('\n')
		}
		printed = true
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return errors.Join(failures...)
}

func (app *Application) layout(entries []fsutil.Entry) []string {
	visible := listing.Prepare(entries, app.cfg.Listing)
	grid := listing.Plan(visible, app.width)
	return app.renderer.Render(grid)
}

func (app *Application) reportIssues(dir fsutil.Listing) {
	for _, issue := range dir.Issues {
		if issue.Err != nil {
			debugf("%s: %q: %s: %v", dir.Path, issue.Name, issue.Kind, issue.Err)
			continue
		}
		debugf("%s: %q: %s", dir.Path, issue.Name, issue.Kind)
	}
}
