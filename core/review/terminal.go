package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// NotSet is shown in place of a destination value that does not exist yet.
const NotSet = "???"

const (
	defaultWidth = 80
	promptMarker = ">>  "
	clearLine    = "\033[F\033[K"
)

type styles struct {
	counter lipgloss.Style
	key     lipgloss.Style
	source  lipgloss.Style
	dest    lipgloss.Style
	missing lipgloss.Style
	prompt  lipgloss.Style
	insert  lipgloss.Style
	delete  lipgloss.Style
	ok      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		counter: r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		key:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		source:  r.NewStyle().Foreground(lipgloss.Color("#20B9B4")),
		dest:    r.NewStyle(),
		missing: r.NewStyle().Foreground(lipgloss.Color("#F4D03F")),
		prompt:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		insert:  r.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
		delete:  r.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Strikethrough(true),
		ok:      r.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
	}
}

type line struct {
	text string
	err  error
}

// Terminal is a line-oriented Prompter reading answers from in and drawing
// prompts on out.
//
// When out is a terminal each answered prompt is erased before the next one is
// drawn. Reading happens on a single background goroutine so that Ask can
// return as soon as ctx is cancelled.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	sourceLabel string
	destLabel   string
	fd          uintptr
	clear       bool
	styles      styles

	once      sync.Once
	closeOnce sync.Once
	lines     chan line
	done      chan struct{}
}

// NewTerminal creates a Terminal labelling source and destination texts with
// the given locale codes.
func NewTerminal(in io.Reader, out io.Writer, sourceLabel, destLabel string) *Terminal {
	t := &Terminal{
		in:          in,
		out:         out,
		sourceLabel: sourceLabel,
		destLabel:   destLabel,
		styles:      newStyles(lipgloss.NewRenderer(out)),
		lines:       make(chan line, 1),
		done:        make(chan struct{}),
	}
	if f, ok := out.(*os.File); ok {
		t.fd = f.Fd()
		t.clear = isatty.IsTerminal(t.fd) || isatty.IsCygwinTerminal(t.fd)
	}
	return t
}

// Close stops the background reader once its pending read returns.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}

// width returns the current column count of the output terminal.
func (t *Terminal) width() int {
	if !t.clear {
		return defaultWidth
	}
	w, _, err := term.GetSize(t.fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Intro prints the instructions shown once before the first prompt.
func (t *Terminal) Intro() {
	t.writeln("Enter a translation for the given key.")
	t.writeln("Leave it empty if the current translation is good enough, or you are unsure.")
	t.writeln(strings.Repeat("-", t.width()))
}

// Ask draws the prompt for p and waits for one line of input.
func (t *Terminal) Ask(ctx context.Context, p Prompt) (string, error) {
	current := t.styles.dest.Render(p.Current)
	if p.Missing {
		current = t.styles.missing.Render(NotSet)
	}
	block := []string{
		t.styles.counter.Render(fmt.Sprintf("## %d out of %d keys to translate ##", p.Index+1, p.Total)),
		t.styles.key.Render("## Key: " + p.Path.Breadcrumb() + " ##"),
		t.sourceLabel + ": " + t.styles.source.Render(p.Source),
		t.destLabel + ": " + current,
	}
	for _, l := range block {
		t.writeln(l)
	}
	t.write("%s", t.styles.prompt.Render(promptMarker))

	answer, err := t.readLine(ctx)
	if err != nil {
		t.writeln()
		return "", err
	}

	if t.clear {
		width := t.width()
		rows := 1 + (lipgloss.Width(promptMarker)+lipgloss.Width(answer))/width
		for _, l := range block {
			rows += 1 + lipgloss.Width(l)/width
		}
		t.write("%s", strings.Repeat(clearLine, rows))
	}
	return answer, nil
}

// Accepted echoes an edit as a word diff between the previous and new value.
func (t *Terminal) Accepted(e Edit) {
	t.writeln(t.styles.ok.Render("✓ "+e.Path.String()+":") + " " + t.diff(e.Previous, e.Value))
}

// Summary prints how many keys were reviewed and changed.
func (t *Terminal) Summary(r Result) {
	t.writeln(fmt.Sprintf("%d reviewed, %d updated", r.Reviewed, len(r.Edits)))
}

func (t *Terminal) diff(from, to string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(t.styles.insert.Render("{+" + d.Text + "+}"))
		case diffmatchpatch.DiffDelete:
			b.WriteString(t.styles.delete.Render("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func (t *Terminal) readLine(ctx context.Context) (string, error) {
	t.once.Do(func() { go t.scan() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.done:
		return "", io.EOF
	case l, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (t *Terminal) scan() {
	defer close(t.lines)
	sc := bufio.NewScanner(t.in)
	for sc.Scan() {
		if !t.send(line{text: sc.Text()}) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		t.send(line{err: err})
	}
}

func (t *Terminal) send(l line) bool {
	select {
	case t.lines <- l:
		return true
	case <-t.done:
		return false
	}
}

func (t *Terminal) write(format string, args ...any) {
	// Terminal write errors are non-recoverable; ignore them.
	_, _ = fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) writeln(args ...any) {
	_, _ = fmt.Fprintln(t.out, args...)
}
