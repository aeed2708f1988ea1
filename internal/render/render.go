// Package render formats submodule listings and status reports for the
// terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"

	"github.com/chmouel/gitsub/internal/models"
	"github.com/chmouel/gitsub/internal/theme"
)

// DisplayName derives the short display name for a submodule: the segment
// after the last forward or backward slash, or the input unchanged when no
// separator occurs. A trailing separator yields the empty string.
func DisplayName(name string) string {
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// Styles holds the lipgloss styles used for report output.
type Styles struct {
	Name          lipgloss.Style // submodule name, no local repository
	NameExists    lipgloss.Style // submodule name, local repository present
	Path          lipgloss.Style // worktree paths
	Keyword       lipgloss.Style // connective words ("initialized", "at")
	Clean         lipgloss.Style
	Dirty         lipgloss.Style
	Unknown       lipgloss.Style
	Uninitialized lipgloss.Style
	Modified      lipgloss.Style // modified and added paths
	Conflict      lipgloss.Style // conflicted paths
	Untracked     lipgloss.Style
	Rewrite       lipgloss.Style // both sides of a rename or copy
}

// NewStyles builds the style set for a theme. With colored false every
// style is a no-op, for pipes and --no-color.
func NewStyles(t *theme.Theme, colored bool) Styles {
	if !colored || t == nil {
		return Styles{}
	}
	return Styles{
		Name:          lipgloss.NewStyle().Bold(true),
		NameExists:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Path:          lipgloss.NewStyle().Faint(true),
		Keyword:       lipgloss.NewStyle().Bold(true),
		Clean:         lipgloss.NewStyle().Foreground(t.SuccessFg),
		Dirty:         lipgloss.NewStyle().Bold(true).Foreground(t.ErrorFg),
		Unknown:       lipgloss.NewStyle().Foreground(t.WarnFg),
		Uninitialized: lipgloss.NewStyle().Foreground(t.MutedFg),
		Modified:      lipgloss.NewStyle().Foreground(t.WarnFg),
		Conflict:      lipgloss.NewStyle().Bold(true).Foreground(t.ErrorFg),
		Untracked:     lipgloss.NewStyle().Foreground(t.MutedFg),
		Rewrite:       lipgloss.NewStyle().Foreground(t.Yellow),
	}
}

// Renderer writes formatted report lines to an output stream.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// New constructs a Renderer.
func New(w io.Writer, styles Styles) *Renderer {
	return &Renderer{w: w, styles: styles}
}

func (r *Renderer) name(info models.SubmoduleInfo) string {
	display := DisplayName(info.Name)
	if info.Exists {
		return r.styles.NameExists.Render(display)
	}
	return r.styles.Name.Render(display)
}

// Submodule prints one "<name> <path>" listing line.
func (r *Renderer) Submodule(info models.SubmoduleInfo) {
	fmt.Fprintf(r.w, "%s %s\n", r.name(info), r.styles.Path.Render(info.Path))
}

// CloneListing prints the post-clone "initialized <name> at <path>" line.
func (r *Renderer) CloneListing(info models.SubmoduleInfo) {
	fmt.Fprintf(r.w, "%s %s %s %s\n",
		r.styles.Keyword.Render("initialized"),
		r.name(info),
		r.styles.Keyword.Render("at"),
		r.styles.Path.Render(info.Path),
	)
}

func (r *Renderer) classification(c models.Classification) string {
	word := c.String()
	switch c {
	case models.Clean:
		return r.styles.Clean.Render(word)
	case models.Dirty:
		return r.styles.Dirty.Render(word)
	case models.Uninitialized:
		return r.styles.Uninitialized.Render(word)
	default:
		return r.styles.Unknown.Render(word)
	}
}

// Report prints the status line for one submodule followed by its indented
// change entries, if any.
func (r *Renderer) Report(info models.SubmoduleInfo, report models.Report) {
	fmt.Fprintf(r.w, "%s %s %s\n",
		r.name(info),
		r.styles.Path.Render(info.Path),
		r.classification(report.Classification),
	)

	if len(report.Changes) == 0 {
		return
	}

	fmt.Fprintln(r.w, indent.String("changes:", 2))
	for _, change := range report.Changes {
		line, ok := r.changeLine(change)
		if !ok {
			continue
		}
		fmt.Fprintln(r.w, indent.String(line, 4))
	}
}

// changeLine maps one change entry to its rendered line. The mapping is
// total over change kinds; NeedsUpdate is the one suppressed case.
func (r *Renderer) changeLine(change models.Change) (string, bool) {
	switch change.Kind {
	case models.NeedsUpdate:
		return "", false
	case models.Conflicted:
		return r.styles.Conflict.Render(change.Path), true
	case models.Untracked:
		return r.styles.Untracked.Render(change.Path), true
	case models.Renamed, models.Copied:
		return fmt.Sprintf("%s -> %s",
			r.styles.Rewrite.Render(change.From),
			r.styles.Rewrite.Render(change.Path),
		), true
	default: // Modified, Added
		return r.styles.Modified.Render(change.Path), true
	}
}
