package build

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/sitegen/pkg"
	"github.com/ardnew/sitegen/site"
)

const (
	ruleWidth   = 60
	listLimit   = 10
	valueLimit  = 50
	valueSuffix = "..."
)

// reporter prints the human-readable progress of a run. Write errors are
// ignored; the report is informational.
type reporter struct {
	w       io.Writer
	verbose bool

	title lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	info  lipgloss.Style
	key   lipgloss.Style
	dim   lipgloss.Style
}

func newReporter(w io.Writer, verbose bool) *reporter {
	r := lipgloss.NewRenderer(w)

	return &reporter{
		w:       w,
		verbose: verbose,
		title:   r.NewStyle().Bold(true),
		ok:      r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		key:     r.NewStyle().Foreground(lipgloss.Color("5")),
		dim:     r.NewStyle().Faint(true),
	}
}

func (r *reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func (r *reporter) rule() {
	r.printf("%s\n", r.dim.Render(strings.Repeat("=", ruleWidth)))
}

func (r *reporter) header(mode Mode) {
	title := pkg.Name + " " + pkg.Version
	switch mode {
	case ModePreview:
		title += " (dry run)"
	case ModeValidate:
		title += " (validate only)"
	}

	r.rule()
	r.printf("%s\n", r.title.Render(title))
	r.rule()
}

func (r *reporter) loading(path string) {
	r.printf("\nLoading data from: %s\n", path)
}

func (r *reporter) loaded(keys int) {
	r.printf("   %s Loaded %d data keys\n", r.ok.Render("✓"), keys)
}

func (r *reporter) schemaOK(path string) {
	r.printf("   %s Data matches schema %s\n", r.ok.Render("✓"), path)
}

func (r *reporter) validating(files int) {
	r.printf("\nValidating placeholders in %d target file(s)...\n", files)
}

func (r *reporter) validated(rep site.Report) {
	r.printf("   Found %d placeholder(s) in %d file(s)\n", rep.Total(), rep.Files())
}

func (r *reporter) missing(keys []string, data string, suggest func(string) []string) {
	r.printf("\n%s %d placeholder key(s) not found in data:\n",
		r.fail.Render("✗ ERROR:"), len(keys))

	for _, key := range keys {
		line := "   • " + r.key.Render(key)
		if alt := suggest(key); len(alt) > 0 {
			line += " " + r.dim.Render("(did you mean: "+strings.Join(alt, ", ")+"?)")
		}

		r.printf("%s\n", line)
	}

	r.printf("\n   Fix the missing keys in %s or remove the invalid placeholders.\n", data)
}

func (r *reporter) aborted() {
	r.printf("\n%s\n", r.fail.Render("Build aborted. No files were modified."))
}

func (r *reporter) unused(keys []string) {
	if !r.verbose || len(keys) == 0 {
		return
	}

	r.printf("\n%s %d data key(s) defined but not used:\n", r.info.Render("Info:"), len(keys))

	for i, key := range keys {
		if i == listLimit {
			r.printf("   ... and %d more\n", len(keys)-listLimit)

			break
		}

		r.printf("   • %s\n", key)
	}
}

func (r *reporter) nested(keys []string) {
	if len(keys) == 0 {
		return
	}

	r.printf("\n%s %d value(s) contain placeholder syntax and are not expanded:\n",
		r.warn.Render("Warning:"), len(keys))

	for _, key := range keys {
		r.printf("   • %s\n", key)
	}
}

func (r *reporter) validateDone(ok bool) {
	if ok {
		r.printf("\n%s\n", r.ok.Render("✓ Validation complete (no changes made)"))

		return
	}

	r.printf("\n%s\n", r.fail.Render("✗ Validation failed (no changes made)"))
}

func (r *reporter) processing(mode Mode) {
	if mode == ModePreview {
		r.printf("\nPreview of changes:\n")

		return
	}

	r.printf("\nUpdating files:\n")
}

func (r *reporter) steps(name string, steps []site.Step) {
	if !r.verbose || len(steps) == 0 {
		return
	}

	r.printf("\n   %s:\n", name)

	for _, s := range steps {
		if !s.Found {
			r.printf("     %s %s not found in data\n", r.warn.Render("WARNING:"), s.Key)

			continue
		}

		r.printf("     %s → %s\n", r.key.Render(s.Key), truncate(s.Value))
	}
}

func (r *reporter) file(fr FileResult, mode Mode) {
	verb := "updated"
	if mode == ModePreview {
		verb = "would update"
	}

	r.printf("   %s %s: %d replacement(s) %s\n",
		r.ok.Render("→"), fr.Name, fr.Replacements, r.dim.Render("("+verb+")"))
}

func (r *reporter) exported(ex ExportResult, mode Mode) {
	if mode == ModePreview {
		r.printf("\nWould generate: %s (%d bytes)\n", ex.Path, ex.Size)

		return
	}

	r.printf("\nGenerated: %s (%d bytes)\n", ex.Path, ex.Size)
}

func (r *reporter) summary(res Result) {
	r.printf("\n")
	r.rule()

	if res.Mode == ModePreview {
		r.printf("%s\n", r.title.Render("DRY RUN COMPLETE"))
		r.printf("Would make %d replacement(s) in %d file(s)\n", res.Replacements, res.Modified)
	} else {
		r.printf("%s\n", r.ok.Render("BUILD COMPLETE"))
		r.printf("Made %d replacement(s) in %d file(s)\n", res.Replacements, res.Modified)
	}

	r.rule()
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= valueLimit {
		return s
	}

	return string(runes[:valueLimit]) + valueSuffix
}
