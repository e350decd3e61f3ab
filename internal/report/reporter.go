package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/erauner12/homelab-renovate/internal/catalog"
	"github.com/erauner12/homelab-renovate/internal/selection"
)

const (
	bannerTopLineConstant          = "╔═══════════════════════════════════════════════════════════════════╗"
	bannerTitleLineConstant        = "║              Homelab Renovate - Repository Selection              ║"
	bannerBottomLineConstant       = "╚═══════════════════════════════════════════════════════════════════╝"
	trailingSeparatorConstant      = "═══════════════════════════════════════════════════════════════════════"
	environmentHeadingConstant     = "Environment:"
	environmentLineTemplateConst   = "  %-*s%s\n"
	environmentLabelSuffixConstant = ":"
	environmentLabelPaddingNumber  = 2
	selectedHeadingTemplateConst   = "Selected %d of %d total repositories:"
	selectedEntryTemplateConstant  = "  %2d. %s\n"
	skippedHeadingTemplateConstant = "Skipped this run (%d repos):"
	skippedEntryTemplateConstant   = "      - %s\n"
	selectAllTipTemplateConstant   = "💡 Tip: Set %s=true to process all repos"
	overrideTipTemplateConstant    = "💡 Tip: Set %s=owner/repo to target specific repos"
)

// Reporter renders a selection summary.
type Reporter struct {
	headerColor  *color.Color
	sectionColor *color.Color
	skippedColor *color.Color
	hintColor    *color.Color
}

// NewReporter constructs a Reporter; colorEnabled decorates headings with ANSI colours.
func NewReporter(colorEnabled bool) *Reporter {
	reporter := &Reporter{
		headerColor:  color.New(color.FgCyan, color.Bold),
		sectionColor: color.New(color.FgWhite, color.Bold),
		skippedColor: color.New(color.FgYellow),
		hintColor:    color.New(color.Faint),
	}
	for _, decoration := range []*color.Color{reporter.headerColor, reporter.sectionColor, reporter.skippedColor, reporter.hintColor} {
		if colorEnabled {
			decoration.EnableColor()
		} else {
			decoration.DisableColor()
		}
	}
	return reporter
}

// Report writes the banner, environment inputs, selected repositories, and skipped repositories.
func (reporter *Reporter) Report(writer io.Writer, repositoryCatalog catalog.Catalog, result selection.Result, environment Environment) error {
	output := &stickyWriter{writer: writer}

	output.line("")
	output.line(reporter.headerColor.Sprint(bannerTopLineConstant))
	output.line(reporter.headerColor.Sprint(bannerTitleLineConstant))
	output.line(reporter.headerColor.Sprint(bannerBottomLineConstant))
	output.line("")

	output.line(reporter.sectionColor.Sprint(environmentHeadingConstant))
	labelWidth := environmentLabelWidth(environment)
	for _, entry := range environment.Entries() {
		output.printf(environmentLineTemplateConst, labelWidth, entry.Name+environmentLabelSuffixConstant, entry.DisplayValue())
	}
	output.line("")

	output.line(reporter.sectionColor.Sprintf(selectedHeadingTemplateConst, len(result.Repositories), repositoryCatalog.Len()))
	output.line("")
	for repositoryIndex, repository := range result.Repositories {
		output.printf(selectedEntryTemplateConstant, repositoryIndex+1, repository)
	}
	output.line("")

	if len(result.Repositories) < repositoryCatalog.Len() {
		skippedRepositories := repositoryCatalog.Difference(result.Repositories)
		output.line(reporter.skippedColor.Sprintf(skippedHeadingTemplateConstant, len(skippedRepositories)))
		for _, repository := range skippedRepositories {
			output.printf(skippedEntryTemplateConstant, repository)
		}
		output.line("")
		output.line(reporter.hintColor.Sprintf(selectAllTipTemplateConstant, environment.SelectAll.Name))
		output.line(reporter.hintColor.Sprintf(overrideTipTemplateConstant, environment.Override.Name))
	}

	output.line("")
	output.line(trailingSeparatorConstant)

	return output.err
}

func environmentLabelWidth(environment Environment) int {
	longestLabel := 0
	for _, entry := range environment.Entries() {
		longestLabel = max(longestLabel, len(entry.Name)+len(environmentLabelSuffixConstant))
	}
	return longestLabel + environmentLabelPaddingNumber
}

// stickyWriter keeps the first write error and skips later writes.
type stickyWriter struct {
	writer io.Writer
	err    error
}

func (output *stickyWriter) printf(format string, arguments ...any) {
	if output.err != nil {
		return
	}
	_, output.err = fmt.Fprintf(output.writer, format, arguments...)
}

func (output *stickyWriter) line(text string) {
	if output.err != nil {
		return
	}
	_, output.err = io.WriteString(output.writer, text+"\n")
}
