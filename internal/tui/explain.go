package tui

import (
	"strings"
	"tildex/internal/pathutil"

	"github.com/charmbracelet/lipgloss"
)

// Expansion pairs an input path with its expansion.
type Expansion struct {
	Input  string
	Result pathutil.Result
}

// RenderExplain renders one line per expansion, inputs aligned.
// Example:
//
//	Expansions (linux)
//
//	~/test    →  /home/alice/test  home
//	/etc      →  /etc              unchanged
func RenderExplain(platform string, rows []Expansion) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Expansions (" + platform + ")"))
	b.WriteString("\n")

	inWidth, outWidth := 0, 0
	for _, r := range rows {
		inWidth = max(inWidth, lipgloss.Width(r.Input))
		outWidth = max(outWidth, lipgloss.Width(r.Result.Path))
	}

	for _, r := range rows {
		b.WriteString(inputStyle.Render(pad(r.Input, inWidth)))
		b.WriteString(arrowStyle.Render("  →  "))
		b.WriteString(outputStyle.Render(pad(r.Result.Path, outWidth)))
		b.WriteString("  ")
		b.WriteString(sourceStyle(r.Result.Source).Render(string(r.Result.Source)))
		b.WriteString("\n")
	}

	return b.String()
}

func sourceStyle(s pathutil.Source) lipgloss.Style {
	switch s {
	case pathutil.SourceHome:
		return homeSourceStyle
	case pathutil.SourceProfileEnv:
		return fallbackSourceStyle
	case pathutil.SourceDefault, pathutil.SourceRoot:
		return lastResortSourceStyle
	default:
		return unchangedSourceStyle
	}
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
