package decider

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape makes a user-entered name safe for markup contexts. Only &, <
// and > are rewritten; everything else passes through.
func Escape(s string) string {
	return markupEscaper.Replace(s)
}

// FormatScore renders an attached score with fixed 4-decimal precision.
// Alternatives without a score render blank.
func FormatScore(a Alternative) string {
	if !a.Scored {
		return ""
	}
	return fmt.Sprintf("%.4f", a.Score)
}

// SummaryMarkdown renders the ranked alternatives as a result summary.
// The input is assumed to be ordered best-to-worst already; no sorting
// or order validation happens here.
func SummaryMarkdown(ranked []Alternative) string {
	var sb strings.Builder
	sb.WriteString("## Decision Results\n\n")
	if len(ranked) > 0 {
		sb.WriteString("Preferred choice: **" + Escape(ranked[0].Name) + "**\n\n")
	}
	sb.WriteString("| Alternative | Score |\n")
	sb.WriteString("| --- | --- |\n")
	for _, a := range ranked {
		sb.WriteString("| " + Escape(a.Name) + " | " + FormatScore(a) + " |\n")
	}
	return sb.String()
}

// SummaryHTML converts the markdown summary into a standalone HTML
// document.
func SummaryHTML(ranked []Alternative) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(SummaryMarkdown(ranked)), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>Decision Results</title>" +
		"<style>body{font-family:sans-serif;max-width:640px;margin:2rem auto;} " +
		"table{border-collapse:collapse;} th,td{border:1px solid #999;padding:0.3rem 0.6rem;text-align:left;}" +
		"</style></head><body>" + content.String() + "</body></html>", nil
}

// WriteReport writes the summary to path. A .html extension selects the
// HTML rendering; anything else gets the raw markdown.
func WriteReport(path string, ranked []Alternative) error {
	var (
		out string
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".html") {
		out, err = SummaryHTML(ranked)
		if err != nil {
			return err
		}
	} else {
		out = SummaryMarkdown(ranked)
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
