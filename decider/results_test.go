package decider

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Cost", "Cost"},
		{"ampersand", "Cost & Risk", "Cost &amp; Risk"},
		{"angle brackets", "<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"mixed", "a<b & c>d", "a&lt;b &amp; c&gt;d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Fatalf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatScore(t *testing.T) {
	a := Alternative{Name: "A"}
	if got := FormatScore(a); got != "" {
		t.Fatalf("FormatScore(unscored) = %q, want blank", got)
	}
	a.SetScore(1.23456)
	if got := FormatScore(a); got != "1.2346" {
		t.Fatalf("FormatScore = %q, want 1.2346", got)
	}
	a.SetScore(2)
	if got := FormatScore(a); got != "2.0000" {
		t.Fatalf("FormatScore = %q, want 2.0000", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	best := Alternative{Name: "Option <1>"}
	best.SetScore(1.5)
	other := Alternative{Name: "B & C"}
	md := SummaryMarkdown([]Alternative{best, other})

	if !strings.Contains(md, "**Option &lt;1&gt;**") {
		t.Fatalf("summary does not highlight the escaped best choice:\n%s", md)
	}
	if !strings.Contains(md, "| Option &lt;1&gt; | 1.5000 |") {
		t.Fatalf("summary missing scored row:\n%s", md)
	}
	if !strings.Contains(md, "| B &amp; C |  |") {
		t.Fatalf("summary missing blank score for unscored row:\n%s", md)
	}
	if strings.Contains(md, "Option <1>") {
		t.Fatalf("raw markup leaked into summary:\n%s", md)
	}
}

func TestSummaryMarkdownEmpty(t *testing.T) {
	md := SummaryMarkdown(nil)
	if strings.Contains(md, "Preferred choice") {
		t.Fatalf("empty input must not name a preferred choice:\n%s", md)
	}
}

func TestSummaryHTML(t *testing.T) {
	a := Alternative{Name: "A & B"}
	a.SetScore(1)
	out, err := SummaryHTML([]Alternative{a})
	if err != nil {
		t.Fatalf("SummaryHTML() error = %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Fatalf("HTML output has no table:\n%s", out)
	}
	if !strings.Contains(out, "A &amp; B") {
		t.Fatalf("HTML output lost escaping:\n%s", out)
	}
}

func TestWriteReport(t *testing.T) {
	a := Alternative{Name: "A"}
	a.SetScore(1)
	ranked := []Alternative{a}
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "out.md")
	if err := WriteReport(mdPath, ranked); err != nil {
		t.Fatalf("WriteReport(md) error = %v", err)
	}
	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "## Decision Results") {
		t.Fatalf("markdown report missing heading:\n%s", data)
	}

	htmlPath := filepath.Join(dir, "out.html")
	if err := WriteReport(htmlPath, ranked); err != nil {
		t.Fatalf("WriteReport(html) error = %v", err)
	}
	data, err = os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "<!doctype html>") {
		t.Fatalf("html report missing document shell:\n%s", data)
	}
}
