package parser

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis and heading",
			in:       "# Title\n\nsome **bold** text",
			contains: []string{"<h1>Title</h1>", "<strong>bold</strong>"},
		},
		{
			name:     "hard wraps",
			in:       "line one\nline two",
			contains: []string{"line one<br", "line two"},
		},
		{
			name:        "script is stripped",
			in:          "hi <script>alert(1)</script>",
			notContains: []string{"<script", "alert(1)</script>"},
		},
		{
			name:        "javascript links are stripped",
			in:          "[x](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
		{
			name:     "gfm table",
			in:       "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.in)
			if err != nil {
				t.Fatalf("MarkdownToHTML() error = %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("output %q does not contain %q", got, s)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(got, s) {
					t.Errorf("output %q should not contain %q", got, s)
				}
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	got := Excerpt("# Hello\n\nThis is **very** long & fun", 20)
	if got != "Hello This is very l..." {
		t.Errorf("Excerpt() = %q", got)
	}

	if got := Excerpt("a < b", 10); got != "a < b" {
		t.Errorf("Excerpt() = %q, want entities unescaped", got)
	}
}

func TestStripHTML(t *testing.T) {
	if got := StripHTML("<p>hi <em>there</em></p>"); got != "hi there" {
		t.Errorf("StripHTML() = %q", got)
	}
}
