package markdown_test

import (
	"strings"
	"testing"

	"timetable/internal/platform/markdown"
)

var block = markdown.Block{Start: "<!-- start -->", End: "<!-- end -->"}

func TestBlockReplaceKeepsUserText(t *testing.T) {
	t.Parallel()
	body := "# Picks\n\nmy notes\n"

	once := block.Replace(body, "first\n")
	if once != "# Picks\n\nmy notes\n\n<!-- start -->\nfirst\n<!-- end -->\n" {
		t.Fatalf("unexpected first render %q", once)
	}
	twice := block.Replace(once+"trailing\n", "second")
	if !strings.HasPrefix(twice, "# Picks\n\nmy notes\n") || !strings.HasSuffix(twice, "<!-- end -->\ntrailing\n") {
		t.Fatalf("expected user text kept around block, got %q", twice)
	}
	got, ok := block.Extract(twice)
	if !ok || got != "second" {
		t.Fatalf("expected extracted %q, got %q (ok=%t)", "second", got, ok)
	}
}

func TestBlockReplaceIntoEmptyBody(t *testing.T) {
	t.Parallel()
	if got := block.Replace("", "x"); got != "<!-- start -->\nx\n<!-- end -->\n" {
		t.Fatalf("unexpected render %q", got)
	}
	if _, ok := block.Extract("no markers"); ok {
		t.Fatalf("expected no block in plain body")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()
	doc, err := markdown.Parse("---\ntitle: picks\n---\nbody\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Meta["title"] != "picks" || doc.Body != "body\n" {
		t.Fatalf("unexpected document %+v", doc)
	}

	doc.Merge(map[string]any{"count": 2})
	out, err := doc.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "---\ncount: 2\ntitle: picks\n---\n\nbody\n" {
		t.Fatalf("unexpected render %q", out)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	doc, err := markdown.Parse("just text")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Meta) != 0 || doc.Body != "just text" {
		t.Fatalf("unexpected document %+v", doc)
	}
	if _, err := markdown.Parse("---\ntitle: x\n"); err == nil {
		t.Fatalf("expected error for unterminated frontmatter")
	}
}
