package markdown

import "strings"

// Block is a region of a note delimited by marker lines that the tool owns.
// Text outside the markers belongs to the user and is never rewritten.
type Block struct {
	Start string
	End   string
}

// Replace swaps the block contents for generated. A body without markers gets
// the block appended after a blank line.
func (b Block) Replace(body, generated string) string {
	rendered := b.Start + "\n" + strings.TrimRight(generated, "\n") + "\n" + b.End

	start, end, ok := b.bounds(body)
	if ok {
		return body[:start] + rendered + body[end:]
	}
	switch {
	case strings.TrimSpace(body) == "":
		return rendered + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + rendered + "\n"
	default:
		return body + "\n\n" + rendered + "\n"
	}
}

// Extract returns the current block contents without the marker lines.
func (b Block) Extract(body string) (string, bool) {
	start, end, ok := b.bounds(body)
	if !ok {
		return "", false
	}
	inner := body[start+len(b.Start) : end-len(b.End)]
	return strings.Trim(inner, "\n"), true
}

func (b Block) bounds(body string) (int, int, bool) {
	start := strings.Index(body, b.Start)
	if start < 0 {
		return 0, 0, false
	}
	rel := strings.Index(body[start+len(b.Start):], b.End)
	if rel < 0 {
		return 0, 0, false
	}
	end := start + len(b.Start) + rel + len(b.End)
	return start, end, true
}
