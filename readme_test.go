package pydox

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestToFragment(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	got, err := conv.ToFragment(context.Background(), "# Title\n\nSome **bold** text.\n")
	if err != nil {
		t.Fatalf("ToFragment() error = %v", err)
	}

	if !strings.Contains(got, `<h1 id="title">Title</h1>`) {
		t.Errorf("heading missing, got %q", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("bold missing, got %q", got)
	}
	if strings.Contains(got, "<!DOCTYPE") {
		t.Error("fragment wrapped in a full document")
	}
}

func TestToFragmentCodeFence(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	got, err := conv.ToFragment(context.Background(), "```python\nx = 1\n```\n")
	if err != nil {
		t.Fatalf("ToFragment() error = %v", err)
	}
	if !strings.Contains(got, `class="chroma"`) {
		t.Errorf("chroma classes missing, got %q", got)
	}
}

func TestToFragmentRawHTMLDropped(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	got, err := conv.ToFragment(context.Background(), "before\n\n<script>alert(1)</script>\n")
	if err != nil {
		t.Fatalf("ToFragment() error = %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML not dropped, got %q", got)
	}
}

func TestToFragmentCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := newGoldmarkConverter()
	_, err := conv.ToFragment(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToFragment() error = %v, want context.Canceled", err)
	}
}
