package markdown_test

import (
	"strings"
	"testing"

	"eventdeck/internal/platform/markdown"
)

type note struct {
	ID    string   `yaml:"id"`
	Tags  []string `yaml:"tags"`
	Count int      `yaml:"count"`
}

func TestRenderThenDecode(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.Render(note{ID: "e-1", Tags: []string{"outdoor"}, Count: 3}, "Body text\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\nid: e-1\n") {
		t.Fatalf("unexpected header: %q", rendered)
	}
	var got note
	body, err := markdown.Decode(rendered, &got)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "e-1" || got.Count != 3 || len(got.Tags) != 1 {
		t.Fatalf("unexpected meta %+v", got)
	}
	if strings.TrimSpace(body) != "Body text" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestDecodeWithoutHeaderKeepsBody(t *testing.T) {
	t.Parallel()
	var got note
	body, err := markdown.Decode("plain body", &got)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body != "plain body" || got.ID != "" {
		t.Fatalf("unexpected decode result %q %+v", body, got)
	}
}

func TestSplitRejectsUnterminatedHeader(t *testing.T) {
	t.Parallel()
	if _, _, err := markdown.Split("---\nid: x\nno closing"); err == nil {
		t.Fatalf("expected missing separator error")
	}
}
