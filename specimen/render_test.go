package specimen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ByLCY/fontload"
	"github.com/ByLCY/fontload/canvasctx"
)

func TestRenderProducesPDF(t *testing.T) {
	ctx := canvasctx.New()
	fontload.LoadStatic(ctx,
		fontload.EmbeddedFont{Name: "Body", Data: goregular.TTF},
		fontload.EmbeddedFont{Name: "Mono", Data: gomono.TTF},
	)

	out, err := Render(ctx, Options{Title: "Specimen", Size: Length{Value: 12, Unit: UnitPT}})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
	}
}

func TestRenderManyFamiliesGrowsPage(t *testing.T) {
	ctx := canvasctx.New()
	for i := 0; i < 40; i++ {
		ctx.AddFont(fontload.NewFontInsert("Body"+strings.Repeat("I", i+1), goregular.TTF))
	}
	if _, err := Render(ctx, Options{Sample: strings.Repeat("wrap me ", 30)}); err != nil {
		t.Fatalf("Render error: %v", err)
	}
}

func TestRenderWithoutFamilies(t *testing.T) {
	if _, err := Render(canvasctx.New(), Options{}); err == nil {
		t.Fatalf("expected error for empty context")
	}
	if _, err := Render(nil, Options{}); err == nil {
		t.Fatalf("expected error for nil context")
	}
}

// TestWrapWordsWidthLimit 验证除单个过长的词外，每行宽度不超过限制（mm）。
func TestWrapWordsWidthLimit(t *testing.T) {
	ctx := canvasctx.New()
	ctx.AddFont(fontload.NewFontInsert("Body", goregular.TTF))
	face, err := ctx.Face("Body", 12, canvas.Black)
	if err != nil {
		t.Fatalf("Face error: %v", err)
	}

	limit := 30.0
	lines := wrapWords("hello world again and again and again", limit, face)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(lines))
	}
	for i, ln := range lines {
		if !strings.Contains(ln, " ") {
			continue
		}
		if w := face.TextWidth(ln); w-limit > 1e-6 {
			t.Fatalf("line %d width exceeds limit: width=%g limit=%g", i, w, limit)
		}
	}
	if got := wrapWords("   ", limit, face); len(got) != 1 || got[0] != "" {
		t.Fatalf("expected a single blank line, got %q", got)
	}
}
