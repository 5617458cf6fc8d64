package canvasctx

import (
	"testing"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ByLCY/fontload"
)

func TestAddFontRegistersNamedFamilies(t *testing.T) {
	c := New()
	fontload.LoadStatic(c,
		fontload.EmbeddedFont{Name: "Body", Data: goregular.TTF},
		fontload.EmbeddedFont{Name: "Mono", Data: gomono.TTF},
	)

	got := c.Families()
	if len(got) != 2 || got[0] != "Body" || got[1] != "Mono" {
		t.Fatalf("unexpected families: %v", got)
	}
	if _, ok := c.Family("Body"); !ok {
		t.Fatalf("Body family missing")
	}
	face, err := c.Face("Mono", 12, canvas.Black)
	if err != nil {
		t.Fatalf("Face error: %v", err)
	}
	if face.Metrics().LineHeight <= 0 {
		t.Fatalf("expected positive line height")
	}
}

func TestAddFontSameNameTwice(t *testing.T) {
	c := New()
	c.AddFont(fontload.NewFontInsert("Body", goregular.TTF))
	c.AddFont(fontload.NewFontInsert("Body", goregular.TTF))
	if got := c.Families(); len(got) != 1 {
		t.Fatalf("expected a single Body family, got %v", got)
	}
}

func TestAddFontRejectsMalformedBytes(t *testing.T) {
	c := New()
	defer func() {
		r := recover()
		fatal, ok := r.(*fontload.FatalError)
		if !ok {
			t.Fatalf("expected *fontload.FatalError panic, got %v", r)
		}
		if fatal.Name != "Broken" || fatal.Err == nil {
			t.Fatalf("unexpected fatal error: %+v", fatal)
		}
		if len(c.Families()) != 0 {
			t.Fatalf("rejected font must not create a family")
		}
	}()
	c.AddFont(fontload.NewFontInsert("Broken", []byte("definitely not a font")))
}

// 最低优先级的字体族只在显式指定时使用，不参与回退。
func TestLowestPriorityNeverFallback(t *testing.T) {
	c := New()
	c.AddFont(fontload.NewFontInsert("Body", goregular.TTF))

	body, _ := c.Family("Body")
	got, err := c.resolve("Unknown")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if got == body {
		t.Fatalf("lowest priority family used as fallback")
	}
	if got != c.defaultFamily {
		t.Fatalf("expected built-in default family")
	}
}

func TestHighestPriorityFallback(t *testing.T) {
	c := New()
	c.AddFont(fontload.NewFontInsert("Body", goregular.TTF))
	c.AddFont(fontload.FontInsert{
		Name: "Mono",
		Data: gomono.TTF,
		Families: []fontload.InsertFontFamily{
			{Family: "Mono", Priority: fontload.PriorityHighest},
		},
	})

	mono, _ := c.Family("Mono")
	got, err := c.resolve("Unknown")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if got != mono {
		t.Fatalf("expected Mono as fallback")
	}
}
