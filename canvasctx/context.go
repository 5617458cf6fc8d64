// Package canvasctx implements fontload.Context on top of
// github.com/tdewolff/canvas font families.
package canvasctx

import (
	"fmt"
	"image/color"
	"slices"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/fontload"
	"github.com/ByLCY/fontload/fonts"
)

// Context holds the font families registered through AddFont.
// It is safe for concurrent use.
type Context struct {
	mu        sync.Mutex
	families  map[string]*canvas.FontFamily
	order     []string // registration order of family names
	fallbacks []string // highest priority families, in registration order

	defaultFamily *canvas.FontFamily
}

var _ fontload.Context = (*Context)(nil)

// New creates an empty context.
func New() *Context {
	return &Context{families: map[string]*canvas.FontFamily{}}
}

// AddFont loads font.Data into every family it names, creating families on
// first use. Bytes canvas cannot parse cause a panic with *fontload.FatalError.
func (c *Context) AddFont(font fontload.FontInsert) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, fam := range font.Families {
		name := string(fam.Family)
		family, ok := c.families[name]
		if !ok {
			family = canvas.NewFontFamily(name)
		}
		// 同名重复注册直接透传给 canvas，不做去重。
		if err := family.LoadFont(font.Data, 0, canvas.FontRegular); err != nil {
			panic(&fontload.FatalError{Name: font.Name, Err: err})
		}
		if !ok {
			c.families[name] = family
			c.order = append(c.order, name)
		}
		if fam.Priority == fontload.PriorityHighest && !slices.Contains(c.fallbacks, name) {
			c.fallbacks = append(c.fallbacks, name)
		}
	}
}

// Family returns the family registered under name.
func (c *Context) Family(name string) (*canvas.FontFamily, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	family, ok := c.families[name]
	return family, ok
}

// Families returns the registered family names in registration order.
func (c *Context) Families() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.order)
}

// Face returns a face of the named family at sizePt points. Unknown names
// resolve to the first highest-priority family, then to the built-in
// regular font. Lowest-priority families are never used as a fallback.
func (c *Context) Face(name string, sizePt float64, col color.Color) (*canvas.FontFace, error) {
	family, err := c.resolve(name)
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, col, canvas.FontRegular, canvas.FontNormal), nil
}

func (c *Context) resolve(name string) (*canvas.FontFamily, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if family, ok := c.families[name]; ok {
		return family, nil
	}
	if len(c.fallbacks) > 0 {
		return c.families[c.fallbacks[0]], nil
	}
	if c.defaultFamily != nil {
		return c.defaultFamily, nil
	}
	data, err := fonts.Load(fonts.Regular)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("fontload-fallback")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载默认字体失败: %w", err)
	}
	c.defaultFamily = family
	return family, nil
}
