// Package fonts 提供随程序一同编译的内置字体（Go 字体家族）。
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ByLCY/fontload"
)

// Regular is the name of the built-in font used when nothing else matches.
const Regular = "Go-Regular"

var builtin = []fontload.EmbeddedFont{
	{Name: Regular, Data: goregular.TTF},
	{Name: "Go-Bold", Data: gobold.TTF},
	{Name: "Go-Italic", Data: goitalic.TTF},
	{Name: "Go-BoldItalic", Data: gobolditalic.TTF},
	{Name: "Go-Mono", Data: gomono.TTF},
}

// Load 返回内置字体的字节数据，name 可写为 "embed:Go-Mono" 或直接 "Go-Mono"。
func Load(name string) ([]byte, error) {
	clean := strings.TrimPrefix(name, "embed:")
	for _, f := range builtin {
		if f.Name == clean {
			return f.Data, nil
		}
	}
	return nil, fmt.Errorf("找不到内置字体 %s", clean)
}

// Names lists the built-in fonts in registration order.
func Names() []string {
	out := make([]string, len(builtin))
	for i, f := range builtin {
		out[i] = f.Name
	}
	return out
}

// Register 将全部内置字体注册到 ctx，每个字体各自成为一个最低优先级的命名字体族。
func Register(ctx fontload.Context) {
	fontload.LoadStatic(ctx, builtin...)
}
