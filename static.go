package fontload

import (
	"fmt"
	"io/fs"
	"path"
)

// EmbeddedFont is a font whose bytes were compiled into the binary, usually
// through a //go:embed directive on a []byte variable:
//
//	//go:embed fonts/body.ttf
//	var bodyTTF []byte
//
//	fontload.LoadStatic(ctx, fontload.EmbeddedFont{Name: "Body", Data: bodyTTF})
type EmbeddedFont struct {
	Name string
	Data []byte
}

// LoadStatic registers embedded fonts with ctx in order. If ctx rejects the
// bytes it panics; embedded assets are expected to be verified at build time.
func LoadStatic(ctx Context, fonts ...EmbeddedFont) {
	for _, font := range fonts {
		ctx.AddFont(NewFontInsert(font.Name, font.Data))
	}
}

// MustLoadFS registers fonts embedded in fsys. pairs alternates font names
// and paths inside fsys:
//
//	//go:embed fonts
//	var fontFS embed.FS
//
//	fontload.MustLoadFS(ctx, fontFS,
//		"Body", "fonts/body.ttf",
//		"Mono", "fonts/mono.ttf",
//	)
//
// An odd number of arguments or a path missing from fsys panics with
// *FatalError.
func MustLoadFS(ctx Context, fsys fs.FS, pairs ...string) {
	if len(pairs)%2 != 0 {
		panic(&FatalError{
			Name: pairs[len(pairs)-1],
			Err:  fmt.Errorf("名称与路径必须成对出现，收到 %d 个参数", len(pairs)),
		})
	}
	fonts := make([]EmbeddedFont, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, p := pairs[i], pairs[i+1]
		data, err := fs.ReadFile(fsys, path.Clean(p))
		if err != nil {
			panic(&FatalError{Name: name, Err: fmt.Errorf("读取内置字体 %s 失败: %w", p, err)})
		}
		fonts = append(fonts, EmbeddedFont{Name: name, Data: data})
	}
	LoadStatic(ctx, fonts...)
}
