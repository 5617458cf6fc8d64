// Package manifest reads font manifests: the list of fonts an application
// loads at run time, plus the settings used to render a specimen of them.
//
// Two formats are accepted. The block format:
//
//	fonts {
//	  font Body "./fonts/body.ttf"
//	  font "Display Serif" "fonts/display.otf"
//	  sample "The quick brown fox"
//	  size 14pt
//	}
//
// and TOML (see DecodeTOML).
package manifest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/fontload"
	"github.com/ByLCY/fontload/specimen"
)

var (
	manifestLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(manifestLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// File is the root AST node of a block-format manifest.
type File struct {
	Pos     lexer.Position `parser:""`
	Entries []*Entry       `parser:"Newline* 'fonts' '{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Entry is one statement inside the fonts block.
type Entry struct {
	Pos    lexer.Position `parser:""`
	Font   *FontDecl      `parser:"  @@"`
	Sample *StringLiteral `parser:"| 'sample' @String"`
	Size   *string        `parser:"| 'size' @Number"`
}

// FontDecl declares one font: `font <name> "<path>"`.
type FontDecl struct {
	Name Name          `parser:"'font' @(Ident | String)"`
	Path StringLiteral `parser:"@String"`
}

// Name accepts either a bare identifier or a quoted string.
type Name string

// Capture implements participle.Capture.
func (n *Name) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("name capture requires value")
	}
	v := values[0]
	if strings.HasPrefix(v, `"`) {
		unquoted, err := strconv.Unquote(v)
		if err != nil {
			return err
		}
		v = unquoted
	}
	*n = Name(v)
	return nil
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a block-format manifest from an io.Reader.
func Parse(r io.Reader) (*Manifest, error) {
	file, err := fileParser.Parse("", r)
	if err != nil {
		return nil, err
	}
	return file.manifest()
}

// ParseString parses a block-format manifest from a string.
func ParseString(input string) (*Manifest, error) {
	file, err := fileParser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return file.manifest()
}

func (f *File) manifest() (*Manifest, error) {
	m := &Manifest{}
	for _, e := range f.Entries {
		switch {
		case e.Font != nil:
			m.Fonts = append(m.Fonts, fontload.FontDescriptor{
				Name: string(e.Font.Name),
				Path: string(e.Font.Path),
			})
		case e.Sample != nil:
			m.Sample = string(*e.Sample)
		case e.Size != nil:
			size, err := specimen.ParseLength(*e.Size)
			if err != nil {
				return nil, fmt.Errorf("%s: 无效的字号 %q: %w", e.Pos, *e.Size, err)
			}
			m.Size = size
		}
	}
	return m, nil
}
