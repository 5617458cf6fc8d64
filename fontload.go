// Package fontload registers custom font files with a rendering context.
//
// Fonts can be registered in two ways:
//
//   - statically, from bytes embedded into the binary with //go:embed
//     (LoadStatic, MustLoadFS). These assets are trusted: a missing asset or
//     bytes the context rejects abort the program with a panic.
//   - dynamically, from paths on disk (LoadFonts, LoadFontSeq, LoadFontsFS).
//     A missing path is reported as *NotFoundError and an unreadable one as
//     *ReadError.
//
// Every font is registered as a new named family at the lowest selection
// priority, so it is only used when a caller asks for it by name.
package fontload

// FontFamily names a family under which fonts are registered.
type FontFamily string

// FontPriority is the selection priority of a font inside a family.
type FontPriority int

const (
	// PriorityLowest fonts are never chosen automatically as a fallback,
	// only when explicitly requested by name.
	PriorityLowest FontPriority = iota
	// PriorityHighest fonts take part in the context's fallback chain.
	PriorityHighest
)

func (p FontPriority) String() string {
	switch p {
	case PriorityLowest:
		return "lowest"
	case PriorityHighest:
		return "highest"
	default:
		return "unknown"
	}
}

// InsertFontFamily associates an inserted font with a family.
type InsertFontFamily struct {
	Family   FontFamily
	Priority FontPriority
}

// FontInsert is a single registration request issued against a Context.
type FontInsert struct {
	Name     string
	Data     []byte
	Families []InsertFontFamily
}

// Context is the rendering context fonts are registered with.
//
// AddFont may panic when the font data is not in a format the context
// accepts; callers of this package do not recover from that.
type Context interface {
	AddFont(font FontInsert)
}

// FontDescriptor identifies one font to load from disk.
type FontDescriptor struct {
	Name string
	Path string
}

// NewFontInsert builds the request registering data as a new family called
// name at the lowest priority.
func NewFontInsert(name string, data []byte) FontInsert {
	return FontInsert{
		Name: name,
		Data: data,
		Families: []InsertFontFamily{{
			Family:   FontFamily(name),
			Priority: PriorityLowest,
		}},
	}
}
