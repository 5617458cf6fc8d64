package manifest

import (
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ByLCY/fontload"
	"github.com/ByLCY/fontload/specimen"
)

// Manifest lists the fonts to load, in order. Names are not deduplicated.
type Manifest struct {
	Fonts  []fontload.FontDescriptor
	Sample string
	Size   specimen.Length
}

// All yields the manifest's fonts in declaration order.
func (m *Manifest) All() iter.Seq[fontload.FontDescriptor] {
	return slices.Values(m.Fonts)
}

type tomlManifest struct {
	Sample string     `toml:"sample"`
	Size   string     `toml:"size"`
	Fonts  []tomlFont `toml:"font"`
}

type tomlFont struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// DecodeTOML reads a TOML manifest:
//
//	sample = "The quick brown fox"
//	size = "14pt"
//
//	[[font]]
//	name = "Body"
//	path = "./fonts/body.ttf"
//
// Unknown keys are rejected.
func DecodeTOML(r io.Reader) (*Manifest, error) {
	var raw tomlManifest
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("未知的配置项: %s", strings.Join(keys, ", "))
	}

	m := &Manifest{Sample: raw.Sample}
	if raw.Size != "" {
		size, err := specimen.ParseLength(raw.Size)
		if err != nil {
			return nil, fmt.Errorf("无效的字号 %q: %w", raw.Size, err)
		}
		m.Size = size
	}
	for _, f := range raw.Fonts {
		m.Fonts = append(m.Fonts, fontload.FontDescriptor{Name: f.Name, Path: f.Path})
	}
	return m, nil
}

// Load reads the manifest at path. Files ending in .toml are decoded as
// TOML, anything else as the block format. Relative font paths are resolved
// against the manifest's directory.
func Load(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开字体清单 %s: %w", path, err)
	}
	defer file.Close()

	var m *Manifest
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		m, err = DecodeTOML(file)
	} else {
		m, err = Parse(file)
	}
	if err != nil {
		return nil, fmt.Errorf("解析字体清单 %s 失败: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	for i := range m.Fonts {
		if p := m.Fonts[i].Path; p != "" && !filepath.IsAbs(p) {
			m.Fonts[i].Path = filepath.Join(baseDir, p)
		}
	}
	return m, nil
}
