// Package specimen renders a PDF sheet showing every font family registered
// in a canvasctx.Context.
package specimen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/fontload/canvasctx"
	"github.com/ByLCY/fontload/fonts"
)

// DefaultSample is used when Options.Sample is empty.
const DefaultSample = "The quick brown fox jumps over the lazy dog 0123456789"

const (
	pageWidth  = 210.0 // A4, mm
	pageHeight = 297.0
	margin     = 18.0
	labelSize  = 9.0 // pt
	rowGap     = 6.0 // mm
)

// Options configures a specimen sheet.
type Options struct {
	Title  string
	Sample string
	Size   Length // sample font size, 14pt when zero
}

// Render draws one block per registered family: its name set in the
// built-in regular font and the sample text set in the family itself.
// The page grows past A4 height when the families do not fit.
func Render(ctx *canvasctx.Context, opts Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("字体上下文为空")
	}
	names := ctx.Families()
	if len(names) == 0 {
		return nil, fmt.Errorf("没有已注册的字体")
	}
	sample := opts.Sample
	if sample == "" {
		sample = DefaultSample
	}
	size := opts.Size
	if size.IsZero() {
		size = Length{Value: 14, Unit: UnitPT}
	}

	labelFace, err := labelFont()
	if err != nil {
		return nil, err
	}
	width := pageWidth - 2*margin

	type block struct {
		name  string
		face  *canvas.FontFace
		lines []string
	}
	blocks := make([]block, 0, len(names))
	height := 2 * margin
	if opts.Title != "" {
		height += labelFace.Metrics().LineHeight*2 + rowGap
	}
	for _, name := range names {
		face, err := ctx.Face(name, size.ToPT(), canvas.Black)
		if err != nil {
			return nil, fmt.Errorf("创建字体 %s 失败: %w", name, err)
		}
		lines := wrapWords(sample, width, face)
		blocks = append(blocks, block{name: name, face: face, lines: lines})
		height += labelFace.Metrics().LineHeight + float64(len(lines))*face.Metrics().LineHeight + rowGap
	}
	if height < pageHeight {
		height = pageHeight
	}

	c := canvas.New(pageWidth, height)
	dc := canvas.NewContext(c)
	dc.SetCoordSystem(canvas.CartesianIV) // 坐标原点位于左上角
	cursorY := margin
	if opts.Title != "" {
		cursorY = drawLine(dc, labelFace, opts.Title, cursorY)
		cursorY += labelFace.Metrics().LineHeight + rowGap
	}
	for _, b := range blocks {
		cursorY = drawLine(dc, labelFace, b.name, cursorY)
		for _, line := range b.lines {
			cursorY = drawLine(dc, b.face, line, cursorY)
		}
		cursorY += rowGap
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, pageWidth, height, nil)
	writer.SetInfo(opts.Title, "font specimen", strings.Join(names, ", "), "", "fontload")
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func labelFont() (*canvas.FontFace, error) {
	data, err := fonts.Load(fonts.Regular)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("specimen-label")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载标签字体失败: %w", err)
	}
	return family.Face(labelSize, canvas.RGBA(0.4, 0.4, 0.4, 1.0), canvas.FontRegular, canvas.FontNormal), nil
}

// drawLine 在 cursorY（行顶部，mm）处绘制一行文本，返回下一行的顶部位置。
func drawLine(dc *canvas.Context, face *canvas.FontFace, s string, cursorY float64) float64 {
	metrics := face.Metrics()
	dc.DrawText(margin, cursorY+metrics.Ascent, canvas.NewTextLine(face, s, canvas.Left))
	return cursorY + metrics.LineHeight
}

// wrapWords 按空格贪心换行；单个过长的词单独成行，不再拆分。
func wrapWords(s string, width float64, face *canvas.FontFace) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if face.TextWidth(candidate) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
