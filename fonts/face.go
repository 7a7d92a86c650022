package fonts

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// spaceProbe 用于测量空格宽度：空格本身没有可见的包围盒，借助其后的句点的起点来推算。
const spaceProbe = " ."

// Face answers glyph-width queries for one font at one pixel scale.
// Scale is the em size in pixels (the face is created at 72 DPI, so 1pt == 1px).
type Face struct {
	face  font.Face
	space float64
}

// NewFace 解析字体数据并以 scale（像素）创建字体面。
func NewFace(data []byte, scale float64) (*Face, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("字号必须为正数，当前为 %g", scale)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("解析字体失败: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("创建字体面失败: %w", err)
	}

	f := &Face{face: face}
	f.space = f.probeSpace()
	return f, nil
}

// GlyphWidth 返回 s 中所有可见字形像素包围盒宽度之和；空白字形不计入。
func (f *Face) GlyphWidth(s string) float64 {
	total := 0
	for _, box := range f.boxes(s) {
		total += box.Dx()
	}
	return float64(total)
}

// SpaceWidth returns the measured width of one inter-word space.
func (f *Face) SpaceWidth() float64 { return f.space }

// Close releases the underlying face.
func (f *Face) Close() error {
	return f.face.Close()
}

func (f *Face) probeSpace() float64 {
	sum := 0
	for _, box := range f.boxes(spaceProbe) {
		sum += box.Min.X
	}
	if sum > 0 {
		return float64(sum)
	}
	// 字体缺少句点时退回到空格的步进宽度
	adv, ok := f.face.GlyphAdvance(' ')
	if !ok {
		return 0
	}
	return float64(adv.Ceil())
}

// boxes 按排版顺序返回每个可见字形的像素包围盒（原点为行首、基线）。
func (f *Face) boxes(s string) []image.Rectangle {
	var (
		out  []image.Rectangle
		dot  fixed.Int26_6
		prev rune = -1
	)
	for _, r := range s {
		if prev >= 0 {
			dot += f.face.Kern(prev, r)
		}
		bounds, adv, ok := f.face.GlyphBounds(r)
		if ok && !bounds.Empty() {
			out = append(out, image.Rect(
				(dot+bounds.Min.X).Floor(),
				bounds.Min.Y.Floor(),
				(dot+bounds.Max.X).Ceil(),
				bounds.Max.Y.Ceil(),
			))
		}
		dot += adv
		prev = r
	}
	return out
}
