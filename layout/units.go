package layout

import "math"

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// 字号随图片高度次线性增长，并限制在 [MinScale, MaxScale] 之间。
const (
	ScaleExponent = 0.45
	MinScale      = 8.0
	MaxScale      = 128.0
)

// 面板与文字位置相对图片尺寸的比例。
const (
	NarrowImageWidth = 500
	MarginRatio      = 0.02
	TopRatio         = 0.10
	LineSpacing      = 1.15
)

// FontScale 计算给定图片高度下的字号（像素）：clamp(h^0.45, 8, 128)。
func FontScale(imageHeight int) float64 {
	s := math.Pow(float64(imageHeight), ScaleExponent)
	return math.Max(MinScale, math.Min(MaxScale, s))
}

// PanelFor 返回文字面板：窄图取右半部分，宽图取右侧三分之一，高度为整幅图片。
func PanelFor(width, height int) Panel {
	x := 2 * width / 3
	if width < NarrowImageWidth {
		x = width / 2
	}
	return Panel{X: x, Width: width - x, Height: height}
}
