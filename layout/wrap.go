package layout

import "strings"

// Wrap 使用贪心算法将文本折成不超过 maxWidth（像素）的行。
//
// 显式换行总是开启新行，空段落也会输出一个空行；调用方依赖行号与段落一一对应。
// 单个词比 maxWidth 还宽时不会被拆开，而是独占一行并允许溢出。
func Wrap(text string, maxWidth float64, m Measurer) []TextLine {
	space := m.SpaceWidth()

	var (
		lines []TextLine
		words []string
		width float64
	)
	emit := func() {
		lines = append(lines, TextLine{
			Content: strings.Join(words, " "),
			Width:   width,
		})
		words = words[:0]
		width = 0
	}

	for _, paragraph := range strings.Split(text, "\n") {
		paragraph = strings.TrimSuffix(paragraph, "\r")
		for _, word := range strings.Split(paragraph, " ") {
			wordWidth := m.GlyphWidth(word) + space
			if len(words) > 0 && width+wordWidth >= maxWidth {
				emit()
			}
			words = append(words, word)
			width += wordWidth
		}
		emit()
	}
	return lines
}
