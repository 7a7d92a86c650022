package layout

import (
	"fmt"
	"io"
)

// Build 计算 width×height 图片上的面板、字号与每一行文字的位置。
func Build(text string, width, height int, opts BuildOptions) (*Plan, error) {
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("排版后端不能为空")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("图片尺寸无效: %dx%d", width, height)
	}

	panel := PanelFor(width, height)
	scale := FontScale(height)
	margin := MarginRatio * float64(width)

	m, err := opts.Typesetter.Measurer(scale)
	if err != nil {
		return nil, fmt.Errorf("创建度量器失败: %w", err)
	}
	if c, ok := m.(io.Closer); ok {
		defer c.Close()
	}

	plan := &Plan{
		ImageWidth:  width,
		ImageHeight: height,
		Panel:       panel,
		Scale:       scale,
		Margin:      margin,
		MaxWidth:    float64(panel.Width) - margin,
		LineHeight:  LineSpacing * scale,
	}
	plan.Lines = Wrap(text, plan.MaxWidth, m)

	top := TopRatio * float64(height)
	for i := range plan.Lines {
		plan.Lines[i].X = float64(panel.X) + margin
		plan.Lines[i].Baseline = top + float64(i)*plan.LineHeight
	}
	return plan, nil
}
