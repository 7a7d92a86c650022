package layout

// 该文件定义排版结果与度量接口，供排版计算、渲染与调试 JSON 共用。

// Measurer 提供字形度量：宽度均以像素为单位。
type Measurer interface {
	// GlyphWidth 返回字符串中可见字形包围盒的宽度之和。
	GlyphWidth(s string) float64
	// SpaceWidth 返回一个词间空格的宽度。
	SpaceWidth() float64
}

// Typesetter 根据字号（像素）创建度量器，渲染器实现该接口以便排版与绘制使用同一字体。
type Typesetter interface {
	Measurer(scale float64) (Measurer, error)
}

// Panel 描述图片右侧用于承载文字的区域，单位为像素。
type Panel struct {
	X      int `json:"x"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TextLine 表示折行后的一行文本；X 与 Baseline 在 Build 之后才有值。
type TextLine struct {
	Content  string  `json:"content"`
	Width    float64 `json:"width"`
	X        float64 `json:"x,omitempty"`
	Baseline float64 `json:"baseline,omitempty"`
}

// Plan 保存一次渲染所需的全部几何信息。
type Plan struct {
	ImageWidth  int        `json:"imageWidth"`
	ImageHeight int        `json:"imageHeight"`
	Panel       Panel      `json:"panel"`
	Scale       float64    `json:"scale"`
	Margin      float64    `json:"margin"`
	MaxWidth    float64    `json:"maxWidth"`
	LineHeight  float64    `json:"lineHeight"`
	Lines       []TextLine `json:"lines"`
}
