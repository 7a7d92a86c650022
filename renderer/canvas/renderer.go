package canvasrenderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/todowall/fonts"
	"github.com/ByLCY/todowall/layout"
	"github.com/ByLCY/todowall/renderer"
	"github.com/ByLCY/todowall/theme"
)

// 面板处理的默认参数：亮度偏移量（0-255）与高斯模糊的 sigma（像素）。
const (
	DefaultBrightness = 30
	DefaultBlurSigma  = 15.0
	jpegQuality       = 95
)

// Renderer composites text onto wallpapers. Text is laid out with
// fonts.Face metrics and drawn via github.com/tdewolff/canvas; the panel
// treatment and encoding use github.com/disintegration/imaging.
type Renderer struct {
	opts Options
	log  zerolog.Logger

	fontMu   sync.Mutex
	fontData []byte
	family   *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	FontSrc    string  // fonts.Load 可识别的字体来源，空值使用 fonts.Default
	Brightness int     // 面板亮度偏移的幅度，方向由主题决定
	BlurSigma  float64 // 面板模糊半径，0 表示不模糊
	DebugPath  string  // 非空时把排版结果写成 JSON
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		FontSrc:    fonts.Default,
		Brightness: DefaultBrightness,
		BlurSigma:  DefaultBlurSigma,
	}
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options, log zerolog.Logger) *Renderer {
	return &Renderer{opts: opts, log: log}
}

// Measurer 实现 layout.Typesetter 接口，返回与绘制相同字体的度量器。
func (r *Renderer) Measurer(scale float64) (layout.Measurer, error) {
	data, err := r.fontBytes()
	if err != nil {
		return nil, err
	}
	return fonts.NewFace(data, scale)
}

// Render decodes inputPath, treats the right-hand panel, draws text on it and
// writes the result to outputPath in the format implied by its extension.
// Nothing is written when the image is smaller than renderer.MinDimension.
func (r *Renderer) Render(inputPath, outputPath, text string, t theme.Theme) error {
	format, err := imaging.FormatFromFilename(outputPath)
	if err != nil {
		return &renderer.Error{Op: "encode", Path: outputPath, Err: err}
	}

	src, err := imaging.Open(inputPath, imaging.AutoOrientation(true))
	if err != nil {
		return &renderer.Error{Op: "decode", Path: inputPath, Err: err}
	}
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	if width < renderer.MinDimension || height < renderer.MinDimension {
		return fmt.Errorf("%w: %s 为 %dx%d，至少需要 %dx%d", renderer.ErrImageTooSmall,
			inputPath, width, height, renderer.MinDimension, renderer.MinDimension)
	}

	plan, err := layout.Build(text, width, height, layout.BuildOptions{Typesetter: r})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}
	if r.opts.DebugPath != "" {
		if err := writeDebug(plan, r.opts.DebugPath); err != nil {
			return err
		}
	}

	out := r.treatPanel(imaging.Clone(src), plan.Panel, t)

	textLayer, err := r.drawText(plan, t.TextColor())
	if err != nil {
		return err
	}
	draw.Draw(out, out.Bounds(), textLayer, image.Point{}, draw.Over)

	if err := writeImage(out, outputPath, format); err != nil {
		return &renderer.Error{Op: "encode", Path: outputPath, Err: err}
	}

	r.log.Debug().
		Str("input", inputPath).
		Str("output", outputPath).
		Str("theme", t.String()).
		Int("panel_x", plan.Panel.X).
		Float64("scale", plan.Scale).
		Int("lines", len(plan.Lines)).
		Msg("rendered wallpaper")
	return nil
}

// treatPanel 对面板区域先调整亮度再模糊，然后贴回原位置；面板左侧保持不变。
func (r *Renderer) treatPanel(img *image.NRGBA, panel layout.Panel, t theme.Theme) *image.NRGBA {
	rect := image.Rect(panel.X, 0, panel.X+panel.Width, panel.Height)
	region := imaging.Crop(img, rect)
	region = imaging.AdjustFunc(region, shiftBrightness(t.PanelShift(r.opts.Brightness)))
	if r.opts.BlurSigma > 0 {
		region = imaging.Blur(region, r.opts.BlurSigma)
	}
	return imaging.Paste(img, region, rect.Min)
}

// drawText 在与图片等大的透明画布上逐行绘制文本。
// 画布以 1mm == 1px 栅格化，因此排版得到的像素坐标可以直接使用。
func (r *Renderer) drawText(plan *layout.Plan, col color.Color) (*image.RGBA, error) {
	face, err := r.fontFace(plan.Scale, col)
	if err != nil {
		return nil, err
	}

	c := canvas.New(float64(plan.ImageWidth), float64(plan.ImageHeight))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与排版保持左上角为原点

	for _, line := range plan.Lines {
		if line.Content == "" {
			continue
		}
		ctx.DrawText(line.X, line.Baseline, canvas.NewTextLine(face, line.Content, canvas.Left))
	}
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace), nil
}

func (r *Renderer) fontFace(scale float64, col color.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily()
	if err != nil {
		return nil, err
	}
	// scale 为像素（即 mm），创建字体面需要 pt
	return family.Face(toPt(scale), col, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	data, err := r.loadFontLocked()
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("todowall")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", r.fontSrc(), err)
	}
	r.family = family
	return family, nil
}

func (r *Renderer) fontBytes() ([]byte, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	return r.loadFontLocked()
}

func (r *Renderer) loadFontLocked() ([]byte, error) {
	if r.fontData != nil {
		return r.fontData, nil
	}
	data, err := fonts.Load(r.fontSrc())
	if err != nil {
		return nil, err
	}
	r.fontData = data
	return data, nil
}

func (r *Renderer) fontSrc() string {
	if r.opts.FontSrc == "" {
		return fonts.Default
	}
	return r.opts.FontSrc
}

// shiftBrightness 给 RGB 通道加上固定偏移并截断到 [0, 255]，alpha 不变。
func shiftBrightness(delta int) func(color.NRGBA) color.NRGBA {
	return func(c color.NRGBA) color.NRGBA {
		c.R = clampChannel(int(c.R) + delta)
		c.G = clampChannel(int(c.G) + delta)
		c.B = clampChannel(int(c.B) + delta)
		return c
	}
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

// writeImage 先写入同目录下的临时文件再重命名，避免留下写了一半的壁纸。
func writeImage(img image.Image, path string, format imaging.Format) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := imaging.Encode(tmp, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func writeDebug(plan *layout.Plan, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(plan, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }
