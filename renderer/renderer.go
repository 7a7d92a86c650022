package renderer

import (
	"errors"
	"fmt"

	"github.com/ByLCY/todowall/theme"
)

// MinDimension 是可排版图片的最小宽高（像素）。
const MinDimension = 200

var (
	// ErrImageTooSmall 表示图片任一边小于 MinDimension，无法给出合理布局。
	ErrImageTooSmall = errors.New("image is too small")
	// ErrImage tags every decode/encode/write failure; see Error.
	ErrImage = errors.New("image processing failed")
)

// Renderer 将文本块绘制到壁纸上并写出结果文件。
// outputPath 的扩展名决定输出格式。
type Renderer interface {
	Render(inputPath, outputPath, text string, t theme.Theme) error
}

// Error records which image operation failed on which file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every *Error match ErrImage.
func (e *Error) Is(target error) bool { return target == ErrImage }
