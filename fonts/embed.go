package fonts

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Default 是未配置字体时使用的内置字体。
const Default = "embed:go-medium"

var builtin = map[string][]byte{
	"go-regular": goregular.TTF,
	"go-medium":  gomedium.TTF,
	"go-bold":    gobold.TTF,
	"go-mono":    gomono.TTF,
}

// Load 返回字体的字节数据，src 可写为 "embed:go-medium" 形式的内置字体，或直接写字体文件路径。
func Load(src string) ([]byte, error) {
	if src == "" {
		src = Default
	}
	if name, ok := strings.CutPrefix(src, "embed:"); ok {
		data, found := builtin[name]
		if !found {
			return nil, fmt.Errorf("找不到内置字体 %s（可选: %s）", name, strings.Join(Builtins(), ", "))
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	return data, nil
}

// Builtins lists the names accepted after the "embed:" prefix.
func Builtins() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
