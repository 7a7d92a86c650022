package textblock

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Headings 是各分区标题，可以包含 ${count} 占位符。空标题表示不输出标题行。
type Headings struct {
	Todo string `yaml:"todo" toml:"todo"`
	Done string `yaml:"done" toml:"done"`
}

// DefaultHeadings returns the headings used when none are configured.
func DefaultHeadings() Headings {
	return Headings{Todo: "TODOS:", Done: "DONES:"}
}

// Compose 将待办与已完成列表拼成待渲染的文本块。
// 两个列表都为空时返回 ok=false，调用方应当直接结束而不做任何改动。
func Compose(todos, dones []string, h Headings) (text string, ok bool) {
	if len(todos) == 0 && len(dones) == 0 {
		return "", false
	}

	var lines []string
	if len(todos) > 0 {
		lines = appendSection(lines, h.Todo, todos)
	}
	if len(dones) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = appendSection(lines, h.Done, dones)
	}
	return strings.Join(lines, "\n"), true
}

func appendSection(lines []string, heading string, items []string) []string {
	if heading != "" {
		lines = append(lines, Interpolate(heading, map[string]any{"count": len(items)}), "")
	}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return lines
}

// Interpolate 将文本中的 ${name} 替换为 data 中的值。
// 若 data 为空或键不存在，则保留原占位符。
func Interpolate(text string, data map[string]any) string {
	if len(data) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		key := strings.TrimSpace(groups[1])
		if val, ok := data[key]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
