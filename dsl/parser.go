package dsl

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	listLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	})

	listParser = participle.MustBuild[List](
		participle.Lexer(listLexer),
		participle.Elide("Whitespace", "HashComment", "LineComment"),
	)
)

// Item kinds.
const (
	KindTodo = "todo"
	KindDone = "done"
)

// List is the root AST node of a todo list file:
//
//	# groceries
//	todo "buy milk"
//	done "call the plumber"
type List struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Items []*Item        `parser:"Newline* ( @@ Newline* )*"`
}

// Item is one todo or done entry.
type Item struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Kind string         `parser:"@( 'todo' | 'done' )"`
	Text StringLiteral  `parser:"@String"`
}

// Lists splits the items into todos and dones, preserving file order.
func (l *List) Lists() (todos, dones []string) {
	if l == nil {
		return nil, nil
	}
	for _, item := range l.Items {
		switch item.Kind {
		case KindTodo:
			todos = append(todos, string(item.Text))
		case KindDone:
			dones = append(dones, string(item.Text))
		}
	}
	return todos, dones
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a todo list from an io.Reader.
func Parse(r io.Reader) (*List, error) {
	return listParser.Parse("", r)
}

// ParseString parses a todo list from a string.
func ParseString(input string) (*List, error) {
	return listParser.ParseString("", input)
}

// ParseFile parses the todo list stored at path.
func ParseFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开待办文件 %s: %w", path, err)
	}
	defer f.Close()

	list, err := listParser.Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("解析待办文件失败: %w", err)
	}
	return list, nil
}
