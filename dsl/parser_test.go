package dsl_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/todowall/dsl"
)

const sampleList = `
# weekly chores
todo "buy milk"
todo "water the \"big\" plant"

// finished
done "call the plumber"
todo "file taxes"
`

func TestParseList(t *testing.T) {
	list, err := dsl.ParseString(sampleList)
	require.NoError(t, err)
	require.Len(t, list.Items, 4)

	assert.Equal(t, dsl.KindTodo, list.Items[0].Kind)
	assert.Equal(t, `water the "big" plant`, string(list.Items[1].Text))
	assert.Equal(t, 4, list.Items[1].Pos.Line)

	todos, dones := list.Lists()
	assert.Equal(t, []string{"buy milk", `water the "big" plant`, "file taxes"}, todos)
	assert.Equal(t, []string{"call the plumber"}, dones)
}

func TestParseEmptyList(t *testing.T) {
	list, err := dsl.Parse(strings.NewReader("# nothing yet\n\n"))
	require.NoError(t, err)

	todos, dones := list.Lists()
	assert.Empty(t, todos)
	assert.Empty(t, dones)
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := dsl.ParseString(`later "someday"`)
	require.Error(t, err)

	_, err = dsl.ParseString(`todo unquoted`)
	require.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.todo")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0o644))

	list, err := dsl.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, list.Items, 4)

	_, err = dsl.ParseFile(filepath.Join(t.TempDir(), "missing.todo"))
	require.Error(t, err)
}
