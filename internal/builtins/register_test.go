package builtins_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/builtins"
	"github.com/boklang/bok/internal/value"
)

func call(t *testing.T, d *value.Dictionary, s *value.Stack, name string) {
	t.Helper()
	c, ok := d.Get(name)
	require.Truef(t, ok, "no such word: %s", name)
	require.NoError(t, c.Call(s))
}

func TestShufflersRollAndRotate(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()
	s.PushAll(value.Int(1), value.Int(2), value.Int(3))
	call(t, d, s, "rollup")
	assert.Equal(t, []value.Value{value.Int(3), value.Int(1), value.Int(2)}, s.Snapshot())

	s2 := value.NewStack()
	s2.PushAll(value.Int(1), value.Int(2), value.Int(3))
	call(t, d, s2, "rolldown")
	assert.Equal(t, []value.Value{value.Int(2), value.Int(3), value.Int(1)}, s2.Snapshot())

	s3 := value.NewStack()
	s3.PushAll(value.Int(1), value.Int(2), value.Int(3))
	call(t, d, s3, "rotate")
	assert.Equal(t, []value.Value{value.Int(3), value.Int(2), value.Int(1)}, s3.Snapshot())
}

func TestShufflersTuckAndOver(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()
	s.PushAll(value.Int(1), value.Int(2))
	call(t, d, s, "tuck")
	assert.Equal(t, []value.Value{value.Int(2), value.Int(1), value.Int(2)}, s.Snapshot())

	s2 := value.NewStack()
	s2.PushAll(value.Int(1), value.Int(2))
	call(t, d, s2, "over")
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(1)}, s2.Snapshot())
}

func TestShufflersClearAndDepth(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()
	s.PushAll(value.Int(1), value.Int(2), value.Int(3))
	call(t, d, s, "depth")
	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Int(3), top)

	call(t, d, s, "clear")
	assert.Equal(t, 0, s.Len())
}

func quote(items ...value.Value) *value.List {
	return &value.List{Items: items}
}

func TestCombinatorsMapFilterFold(t *testing.T) {
	d := builtins.New(nil, nil)
	incr, _ := d.Get("++")
	s := value.NewStack()
	s.Push(&value.List{Items: []value.Value{value.Int(1), value.Int(2), value.Int(3)}})
	s.Push(quote(incr))
	call(t, d, s, "map")
	mapped, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, &value.List{Items: []value.Value{value.Int(2), value.Int(3), value.Int(4)}}, mapped)

	gt, _ := d.Get(">")
	s2 := value.NewStack()
	s2.Push(&value.List{Items: []value.Value{value.Int(1), value.Int(2), value.Int(3)}})
	s2.Push(quote(value.Int(1), gt))
	call(t, d, s2, "filter")
	filtered, err := s2.Pop()
	require.NoError(t, err)
	assert.Equal(t, &value.List{Items: []value.Value{value.Int(2), value.Int(3)}}, filtered)

	add, _ := d.Get("+")
	s3 := value.NewStack()
	s3.Push(&value.List{Items: []value.Value{value.Int(1), value.Int(2), value.Int(3)}})
	s3.Push(value.Int(0))
	s3.Push(quote(add))
	call(t, d, s3, "fold")
	total, err := s3.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Int(6), total)
}

func TestCombinatorsMinByMaxBy(t *testing.T) {
	d := builtins.New(nil, nil)
	decr, _ := d.Get("--")
	s := value.NewStack()
	s.Push(&value.List{Items: []value.Value{value.Int(5), value.Int(1), value.Int(9)}})
	s.Push(quote(decr))
	call(t, d, s, "min-by")
	min, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Int(1), min)

	s2 := value.NewStack()
	s2.Push(&value.List{Items: []value.Value{value.Int(5), value.Int(1), value.Int(9)}})
	s2.Push(quote(decr))
	call(t, d, s2, "max-by")
	max, err := s2.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Int(9), max)
}

func TestScalarsSumMaxMinReversed(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()
	s.Push(&value.List{Items: []value.Value{value.Int(1), value.Int(2), value.Int(3)}})
	call(t, d, s, "sum")
	total, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, value.Int(6), total)

	s2 := value.NewStack()
	s2.Push(&value.List{Items: []value.Value{value.Int(3), value.Int(1), value.Int(2)}})
	call(t, d, s2, "reversed")
	rev, err := s2.Pop()
	require.NoError(t, err)
	assert.Equal(t, &value.List{Items: []value.Value{value.Int(2), value.Int(1), value.Int(3)}}, rev)
}

func TestJSONRoundTrip(t *testing.T) {
	d := builtins.New(nil, nil)
	s := value.NewStack()
	s.Push(&value.List{Items: []value.Value{value.Int(1), value.Str("two"), value.Bool(true)}})
	call(t, d, s, "to_json")
	doc, err := s.Pop()
	require.NoError(t, err)
	str, ok := doc.(value.Str)
	require.True(t, ok)
	assert.True(t, strings.Contains(string(str), "two"))

	s.Push(str)
	call(t, d, s, "from_json")
	back, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, &value.List{Items: []value.Value{value.Int(1), value.Str("two"), value.Bool(true)}}, back)
}

func TestControlHelpPrintsDocstring(t *testing.T) {
	var buf strings.Builder
	d := builtins.New(&buf, nil)
	s := value.NewStack()
	dup, _ := d.Get("dup")
	s.Push(quote(dup))
	call(t, d, s, "help")
	assert.Contains(t, buf.String(), "duplicate the top")
}
