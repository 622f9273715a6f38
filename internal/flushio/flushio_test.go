package flushio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boklang/bok/internal/flushio"
)

func TestWriteFlushersTeesToEveryMember(t *testing.T) {
	var a, b bytes.Buffer
	wf := flushio.WriteFlushers(flushio.NewWriteFlusher(&a), flushio.NewWriteFlusher(&b))

	n, err := wf.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	require.NoError(t, wf.Flush())

	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}

func TestWriteFlushersFlattensNestedGroups(t *testing.T) {
	var a, b, c bytes.Buffer
	inner := flushio.WriteFlushers(flushio.NewWriteFlusher(&a), flushio.NewWriteFlusher(&b))
	outer := flushio.WriteFlushers(inner, flushio.NewWriteFlusher(&c))

	_, err := outer.Write([]byte("x"))
	require.NoError(t, err)

	assert.Equal(t, "x", a.String())
	assert.Equal(t, "x", b.String())
	assert.Equal(t, "x", c.String())
}

func TestWriteFlushersSingleMemberUnwraps(t *testing.T) {
	var a bytes.Buffer
	single := flushio.NewWriteFlusher(&a)
	assert.Equal(t, single, flushio.WriteFlushers(single))
}

func TestWriteFlushersEmptyIsNil(t *testing.T) {
	assert.Nil(t, flushio.WriteFlushers())
}

func TestNewWriteFlusherSkipsFlushingBuffers(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)
	_, err := wf.Write([]byte("no flush needed"))
	require.NoError(t, err)
	assert.NoError(t, wf.Flush())
	assert.Equal(t, "no flush needed", buf.String())
}
