package runeio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boklang/bok/internal/runeio"
)

func TestWriteANSIStringNELBecomesCRLF(t *testing.T) {
	var buf bytes.Buffer
	_, err := runeio.WriteANSIString(&buf, "ok\u0085x")
	assert.NoError(t, err)
	assert.Equal(t, "ok\r\nx", buf.String())
}

func TestWriteANSIStringASCIIPassthrough(t *testing.T) {
	var buf bytes.Buffer
	n, err := runeio.WriteANSIString(&buf, "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
	assert.Equal(t, len("hello"), n)
}
