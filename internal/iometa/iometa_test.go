package iometa

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteZeros(t *testing.T) {
	for _, count := range []int{0, 1, 511, 512, 513, 4096} {
		buff := bytes.NewBufferString("x")
		cw := &CountingWriter{Writer: buff}

		require.NoError(t, WriteZeros(cw, count))
		assert.Equal(t, count, cw.BytesWritten())
		assert.Equal(t, 1+count, buff.Len())
		assert.Equal(t, make([]byte, count), buff.Bytes()[1:])
	}
}

type stalledWriter struct{}

func (stalledWriter) Write([]byte) (int, error) {
	return 0, nil
}

func TestWriteZerosStalledWriter(t *testing.T) {
	require.ErrorIs(t, WriteZeros(stalledWriter{}, 16), io.ErrShortWrite)
}
