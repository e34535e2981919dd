package iometa

import (
	"fmt"
	"io"
)

// Zeros are written from this buffer in chunks
var zeroChunk [512]byte

// CountingWriter tracks the number of bytes successfully written through it,
// so that encoders can compute padding and report totals from WriteTo.
type CountingWriter struct {
	Writer       io.Writer
	bytesWritten int
}

func (c *CountingWriter) Write(p []byte) (int, error) {
	written, err := c.Writer.Write(p)
	c.bytesWritten += written

	return written, err //nolint:wrapcheck
}

func (c *CountingWriter) BytesWritten() int {
	return c.bytesWritten
}

func WriteZeros(w io.Writer, count int) error {
	for count > 0 {
		chunk := zeroChunk[:min(count, len(zeroChunk))]

		written, err := w.Write(chunk)
		if err != nil {
			return fmt.Errorf("failed to write zeros: %w", err)
		}

		if written == 0 {
			return fmt.Errorf("failed to write zeros: %w", io.ErrShortWrite)
		}

		count -= written
	}

	return nil
}
