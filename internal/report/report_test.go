package report

import (
	"bytes"
	"testing"

	"github.com/davejbax/alignoff/internal/align"
	"github.com/davejbax/alignoff/internal/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	result := &sweep.Result{
		Method:  align.MethodReduced,
		Checked: 65504,
		Mismatches: []sweep.Mismatch{
			{Address: 1, Stride: 3, Alignment: 4, Got: 0, Want: 1},
			{Address: 0x1005, Stride: 0, Alignment: 16, Got: 11, Want: align.Unreachable[uint64]()},
		},
	}

	buff := &bytes.Buffer{}
	written, err := New(result).WriteTo(buff)
	require.NoError(t, err)

	// 20 byte header padded to 24, then 40 bytes per record
	assert.Equal(t, int64(24+2*40), written)
	assert.Equal(t, int(written), buff.Len())
	assert.Equal(t, []byte(magic), buff.Bytes()[:4])
	assert.Equal(t, []byte{0, 0, 0, 0}, buff.Bytes()[20:24])

	decoded, err := Read(buff)
	require.NoError(t, err)
	assert.Equal(t, New(result), decoded)
}

func TestEmptyReport(t *testing.T) {
	buff := &bytes.Buffer{}
	_, err := New(&sweep.Result{Checked: 12}).WriteTo(buff)
	require.NoError(t, err)

	decoded, err := Read(buff)
	require.NoError(t, err)
	assert.Equal(t, align.MethodHensel, decoded.Method)
	assert.Equal(t, uint64(12), decoded.Checked)
	assert.Empty(t, decoded.Mismatches)
}

func TestReadRejectsForeignData(t *testing.T) {
	_, err := Read(bytes.NewReader(append([]byte("NOPE"), make([]byte, 20)...)))
	require.ErrorIs(t, err, ErrBadMagic)

	future := append([]byte(magic), 2, 0)
	future = append(future, make([]byte, 18)...)

	_, err = Read(bytes.NewReader(future))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestReadTruncated(t *testing.T) {
	buff := &bytes.Buffer{}
	_, err := New(&sweep.Result{
		Mismatches: []sweep.Mismatch{{Address: 1, Stride: 2, Alignment: 4}},
	}).WriteTo(buff)
	require.NoError(t, err)

	_, err = Read(bytes.NewReader(buff.Bytes()[:buff.Len()-1]))
	require.Error(t, err)
}
