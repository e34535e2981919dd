// Package report encodes sweep results as a compact little-endian binary
// file: a fixed header padded to an 8 byte boundary, then one fixed-size
// record per mismatch.
package report

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/davejbax/alignoff/internal/align"
	"github.com/davejbax/alignoff/internal/iometa"
	"github.com/davejbax/alignoff/internal/sweep"
	"github.com/lunixbochs/struc"
)

const (
	magic   = "ALOF"
	version = 1

	// Records start on this boundary
	recordAlignment = 8

	// All records are 64 bit wide regardless of the host pointer width
	wordBits = 64

	// Count comes from the file, so it only bounds the initial allocation
	maxPreallocRecords = 1024
)

var (
	ErrBadMagic           = errors.New("not an alignment sweep report")
	ErrUnsupportedVersion = errors.New("unsupported report version")
)

type header struct {
	Magic   []byte `struc:"[4]byte"`
	Version uint16
	Method  uint8
	Width   uint8
	Checked uint64
	Count   uint32
}

type record struct {
	Address   uint64
	Stride    uint64
	Alignment uint64
	Got       uint64
	Want      uint64
}

type Report struct {
	Method     align.Method
	Checked    uint64
	Mismatches []sweep.Mismatch
}

func New(result *sweep.Result) *Report {
	return &Report{
		Method:     result.Method,
		Checked:    result.Checked,
		Mismatches: result.Mismatches,
	}
}

func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &iometa.CountingWriter{Writer: w}
	opts := &struc.Options{Order: binary.LittleEndian}

	hdr := &header{
		Magic:   []byte(magic),
		Version: version,
		Method:  uint8(r.Method),
		Width:   wordBits,
		Checked: r.Checked,
		Count:   uint32(len(r.Mismatches)),
	}

	if err := struc.PackWithOptions(cw, hdr, opts); err != nil {
		return int64(cw.BytesWritten()), fmt.Errorf("failed to write report header: %w", err)
	}

	if pad := headerPadding(cw.BytesWritten()); pad > 0 {
		if err := iometa.WriteZeros(cw, pad); err != nil {
			return int64(cw.BytesWritten()), fmt.Errorf("failed to write report header padding: %w", err)
		}
	}

	for _, mismatch := range r.Mismatches {
		rec := &record{
			Address:   mismatch.Address,
			Stride:    mismatch.Stride,
			Alignment: mismatch.Alignment,
			Got:       mismatch.Got,
			Want:      mismatch.Want,
		}

		if err := struc.PackWithOptions(cw, rec, opts); err != nil {
			return int64(cw.BytesWritten()), fmt.Errorf("failed to write report record: %w", err)
		}
	}

	return int64(cw.BytesWritten()), nil
}

func Read(r io.Reader) (*Report, error) {
	opts := &struc.Options{Order: binary.LittleEndian}

	var hdr header
	if err := struc.UnpackWithOptions(r, &hdr, opts); err != nil {
		return nil, fmt.Errorf("failed to read report header: %w", err)
	}

	if !bytes.Equal(hdr.Magic, []byte(magic)) {
		return nil, ErrBadMagic
	}

	if hdr.Version != version {
		return nil, fmt.Errorf("report version %d: %w", hdr.Version, ErrUnsupportedVersion)
	}

	headerSize, err := struc.SizeofWithOptions(&hdr, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to size report header: %w", err)
	}

	if _, err := io.CopyN(io.Discard, r, int64(headerPadding(headerSize))); err != nil {
		return nil, fmt.Errorf("failed to skip report header padding: %w", err)
	}

	report := &Report{
		Method:     align.Method(hdr.Method),
		Checked:    hdr.Checked,
		Mismatches: make([]sweep.Mismatch, 0, min(hdr.Count, maxPreallocRecords)),
	}

	for i := uint32(0); i < hdr.Count; i++ {
		var rec record
		if err := struc.UnpackWithOptions(r, &rec, opts); err != nil {
			return nil, fmt.Errorf("failed to read report record %d: %w", i, err)
		}

		report.Mismatches = append(report.Mismatches, sweep.Mismatch{
			Address:   rec.Address,
			Stride:    rec.Stride,
			Alignment: rec.Alignment,
			Got:       rec.Got,
			Want:      rec.Want,
		})
	}

	return report, nil
}

func headerPadding(size int) int {
	return int(align.Address(uint64(size), recordAlignment) - uint64(size))
}
