// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

import "encoding/binary"

// ZLIB header constants (RFC 1950 §2.2).
const (
	zlibCM8        = 8 // CM=8 (deflate) is the only compression method the format allows
	zlibCINFO      = 7 // CINFO=7 signals a 32 KiB window, matching windowSize
	zlibFLEVELd    = 2 // FLEVEL=2 ("default algorithm"); this codec makes no level claim beyond that
	zlibHeaderLen  = 2
	zlibTrailerLen = 4
)

// Compress encodes data as a complete ZLIB stream: a two-byte header, one
// dynamic-Huffman DEFLATE block, and a four-byte big-endian Adler-32
// trailer (spec.md §4.9).
func Compress(data []byte) ([]byte, error) {
	payload, err := deflateEncode(data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, zlibHeaderLen+len(payload)+zlibTrailerLen)
	out = append(out, zlibHeader()...)
	out = append(out, payload...)
	out = binary.BigEndian.AppendUint32(out, adler32(data, 1))
	return out, nil
}

// Decompress validates a ZLIB stream's header and trailer, inflates its
// DEFLATE payload, and verifies the Adler-32 checksum matches the
// reconstructed data (spec.md §4.9, §7).
func Decompress(stream []byte) ([]byte, error) {
	if len(stream) < zlibHeaderLen+zlibTrailerLen {
		return nil, ErrShortInput
	}

	if err := validateZlibHeader(stream[0], stream[1]); err != nil {
		return nil, err
	}

	payload := stream[zlibHeaderLen : len(stream)-zlibTrailerLen]
	out, err := inflateDecode(payload)
	if err != nil {
		return nil, err
	}

	want := binary.BigEndian.Uint32(stream[len(stream)-zlibTrailerLen:])
	if got := adler32(out, 1); got != want {
		return nil, ErrChecksumMismatch
	}
	return out, nil
}

// zlibHeader builds the two-byte CMF/FLG pair with FCHECK chosen so the
// big-endian uint16 they form is a multiple of 31, as RFC 1950 §2.2 requires.
func zlibHeader() []byte {
	cmf := byte(zlibCINFO<<4 | zlibCM8)
	flg := byte(zlibFLEVELd << 6) // FDICT=0, FLEVEL=2, FCHECK filled in below
	flg += byte(31 - (int(cmf)*256+int(flg))%31) % 31
	return []byte{cmf, flg}
}

// validateZlibHeader checks CM, CINFO, FDICT, and the FCHECK mod-31
// invariant (spec.md §4.9). FDICT must be unset: preset dictionaries are a
// Non-goal.
func validateZlibHeader(cmf, flg byte) error {
	if (int(cmf)*256+int(flg))%31 != 0 {
		return ErrBadHeader
	}
	if cmf&0x0f != zlibCM8 {
		return ErrBadHeader
	}
	if cmf>>4 > 7 {
		return ErrBadHeader
	}
	if flg&0x20 != 0 { // FDICT
		return ErrBadHeader
	}
	return nil
}
