// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

import "errors"

// Sentinel errors for compression and decompression. All are fatal to the
// current operation: no partial result is ever returned alongside an error.
var (
	// ErrShortInput is returned when a ZLIB stream is too short to hold a
	// header and trailer, or when a bit read runs past the end of input.
	ErrShortInput = errors.New("zlib: short input")
	// ErrBadHeader is returned when the two-byte ZLIB header fails CM, CINFO,
	// FDICT, or FCHECK validation.
	ErrBadHeader = errors.New("zlib: invalid header")
	// ErrBadBlockType is returned when a DEFLATE block declares BTYPE 3 (reserved).
	ErrBadBlockType = errors.New("zlib: invalid block type")
	// ErrBadStoredBlock is returned when a stored block's LEN and NLEN fields disagree.
	ErrBadStoredBlock = errors.New("zlib: stored block length mismatch")
	// ErrBadHuffmanCode is returned when the bit stream contains a prefix that
	// matches no entry in a Huffman decode table.
	ErrBadHuffmanCode = errors.New("zlib: invalid huffman code")
	// ErrBadLengthSymbol is returned when a literal/length symbol decodes to
	// a value outside the 286-symbol alphabet.
	ErrBadLengthSymbol = errors.New("zlib: invalid length symbol")
	// ErrBadDistance is returned when a back-reference distance is zero or
	// exceeds the number of bytes produced so far.
	ErrBadDistance = errors.New("zlib: invalid distance")
	// ErrTooManyBits is returned when a dynamic Huffman header declares a
	// code length greater than 15 bits.
	ErrTooManyBits = errors.New("zlib: code length exceeds 15 bits")
	// ErrChecksumMismatch is returned when the inflated payload's Adler-32
	// does not match the trailer.
	ErrChecksumMismatch = errors.New("zlib: checksum mismatch")

	// errCompressInternal signals an invariant violation in the encoder's
	// own bookkeeping (e.g. a token whose length/distance falls outside the
	// ranges the match finder is supposed to guarantee). It is never caused
	// by caller input and should never surface in practice.
	errCompressInternal = errors.New("zlib: internal compressor error")
)
