// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// inflateDecode runs the DEFLATE state machine of spec.md §4.8 over a
// complete payload and returns the reconstructed output. Unlike
// deflateEncode, which only ever emits one dynamic-Huffman block, this
// state machine accepts stored, fixed-Huffman, and dynamic-Huffman blocks
// and loops until BFINAL=1, since spec.md §6 requires it to decode any
// conforming encoder's output, not only this package's own.
func inflateDecode(payload []byte) ([]byte, error) {
	r := newBitReader(payload)
	var out []byte

	for {
		bfinal, err := r.readBits(1)
		if err != nil {
			return nil, err
		}
		btype, err := r.readBits(2)
		if err != nil {
			return nil, err
		}

		switch btype {
		case 0:
			out, err = inflateStoredBlock(r, out)
		case 1:
			out, err = inflateFixedHuffmanBlock(r, out)
		case 2:
			out, err = inflateDynamicHuffmanBlock(r, out)
		default:
			return nil, ErrBadBlockType
		}
		if err != nil {
			return nil, err
		}

		if bfinal == 1 {
			return out, nil
		}
	}
}

// inflateStoredBlock handles BTYPE=0 (spec.md §4.8): byte-align, read
// LEN/NLEN, verify they're complements, and copy LEN raw bytes through.
func inflateStoredBlock(r *bitReader, out []byte) ([]byte, error) {
	r.align()

	header, err := r.readRawBytes(4)
	if err != nil {
		return nil, err
	}
	length := uint16(header[0]) | uint16(header[1])<<8
	nlength := uint16(header[2]) | uint16(header[3])<<8
	if length^0xFFFF != nlength {
		return nil, ErrBadStoredBlock
	}

	data, err := r.readRawBytes(int(length))
	if err != nil {
		return nil, err
	}
	return append(out, data...), nil
}

// inflateFixedHuffmanBlock handles BTYPE=1 using the fixed code lengths
// RFC 1951 §3.2.6 defines.
func inflateFixedHuffmanBlock(r *bitReader, out []byte) ([]byte, error) {
	litDec, err := newHuffmanDecoder(fixedLitLenLens[:])
	if err != nil {
		return nil, err
	}
	distDec, err := newHuffmanDecoder(fixedDistLens[:])
	if err != nil {
		return nil, err
	}
	return inflateBlockBody(r, out, litDec, distDec)
}

// inflateDynamicHuffmanBlock handles BTYPE=2: it first reads the dynamic
// header (spec.md §4.7.1, in reverse) to recover the literal/length and
// distance trees, then runs the shared block body.
func inflateDynamicHuffmanBlock(r *bitReader, out []byte) ([]byte, error) {
	litDec, distDec, err := readDynamicHeader(r)
	if err != nil {
		return nil, err
	}
	return inflateBlockBody(r, out, litDec, distDec)
}

// readDynamicHeader reads HLIT, HDIST, HCLEN, the code-length-alphabet
// lengths, and the run-length-encoded literal/length and distance code
// lengths, building both decoders (spec.md §4.8 BTYPE=2).
func readDynamicHeader(r *bitReader) (lit, dist *huffmanDecoder, err error) {
	hlitField, err := r.readBits(5)
	if err != nil {
		return nil, nil, err
	}
	hdistField, err := r.readBits(5)
	if err != nil {
		return nil, nil, err
	}
	hclenField, err := r.readBits(4)
	if err != nil {
		return nil, nil, err
	}

	hlit := int(hlitField) + 257
	hdist := int(hdistField) + 1
	hclen := int(hclenField) + 4

	var clLens [numCLenSyms]uint8
	for j := 0; j < hclen; j++ {
		v, err := r.readBits(3)
		if err != nil {
			return nil, nil, err
		}
		clLens[codeLengthOrder[j]] = uint8(v)
	}

	clDec, err := newHuffmanDecoder(clLens[:])
	if err != nil {
		return nil, nil, err
	}

	total := hlit + hdist
	lens := make([]uint8, total)
	var prevLen uint8
	i := 0
	for i < total {
		sym, err := clDec.decode(r)
		if err != nil {
			return nil, nil, err
		}

		switch {
		case sym <= 15:
			lens[i] = uint8(sym)
			prevLen = uint8(sym)
			i++

		case sym == 16:
			if i == 0 {
				return nil, nil, ErrBadHuffmanCode
			}
			extra, err := r.readBits(2)
			if err != nil {
				return nil, nil, err
			}
			i, err = fillRepeat(lens, i, total, prevLen, 3+int(extra))
			if err != nil {
				return nil, nil, err
			}

		case sym == 17:
			extra, err := r.readBits(3)
			if err != nil {
				return nil, nil, err
			}
			i, err = fillRepeat(lens, i, total, 0, 3+int(extra))
			if err != nil {
				return nil, nil, err
			}
			prevLen = 0

		case sym == 18:
			extra, err := r.readBits(7)
			if err != nil {
				return nil, nil, err
			}
			i, err = fillRepeat(lens, i, total, 0, 11+int(extra))
			if err != nil {
				return nil, nil, err
			}
			prevLen = 0

		default:
			return nil, nil, ErrBadHuffmanCode
		}
	}

	lit, err = newHuffmanDecoder(lens[:hlit])
	if err != nil {
		return nil, nil, err
	}
	dist, err = newHuffmanDecoder(lens[hlit:])
	if err != nil {
		return nil, nil, err
	}
	return lit, dist, nil
}

// fillRepeat writes count copies of value into lens starting at i, failing
// if the repeat would run past total.
func fillRepeat(lens []uint8, i, total int, value uint8, count int) (int, error) {
	if i+count > total {
		return 0, ErrBadHuffmanCode
	}
	for k := 0; k < count; k++ {
		lens[i] = value
		i++
	}
	return i, nil
}

// inflateBlockBody is the shared decode loop of spec.md §4.8.1, used by both
// Huffman-coded block types (fixed and dynamic).
func inflateBlockBody(r *bitReader, out []byte, litDec, distDec *huffmanDecoder) ([]byte, error) {
	for {
		sym, err := litDec.decode(r)
		if err != nil {
			return nil, err
		}

		switch {
		case sym < endOfBlockSym:
			out = append(out, byte(sym))

		case sym == endOfBlockSym:
			return out, nil

		case int(sym) <= endOfBlockSym+len(lengthBase):
			i := int(sym) - 257
			extra, err := r.readBits(lengthExtraBits[i])
			if err != nil {
				return nil, err
			}
			length := lengthBase[i] + int(extra)

			distSym, err := distDec.decode(r)
			if err != nil {
				return nil, err
			}
			if int(distSym) >= numDistSyms {
				return nil, ErrBadDistance
			}
			dextra, err := r.readBits(distExtraBits[distSym])
			if err != nil {
				return nil, err
			}
			dist := distBase[distSym] + int(dextra)
			if dist < 1 || dist > len(out) {
				return nil, ErrBadDistance
			}

			out, err = appendBackRef(out, dist, length)
			if err != nil {
				return nil, err
			}

		default:
			return nil, ErrBadLengthSymbol
		}
	}
}
