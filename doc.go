// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

/*
Package zlib implements a ZLIB (RFC 1950) container around a DEFLATE (RFC 1951)
payload: a sliding-window LZ77 match finder feeding a dynamic-Huffman encoder,
and the matching inflate state machine on the decode side.

Every Compress call emits exactly one final dynamic-Huffman DEFLATE block
(RFC 1951 §3.2.4) plus the two-byte ZLIB header and four-byte Adler-32
trailer (RFC 1950 §2.2). Decompress accepts any conforming ZLIB stream whose
DEFLATE payload uses stored, fixed-Huffman, or dynamic-Huffman blocks (BTYPE
0, 1, or 2) and no preset dictionary.

# Decompress

	out, err := zlib.Decompress(stream)

# Compress

	stream, err := zlib.Compress(data)

There is one fixed compression strategy: no selectable levels, no preset
dictionary, no streaming input/output. A caller that needs those reaches for
compress/flate or compress/zlib in the standard library instead.
*/
package zlib
