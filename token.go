// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

// token is a single LZ77 parse output: either a literal byte or a
// back-reference. dist is meaningless (left zero) for a literal token.
//
// length == 0 marks a literal; the match finder never emits a match shorter
// than minMatchLen, so zero is an unambiguous literal marker.
type token struct {
	lit    byte
	length int // 0 for a literal, else in [minMatchLen, maxMatchLen]
	dist   int // back-reference distance in [1, windowSize], unused for literals
}

func literalToken(b byte) token {
	return token{lit: b}
}

func matchToken(length, dist int) token {
	return token{length: length, dist: dist}
}

func (t token) isMatch() bool { return t.length > 0 }
