// SPDX-License-Identifier: MIT
// Copyright (c) 2026 flatepack
// Source: github.com/flatepack/zlib

package zlib

import "sync"

// matchFinderPool reuses matchFinder instances across Compress calls. Each
// instance owns a 32 KiB window's worth of hash-chain index (two 32768-entry
// int32 arrays); pooling avoids repeatedly allocating and zeroing ~256 KiB
// per call. This is allocation reuse only: reset clears all hash heads for
// every call, so no dictionary state or match history ever crosses a
// Compress boundary (spec.md §9 Open Questions).
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

func acquireMatchFinder() *matchFinder {
	return matchFinderPool.Get().(*matchFinder)
}

func releaseMatchFinder(m *matchFinder) {
	if m == nil {
		return
	}
	m.data = nil
	matchFinderPool.Put(m)
}
