package zlib

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuffmanBuilder_SatisfiesKraftInequality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(numLitLenSyms)
		freq := make([]uint32, n)
		for i := range freq {
			if rng.Intn(4) == 0 {
				continue // leave some symbols unused
			}
			freq[i] = uint32(1 + rng.Intn(1<<20))
		}

		lens := huffmanCodeLengths(freq)

		var kraft uint64
		for _, l := range lens {
			if l == 0 {
				continue
			}
			require.LessOrEqual(t, int(l), maxCodeBits, "trial %d: code length exceeds cap", trial)
			kraft += uint64(1) << (maxCodeBits - l)
		}
		assert.LessOrEqual(t, kraft, uint64(1)<<maxCodeBits, "trial %d: Kraft's inequality violated", trial)
	}
}

func TestHuffmanBuilder_SkewedFrequenciesStillRespectDepthCap(t *testing.T) {
	// A Fibonacci-like frequency distribution is the classic way to force
	// the unconstrained "combine two lightest" construction past 15 bits.
	freq := make([]uint32, 40)
	a, b := uint32(1), uint32(1)
	for i := range freq {
		freq[i] = a
		a, b = b, a+b
	}

	lens := huffmanCodeLengths(freq)
	for i, l := range lens {
		require.LessOrEqual(t, int(l), maxCodeBits, "symbol %d exceeds cap", i)
	}
}

func TestHuffmanDecoder_RoundTripsEveryCode(t *testing.T) {
	freq := make([]uint32, numLitLenSyms)
	rng := rand.New(rand.NewSource(2))
	for i := range freq {
		freq[i] = uint32(1 + rng.Intn(5000))
	}

	codes := buildHuffmanCodes(freq)
	lens := make([]uint8, len(codes))
	for i, c := range codes {
		lens[i] = c.length
	}

	dec, err := newHuffmanDecoder(lens)
	require.NoError(t, err)

	for sym, c := range codes {
		if c.length == 0 {
			continue
		}
		w := &bitWriter{}
		w.writeHuffmanCode(uint32(reverseBits(c.code, c.length)), uint(c.length))
		w.writeBits(0x5, 3) // trailing bits the decoder must not consume

		r := newBitReader(w.finish())
		got, err := dec.decode(r)
		require.NoError(t, err)
		require.Equal(t, uint16(sym), got)

		trailer, err := r.readBits(3)
		require.NoError(t, err)
		require.Equal(t, uint32(0x5), trailer)
	}
}

func TestHuffmanDecoder_RejectsUnreachableCode(t *testing.T) {
	lens := []uint8{1, 1} // two symbols, one bit each: 0 and 1
	dec, err := newHuffmanDecoder(lens)
	require.NoError(t, err)

	r := newBitReader([]byte{0x00})
	_, err = dec.decode(r)
	require.NoError(t, err)

	incomplete, err := newHuffmanDecoder([]uint8{1, 0}) // one code "0"; prefix "1" is unreachable
	require.NoError(t, err)
	_, err = incomplete.decode(newBitReader([]byte{0x01}))
	require.ErrorIs(t, err, ErrBadHuffmanCode)

	lensTooDeep := make([]uint8, numLitLenSyms)
	for i := range lensTooDeep {
		lensTooDeep[i] = 16 // impossible for a canonical code at this alphabet size, forced past the cap
	}
	_, err = newHuffmanDecoder(lensTooDeep)
	require.ErrorIs(t, err, ErrTooManyBits)
}

func TestHuffmanBuilder_DegenerateCases(t *testing.T) {
	t.Run("no symbols used", func(t *testing.T) {
		lens := huffmanCodeLengths(make([]uint32, 10))
		for _, l := range lens {
			assert.Equal(t, uint8(0), l)
		}
	})

	t.Run("single symbol used", func(t *testing.T) {
		freq := make([]uint32, 10)
		freq[4] = 7
		lens := huffmanCodeLengths(freq)
		assert.Equal(t, uint8(1), lens[4])
		for i, l := range lens {
			if i != 4 {
				assert.Equal(t, uint8(0), l)
			}
		}
	})
}
