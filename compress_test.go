package zlib

import (
	"bytes"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, zlib test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 65536)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "window-exact", data: bytes.Repeat([]byte{0x5A}, windowSize)},
		{name: "window-plus-one", data: bytes.Repeat([]byte{0x5A}, windowSize+1)},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if len(cmp) < 6 {
				t.Fatalf("compressed stream too short: %d", len(cmp))
			}

			out, err := Decompress(cmp)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			}
		})
	}
}

func TestCompress_SingleByteAllValues(t *testing.T) {
	for b := 0; b < 256; b++ {
		data := []byte{byte(b)}
		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("Compress(%d) failed: %v", b, err)
		}
		out, err := Decompress(cmp)
		if err != nil {
			t.Fatalf("Decompress(%d) failed: %v", b, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch for byte %d", b)
		}
	}
}

func TestCompress_EmptyInput(t *testing.T) {
	cmp, err := Compress(nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	out, err := Decompress(cmp)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(out))
	}
	if adler32(nil, 1) != 1 {
		t.Fatal("adler32 of empty input must be 1")
	}
}

func TestCompress_RunCompressesFarBelowInputSize(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 65536)
	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(cmp) >= len(data)/10 {
		t.Fatalf("expected compressed size far below input: got %d for input %d", len(cmp), len(data))
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<18 {
			data = data[:1<<18]
		}

		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}

func ExampleCompress() {
	cmp, err := Compress([]byte("Hello World"))
	if err != nil {
		panic(err)
	}
	out, err := Decompress(cmp)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output: Hello World
}
