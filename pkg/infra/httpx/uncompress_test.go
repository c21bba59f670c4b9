package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, newWriter func(io.Writer) io.WriteCloser, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := newWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func gzipWriter(w io.Writer) io.WriteCloser   { return gzip.NewWriter(w) }
func brotliWriter(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) }
func zlibWriter(w io.Writer) io.WriteCloser   { return zlib.NewWriter(w) }
func zstdWriter(w io.Writer) io.WriteCloser {
	zw, _ := zstd.NewWriter(w)
	return zw
}
func flateWriter(w io.Writer) io.WriteCloser {
	fw, _ := flate.NewWriter(w, flate.DefaultCompression)
	return fw
}

func TestDecodeBody(t *testing.T) {
	plain := []byte("\x89PNG fake image bytes")

	tests := []struct {
		name     string
		encoding string
		body     []byte
		changed  bool
	}{
		{name: "no encoding", encoding: "", body: plain},
		{name: "identity", encoding: "identity, compress", body: plain},
		{name: "gzip", encoding: "gzip", body: compress(t, gzipWriter, plain), changed: true},
		{name: "brotli", encoding: "br", body: compress(t, brotliWriter, plain), changed: true},
		{name: "zstd", encoding: "zstd", body: compress(t, zstdWriter, plain), changed: true},
		{name: "deflate zlib", encoding: "deflate", body: compress(t, zlibWriter, plain), changed: true},
		{name: "deflate raw", encoding: "deflate", body: compress(t, flateWriter, plain), changed: true},
		{name: "case and spaces", encoding: "  GZip ", body: compress(t, gzipWriter, plain), changed: true},
		{
			name:     "chained gzip then br",
			encoding: "gzip, br",
			body:     compress(t, brotliWriter, compress(t, gzipWriter, plain)),
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, changed, err := DecodeBody(tt.encoding, tt.body, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, plain, decoded)
		})
	}
}

func TestDecodeBody_UnknownEncoding(t *testing.T) {
	_, _, err := DecodeBody("foo", []byte("abc"), 0)
	assert.ErrorContains(t, err, "unsupported content-encoding")
}

func TestDecodeBody_Limit(t *testing.T) {
	big := bytes.Repeat([]byte("a"), 4096)
	body := compress(t, gzipWriter, big)

	_, _, err := DecodeBody("gzip", body, 1024)
	assert.ErrorIs(t, err, ErrBodyTooLarge)

	decoded, _, err := DecodeBody("gzip", body, 4096)
	require.NoError(t, err)
	assert.Len(t, decoded, 4096)
}
