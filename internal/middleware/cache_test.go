package middleware

import (
    "bytes"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestCacheableSkipsOversizedBodies(t *testing.T) {
    tests := []struct {
        name   string
        status int
        size   int64
        limit  int64
        want   bool
    }{
        {"small 200", http.StatusOK, 100, 1024, true},
        {"exactly at limit", http.StatusOK, 1024, 1024, true},
        {"over limit", http.StatusOK, 1025, 1024, false},
        {"no limit", http.StatusOK, 1 << 30, 0, true},
        {"non-200", http.StatusNotFound, 10, 1024, false},
        {"error status", http.StatusInternalServerError, 10, 1024, false},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            assert.Equal(t, tt.want, cacheable(tt.status, tt.size, tt.limit))
        })
    }
}

func TestCaptureWriterCountsFullBody(t *testing.T) {
    rec := httptest.NewRecorder()
    cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 8}

    // Three writes totalling 12 bytes against an 8 byte limit.
    for _, chunk := range []string{"aaaa", "bbbb", "cccc"} {
        _, err := cw.Write([]byte(chunk))
        require.NoError(t, err)
    }

    // The client still received everything.
    assert.Equal(t, "aaaabbbbcccc", rec.Body.String())
    // size reflects the true body length, which is what disqualifies
    // the response from being stored.
    assert.Equal(t, int64(12), cw.size)
    assert.False(t, cacheable(cw.status, cw.size, cw.limit))
}

func TestPayloadRoundTrip(t *testing.T) {
    hdr := http.Header{
        "Content-Type": {"application/json"},
        "X-Custom":     {"a", "b"},
    }
    body := []byte(`[{"id":1}]`)

    payload, err := encodePayload(http.StatusOK, hdr, body)
    require.NoError(t, err)

    status, gotHdr, gotBody, ok := decodePayload(payload)
    require.True(t, ok)
    assert.Equal(t, http.StatusOK, status)
    assert.Equal(t, hdr, gotHdr)
    assert.True(t, bytes.Equal(body, gotBody))

    // Garbage does not decode.
    _, _, _, ok = decodePayload([]byte("short"))
    assert.False(t, ok)
}
