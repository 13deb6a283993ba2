package blob

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves path-style GetObject and PutObject from memory.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := strings.TrimPrefix(req.URL.Path, "/")
	switch req.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		if dec, ok := decodeChunked(body); ok {
			body = dec
		}
		f.objects[key] = body
		return response(http.StatusOK, nil), nil
	case http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			return response(http.StatusNotFound, nil), nil
		}
		return response(http.StatusOK, body), nil
	}
	return response(http.StatusNotImplemented, nil), nil
}

func response(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Length": {strconv.Itoa(len(body))}},
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

// decodeChunked unwraps a single-chunk aws-chunked payload.
func decodeChunked(b []byte) ([]byte, bool) {
	parts := strings.Split(string(b), "\r\n")
	if len(parts) < 3 || parts[2] != "0" {
		return nil, false
	}
	size, err := strconv.ParseInt(strings.SplitN(parts[0], ";", 2)[0], 16, 64)
	if err != nil || int64(len(parts[1])) != size {
		return nil, false
	}
	return []byte(parts[1]), true
}

func newFakeOpener(t *testing.T) (*Opener, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string][]byte{}}
	o := NewOpener(S3Config{
		Region:          "eu-west-1",
		Endpoint:        "https://s3.test.local",
		PathStyle:       true,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
	}, WithHTTPClient(&http.Client{Transport: fake}))
	return o, fake
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		in      string
		want    Location
		wantErr bool
	}{
		{"data/nubtab03.asc", Location{Key: "data/nubtab03.asc"}, false},
		{"s3://tables/nubase/2003.asc", Location{Bucket: "tables", Key: "nubase/2003.asc"}, false},
		{"s3://tables", Location{}, true},
		{"s3:///key", Location{}, true},
		{"", Location{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocation(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}

	loc, _ := ParseLocation("s3://tables/nubase/2003.asc")
	assert.True(t, loc.IsS3())
	assert.Equal(t, "2003.asc", loc.Name())
}

func TestOpener_Local(t *testing.T) {
	ctx := context.Background()
	o := NewOpener(S3Config{})
	loc := Location{Key: filepath.Join(t.TempDir(), "out", "table.xml")}

	require.NoError(t, o.Write(ctx, loc, []byte("<nuclear_data_table/>")))

	rc, err := o.Open(ctx, loc)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<nuclear_data_table/>", string(data))

	_, err = o.Open(ctx, Location{Key: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpener_S3(t *testing.T) {
	ctx := context.Background()
	o, fake := newFakeOpener(t)
	loc := Location{Bucket: "tables", Key: "nubase/sample.asc"}

	require.NoError(t, o.Write(ctx, loc, []byte("hello")))
	assert.Equal(t, []byte("hello"), fake.objects["tables/nubase/sample.asc"])

	rc, err := o.Open(ctx, loc)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = o.Open(ctx, Location{Bucket: "tables", Key: "missing.asc"})
	assert.ErrorIs(t, err, ErrNotFound)
}
