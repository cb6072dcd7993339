package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(handler http.Handler) (*Service, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &Service{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Bucket:  DefaultBucket,
		Client:  srv.Client(),
	}, srv
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("gallery", "Foto Sekolah.JPG")
	assert.Regexp(t, regexp.MustCompile(`^gallery/\d+-[0-9a-f]+\.jpg$`), key)

	// tanpa folder → tanpa prefix
	key = BuildObjectKey("", "doc.pdf")
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]+\.pdf$`), key)

	// dua panggilan tidak boleh tabrakan
	assert.NotEqual(t, BuildObjectKey("news", "a.png"), BuildObjectKey("news", "a.png"))
}

func TestExtractStoragePath(t *testing.T) {
	s := &Service{BaseURL: "https://proj.supabase.co", Bucket: DefaultBucket}
	key := "programs/1700000000-abc123.webp"
	got, err := ExtractStoragePath(s.PublicURL(key), DefaultBucket)
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = ExtractStoragePath("https://example.com/foo.png", DefaultBucket)
	assert.Error(t, err)
}

func TestDeleteIdempotent(t *testing.T) {
	// object sudah tidak ada → tetap sukses
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.NoError(t, svc.Delete(context.Background(), "news/missing.webp"))
}

func TestDeletePropagatesOtherErrors(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	assert.Error(t, svc.Delete(context.Background(), "news/x.webp"))
}

func TestDeleteEmptyPath(t *testing.T) {
	svc := &Service{BaseURL: "https://proj.supabase.co", APIKey: "k"}
	assert.Error(t, svc.Delete(context.Background(), "  "))
}

func TestUploadBytesSendsAuthAndPath(t *testing.T) {
	var gotPath, gotAuth, gotCT string
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := svc.uploadBytes(context.Background(), "agenda/123-abc.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/uploads/agenda/123-abc.png", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "image/png", gotCT)
}

func TestUploadBytesFailureIsFatal(t *testing.T) {
	svc, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	assert.Error(t, svc.uploadBytes(context.Background(), "k", "text/plain", []byte("x")))
}
