// file: internals/helpers/storage/storage.go
package storage

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"sekolahku_backend/internals/configs"
)

// Bucket tunggal untuk semua aset situs, satu folder per jenis entitas.
const DefaultBucket = "uploads"

type UploadResult struct {
	Path      string `json:"path"`       // object key di dalam bucket
	PublicURL string `json:"public_url"` // URL publik yang disimpan di DB
}

// Service adalah klien Supabase Storage (REST) untuk upload & hapus aset.
type Service struct {
	BaseURL     string
	APIKey      string
	Bucket      string
	Client      *http.Client
	WebPEnabled bool
}

func NewServiceFromEnv() *Service {
	return &Service{
		BaseURL:     strings.TrimRight(configs.SupabaseProjectURL, "/"),
		APIKey:      configs.SupabaseServiceRoleKey,
		Bucket:      DefaultBucket,
		Client:      &http.Client{Timeout: 30 * time.Second},
		WebPEnabled: strings.EqualFold(configs.GetEnv("IMAGE_WEBP_ENABLE", "false"), "true"),
	}
}

// UploadFile menyimpan file multipart ke bucket dan mengembalikan path + URL publik.
// Gambar dire-encode ke WebP hanya jika IMAGE_WEBP_ENABLE=true; default simpan apa adanya.
func (s *Service) UploadFile(ctx context.Context, folder string, fh *multipart.FileHeader) (*UploadResult, error) {
	if fh == nil {
		return nil, fmt.Errorf("file tidak ditemukan")
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, fmt.Errorf("gagal membaca isi file: %w", err)
	}

	data := buf.Bytes()
	filename := fh.Filename
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = sniffContentType(data)
	}

	if s.WebPEnabled && isImageContentType(contentType) {
		if converted, err := ConvertToWebP(data); err == nil {
			data = converted
			contentType = "image/webp"
			filename = replaceExt(filename, ".webp")
		}
		// gagal konversi → simpan original, bukan gagal upload
	}

	key := BuildObjectKey(folder, filename)
	if err := s.uploadBytes(ctx, key, contentType, data); err != nil {
		return nil, err
	}

	return &UploadResult{Path: key, PublicURL: s.PublicURL(key)}, nil
}

func (s *Service) uploadBytes(ctx context.Context, key, contentType string, data []byte) error {
	if s.BaseURL == "" || s.APIKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL atau SUPABASE_SERVICE_ROLE_KEY belum diset")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.BaseURL, s.Bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Delete menghapus object berdasarkan path. Object yang sudah tidak ada
// dihitung sukses (idempotent); error storage lain tetap diteruskan.
func (s *Service) Delete(ctx context.Context, objectPath string) error {
	objectPath = strings.TrimSpace(objectPath)
	if objectPath == "" {
		return fmt.Errorf("path kosong")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.BaseURL, s.Bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		if strings.Contains(strings.ToLower(string(body)), "not_found") {
			return nil
		}
		return fmt.Errorf("delete gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteByPublicURL menghapus object berdasarkan URL publik yang tersimpan di DB.
func (s *Service) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	objectPath, err := ExtractStoragePath(publicURL, s.Bucket)
	if err != nil {
		return err
	}
	return s.Delete(ctx, objectPath)
}

func (s *Service) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.BaseURL, s.Bucket, escapeKey(key))
}

func (s *Service) httpClient() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

// ExtractStoragePath mengambil object key dari URL publik Supabase.
func ExtractStoragePath(publicURL, bucket string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	marker := "/storage/v1/object/public/" + bucket + "/"
	idx := strings.Index(u.Path, marker)
	if idx < 0 {
		return "", fmt.Errorf("url bukan object publik bucket %q", bucket)
	}
	objectPath, err := url.PathUnescape(u.Path[idx+len(marker):])
	if err != nil {
		return "", err
	}
	if objectPath == "" {
		return "", fmt.Errorf("gagal ekstrak path dari url")
	}
	return objectPath, nil
}

// BuildObjectKey membuat nama object anti-tabrakan:
// <folder>/<unix-ms>-<random><ext asli>
func BuildObjectKey(folder, originalFilename string) string {
	ext := strings.ToLower(path.Ext(originalFilename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randHex(6), ext)
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

func randHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func replaceExt(filename, newExt string) string {
	return strings.TrimSuffix(filename, path.Ext(filename)) + newExt
}

func sniffContentType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}

func isImageContentType(ct string) bool {
	return strings.HasPrefix(strings.ToLower(ct), "image/")
}
