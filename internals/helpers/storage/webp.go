// file: internals/helpers/storage/webp.go
package storage

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"sekolahku_backend/internals/configs"
)

// ConvertToWebP men-decode gambar (jpeg/png/webp), downscale bila melebihi
// batas, lalu encode ulang ke WebP lossy.
func ConvertToWebP(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode gambar gagal: %w", err)
	}

	maxW := envInt("IMAGE_WEBP_MAX_W", 1600)
	maxH := envInt("IMAGE_WEBP_MAX_H", 1600)
	quality := envFloat("IMAGE_WEBP_QUALITY", 80)

	bounds := img.Bounds()
	if bounds.Dx() > maxW || bounds.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode webp gagal: %w", err)
	}
	return out.Bytes(), nil
}

func envInt(key string, def int) int {
	if v := configs.GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := configs.GetEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}
