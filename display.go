package utg962

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ─── Ekran Görüntüsü Çözümleme ──────────────────────────────────────────────────
//
// Cihazın :DISP? yanıtı geçerli bir BMP kabıdır ama iki kusur taşır:
// piksel kanalları (G,R,B) sırasıyla saklanır ve satırlar yatay aynalanmıştır.
// Bu dosya ham akışı standart RGB rasterine düzeltir; dosya G/Ç yapmaz.

// DecodeDisplay, ham ekran verisini çözer, her satırı yatayda tersine çevirir
// ve ilk iki renk düzlemini takas eder (çıkış R = giriş G, çıkış G = giriş R,
// çıkış B = giriş B). Düzeltilmiş RGB tamponu döner.
func DecodeDisplay(raw []byte) (*image.RGBA, error) {
	src, err := bmp.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("ekran verisi çözümlenemedi: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := src.At(b.Min.X+(w-1-x), b.Min.Y+y).RGBA()
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(g >> 8),
				G: uint8(r >> 8),
				B: uint8(bl >> 8),
				A: 0xff,
			})
		}
	}

	return out, nil
}

// ─── Görüntü Kodlama ────────────────────────────────────────────────────────────

// EncodeImage, görüntüyü dosya adının uzantısına göre seçilen formatta w'ye
// kodlar. Desteklenen uzantılar: .png, .bmp, .tif/.tiff, .jpg/.jpeg, .gif.
func EncodeImage(w io.Writer, img image.Image, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, nil)
	case ".gif":
		return gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("desteklenmeyen görüntü formatı: %q", ext)
	}
}
