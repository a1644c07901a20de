package utg962

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gotmc/usbtmc"
)

// ─── Aktarım Katmanı ────────────────────────────────────────────────────────────
//
// Bu dosya, cihazla byte düzeyinde konuşan aktarım sözleşmesini ve USBTMC
// tabanlı varsayılan gerçeklemesini içerir. Oturum tek kullanıcıya özeldir;
// zaman aşımı ve iptal bu katmanın altında, veri yolu sürücüsünde ele alınır.

// Transport, komut/yanıt cihaz veri yolu oturumunu soyutlar.
type Transport interface {
	// Write, sonlandırılmış bir ASCII komut dizgisi gönderir.
	Write(cmd string) error

	// WriteRaw, ham bir byte bloğunu tek aktarımda gönderir.
	WriteRaw(data []byte) error

	// Query, bir sorgu komutu gönderir ve ASCII yanıtını döner.
	Query(cmd string) (string, error)

	// ReadBinaryBlock, cihazın uzunluk önekli (IEEE 488.2 #N) ikili yanıtını
	// okur ve çerçevesi soyulmuş ham veriyi döner.
	ReadBinaryBlock() ([]byte, error)

	// Close, oturumu kapatır.
	Close() error
}

// ─── USBTMC Gerçeklemesi ────────────────────────────────────────────────────────

// usbtmcTransport, USB Test & Measurement Class üzerinden bir oturumdur.
type usbtmcTransport struct {
	ctx *usbtmc.Context
	dev *usbtmc.Device
}

// Discover, verilen VISA kaynak adreslerini sırayla dener ve ilk açılabilen
// cihaz için bir Transport döner. Adres verilmezse DefaultResourcePatterns
// kullanılır. Hiçbir adres cihaz vermezse ErrDeviceNotFound döner.
func Discover(patterns ...string) (Transport, error) {
	if len(patterns) == 0 {
		patterns = DefaultResourcePatterns
	}

	ctx, err := usbtmc.NewContext()
	if err != nil {
		return nil, fmt.Errorf("USBTMC bağlamı oluşturulamadı: %w", err)
	}

	for _, pattern := range patterns {
		dev, err := ctx.NewDevice(pattern)
		if err == nil {
			return &usbtmcTransport{ctx: ctx, dev: dev}, nil
		}
	}

	ctx.Close()
	return nil, fmt.Errorf("%w (denenen adresler: %s)", ErrDeviceNotFound, strings.Join(patterns, ", "))
}

func (t *usbtmcTransport) Write(cmd string) error {
	if _, err := t.dev.WriteString(cmd); err != nil {
		return fmt.Errorf("komut gönderilemedi: %w", err)
	}
	return nil
}

func (t *usbtmcTransport) WriteRaw(data []byte) error {
	if _, err := t.dev.Write(data); err != nil {
		return fmt.Errorf("ham veri gönderilemedi: %w", err)
	}
	return nil
}

func (t *usbtmcTransport) Query(cmd string) (string, error) {
	resp, err := t.dev.Query(cmd)
	if err != nil {
		return "", fmt.Errorf("sorgu başarısız: %w", err)
	}
	return strings.TrimRight(resp, "\r\n"), nil
}

func (t *usbtmcTransport) ReadBinaryBlock() ([]byte, error) {
	return readDefiniteBlock(t.dev)
}

func (t *usbtmcTransport) Close() error {
	if err := t.dev.Close(); err != nil {
		t.ctx.Close()
		return err
	}
	return t.ctx.Close()
}

// ─── IEEE 488.2 Blok Okuma ──────────────────────────────────────────────────────

// readDefiniteBlock, IEEE 488.2 kesin uzunluklu blok çerçevesini okur:
//
//	'#' <uzunluk-basamak-sayısı> <uzunluk> <veri>
//
// Örnek: "#6043254" + 43254 byte veri. Çerçeve soyulmuş ham veri döner.
func readDefiniteBlock(r io.Reader) ([]byte, error) {
	one := make([]byte, 1)

	if _, err := io.ReadFull(r, one); err != nil {
		return nil, fmt.Errorf("blok başlangıcı okunamadı: %w", err)
	}
	if one[0] != '#' {
		return nil, fmt.Errorf("geçersiz blok başlangıcı: 0x%02x ('#' bekleniyordu)", one[0])
	}

	if _, err := io.ReadFull(r, one); err != nil {
		return nil, fmt.Errorf("blok uzunluk basamağı okunamadı: %w", err)
	}
	digits := int(one[0] - '0')
	if digits < 1 || digits > 9 {
		return nil, fmt.Errorf("geçersiz uzunluk basamak sayısı: %c", one[0])
	}

	lenBuf := make([]byte, digits)
	if _, err := io.ReadFull(r, lenBuf); err != nil {
		return nil, fmt.Errorf("blok uzunluğu okunamadı: %w", err)
	}
	size, err := strconv.Atoi(string(lenBuf))
	if err != nil {
		return nil, fmt.Errorf("blok uzunluğu çözümlenemedi: %w", err)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("blok verisi okunamadı: %w", err)
	}
	return data, nil
}
