package utg962

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ─── Cihaz Oturumu ──────────────────────────────────────────────────────────────

// Device, bir UTG962 dalga üreteciyle tek kullanıcıya özel, eşzamanlı olmayan
// bir oturumu yönetir. Cihaz örtük durum taşır (kanal başına dalga modu, kilit
// durumu); aynı oturuma birden fazla goroutine'in erişmesi desteklenmez.
// Eşzamanlı erişim gerekiyorsa çağıranlar tek bir sahip üzerinden
// sıralanmalıdır.
//
// Kullanım:
//
//	dev, err := utg962.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	err = dev.SetSine(1, 1000, -1, 1)
type Device struct {
	// transport, cihazla konuşan veri yolu oturumudur.
	transport Transport

	// session, log satırlarını etiketleyen kısa oturum kimliğidir.
	// Aynı anda birden fazla üreteçle çalışırken logları ayırt etmeye yarar.
	session string

	// opts, cihaz yapılandırma seçenekleridir.
	opts deviceOptions
}

// Open, UTG962 cihazını keşfeder ve bir oturum açar. Keşif, varsayılan olarak
// DefaultResourcePatterns içindeki adresleri sırayla dener; bulunan ilk cihaz
// kullanılır. Hiçbir cihaz bulunamazsa ErrDeviceNotFound döner.
//
//	// Basit kullanım
//	dev, err := utg962.Open()
//
//	// Seçeneklerle
//	dev, err := utg962.Open(
//	    utg962.WithLogger(log.Default()),
//	)
func Open(options ...DeviceOption) (*Device, error) {
	opts := defaultDeviceOptions()
	for _, opt := range options {
		opt(&opts)
	}

	t := opts.transport
	if t == nil {
		var err error
		t, err = Discover(opts.patterns...)
		if err != nil {
			return nil, err
		}
	}

	d := &Device{
		transport: t,
		session:   uuid.New().String()[:8],
		opts:      opts,
	}
	d.logf("oturum açıldı")
	return d, nil
}

// NewDevice, hazır bir Transport üzerinde oturum oluşturur; keşif yapılmaz.
func NewDevice(t Transport, options ...DeviceOption) *Device {
	opts := defaultDeviceOptions()
	for _, opt := range options {
		opt(&opts)
	}

	return &Device{
		transport: t,
		session:   uuid.New().String()[:8],
		opts:      opts,
	}
}

// Close, cihaz oturumunu kapatır.
func (d *Device) Close() error {
	if d.transport == nil {
		return nil
	}
	d.logf("oturum kapatılıyor")
	err := d.transport.Close()
	d.transport = nil
	return err
}

// ─── Veri Gönderme/Alma ─────────────────────────────────────────────────────────

// write, tek bir ASCII komut yazımı gönderir.
func (d *Device) write(cmd string) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	d.logf("yazılıyor: %s", cmd)
	return d.transport.Write(cmd)
}

// writeRaw, ham bir byte bloğunu tek aktarımda gönderir.
func (d *Device) writeRaw(data []byte) error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	d.logf("ham blok gönderiliyor (%d byte)", len(data))
	return d.transport.WriteRaw(data)
}

// query, bir sorgu gönderir ve boşlukları kırpılmış yanıtı döner.
func (d *Device) query(cmd string) (string, error) {
	if err := d.ensureOpen(); err != nil {
		return "", err
	}
	resp, err := d.transport.Query(cmd)
	if err != nil {
		return "", err
	}
	resp = strings.TrimSpace(resp)
	d.logf("sorgu: %s → %s", cmd, resp)
	return resp, nil
}

// ─── Dahili Yardımcılar ─────────────────────────────────────────────────────────

// logf, yapılandırılmış logger varsa mesaj yazar.
func (d *Device) logf(format string, v ...interface{}) {
	if d.opts.logger != nil {
		d.opts.logger.Printf("[utg962 "+d.session+"] "+format, v...)
	}
}

// ensureOpen, oturumun açık olduğunu kontrol eder.
func (d *Device) ensureOpen() error {
	if d.transport == nil {
		return fmt.Errorf("oturum kapalı, önce Open() çağırın")
	}
	return nil
}
