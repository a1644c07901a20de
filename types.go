package utg962

import (
	"errors"
	"fmt"
)

// ─── Protokol Sabitleri ─────────────────────────────────────────────────────────

const (
	// ChannelCount, cihazın çıkış kanal sayısıdır. Kanallar arayüzde
	// 1 tabanlı numaralandırılır (1 ve 2).
	ChannelCount = 2

	// SlotCount, cihazın ARB bellek yuvası sayısıdır. Yuvalar 0 tabanlı
	// numaralandırılır (0 ve 1).
	SlotCount = 2

	// MaxSamples, tek bir ARB yüklemesinde desteklenen en fazla örnek sayısıdır.
	MaxSamples = 4000

	// sampleScale, [-1.0, +1.0] aralığındaki bir örneğin işaretli 16 bit
	// tamsayıya ölçeklenmesinde kullanılan çarpandır. Cihazın ARB başlığındaki
	// MAX/MIN değerleriyle aynıdır.
	sampleScale = 32767
)

// DefaultResourcePatterns, cihaz keşfinde sırayla denenen VISA kaynak
// adresleridir. Aynı vendor/product kimliğinin hex ve ondalık yazımları;
// ilk açılabilen kaynak kullanılır.
var DefaultResourcePatterns = []string{
	"USB0::0x6656::0x0834::INSTR",
	"USB0::26198::2100::INSTR",
}

// ─── Dalga Tipleri ──────────────────────────────────────────────────────────────

// WaveformType, cihazın :CHANn:BASE:WAV komutunda kullandığı dalga biçimi
// adlarını temsil eder. Değerler doğrudan SCPI alanına yazılır.
type WaveformType string

const (
	// WaveSine, sinüs dalga biçimidir.
	WaveSine WaveformType = "SIN"

	// WaveSquare, kare dalga biçimidir. Duty cycle parametresi alır.
	WaveSquare WaveformType = "SQU"

	// WaveRamp, testere dişi (rampa) dalga biçimidir. Simetri parametresi alır.
	WaveRamp WaveformType = "RAMP"

	// WaveArb, bellek yuvasından oynatılan keyfi dalga biçimidir.
	WaveArb WaveformType = "ARB"
)

// MaxFrequency, dalga biçimine özgü frekans üst sınırını (Hz) döner.
// Cihaz her dalga tipi için farklı bir tavan uygular.
func (w WaveformType) MaxFrequency() float64 {
	switch w {
	case WaveSine:
		return 60e6
	case WaveSquare:
		return 20e6
	case WaveRamp:
		return 400e3
	case WaveArb:
		return 10e6
	default:
		return 0
	}
}

// String, WaveformType'ın okunabilir adını döner.
func (w WaveformType) String() string {
	switch w {
	case WaveSine:
		return "sinüs"
	case WaveSquare:
		return "kare"
	case WaveRamp:
		return "rampa"
	case WaveArb:
		return "keyfi (ARB)"
	default:
		return fmt.Sprintf("bilinmeyen (%s)", string(w))
	}
}

// ─── Hatalar ────────────────────────────────────────────────────────────────────

// Tüm doğrulama ve protokol hataları bu sentinel değerlerden türetilir.
// Çağıran taraf errors.Is ile ayırt edebilir; hiçbir hata bu katmanda
// yeniden denenmez.
var (
	// ErrDeviceNotFound, keşif kalıplarının hiçbirinde cihaz bulunamadığında döner.
	ErrDeviceNotFound = errors.New("UTG962 cihazı bulunamadı")

	// ErrInvalidChannel, kanal numarası 1 veya 2 değilse döner.
	ErrInvalidChannel = errors.New("geçersiz kanal numarası")

	// ErrInvalidSlot, ARB bellek yuvası 0 veya 1 değilse döner.
	ErrInvalidSlot = errors.New("geçersiz ARB yuva numarası")

	// ErrFrequencyOutOfRange, frekans dalga tipinin tavanını aşarsa veya
	// negatifse döner.
	ErrFrequencyOutOfRange = errors.New("frekans aralık dışında")

	// ErrPercentOutOfRange, duty/simetri değeri 0-100 aralığı dışındaysa döner.
	ErrPercentOutOfRange = errors.New("yüzde değeri aralık dışında")

	// ErrEmptySequence, örnek dizisi boşsa döner.
	ErrEmptySequence = errors.New("en az bir örnek gerekli")

	// ErrTooManySamples, örnek sayısı MaxSamples'ı aşarsa döner.
	ErrTooManySamples = errors.New("çok fazla örnek")

	// ErrSampleOutOfRange, herhangi bir örnek [-1.0, +1.0] dışındaysa döner.
	ErrSampleOutOfRange = errors.New("örnek değeri aralık dışında")

	// ErrArbNotReady, ARB modu seçildikten sonra kaynak okuması EXT'i
	// doğrulamazsa döner. Cihaza daha önce hiç dalga yüklenmediğini gösterir;
	// geçici bir arıza değil, ön koşul eksikliğidir.
	ErrArbNotReady = errors.New("ARB modu etkinleştirilemedi, önce bir dalga yüklenmeli")
)

// ─── Seçenek Yapıları ───────────────────────────────────────────────────────────

// DeviceOption, Device yapılandırma seçeneklerini tanımlar.
// Functional Options pattern kullanılır.
type DeviceOption func(*deviceOptions)

type deviceOptions struct {
	patterns  []string
	transport Transport
	logger    Logger
}

func defaultDeviceOptions() deviceOptions {
	return deviceOptions{
		patterns:  DefaultResourcePatterns,
		transport: nil,
		logger:    nil,
	}
}

// WithResourcePatterns, cihaz keşfinde denenecek VISA kaynak adreslerini
// değiştirir. Adresler verilen sırayla denenir.
//
//	dev, err := utg962.Open(
//	    utg962.WithResourcePatterns("USB0::26198::2100::INSTR"),
//	)
func WithResourcePatterns(patterns ...string) DeviceOption {
	return func(o *deviceOptions) {
		o.patterns = patterns
	}
}

// WithTransport, keşif yerine hazır bir Transport oturumu kullanır.
// Testlerde sahte aktarım enjekte etmek veya farklı bir veri yolu
// (ör. TCP tabanlı bir VISA köprüsü) bağlamak için kullanılır.
func WithTransport(t Transport) DeviceOption {
	return func(o *deviceOptions) {
		o.transport = t
	}
}

// WithLogger, özel bir loglama arayüzü ayarlar.
// Varsayılan olarak loglama devre dışıdır.
func WithLogger(l Logger) DeviceOption {
	return func(o *deviceOptions) {
		o.logger = l
	}
}

// ─── Logger Arayüzü ─────────────────────────────────────────────────────────────

// Logger, kütüphanenin loglama arayüzüdür.
// stdlib log paketi veya zerolog/zap gibi kütüphanelerle uyumludur.
type Logger interface {
	// Printf, formatlanmış bir log mesajı yazar.
	Printf(format string, v ...interface{})
}
