package utg962

import (
	"fmt"
	"os"
	"strings"
)

// ─── Temel Dalga Komutları ──────────────────────────────────────────────────────

// Reset, cihazı fabrika ayarlarına döndürür ve ardından uzaktan kumanda
// kilidini bırakır.
//
//	err := dev.Reset()
func (d *Device) Reset() error {
	return d.write(newRequest().add("*RST").lockOff().String())
}

// SetSine, kanalı sinüs dalgasına ayarlar ve çıkışı açar.
// Frekans tavanı 60 MHz'dir. Tüm alanlar tek birleşik yazımda gönderilir;
// cihaz bunları birlikte uygular.
//
//	err := dev.SetSine(1, 1000, -1, 1) // 1 kHz, -1V..+1V
func (d *Device) SetSine(channel int, freq, low, high float64) error {
	if err := checkChannel(channel); err != nil {
		return err
	}
	if err := checkFrequency(freq, WaveSine.MaxFrequency()); err != nil {
		return err
	}

	return d.write(newRequest().
		wave(channel, WaveSine).
		freq(channel, freq).
		low(channel, low).
		high(channel, high).
		output(channel, true).
		lockOff().String())
}

// SetSquare, kanalı kare dalgaya ayarlar ve çıkışı açar.
// Frekans tavanı 20 MHz'dir. duty, yüzde cinsinden duty cycle değeridir.
//
//	err := dev.SetSquare(1, 1e6, 0, 3.3, 25) // %25 duty
func (d *Device) SetSquare(channel int, freq, low, high, duty float64) error {
	if err := checkChannel(channel); err != nil {
		return err
	}
	if err := checkFrequency(freq, WaveSquare.MaxFrequency()); err != nil {
		return err
	}
	if err := checkPercent(duty); err != nil {
		return err
	}

	return d.write(newRequest().
		wave(channel, WaveSquare).
		freq(channel, freq).
		low(channel, low).
		high(channel, high).
		duty(channel, duty).
		output(channel, true).
		lockOff().String())
}

// SetRamp, kanalı rampa (testere dişi) dalgasına ayarlar ve çıkışı açar.
// Frekans tavanı 400 kHz'dir. symmetry, yüzde cinsinden simetri değeridir
// (50 üçgen dalga verir).
//
//	err := dev.SetRamp(2, 1000, -2, 2, 50)
func (d *Device) SetRamp(channel int, freq, low, high, symmetry float64) error {
	if err := checkChannel(channel); err != nil {
		return err
	}
	if err := checkFrequency(freq, WaveRamp.MaxFrequency()); err != nil {
		return err
	}
	if err := checkPercent(symmetry); err != nil {
		return err
	}

	return d.write(newRequest().
		wave(channel, WaveRamp).
		freq(channel, freq).
		low(channel, low).
		high(channel, high).
		symmetry(channel, symmetry).
		output(channel, true).
		lockOff().String())
}

// SetOutput, kanal çıkışını açar veya kapatır.
//
//	err := dev.SetOutput(1, false)
func (d *Device) SetOutput(channel int, on bool) error {
	if err := checkChannel(channel); err != nil {
		return err
	}

	return d.write(newRequest().
		output(channel, on).
		lockOff().String())
}

// ─── Keyfi Dalga (ARB) Komutları ────────────────────────────────────────────────

// LoadArb, örnek dizisini cihazın belirtilen bellek yuvasına verilen adla
// yükler. Örnekler [-1.0, +1.0] aralığında olmalıdır; en fazla MaxSamples
// örnek desteklenir.
//
// Yükleme sırasında kanallar geçici olarak ARB moduna geçebilir; bu yüzden
// her iki kanalın mevcut dalga modu önce okunur ve yükleme sonrası geri
// yüklenir. Geri yükleme yapılmazsa kanalın çıkardığı dalga sessizce
// değişebilir.
//
//	err := dev.LoadArb(0, "PULSE1", samples)
func (d *Device) LoadArb(slot int, name string, samples []float64) error {
	return d.loadArb(slot, name, samples, 0)
}

// LoadArbForChannel, LoadArb ile aynı yüklemeyi yapar ama verilen kanalı
// yükleme sonrası eski moduna döndürmez: kanal, taze yüklenen yuvayı gösterir
// şekilde ARB modunda bırakılır. Yalnızca diğer kanalın modu geri yüklenir.
func (d *Device) LoadArbForChannel(channel, slot int, name string, samples []float64) error {
	if err := checkChannel(channel); err != nil {
		return err
	}
	return d.loadArb(slot, name, samples, channel)
}

// loadArb, ARB yükleme dizisinin tek ortak yoludur. boundChannel 0 ise her iki
// kanalın modu geri yüklenir; değilse o kanal atlanır.
func (d *Device) loadArb(slot int, name string, samples []float64, boundChannel int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	block, err := buildArbBlock(samples)
	if err != nil {
		return err
	}

	// :WARB yazımı her iki kanalı da geçici olarak ARB moduna düşürebilir;
	// mevcut modları yazmadan önce oku.
	modes := make([]string, ChannelCount)
	for ch := 1; ch <= ChannelCount; ch++ {
		mode, err := d.query(fmt.Sprintf(":CHAN%d:BASE:WAV?", ch))
		if err != nil {
			return fmt.Errorf("kanal %d mod sorgusu başarısız: %w", ch, err)
		}
		modes[ch-1] = mode
	}

	if err := d.write(fmt.Sprintf(":WARB%d:CARRIER %s", slot+1, name)); err != nil {
		return fmt.Errorf("yuva seçimi gönderilemedi: %w", err)
	}

	if err := d.writeRaw(block); err != nil {
		return fmt.Errorf("ARB bloğu gönderilemedi: %w", err)
	}

	// Modları geri yükle. İki kanalı tek birleşik yazımda geri yüklemek
	// cihazda güvenilir çalışmıyor; her kanal ayrı yazım olarak gönderilir.
	for ch := 1; ch <= ChannelCount; ch++ {
		if ch == boundChannel {
			continue
		}
		if err := d.write(fmt.Sprintf(":CHAN%d:BASE:WAV %s", ch, modes[ch-1])); err != nil {
			return fmt.Errorf("kanal %d modu geri yüklenemedi: %w", ch, err)
		}
	}

	return d.write(cmdLockOff)
}

// LoadArbFromFile, düz metin dosyasındaki örnek dizisini cihaza yükler.
// Dosya, satır başına bir örnek içerir; '#' ile başlayan satırlar yorumdur.
//
//	err := dev.LoadArbFromFile(0, "PULSE1", "pulse.txt")
func (d *Device) LoadArbFromFile(slot int, name, path string) error {
	samples, err := ReadSamples(path)
	if err != nil {
		return err
	}
	return d.LoadArb(slot, name, samples)
}

// SetArb, kanalı daha önce yüklenmiş bir keyfi dalgaya ayarlar ve çıkışı açar.
// low, -1.0 örneğine; high, +1.0 örneğine karşılık gelen gerilimdir.
// Frekans tavanı 10 MHz'dir.
//
// ARB modu ancak cihaza en az bir dalga yüklendiyse devreye girer; kaynak
// seçimi geri okunarak doğrulanır ve doğrulanamazsa ErrArbNotReady döner.
//
//	err := dev.SetArb(1, 0, 1000, -1, 1)
func (d *Device) SetArb(channel, slot int, freq, low, high float64) error {
	if err := checkChannel(channel); err != nil {
		return err
	}
	if err := checkSlot(slot); err != nil {
		return err
	}
	if err := checkFrequency(freq, WaveArb.MaxFrequency()); err != nil {
		return err
	}

	if err := d.write(newRequest().
		wave(channel, WaveArb).
		arbSource(channel).String()); err != nil {
		return err
	}

	// Son koşul kontrolü: kaynak EXT olarak okunamıyorsa bu kanal için hiç
	// dalga yüklenmemiş demektir. Yeniden deneme noktası değildir.
	resp, err := d.query(fmt.Sprintf(":CHAN%d:ARB:SOUR?", channel))
	if err != nil {
		return fmt.Errorf("ARB kaynak sorgusu başarısız: %w", err)
	}
	if !strings.HasPrefix(resp, "EXT") {
		return fmt.Errorf("%w (kanal %d)", ErrArbNotReady, channel)
	}

	return d.write(newRequest().
		arbIndex(channel, slot).
		freq(channel, freq).
		low(channel, low).
		high(channel, high).
		output(channel, true).
		lockOff().String())
}

// ─── Ekran Komutları ────────────────────────────────────────────────────────────

// SaveDisplay, cihaz ekranının görüntüsünü dosyaya kaydeder. Format, dosya
// uzantısından belirlenir; PNG, BMP, TIFF, JPEG ve GIF desteklenir.
//
//	err := dev.SaveDisplay("screen.png")
func (d *Device) SaveDisplay(filename string) error {
	// Kilit durum göstergesini gizle, ekran verisini iste, tekrar gizle.
	if err := d.write(":SYSTEM:LOCK OFF;:DISP?;:SYSTEM:LOCK OFF"); err != nil {
		return err
	}

	if err := d.ensureOpen(); err != nil {
		return err
	}
	raw, err := d.transport.ReadBinaryBlock()
	if err != nil {
		return fmt.Errorf("ekran verisi okunamadı: %w", err)
	}
	d.logf("ekran verisi alındı (%d byte)", len(raw))

	img, err := DecodeDisplay(raw)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	if err := EncodeImage(f, img, filename); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
