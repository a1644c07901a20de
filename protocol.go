package utg962

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// ─── ARB Blok Çerçeveleme ───────────────────────────────────────────────────────
//
// Bu dosya, keyfi dalga (ARB) verisinin cihaza gönderilen ikili blok formatını
// ve SCPI komut dizgilerini kuran düşük seviyeli fonksiyonları içerir.
//
// Blok Genel Formatı:
//
//	[HEAD]:<başlık-uzunluğu>\r\n
//	<6 satırlık sabit ASCII başlık>
//	[DATA]:<örnek-sayısı>\r\n
//	<N adet little-endian işaretli 16 bit kelime>
//
// Blok tek bir ham aktarım olarak yazılır; cihaz, bir önceki :WARB yuva seçim
// komutunun adreslediği bellek yuvasını bu blokla doldurur.

// arbHeader, ARB verisi için sabit başlıktır. MAX/MIN, cihazın veriyi ekranda
// ölçeklemesinde kullanılır. RATEPOS/RATENEG yapısal olarak zorunludur ama
// cihaz tarafından kullanılmıyor görünmektedir.
const arbHeader = "VPP:0\r\n" +
	"OFFSET:0\r\n" +
	"RATEPOS:0\r\n" +
	"RATENEG:0\r\n" +
	"MAX:32767\r\n" +
	"MIN:-32767\r\n"

// buildArbBlock, doğrulanmış bir örnek dizisini cihazın beklediği ikili bloka
// dönüştürür. Her örnek int16(32767 * x) ile ölçeklenir; dönüşüm sıfıra doğru
// kırpar (truncation), yuvarlama yapılmaz — cihazla gözlemlenen byte akışı bu
// şekildedir.
func buildArbBlock(samples []float64) ([]byte, error) {
	if err := checkSamples(samples); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "[HEAD]:%d\r\n", len(arbHeader))
	buf.WriteString(arbHeader)
	fmt.Fprintf(&buf, "[DATA]:%d\r\n", len(samples))

	word := make([]byte, 2)
	for _, x := range samples {
		binary.LittleEndian.PutUint16(word, uint16(int16(sampleScale*x)))
		buf.Write(word)
	}

	return buf.Bytes(), nil
}

// parseArbBlock, buildArbBlock'un ürettiği bloktan 16 bit kelimeleri geri çıkarır.
// Çerçeve doğrulaması için kullanılır; cihaza giden yolda yer almaz.
func parseArbBlock(block []byte) ([]int16, error) {
	rest, err := expectIntroLine(block, "[HEAD]")
	if err != nil {
		return nil, err
	}

	if len(rest) < len(arbHeader) || string(rest[:len(arbHeader)]) != arbHeader {
		return nil, fmt.Errorf("ARB başlığı beklenen sabit blokla eşleşmiyor")
	}
	rest = rest[len(arbHeader):]

	rest, err = expectIntroLine(rest, "[DATA]")
	if err != nil {
		return nil, err
	}

	if len(rest)%2 != 0 {
		return nil, fmt.Errorf("ARB verisi tek sayıda byte içeriyor: %d", len(rest))
	}

	words := make([]int16, len(rest)/2)
	for i := range words {
		words[i] = int16(binary.LittleEndian.Uint16(rest[2*i:]))
	}
	return words, nil
}

// expectIntroLine, "[HEAD]:<n>\r\n" biçimindeki giriş satırını doğrular ve
// satırdan sonrasını döner. Satırdaki sayı, takip eden bölümün beklenen
// uzunluğudur (HEAD için byte, DATA için kelime sayısı).
func expectIntroLine(data []byte, tag string) ([]byte, error) {
	prefix := tag + ":"
	if !bytes.HasPrefix(data, []byte(prefix)) {
		return nil, fmt.Errorf("%s giriş satırı bulunamadı", tag)
	}
	end := bytes.Index(data, []byte("\r\n"))
	if end < 0 {
		return nil, fmt.Errorf("%s giriş satırı sonlandırılmamış", tag)
	}
	if _, err := strconv.Atoi(string(data[len(prefix):end])); err != nil {
		return nil, fmt.Errorf("%s uzunluk alanı çözümlenemedi: %w", tag, err)
	}
	return data[end+2:], nil
}

// ─── SCPI Komut Kurucu ──────────────────────────────────────────────────────────
//
// Cihaz, noktalı virgülle birleştirilmiş alanları tek yazımda atomik olarak
// uygular. Alan sırası bir protokol sözleşmesidir; bu yüzden dizgiler dağınık
// format çağrılarıyla değil, tek merkezi kurucuyla oluşturulur.

// cmdLockOff, cihazın uzaktan kumanda/ekran kilidini bırakan komuttur.
// Durum değiştiren her dizi bu komutla biter; aksi halde ön panel
// kilitli kalır.
const cmdLockOff = ":SYSTEM:LOCK OFF"

// scpiRequest, tek bir birleşik SCPI yazımını alan alan kuran değer nesnesidir.
type scpiRequest struct {
	fields []string
}

func newRequest() *scpiRequest {
	return &scpiRequest{}
}

func (r *scpiRequest) add(format string, v ...interface{}) *scpiRequest {
	r.fields = append(r.fields, fmt.Sprintf(format, v...))
	return r
}

// wave, kanalın dalga biçimini seçer.
func (r *scpiRequest) wave(channel int, w WaveformType) *scpiRequest {
	return r.add(":CHAN%d:BASE:WAV %s", channel, string(w))
}

// freq, kanalın temel frekansını Hz cinsinden ayarlar.
func (r *scpiRequest) freq(channel int, hz float64) *scpiRequest {
	return r.add(":CHAN%d:BASE:FREQ %s", channel, formatNumber(hz))
}

// low ve high, dalganın gerilim penceresini ayarlar. ARB modunda low -1.0'a,
// high +1.0'a karşılık gelir.
func (r *scpiRequest) low(channel int, volts float64) *scpiRequest {
	return r.add(":CHAN%d:BASE:LOW %s", channel, formatNumber(volts))
}

func (r *scpiRequest) high(channel int, volts float64) *scpiRequest {
	return r.add(":CHAN%d:BASE:HIGH %s", channel, formatNumber(volts))
}

// duty, kare dalganın duty cycle yüzdesini ayarlar.
func (r *scpiRequest) duty(channel int, percent float64) *scpiRequest {
	return r.add(":CHAN%d:BASE:DUTY %s", channel, formatNumber(percent))
}

// symmetry, rampa dalgasının simetri yüzdesini ayarlar.
func (r *scpiRequest) symmetry(channel int, percent float64) *scpiRequest {
	return r.add(":CHAN%d:RAMP:SYMM %s", channel, formatNumber(percent))
}

// arbSource, kanalın ARB kaynağını harici (yüklenen dalga) olarak seçer.
func (r *scpiRequest) arbSource(channel int) *scpiRequest {
	return r.add(":CHAN%d:ARB:SOUR EXT", channel)
}

// arbIndex, kanalın oynatacağı bellek yuvasını seçer. Cihaz burada 0 tabanlı
// index bekler; :WARB yuva seçimi ise 1 tabanlıdır.
func (r *scpiRequest) arbIndex(channel, slot int) *scpiRequest {
	return r.add(":CHAN%d:ARB:IND %d", channel, slot)
}

// output, kanal çıkışını açar veya kapatır.
func (r *scpiRequest) output(channel int, on bool) *scpiRequest {
	state := "OFF"
	if on {
		state = "ON"
	}
	return r.add(":CHAN%d:OUTP %s", channel, state)
}

// lockOff, diziyi kilit bırakma komutuyla sonlandırır.
func (r *scpiRequest) lockOff() *scpiRequest {
	r.fields = append(r.fields, cmdLockOff)
	return r
}

// String, alanları cihazın atomik olarak uyguladığı tek komut dizgisine birleştirir.
func (r *scpiRequest) String() string {
	return strings.Join(r.fields, ";")
}

// formatNumber, sayısal parametreleri SCPI alanlarına yazılacak en kısa
// biçimde kodlar.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
