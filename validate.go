package utg962

import (
	"fmt"
)

// ─── Doğrulama ──────────────────────────────────────────────────────────────────
//
// Bu dosya, cihaza tek bir byte gönderilmeden önce çalıştırılan saf doğrulama
// fonksiyonlarını içerir. Hiçbir kontrol dış durumu değiştirmez; doğrulama
// hatasında cihaz üzerinde kısmi yazma oluşmaz.

// checkChannel, kanal numarasının 1 veya 2 olduğunu doğrular.
func checkChannel(channel int) error {
	if channel < 1 || channel > ChannelCount {
		return fmt.Errorf("%w: %d (1 veya 2 olmalı)", ErrInvalidChannel, channel)
	}
	return nil
}

// checkSlot, ARB bellek yuvasının 0 veya 1 olduğunu doğrular.
func checkSlot(slot int) error {
	if slot < 0 || slot >= SlotCount {
		return fmt.Errorf("%w: %d (0 veya 1 olmalı)", ErrInvalidSlot, slot)
	}
	return nil
}

// checkFrequency, frekansın 0 ile verilen tavan arasında olduğunu doğrular.
// Tavan dalga tipine göre değişir, bkz. WaveformType.MaxFrequency.
func checkFrequency(freq, ceiling float64) error {
	if freq < 0 || freq > ceiling {
		return fmt.Errorf("%w: %g Hz (0-%g Hz aralığında olmalı)", ErrFrequencyOutOfRange, freq, ceiling)
	}
	return nil
}

// checkPercent, duty cycle veya simetri değerinin 0-100 aralığında olduğunu doğrular.
func checkPercent(percent float64) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("%w: %g (0-100 aralığında olmalı)", ErrPercentOutOfRange, percent)
	}
	return nil
}

// checkSamples, örnek dizisinin uzunluğunu ve değer aralığını doğrular.
// Dizi boş olamaz, MaxSamples'ı aşamaz ve her örnek [-1.0, +1.0]
// aralığında olmalıdır.
func checkSamples(samples []float64) error {
	if len(samples) == 0 {
		return ErrEmptySequence
	}
	if len(samples) > MaxSamples {
		return fmt.Errorf("%w: %d (en fazla %d)", ErrTooManySamples, len(samples), MaxSamples)
	}
	for i, x := range samples {
		if x < -1.0 || x > 1.0 {
			return fmt.Errorf("%w: örnek %d = %g", ErrSampleOutOfRange, i, x)
		}
	}
	return nil
}
