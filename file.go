package utg962

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ─── Örnek Dosyaları ────────────────────────────────────────────────────────────
//
// Bu dosya, keyfi dalga örneklerinin dosyadan okunmasını içerir. İki format
// desteklenir: satır başına bir değer içeren düz metin ve tek sütunlu CSV.
// Okunan dizi doğrulanmaz; doğrulama yükleme anında checkSamples ile yapılır.

// ReadSamples, düz metin dosyasından örnek dizisi okur. Her satır tek bir
// ondalık değer içerir; '#' ile başlayan satırlar ve boş satırlar atlanır.
//
//	samples, err := utg962.ReadSamples("pulse.txt")
func ReadSamples(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dosya açılamadı: %w", err)
	}
	defer f.Close()

	var samples []float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("satır çözümlenemedi (%q): %w", line, err)
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dosya okunamadı: %w", err)
	}

	return samples, nil
}

// ReadSamplesCSV, tek sütunlu CSV dosyasından örnek dizisi okur. Birden fazla
// sütun varsa yalnızca ilk sütun kullanılır; boş kayıtlar atlanır.
//
//	samples, err := utg962.ReadSamplesCSV("pulse.csv")
func ReadSamplesCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dosya açılamadı: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV çözümlenemedi: %w", err)
	}

	var samples []float64
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		field := strings.TrimSpace(record[0])
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("CSV satır %d çözümlenemedi (%q): %w", i+1, field, err)
		}
		samples = append(samples, v)
	}

	return samples, nil
}
