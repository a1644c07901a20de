package utg962

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArbBlockFraming(t *testing.T) {
	block, err := buildArbBlock([]float64{1.0, -1.0, 0.0})
	require.NoError(t, err)

	// Başlık giriş satırı sabit başlığın byte uzunluğunu taşır.
	wantIntro := []byte("[HEAD]:62\r\n")
	assert.True(t, bytes.HasPrefix(block, wantIntro), "blok %q ile başlamalı", wantIntro)
	assert.Len(t, arbHeader, 62)

	rest := block[len(wantIntro):]
	require.True(t, bytes.HasPrefix(rest, []byte(arbHeader)))
	rest = rest[len(arbHeader):]

	wantData := append([]byte("[DATA]:3\r\n"),
		0xff, 0x7f, // 32767
		0x01, 0x80, // -32767
		0x00, 0x00, // 0
	)
	assert.Equal(t, wantData, rest)
}

func TestBuildArbBlockValidates(t *testing.T) {
	_, err := buildArbBlock(nil)
	assert.ErrorIs(t, err, ErrEmptySequence)

	tooMany := make([]float64, MaxSamples+1)
	_, err = buildArbBlock(tooMany)
	assert.ErrorIs(t, err, ErrTooManySamples)

	_, err = buildArbBlock([]float64{0.5, 2.0})
	assert.ErrorIs(t, err, ErrSampleOutOfRange)
}

func TestArbBlockRoundTrip(t *testing.T) {
	samples := make([]float64, 250)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(i) / float64(len(samples)))
	}

	block, err := buildArbBlock(samples)
	require.NoError(t, err)

	words, err := parseArbBlock(block)
	require.NoError(t, err)
	require.Len(t, words, len(samples))

	for i, x := range samples {
		assert.Equal(t, int16(sampleScale*x), words[i], "örnek %d", i)
	}
}

func TestScalingTruncatesTowardZero(t *testing.T) {
	// Ölçekleme yuvarlamaz; sıfıra doğru kırpar. Cihaza giden byte'lar buna
	// bağlı olduğundan davranış sabitlenmiştir.
	block, err := buildArbBlock([]float64{0.99999, -0.99999, 0.5})
	require.NoError(t, err)

	words, err := parseArbBlock(block)
	require.NoError(t, err)
	assert.Equal(t, []int16{32766, -32766, 16383}, words)
}

func TestParseArbBlockRejectsCorruptFraming(t *testing.T) {
	_, err := parseArbBlock([]byte("garbage"))
	assert.Error(t, err)

	// Geçerli bloktan [DATA] satırını boz.
	block, err := buildArbBlock([]float64{0.5})
	require.NoError(t, err)
	corrupt := bytes.Replace(block, []byte("[DATA]"), []byte("[DATB]"), 1)
	_, err = parseArbBlock(corrupt)
	assert.Error(t, err)
}

func TestRequestFieldOrder(t *testing.T) {
	// Alan sırası protokol sözleşmesidir: WAV, FREQ, LOW, HIGH, şekle özgü
	// parametre, OUTP, kilit bırakma.
	got := newRequest().
		wave(1, WaveSquare).
		freq(1, 2500).
		low(1, 0).
		high(1, 3.3).
		duty(1, 25).
		output(1, true).
		lockOff().String()

	want := ":CHAN1:BASE:WAV SQU;:CHAN1:BASE:FREQ 2500;:CHAN1:BASE:LOW 0;:CHAN1:BASE:HIGH 3.3;:CHAN1:BASE:DUTY 25;:CHAN1:OUTP ON;:SYSTEM:LOCK OFF"
	assert.Equal(t, want, got)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1000", formatNumber(1000))
	assert.Equal(t, "-1", formatNumber(-1))
	assert.Equal(t, "3.3", formatNumber(3.3))
	assert.Equal(t, "6e+07", formatNumber(60e6))
}
