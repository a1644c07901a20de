package utg962

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckChannel(t *testing.T) {
	tests := []struct {
		name    string
		channel int
		wantErr error
	}{
		{"kanal 1 geçerli", 1, nil},
		{"kanal 2 geçerli", 2, nil},
		{"kanal 0 geçersiz", 0, ErrInvalidChannel},
		{"kanal 3 geçersiz", 3, ErrInvalidChannel},
		{"negatif kanal geçersiz", -1, ErrInvalidChannel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkChannel(tt.channel)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckSlot(t *testing.T) {
	tests := []struct {
		name    string
		slot    int
		wantErr error
	}{
		{"yuva 0 geçerli", 0, nil},
		{"yuva 1 geçerli", 1, nil},
		{"yuva 2 geçersiz", 2, ErrInvalidSlot},
		{"negatif yuva geçersiz", -1, ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSlot(tt.slot)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckFrequency(t *testing.T) {
	tests := []struct {
		name    string
		freq    float64
		ceiling float64
		wantErr error
	}{
		{"sıfır geçerli", 0, 60e6, nil},
		{"tam tavan geçerli", 60e6, 60e6, nil},
		{"tavan üstü geçersiz", 61e6, 60e6, ErrFrequencyOutOfRange},
		{"negatif geçersiz", -1, 60e6, ErrFrequencyOutOfRange},
		{"rampa tavanı", 400e3, 400e3, nil},
		{"rampa tavan üstü", 400e3 + 1, 400e3, ErrFrequencyOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkFrequency(tt.freq, tt.ceiling)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckPercent(t *testing.T) {
	assert.NoError(t, checkPercent(0))
	assert.NoError(t, checkPercent(50))
	assert.NoError(t, checkPercent(100))
	assert.ErrorIs(t, checkPercent(-0.1), ErrPercentOutOfRange)
	assert.ErrorIs(t, checkPercent(100.1), ErrPercentOutOfRange)
}

func TestCheckSamples(t *testing.T) {
	t.Run("boş dizi", func(t *testing.T) {
		assert.ErrorIs(t, checkSamples(nil), ErrEmptySequence)
		assert.ErrorIs(t, checkSamples([]float64{}), ErrEmptySequence)
	})

	t.Run("tam kapasite geçerli", func(t *testing.T) {
		samples := make([]float64, MaxSamples)
		for i := range samples {
			samples[i] = 0.5
		}
		assert.NoError(t, checkSamples(samples))
	})

	t.Run("kapasite aşımı", func(t *testing.T) {
		samples := make([]float64, MaxSamples+1)
		for i := range samples {
			samples[i] = 0.5
		}
		assert.ErrorIs(t, checkSamples(samples), ErrTooManySamples)
	})

	t.Run("aralık dışı örnek", func(t *testing.T) {
		err := checkSamples([]float64{0.0, 1.0, 1.0001})
		require.ErrorIs(t, err, ErrSampleOutOfRange)
		assert.ErrorIs(t, checkSamples([]float64{-1.5}), ErrSampleOutOfRange)
	})

	t.Run("sınır değerler geçerli", func(t *testing.T) {
		assert.NoError(t, checkSamples([]float64{-1.0, 1.0, 0.0}))
	})
}
