// utgctl, UTG962 dalga üretecini komut satırından süren araçtır.
//
// Örnekler:
//
//	utgctl sine 1 1000 -- -1 1
//	utgctl square 1 1e6 0 3.3 25
//	utgctl load 0 PULSE1 pulse.txt
//	utgctl arb 1 0 1000 -- -1 1
//	utgctl display screen.png
package main

import (
	"os"

	"github.com/alparslanahmed/utg962"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("utgctl", "UNI-T UTG962 dalga üreteci kontrol aracı.")
	verbose = app.Flag("verbose", "Cihaz trafiğini stderr'e logla.").Short('v').Bool()

	sineCmd  = app.Command("sine", "Kanalı sinüs dalgasına ayarla ve çıkışı aç.")
	sineChan = sineCmd.Arg("channel", "Çıkış kanalı (1 veya 2).").Required().Int()
	sineFreq = sineCmd.Arg("frequency", "Frekans (Hz).").Required().Float64()
	sineLow  = sineCmd.Arg("low", "Alt gerilim (V).").Required().Float64()
	sineHigh = sineCmd.Arg("high", "Üst gerilim (V).").Required().Float64()

	squareCmd  = app.Command("square", "Kanalı kare dalgaya ayarla ve çıkışı aç.")
	squareChan = squareCmd.Arg("channel", "Çıkış kanalı (1 veya 2).").Required().Int()
	squareFreq = squareCmd.Arg("frequency", "Frekans (Hz).").Required().Float64()
	squareLow  = squareCmd.Arg("low", "Alt gerilim (V).").Required().Float64()
	squareHigh = squareCmd.Arg("high", "Üst gerilim (V).").Required().Float64()
	squareDuty = squareCmd.Arg("duty", "Duty cycle yüzdesi.").Default("50").Float64()

	rampCmd  = app.Command("ramp", "Kanalı rampa dalgasına ayarla ve çıkışı aç.")
	rampChan = rampCmd.Arg("channel", "Çıkış kanalı (1 veya 2).").Required().Int()
	rampFreq = rampCmd.Arg("frequency", "Frekans (Hz).").Required().Float64()
	rampLow  = rampCmd.Arg("low", "Alt gerilim (V).").Required().Float64()
	rampHigh = rampCmd.Arg("high", "Üst gerilim (V).").Required().Float64()
	rampSymm = rampCmd.Arg("symmetry", "Simetri yüzdesi.").Default("50").Float64()

	arbCmd  = app.Command("arb", "Kanalı önceden yüklenmiş keyfi dalgaya ayarla.")
	arbChan = arbCmd.Arg("channel", "Çıkış kanalı (1 veya 2).").Required().Int()
	arbSlot = arbCmd.Arg("index", "ARB bellek yuvası (0 veya 1).").Required().Int()
	arbFreq = arbCmd.Arg("frequency", "Frekans (Hz).").Required().Float64()
	arbLow  = arbCmd.Arg("low", "-1.0 örneğine karşılık gelen gerilim (V).").Required().Float64()
	arbHigh = arbCmd.Arg("high", "+1.0 örneğine karşılık gelen gerilim (V).").Required().Float64()

	loadCmd  = app.Command("load", "Düz metin dosyasından keyfi dalga yükle. Satır başına bir örnek (-1.0..+1.0), '#' satırları yorum, en fazla 4000 örnek.")
	loadSlot = loadCmd.Arg("index", "ARB bellek yuvası (0 veya 1).").Required().Int()
	loadName = loadCmd.Arg("name", "Cihaz ekranında görünecek dalga adı.").Required().String()
	loadFile = loadCmd.Arg("file", "Örnek dosyası.").Required().ExistingFile()

	loadCSVCmd  = app.Command("load-csv", "Tek sütunlu CSV dosyasından keyfi dalga yükle ve kanalı yüklenen dalgada bırak.")
	loadCSVChan = loadCSVCmd.Arg("channel", "Çıkış kanalı (1 veya 2).").Required().Int()
	loadCSVSlot = loadCSVCmd.Arg("index", "ARB bellek yuvası (0 veya 1).").Required().Int()
	loadCSVName = loadCSVCmd.Arg("name", "Cihaz ekranında görünecek dalga adı.").Required().String()
	loadCSVFile = loadCSVCmd.Arg("file", "CSV dosyası.").Required().ExistingFile()

	outputCmd   = app.Command("output", "Kanal çıkışını aç veya kapat.")
	outputChan  = outputCmd.Arg("channel", "Çıkış kanalı (1 veya 2).").Required().Int()
	outputState = outputCmd.Arg("state", "on veya off.").Required().Enum("on", "off")

	displayCmd  = app.Command("display", "Cihaz ekranını görüntü dosyasına kaydet (PNG, BMP, TIFF, JPEG, GIF).")
	displayFile = displayCmd.Arg("file", "Hedef dosya; format uzantıdan belirlenir.").Required().String()

	resetCmd = app.Command("reset", "Cihazı fabrika ayarlarına döndür.")
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	var opts []utg962.DeviceOption
	if *verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, utg962.WithLogger(&logger))
	}

	dev, err := utg962.Open(opts...)
	if err != nil {
		app.Fatalf("%v", err)
	}
	defer dev.Close()

	switch cmd {
	case sineCmd.FullCommand():
		err = dev.SetSine(*sineChan, *sineFreq, *sineLow, *sineHigh)

	case squareCmd.FullCommand():
		err = dev.SetSquare(*squareChan, *squareFreq, *squareLow, *squareHigh, *squareDuty)

	case rampCmd.FullCommand():
		err = dev.SetRamp(*rampChan, *rampFreq, *rampLow, *rampHigh, *rampSymm)

	case arbCmd.FullCommand():
		err = dev.SetArb(*arbChan, *arbSlot, *arbFreq, *arbLow, *arbHigh)

	case loadCmd.FullCommand():
		err = dev.LoadArbFromFile(*loadSlot, *loadName, *loadFile)

	case loadCSVCmd.FullCommand():
		var samples []float64
		samples, err = utg962.ReadSamplesCSV(*loadCSVFile)
		if err == nil {
			err = dev.LoadArbForChannel(*loadCSVChan, *loadCSVSlot, *loadCSVName, samples)
		}

	case outputCmd.FullCommand():
		err = dev.SetOutput(*outputChan, *outputState == "on")

	case displayCmd.FullCommand():
		err = dev.SaveDisplay(*displayFile)

	case resetCmd.FullCommand():
		err = dev.Reset()
	}

	if err != nil {
		app.Fatalf("%v", err)
	}
}
