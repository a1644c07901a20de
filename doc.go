// Package utg962 provides a Go library for controlling the UNI-T UTG962
// dual-channel arbitrary waveform generator over USBTMC using its SCPI-style
// command protocol.
//
// # Overview
//
// The UTG962 is driven by colon-delimited ASCII commands, with a binary
// sub-protocol for arbitrary waveform upload and screenshot retrieval.
// This library implements validation, protocol framing and the ordered
// command sequences the device requires, including the state save/restore
// dance around arbitrary waveform uploads.
//
// # Protocol Architecture
//
//   - Commands are ASCII strings like ":CHAN1:BASE:WAV SIN"; several fields
//     joined with ';' are applied atomically by the device in one write
//   - Arbitrary waveform data is a length-prefixed binary block:
//     "[HEAD]:<n>" intro, a fixed 6-line ASCII header, a "[DATA]:<N>" intro
//     and N little-endian signed 16-bit words
//   - Screenshot data comes back as an IEEE 488.2 definite-length block
//     containing a BMP with swapped color planes and mirrored rows
//   - Mutating sequences end with ":SYSTEM:LOCK OFF" so the front panel
//     stays usable
//
// # Quick Start
//
//	dev, err := utg962.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	// 1 kHz sine on channel 1, -1V..+1V
//	err = dev.SetSine(1, 1000, -1, 1)
//
//	// Upload an arbitrary waveform and play it
//	err = dev.LoadArb(0, "PULSE1", samples)
//	err = dev.SetArb(1, 0, 1000, -1, 1)
//
//	// Save the display
//	err = dev.SaveDisplay("screen.png")
//
// # Supported Features
//
//   - Sine, square (duty cycle), ramp (symmetry) and arbitrary waveforms
//     with per-shape frequency ceilings
//   - Arbitrary waveform upload into either memory slot, from a slice,
//     a plain text file or a single-column CSV file
//   - Channel mode preservation across uploads (the device may force both
//     channels into ARB mode as a side effect of the memory-slot write)
//   - Screenshot capture with color and orientation correction, saved as
//     PNG, BMP, TIFF, JPEG or GIF
//   - Output enable/disable and factory reset
//
// # Concurrency
//
// A Device represents one exclusive, synchronous session. The instrument
// holds implicit state (per-channel waveform mode, lock status), so
// concurrent access to the same session is not supported; callers needing
// it must serialize through a single owner.
package utg962
