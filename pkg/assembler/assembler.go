// Package assembler orchestrates alert generation end to end: loading
// and transcoding optional narration audio, synthesizing the AFSK
// waveform, converting it to 16-bit PCM, and writing the result to a
// WAV or MP3 file.
package assembler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samecodec/sameeas/pkg/afsk"
	"github.com/samecodec/sameeas/pkg/samerr"
	"github.com/samecodec/sameeas/pkg/transcode"
	"github.com/samecodec/sameeas/pkg/wav"
)

// Options configures one call to Generate, mirroring the generator's
// input contract.
type Options struct {
	// Mode selects the hardware-encoder framing; defaults to afsk.ModeDefault.
	Mode afsk.Mode
	// AttentionTone includes the attention signal; defaults to true.
	AttentionTone bool
	// AudioPath is an optional narration file in any format the
	// transcoder accepts.
	AudioPath string
	// OutputFile is the destination path. A ".mp3" extension selects
	// MP3 encoding; anything else writes WAV.
	OutputFile string
}

// DefaultOptions returns the generator's documented defaults.
func DefaultOptions() Options {
	return Options{
		Mode:          afsk.ModeDefault,
		AttentionTone: true,
		OutputFile:    "output.wav",
	}
}

// Diagnostic records a non-fatal failure encountered during assembly —
// currently, only transcoder failures for narration input.
type Diagnostic struct {
	Stage string
	Err   error
}

// Result is the outcome of a successful Generate call.
type Result struct {
	Samples     []float32
	Diagnostics []Diagnostic
}

// Assembler builds alert waveforms and writes them to disk.
type Assembler struct {
	Transcoder *transcode.Transcoder
	Logger     Logger
}

// Logger is the minimal logging surface the assembler needs; satisfied
// by *logging.Logger.
type Logger interface {
	Warnf(component, format string, args ...interface{})
}

// New returns an Assembler using tc for narration downmix and MP3
// encoding.
func New(tc *transcode.Transcoder, logger Logger) *Assembler {
	return &Assembler{Transcoder: tc, Logger: logger}
}

// Generate runs the full protocol described in the alert assembler
// specification: load narration (if any), synthesize the waveform,
// convert to PCM and write the output file.
func (a *Assembler) Generate(ctx context.Context, zczcMessage string, opts Options) (*Result, error) {
	if opts.OutputFile == "" {
		opts.OutputFile = "output.wav"
	}

	var narration []float32
	var diagnostics []Diagnostic

	if strings.TrimSpace(opts.AudioPath) != "" {
		if _, err := os.Stat(opts.AudioPath); err != nil {
			return nil, samerr.New(samerr.AudioFileNotFound, opts.AudioPath)
		}

		samples, err := a.loadNarration(ctx, opts.AudioPath)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{Stage: "transcode-input", Err: err})
			if a.Logger != nil {
				a.Logger.Warnf("assembler", "narration transcode failed, continuing without audio: %v", err)
			}
		} else {
			narration = samples
		}
	}

	samples := afsk.Synthesize(opts.Mode, zczcMessage, opts.AttentionTone, narration)

	if err := a.writeOutput(ctx, samples, opts.OutputFile, &diagnostics); err != nil {
		return nil, err
	}

	return &Result{Samples: samples, Diagnostics: diagnostics}, nil
}

// loadNarration downmixes and resamples the narration file to 24 kHz
// mono float samples via the external transcoder.
func (a *Assembler) loadNarration(ctx context.Context, path string) ([]float32, error) {
	wavPath, err := a.Transcoder.ToMonoWAV(ctx, path)
	if err != nil {
		return nil, err
	}
	defer os.Remove(wavPath)

	data, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, fmt.Errorf("assembler: reading transcoded narration: %w", err)
	}

	pcm, _, err := wav.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("assembler: decoding transcoded narration: %w", err)
	}

	return wav.PCM16ToFloat(pcm), nil
}

// writeOutput converts samples to 16-bit PCM and writes them to
// outputFile, encoding to MP3 via the external transcoder when the
// extension calls for it.
func (a *Assembler) writeOutput(ctx context.Context, samples []float32, outputFile string, diagnostics *[]Diagnostic) error {
	pcm := wav.FloatToPCM16(samples)

	if strings.EqualFold(filepath.Ext(outputFile), ".mp3") {
		return a.writeMP3(ctx, pcm, outputFile)
	}

	return os.WriteFile(outputFile, wav.Encode(pcm, afsk.SampleRate), 0644)
}

// writeMP3 writes a temporary WAV file and invokes the transcoder to
// encode it to MP3, removing the temporary WAV on every exit path.
func (a *Assembler) writeMP3(ctx context.Context, pcm []int16, outputFile string) error {
	tmp, err := os.CreateTemp(a.Transcoder.WorkDir, "sameeas-export-*.wav")
	if err != nil {
		return fmt.Errorf("assembler: allocating temporary wav: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(wav.Encode(pcm, afsk.SampleRate)); err != nil {
		tmp.Close()
		return fmt.Errorf("assembler: writing temporary wav: %w", err)
	}
	tmp.Close()

	if err := a.Transcoder.ToMP3(ctx, tmpPath, outputFile); err != nil {
		return fmt.Errorf("assembler: mp3 encode: %w", err)
	}
	return nil
}
