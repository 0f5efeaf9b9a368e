// Package transcode wraps the external, ffmpeg-compatible audio
// transcoder invoked at the two suspension points in alert assembly: to
// downmix/resample narration audio down to 24 kHz mono PCM WAV on input,
// and to encode the finished waveform to MP3 on output. No library in
// this codebase's stack does audio transcoding in-process; shelling out
// to an external binary is the same process-boundary design the source
// uses.
package transcode

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const sampleRate = 24000

// Transcoder invokes an external ffmpeg-compatible binary.
type Transcoder struct {
	// Binary is the executable name or path, e.g. "ffmpeg".
	Binary string
	// WorkDir holds the per-call temporary files. Defaults to
	// os.TempDir() when empty.
	WorkDir string
}

// New returns a Transcoder for binary, using dir for temporary files.
func New(binary, dir string) *Transcoder {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Transcoder{Binary: binary, WorkDir: dir}
}

// ToMonoWAV downmixes and resamples inputPath to 24 kHz mono 16-bit PCM
// WAV, returning the path to a uniquely-named temporary file the caller
// must remove. inputPath not existing is the caller's concern: this
// method reports it as a process-launch error, same as any other
// transcoder failure.
func (t *Transcoder) ToMonoWAV(ctx context.Context, inputPath string) (outPath string, err error) {
	out, err := t.tempFile("narration-*.wav")
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, t.Binary,
		"-y",
		"-i", inputPath,
		"-ar", fmt.Sprint(sampleRate),
		"-ac", "1",
		"-acodec", "pcm_s16le",
		out,
	)
	if err := cmd.Run(); err != nil {
		os.Remove(out)
		return "", fmt.Errorf("transcode: downmix %s: %w", inputPath, err)
	}
	return out, nil
}

// ToMP3 encodes the WAV at wavPath to a 128 kbps CBR MP3 at mp3Path
// using libmp3lame. The caller is responsible for removing wavPath.
func (t *Transcoder) ToMP3(ctx context.Context, wavPath, mp3Path string) error {
	cmd := exec.CommandContext(ctx, t.Binary,
		"-y",
		"-i", wavPath,
		"-codec:a", "libmp3lame",
		"-b:a", "128k",
		mp3Path,
	)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("transcode: mp3 encode %s: %w", wavPath, err)
	}
	return nil
}

// tempFile allocates a per-call unique path under WorkDir matching
// pattern (an os.CreateTemp-style pattern), without leaving the file
// handle open — the transcoder process writes the file itself.
func (t *Transcoder) tempFile(pattern string) (string, error) {
	f, err := os.CreateTemp(t.WorkDir, pattern)
	if err != nil {
		return "", fmt.Errorf("transcode: allocating temp file: %w", err)
	}
	path := f.Name()
	f.Close()
	os.Remove(path) // reserve the name only; ffmpeg must create the file itself
	return filepath.Clean(path), nil
}
