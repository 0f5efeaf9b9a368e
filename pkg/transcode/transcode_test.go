package transcode

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinary writes a tiny shell script that mimics ffmpeg's contract
// closely enough to exercise the wrapper: it ignores its input and
// writes a placeholder file at its last argument.
func fakeBinary(t *testing.T, succeed bool) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fakeffmpeg.sh")

	script := "#!/bin/bash\nlast=\"${@: -1}\"\necho fake > \"$last\"\nexit 0\n"
	if !succeed {
		script = "#!/bin/bash\nexit 1\n"
	}

	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestToMonoWAVSuccess(t *testing.T) {
	bin := fakeBinary(t, true)
	tr := New(bin, t.TempDir())

	input := filepath.Join(t.TempDir(), "narration.mp3")
	require.NoError(t, os.WriteFile(input, []byte("fake audio"), 0644))

	out, err := tr.ToMonoWAV(context.Background(), input)
	require.NoError(t, err)
	defer os.Remove(out)

	_, statErr := os.Stat(out)
	assert.NoError(t, statErr)
}

func TestToMonoWAVFailureCleansUpTempFile(t *testing.T) {
	bin := fakeBinary(t, false)
	workDir := t.TempDir()
	tr := New(bin, workDir)

	_, err := tr.ToMonoWAV(context.Background(), "/nonexistent/narration.mp3")
	assert.Error(t, err)

	entries, readErr := os.ReadDir(workDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestToMP3Success(t *testing.T) {
	bin := fakeBinary(t, true)
	tr := New(bin, t.TempDir())

	wav := filepath.Join(t.TempDir(), "in.wav")
	mp3 := filepath.Join(t.TempDir(), "out.mp3")
	require.NoError(t, os.WriteFile(wav, []byte("fake wav"), 0644))

	err := tr.ToMP3(context.Background(), wav, mp3)
	require.NoError(t, err)

	_, statErr := os.Stat(mp3)
	assert.NoError(t, statErr)
}

func TestToMP3Failure(t *testing.T) {
	bin := fakeBinary(t, false)
	tr := New(bin, t.TempDir())

	err := tr.ToMP3(context.Background(), "in.wav", "out.mp3")
	assert.Error(t, err)
}

func TestNewDefaultsWorkDir(t *testing.T) {
	tr := New("ffmpeg", "")
	assert.Equal(t, os.TempDir(), tr.WorkDir)
}
