package wav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	samples := []int16{0, 100, -100, 32767, -32768}
	data := Encode(samples, 24000)

	got, rate, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 24000, rate)
	assert.Equal(t, samples, got)
}

func TestEncodeHeaderLayout(t *testing.T) {
	data := Encode([]int16{1, 2, 3}, 24000)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))
	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, headerSize+6, len(data))
}

func TestDecodeRejectsNonWAV(t *testing.T) {
	_, _, err := Decode([]byte("not a wav file at all"))
	assert.Error(t, err)
}

func TestFloatToPCM16Clamps(t *testing.T) {
	got := FloatToPCM16([]float32{2.0, -2.0, 0.0, 0.5})
	assert.Equal(t, int16(32767), got[0])
	assert.Equal(t, int16(-32768), got[1])
	assert.Equal(t, int16(0), got[2])
	assert.Equal(t, int16(16384), got[3])
}

func TestPCM16ToFloatRoundTrip(t *testing.T) {
	pcm := []int16{0, 16384, -16384, 32767}
	floats := PCM16ToFloat(pcm)
	back := FloatToPCM16(floats)
	assert.InDelta(t, 0, back[0], 1)
	assert.InDelta(t, 16384, back[1], 1)
	assert.InDelta(t, -16384, back[2], 1)
	assert.InDelta(t, 32767, back[3], 1)
}
