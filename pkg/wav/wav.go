// Package wav encodes and decodes single-channel 16-bit PCM WAV files.
// No library in the surrounding stack parses or writes WAV containers,
// so this package builds the RIFF/WAVE header by hand over
// encoding/binary, the same way a small chime generator elsewhere in
// this codebase's lineage does it.
package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	headerSize    = 44
	bitsPerSample = 16
	channels      = 1
)

// Encode writes samples (16-bit signed PCM, mono) as a complete WAV file
// at the given sample rate.
func Encode(samples []int16, sampleRate int) []byte {
	dataSize := len(samples) * 2
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := make([]byte, headerSize+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(bitsPerSample))

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	offset := headerSize
	for _, s := range samples {
		binary.LittleEndian.PutUint16(buf[offset:offset+2], uint16(s))
		offset += 2
	}

	return buf
}

// Decode parses a mono 16-bit PCM WAV file and returns its samples and
// sample rate. It walks chunks rather than assuming the fixed 44-byte
// layout Encode produces, since files the external transcoder hands
// back may carry extra chunks (e.g. "LIST").
func Decode(data []byte) (samples []int16, sampleRate int, err error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, 0, fmt.Errorf("wav: not a RIFF/WAVE file")
	}

	var (
		numChannels   uint16
		bits          uint16
		foundFmt      bool
		foundData     bool
		dataBytes     []byte
	)

	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8

		if body+size > len(data) {
			break
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, 0, fmt.Errorf("wav: fmt chunk too short")
			}
			chunk := data[body : body+size]
			numChannels = binary.LittleEndian.Uint16(chunk[2:4])
			sampleRate = int(binary.LittleEndian.Uint32(chunk[4:8]))
			bits = binary.LittleEndian.Uint16(chunk[14:16])
			foundFmt = true
		case "data":
			dataBytes = data[body : body+size]
			foundData = true
		}

		pos = body + size
		if size%2 == 1 {
			pos++ // chunks are word-aligned
		}
	}

	if !foundFmt || !foundData {
		return nil, 0, fmt.Errorf("wav: missing fmt or data chunk")
	}
	if numChannels != 1 {
		return nil, 0, fmt.Errorf("wav: expected mono, got %d channels", numChannels)
	}
	if bits != bitsPerSample {
		return nil, 0, fmt.Errorf("wav: expected %d-bit PCM, got %d-bit", bitsPerSample, bits)
	}

	r := bytes.NewReader(dataBytes)
	samples = make([]int16, len(dataBytes)/2)
	if err := binary.Read(r, binary.LittleEndian, &samples); err != nil {
		return nil, 0, fmt.Errorf("wav: reading samples: %w", err)
	}

	return samples, sampleRate, nil
}

// FloatToPCM16 converts float32 samples in [-1, 1] to 16-bit signed PCM
// with a saturating clamp, per the assembler's output conversion rule.
func FloatToPCM16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		v := int32(math.Round(float64(s) * 32767))
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		out[i] = int16(v)
	}
	return out
}

// PCM16ToFloat converts 16-bit signed PCM samples to float32 in [-1, 1].
func PCM16ToFloat(samples []int16) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(s) / 32768
	}
	return out
}
