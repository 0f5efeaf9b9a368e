package afsk

import "math"

// toneSamples renders n samples of a sine wave at freq Hz and the given
// linear amplitude, with phase restarting at zero — every mark/space bit
// and every attention/EOM tone is its own independent tone segment, not a
// phase-continuous carrier.
func toneSamples(freq float64, n int, amplitude float64) []float32 {
	out := globalSegmentPool.get(n)
	w := 2 * math.Pi * freq / SampleRate
	for i := 0; i < n; i++ {
		out[i] = float32(amplitude * math.Sin(w*float64(i)))
	}
	return out
}

// Tone renders a tone of the given duration (ms) and level (dBFS).
func Tone(freq, durationMs, levelDB float64) []float32 {
	return toneSamples(freq, samplesForDuration(durationMs), amplitudeFromDB(levelDB))
}

// Silence renders a flat-zero segment of the given duration in
// milliseconds.
func Silence(durationMs float64) []float32 {
	n := samplesForDuration(durationMs)
	buf := globalSegmentPool.get(n)
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// encodeBits renders the AFSK bit stream for payload, LSB-first within
// each byte: bit value 1 becomes a MarkFreq tone, bit value 0 becomes a
// SpaceFreq tone, each exactly samplesPerBit samples long.
func encodeBits(payload []byte) []float32 {
	amplitude := amplitudeFromDB(markSpaceAmplitudeDB)
	out := make([]float32, 0, len(payload)*8*samplesPerBit)
	for _, b := range payload {
		for bit := 0; bit < 8; bit++ {
			freq := SpaceFreq
			if (b>>uint(bit))&1 == 1 {
				freq = MarkFreq
			}
			bitTone := toneSamples(freq, samplesPerBit, amplitude)
			out = append(out, bitTone...)
			globalSegmentPool.put(bitTone)
		}
	}
	return out
}

// AttentionTone renders the attention signal for mode: NWS uses a single
// 1050 Hz tone at -4 dBFS for 9 seconds; every other mode uses the
// averaged 853/960 Hz dual tone at -10 dBFS for 8 seconds.
func AttentionTone(mode Mode) []float32 {
	if mode == ModeNWS {
		return Tone(nwsAttentionFreq, 9000, nwsAttentionAmplitudeDB)
	}
	low := Tone(attentionToneFreqLow, 8000, attentionToneAmplitudeDB)
	high := Tone(attentionToneFreqHigh, 8000, attentionToneAmplitudeDB)
	out := make([]float32, len(low))
	for i := range out {
		out[i] = 0.5 * (low[i] + high[i])
	}
	return out
}
