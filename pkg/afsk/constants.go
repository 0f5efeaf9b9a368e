// Package afsk implements the Bell-202-derivative AFSK waveform
// synthesizer used to carry a SAME header (and an optional end-of-message
// marker, attention tone and narration clip) as a PCM float sample
// stream, per the mode-specific framing conventions of the NWS, SAGE
// DIGITAL 3644, SAGE EAS 1822 and Trilithic hardware encoders.
package afsk

import "math"

const (
	// SampleRate is the fixed output rate of every segment the
	// synthesizer produces.
	SampleRate = 24000

	// MarkFreq and SpaceFreq are the two AFSK tones carrying bit values
	// 1 and 0 respectively.
	MarkFreq  = 2083.3
	SpaceFreq = 1562.5

	// Baud is the SAME symbol rate in bits/second.
	Baud = 520.83

	// markSpaceAmplitudeDB is the level of mark/space tones.
	markSpaceAmplitudeDB = -3.0

	// attentionToneAmplitudeDB is the level of the default dual-tone
	// attention signal (853/960 Hz).
	attentionToneAmplitudeDB = -10.0

	// nwsAttentionAmplitudeDB is the level of the NWS single-tone
	// attention signal (1050 Hz).
	nwsAttentionAmplitudeDB = -4.0

	nwsAttentionFreq     = 1050.0
	attentionToneFreqLow  = 853.0
	attentionToneFreqHigh = 960.0
)

// samplesPerBit is the number of samples contributed by every mark or
// space tone: round(24000 / 520.83) == 46, per spec.
var samplesPerBit = int(math.Round(float64(SampleRate) / Baud))

// amplitudeFromDB converts a dBFS level to a linear sample amplitude.
func amplitudeFromDB(db float64) float64 {
	return math.Pow(10, db/20)
}

// samplesForDuration computes the sample count for a duration in
// milliseconds, rounding to the nearest sample per spec's sine
// generation rule.
func samplesForDuration(durationMs float64) int {
	return int(math.Round(durationMs / 1000 * float64(SampleRate)))
}
