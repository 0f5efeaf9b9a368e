package afsk

import "bytes"

// preamble is the 16-byte 0xAB bit-sync run prefixed to every header and
// EOM transmission.
var preamble = bytes.Repeat([]byte{0xAB}, 16)

const headerBurstSilenceMs = 1000

// transmit renders the full three-burst header or EOM waveform for mode,
// framing content (the literal header text, or "NNNN" for an EOM) per
// the hardware encoder's convention.
func transmit(mode Mode, content []byte) []float32 {
	if mode == ModeDigital {
		return transmitDigital(content)
	}

	framed := frameDefault(mode, content)
	burst := encodeBits(framed)
	gap := Silence(headerBurstSilenceMs)
	defer globalSegmentPool.put(gap)

	out := make([]float32, 0, 3*(len(burst)+len(gap)))
	for i := 0; i < 3; i++ {
		out = append(out, burst...)
		out = append(out, gap...)
	}
	return out
}

// frameDefault applies the non-digital, mode-specific framing: the
// 16-byte preamble, the content, and a mode-dependent trailer.
func frameDefault(mode Mode, content []byte) []byte {
	framed := make([]byte, 0, len(preamble)+len(content)+2)
	framed = append(framed, preamble...)
	framed = append(framed, content...)

	switch mode {
	case ModeNWS:
		framed = append(framed, 0x00, 0x00)
	case ModeSAGE:
		framed = append(framed, 0xFF)
	case ModeDefault, ModeTrilithic:
		// no trailer
	}
	return framed
}

// transmitDigital renders the DIGITAL mode's header/EOM layout: a first
// burst prefixed with an extra 0x00 ahead of the full 16-byte preamble,
// followed by two standard bursts that use a single 0xAB lead-in instead
// of the full preamble.
func transmitDigital(content []byte) []float32 {
	first := make([]byte, 0, 1+len(preamble)+len(content)+3)
	first = append(first, 0x00)
	first = append(first, preamble...)
	first = append(first, content...)
	first = append(first, 0xFF, 0xFF, 0xFF)

	standard := make([]byte, 0, 1+len(content)+3)
	standard = append(standard, 0xAB)
	standard = append(standard, content...)
	standard = append(standard, 0xFF, 0xFF, 0xFF)

	gap := Silence(headerBurstSilenceMs)
	firstBurst := encodeBits(first)
	standardBurst := encodeBits(standard)

	out := make([]float32, 0, len(firstBurst)+2*len(gap)+2*len(standardBurst))
	out = append(out, firstBurst...)
	out = append(out, gap...)
	out = append(out, standardBurst...)
	out = append(out, gap...)
	out = append(out, standardBurst...)
	return out
}

// HeaderTransmission renders the three-burst waveform carrying
// zczcMessage (the literal "ZCZC-..." header text).
func HeaderTransmission(mode Mode, zczcMessage string) []float32 {
	return transmit(mode, []byte(zczcMessage))
}

// EOMTransmission renders the three-burst waveform carrying the "NNNN"
// end-of-message marker, using the same per-mode framing as the header.
func EOMTransmission(mode Mode) []float32 {
	return transmit(mode, []byte("NNNN"))
}
