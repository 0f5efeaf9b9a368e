package afsk

const (
	leadInSilenceMs        = 1000
	postHeaderSilenceMs    = 500
	trilithicPostHeaderMs  = 150
	postAttentionSilenceMs = 1000
	postNarrationSilenceMs = 1000
	trailingSilenceMs      = 1000
)

// segment is an append-and-recycle accumulator: each Silence()-produced
// buffer is copied into the growing waveform and immediately returned to
// the pool it came from, since nothing outside this package ever needs
// to see those intermediate buffers again.
type segment struct {
	out []float32
}

func (s *segment) addPooled(buf []float32) {
	s.out = append(s.out, buf...)
	globalSegmentPool.put(buf)
}

func (s *segment) add(buf []float32) {
	s.out = append(s.out, buf...)
}

// Synthesize renders the complete alert waveform for mode: lead-in
// silence, the header burst, post-header silence, an optional attention
// tone, an optional narration clip, the EOM burst and trailing silence,
// per the hardware encoder's transmission layout.
//
// narration is copied into the output verbatim; callers are responsible
// for producing it at SampleRate in [-1, 1] float32 samples (see
// pkg/transcode).
func Synthesize(mode Mode, zczcMessage string, withAttentionTone bool, narration []float32) []float32 {
	s := &segment{}

	s.addPooled(Silence(leadInSilenceMs))
	s.add(HeaderTransmission(mode, zczcMessage))

	postHeader := postHeaderSilenceMs
	if mode == ModeTrilithic {
		postHeader = trilithicPostHeaderMs
	}
	s.addPooled(Silence(float64(postHeader)))

	if withAttentionTone {
		s.add(AttentionTone(mode))
		s.addPooled(Silence(postAttentionSilenceMs))
	}

	if len(narration) > 0 {
		s.add(narration)
		s.addPooled(Silence(postNarrationSilenceMs))
	}

	s.add(EOMTransmission(mode))
	s.addPooled(Silence(trailingSilenceMs))

	return s.out
}
