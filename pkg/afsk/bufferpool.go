package afsk

import "sync"

// segmentPool recycles the small scratch buffers produced for each
// mark/space bit tone and silence gap during synthesis, adapted from the
// size-tiered sync.Pool design used for live audio capture buffers
// elsewhere in this codebase's ancestry. Unlike that design this pool
// only serves two tiers; framed bursts are built with their own
// allocation, and oversized segments (attention tones, silences of a
// second or longer) are allocated directly and never pooled.
type segmentPool struct {
	small  sync.Pool // <= 1024 samples: single bit tones
	medium sync.Pool // <= 8192 samples: short tones and silences
}

var globalSegmentPool = newSegmentPool()

func newSegmentPool() *segmentPool {
	p := &segmentPool{}
	p.small.New = func() interface{} { return make([]float32, 1024) }
	p.medium.New = func() interface{} { return make([]float32, 8192) }
	return p
}

// get returns a []float32 of length n, drawn from the appropriate tier
// when it fits, or allocated directly when it doesn't.
func (p *segmentPool) get(n int) []float32 {
	switch {
	case n <= 1024:
		buf := p.small.Get().([]float32)
		if cap(buf) < n {
			buf = make([]float32, 1024)
		}
		return buf[:n]
	case n <= 8192:
		buf := p.medium.Get().([]float32)
		if cap(buf) < n {
			buf = make([]float32, 8192)
		}
		return buf[:n]
	default:
		return make([]float32, n)
	}
}

// put returns buf to the tier matching its capacity. Buffers larger than
// the medium tier are dropped for the garbage collector to reclaim.
func (p *segmentPool) put(buf []float32) {
	switch c := cap(buf); {
	case c <= 1024:
		p.small.Put(buf[:cap(buf)])
	case c <= 8192:
		p.medium.Put(buf[:cap(buf)])
	}
}
