package afsk

import (
	"fmt"
	"strings"
)

// Mode selects the hardware-encoder-specific framing and attention-tone
// convention applied to a header, EOM and attention-tone transmission.
type Mode int

const (
	// ModeDefault frames the preamble and header with no extra bytes,
	// matching the plain SAME convention most receivers expect.
	ModeDefault Mode = iota
	// ModeNWS appends two trailing 0x00 bytes to every header/EOM burst
	// and synthesizes the single-tone 1050 Hz NWS attention signal.
	ModeNWS
	// ModeSAGE appends one trailing 0xFF byte, matching the SAGE EAS
	// 1822 encoder's framing.
	ModeSAGE
	// ModeTrilithic frames the preamble and header with no extra bytes
	// but uses a shorter post-header silence (see DESIGN.md).
	ModeTrilithic
	// ModeDigital frames the first burst of a header/EOM transmission
	// differently from the two bursts that follow it, matching the SAGE
	// DIGITAL 3644 encoder.
	ModeDigital
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "DEFAULT"
	case ModeNWS:
		return "NWS"
	case ModeSAGE:
		return "SAGE"
	case ModeTrilithic:
		return "TRILITHIC"
	case ModeDigital:
		return "DIGITAL"
	default:
		return "UNKNOWN"
	}
}

// ParseMode resolves a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "DEFAULT", "":
		return ModeDefault, nil
	case "NWS":
		return ModeNWS, nil
	case "SAGE":
		return ModeSAGE, nil
	case "TRILITHIC":
		return ModeTrilithic, nil
	case "DIGITAL":
		return ModeDigital, nil
	default:
		return ModeDefault, fmt.Errorf("afsk: unknown mode %q", s)
	}
}
