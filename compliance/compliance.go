package compliance

// Mode selects how closely decoders follow the behavior of earlier client
// releases.
//
// Strict mode prefers explicit failure over a meaningless result: bracketed
// labels must contain real hex and unrecognized content pointers are reported
// as absent.
// Legacy mode reproduces earlier releases byte for byte, including the
// length-only label check and the silent "ipfs://" fallback.
type Mode int

const (
	Strict Mode = iota
	Legacy
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Legacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseMode accepts "strict" or "legacy"; the empty string means Strict.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "strict":
		return Strict, true
	case "legacy":
		return Legacy, true
	default:
		return Strict, false
	}
}
