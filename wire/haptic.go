package wire

import "fmt"

// HapticPattern names a vibration pattern a training app can request
// from a remote.
type HapticPattern byte

const (
	PatternNone    HapticPattern = 0x00
	PatternShort   HapticPattern = 0x01
	PatternDouble  HapticPattern = 0x02
	PatternTriple  HapticPattern = 0x03
	PatternLong    HapticPattern = 0x04
	PatternSuccess HapticPattern = 0x05
	PatternWarning HapticPattern = 0x06
	PatternError   HapticPattern = 0x07

	// PatternUnknown marks a pattern byte outside the defined set.
	// The byte as received stays available in HapticCommand.Raw.
	// 0xFF is reserved and will not be assigned to a real pattern.
	PatternUnknown HapticPattern = 0xFF
)

var patternNames = map[HapticPattern]string{
	PatternNone:    "none",
	PatternShort:   "short",
	PatternDouble:  "double",
	PatternTriple:  "triple",
	PatternLong:    "long",
	PatternSuccess: "success",
	PatternWarning: "warning",
	PatternError:   "error",
}

// patternsByName is the reverse of patternNames, built once at init and
// read-only afterwards.
var patternsByName = make(map[string]HapticPattern, len(patternNames))

func init() {
	for p, name := range patternNames {
		patternsByName[name] = p
	}
}

func (p HapticPattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "unknown"
}

// LookupPattern resolves a pattern name, reporting whether the name is
// defined.
func LookupPattern(name string) (HapticPattern, bool) {
	p, ok := patternsByName[name]
	return p, ok
}

// PatternFromName resolves a pattern name, falling back to PatternShort
// for names this codec does not know. Callers that need to detect the
// fallback should use LookupPattern.
func PatternFromName(name string) HapticPattern {
	if p, ok := patternsByName[name]; ok {
		return p
	}
	return PatternShort
}

// HapticCommand is a decoded haptic feedback message.
//
// Raw is the pattern byte exactly as received; it equals byte(Pattern)
// unless Pattern is PatternUnknown. Duration is in units of 10 ms and
// Intensity in 0-255, both with 0 meaning the device default.
type HapticCommand struct {
	Pattern   HapticPattern
	Raw       byte
	Duration  byte
	Intensity byte
}

func (HapticCommand) Kind() Kind { return KindHapticFeedback }

// EncodeHapticFeedback serializes a haptic feedback message, framed for
// stream transports or unframed for a characteristic write. A
// PatternUnknown command re-emits its Raw byte, so decoding and
// re-encoding preserves the wire bytes; any other pattern value is
// emitted as-is.
func EncodeHapticFeedback(cmd HapticCommand, framed bool) []byte {
	p := byte(cmd.Pattern)
	if cmd.Pattern == PatternUnknown {
		p = cmd.Raw
	}
	if framed {
		return []byte{byte(KindHapticFeedback), p, cmd.Duration, cmd.Intensity}
	}
	return []byte{p, cmd.Duration, cmd.Intensity}
}

// DecodeHapticFeedback parses a haptic feedback message. An undefined
// pattern byte is not an error: the command decodes with PatternUnknown
// and the byte preserved in Raw. Bytes beyond the fixed length are
// ignored.
func DecodeHapticFeedback(buf []byte, framed bool) (HapticCommand, error) {
	need := 3
	if framed {
		need = 4
	}
	if len(buf) < need {
		return HapticCommand{}, fmt.Errorf("haptic feedback: %w", ErrTooShort)
	}
	if framed {
		if Kind(buf[0]) != KindHapticFeedback {
			return HapticCommand{}, fmt.Errorf("haptic feedback: %w: 0x%02x", ErrWrongTag, buf[0])
		}
		buf = buf[1:]
	}
	cmd := HapticCommand{
		Pattern:   HapticPattern(buf[0]),
		Raw:       buf[0],
		Duration:  buf[1],
		Intensity: buf[2],
	}
	if _, ok := patternNames[cmd.Pattern]; !ok {
		cmd.Pattern = PatternUnknown
	}
	return cmd, nil
}
