// Package wire implements the OpenBikeControl v1 binary message codec.
//
// OpenBikeControl carries four message kinds between a handlebar remote
// and a training app. Each kind has a framed form, used on stream
// transports such as TCP where a leading tag byte names the kind, and an
// unframed form used on BLE characteristics where the characteristic
// itself names the kind. Framing is always chosen explicitly by the
// caller; the codec never guesses it from buffer contents.
//
// Decoding is strict about mandatory structure (length prefixes, the
// version byte, UTF-8 validity) and permissive about values: unknown
// button IDs, battery levels above 100 and unrecognized haptic pattern
// bytes all pass through, so newer peers keep working against older
// ones. Encoding never fails.
//
// All encode and decode functions are pure and safe for concurrent use.
package wire

import "fmt"

// Kind tags a message on the wire. In framed mode the tag is the first
// byte of the buffer; in unframed mode it is implied by the BLE
// characteristic the buffer was read from or written to.
type Kind byte

const (
	KindButtonState    Kind = 0x01
	KindDeviceStatus   Kind = 0x02
	KindHapticFeedback Kind = 0x03
	KindAppInfo        Kind = 0x04
)

func (k Kind) String() string {
	switch k {
	case KindButtonState:
		return "button_state"
	case KindDeviceStatus:
		return "device_status"
	case KindHapticFeedback:
		return "haptic_feedback"
	case KindAppInfo:
		return "app_info"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(k))
	}
}

// Message is implemented by every decoded protocol message.
type Message interface {
	Kind() Kind
}
