package wire

// ButtonEvent is one button report inside a button state message.
//
// State is polymorphic: 0x00 is released, 0x01 is pressed, and
// 0x02-0xFF carries an analog position, or an enum ordinal for buttons
// the protocol defines as enumerated. Which reading applies depends on
// the button ID; the codec does not interpret it.
type ButtonEvent struct {
	ID    byte
	State byte
}

// ButtonState is a decoded button state message: the events it carried,
// in wire order. A remote reports every button it considers active in
// one message.
type ButtonState []ButtonEvent

func (ButtonState) Kind() Kind { return KindButtonState }

// EncodeButtonState serializes events two bytes apiece, in input order.
// Framed output leads with the button state tag; unframed output is
// just the pairs, ready for a BLE characteristic.
func EncodeButtonState(events []ButtonEvent, framed bool) []byte {
	size := 2 * len(events)
	if framed {
		size++
	}
	out := make([]byte, 0, size)
	if framed {
		out = append(out, byte(KindButtonState))
	}
	for _, ev := range events {
		out = append(out, ev.ID, ev.State)
	}
	return out
}

// DecodeButtonState parses ID/state pairs from buf.
//
// Button state is the one kind that decodes permissively end to end: a
// framed buffer with a missing or foreign tag yields zero events rather
// than an error, and an odd trailing byte is dropped. Unknown button
// IDs are kept as-is; naming them is the caller's concern. The result
// is never nil.
func DecodeButtonState(buf []byte, framed bool) ButtonState {
	if framed {
		if len(buf) == 0 || Kind(buf[0]) != KindButtonState {
			return ButtonState{}
		}
		buf = buf[1:]
	}
	events := make(ButtonState, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		events = append(events, ButtonEvent{ID: buf[i], State: buf[i+1]})
	}
	return events
}
