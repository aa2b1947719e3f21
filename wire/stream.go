package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Body sizes after the tag byte for the fixed-length message kinds.
const (
	statusBodyLen = 2
	hapticBodyLen = 3
)

// Encoder writes framed messages to a stream transport.
type Encoder struct {
	w       io.Writer
	profile AppInfoProfile
}

// NewEncoder returns an Encoder that writes framed messages to w using
// the ProfileV1 app info layout.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, profile: ProfileV1}
}

// SetProfile selects the app info layout for subsequent Encode calls.
func (e *Encoder) SetProfile(p AppInfoProfile) {
	e.profile = p
}

// Encode writes one framed message. Each message goes out in a single
// Write so it lands in one transport segment; see Decoder for why that
// matters.
func (e *Encoder) Encode(msg Message) error {
	var buf []byte
	switch m := msg.(type) {
	case ButtonState:
		buf = EncodeButtonState(m, true)
	case DeviceStatus:
		buf = EncodeDeviceStatus(m.Battery, m.Connected)
	case HapticCommand:
		buf = EncodeHapticFeedback(m, true)
	case AppInfo:
		buf = EncodeAppInfo(m, e.profile, true)
	default:
		return fmt.Errorf("encode: %w: %T", ErrUnknownKind, msg)
	}
	if _, err := e.w.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", msg.Kind(), err)
	}
	return nil
}

// Decoder reads framed messages from a stream transport.
//
// Device status and haptic feedback have fixed lengths and are read
// exactly, so they decode correctly even when the transport coalesces
// or splits segments. Button state and app info carry no length field
// in protocol v1; for those the Decoder treats the bytes that arrived
// in the same segment as the tag as the message body, which matches how
// peers write them (one message per write). A tag that is no defined
// kind discards the rest of its segment so the stream resynchronizes on
// the next one.
type Decoder struct {
	r       *bufio.Reader
	profile AppInfoProfile
}

// NewDecoder returns a Decoder that reads framed messages from r using
// the ProfileV1 app info layout.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r), profile: ProfileV1}
}

// NewDecoderSize is like NewDecoder with an explicit read buffer size.
// The buffer bounds how much a single unlengthed message can carry, so
// deployments can cap per-message memory.
func NewDecoderSize(r io.Reader, size int) *Decoder {
	return &Decoder{r: bufio.NewReaderSize(r, size), profile: ProfileV1}
}

// SetProfile selects the app info layout for subsequent Decode calls.
func (d *Decoder) SetProfile(p AppInfoProfile) {
	d.profile = p
}

// Decode reads and parses the next message. It returns io.EOF once the
// stream is cleanly exhausted. Decode errors other than read errors
// leave the Decoder usable; callers typically log them and keep
// reading.
func (d *Decoder) Decode() (Message, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch kind := Kind(tag); kind {
	case KindDeviceStatus:
		body, err := d.fixed(tag, statusBodyLen)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		status, err := DecodeDeviceStatus(body)
		if err != nil {
			return nil, err
		}
		return status, nil
	case KindHapticFeedback:
		body, err := d.fixed(tag, hapticBodyLen)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		cmd, err := DecodeHapticFeedback(body, true)
		if err != nil {
			return nil, err
		}
		return cmd, nil
	case KindButtonState:
		body, err := d.segment(tag)
		if errors.Is(err, io.EOF) {
			// A lone tag at end of stream is a valid empty report.
			return ButtonState{}, nil
		}
		if err != nil {
			return nil, err
		}
		return DecodeButtonState(body, true), nil
	case KindAppInfo:
		body, err := d.segment(tag)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("app info: %w", ErrTooShort)
		}
		if err != nil {
			return nil, err
		}
		info, err := DecodeAppInfo(body, d.profile, true)
		if err != nil {
			return nil, err
		}
		return info, nil
	default:
		n := d.r.Buffered()
		d.r.Discard(n)
		slog.Debug("Discarding unrecognized message", "tag", fmt.Sprintf("0x%02x", tag), "dropped", n)
		return nil, fmt.Errorf("decode: %w: 0x%02x", ErrUnknownKind, tag)
	}
}

// fixed reads exactly size body bytes and returns them prefixed with
// the already-consumed tag. Stream exhaustion inside the body is folded
// into the codec's short-buffer error.
func (d *Decoder) fixed(tag byte, size int) ([]byte, error) {
	body := make([]byte, 1+size)
	body[0] = tag
	if _, err := io.ReadFull(d.r, body[1:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTooShort
		}
		return nil, err
	}
	return body, nil
}

// segment returns the remainder of the transport segment the current
// message arrived in: whatever is already buffered, after blocking for
// at least one byte when the tag came alone. The returned slice starts
// with the tag byte. io.EOF means the tag was the last byte of the
// stream.
func (d *Decoder) segment(tag byte) ([]byte, error) {
	if d.r.Buffered() == 0 {
		if _, err := d.r.Peek(1); err != nil {
			return nil, err
		}
	}
	body := make([]byte, 1+d.r.Buffered())
	body[0] = tag
	if _, err := io.ReadFull(d.r, body[1:]); err != nil {
		return nil, err
	}
	return body, nil
}
