package wire

import "errors"

// Decode errors. Decoders wrap these with message and field context, so
// callers should match them with errors.Is.
var (
	// ErrTooShort reports a buffer shorter than the fixed minimum for
	// its message kind.
	ErrTooShort = errors.New("message too short")

	// ErrWrongTag reports a framed buffer whose leading tag byte does
	// not match the expected message kind.
	ErrWrongTag = errors.New("wrong message tag")

	// ErrMissingField reports a truncated buffer where a mandatory
	// length prefix or count byte was expected.
	ErrMissingField = errors.New("missing field")

	// ErrFieldExceedsBuffer reports a length prefix that points past
	// the end of the buffer.
	ErrFieldExceedsBuffer = errors.New("field length exceeds buffer")

	// ErrUnsupportedVersion reports an app info version byte this
	// codec does not understand.
	ErrUnsupportedVersion = errors.New("unsupported app info version")

	// ErrInvalidUTF8 reports a string field whose bytes are not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 in string field")

	// ErrUnknownKind reports a tag byte that is not a defined message
	// kind.
	ErrUnknownKind = errors.New("unknown message kind")
)
