package wire

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// AppInfoVersion is the app info layout generation this codec emits and
// accepts.
const AppInfoVersion = 0x01

// MaxFieldBytes caps every length-prefixed string field. Encoders clip
// longer fields to this many bytes on a rune boundary before writing
// the length prefix, so emitted fields are always valid UTF-8.
const MaxFieldBytes = 32

// AppInfoProfile selects which app info field layout a peer speaks.
// The layout changed within version 1 without a version bump, so the
// generation has to be configured per deployment; it is never sniffed
// from the buffer.
type AppInfoProfile int

const (
	// ProfileV1 is the current layout: device type, app identity,
	// supported buttons and optional button hints.
	ProfileV1 AppInfoProfile = iota

	// ProfileLegacy is the original layout still spoken by older
	// trainer apps: app identity and supported buttons only.
	ProfileLegacy
)

func (p AppInfoProfile) String() string {
	switch p {
	case ProfileV1:
		return "v1"
	case ProfileLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("profile(%d)", int(p))
	}
}

// AppInfo describes the app side of a connection: what kind of peer it
// is, which buttons it listens to and how it labels the generic ones.
//
// An empty SupportedButtons means the app takes input from every
// button. ButtonHints maps button IDs to display labels for remotes
// with screens. Decoded values always carry a non-nil buttons slice and
// hints map, so callers can range over them without nil checks.
type AppInfo struct {
	DeviceType       string
	AppID            string
	AppVersion       string
	SupportedButtons []byte
	ButtonHints      map[byte]string
}

func (AppInfo) Kind() Kind { return KindAppInfo }

// truncateField clips s to MaxFieldBytes without splitting a rune.
func truncateField(s string) string {
	if len(s) <= MaxFieldBytes {
		return s
	}
	cut := MaxFieldBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func appendField(out []byte, s string) []byte {
	s = truncateField(s)
	out = append(out, byte(len(s)))
	return append(out, s...)
}

// EncodeAppInfo serializes an app info message in the given profile.
// String fields longer than MaxFieldBytes are silently truncated on a
// rune boundary. Counts are a single byte on the wire, so at most 255
// supported buttons and 255 hints are emitted. In ProfileLegacy the
// DeviceType and ButtonHints fields do not exist on the wire and are
// not emitted. Hints are written in ascending button ID order so equal
// inputs serialize to equal bytes.
func EncodeAppInfo(info AppInfo, profile AppInfoProfile, framed bool) []byte {
	out := make([]byte, 0, 8+3*MaxFieldBytes+len(info.SupportedButtons))
	if framed {
		out = append(out, byte(KindAppInfo))
	}
	out = append(out, AppInfoVersion)
	if profile == ProfileV1 {
		out = appendField(out, info.DeviceType)
	}
	out = appendField(out, info.AppID)
	out = appendField(out, info.AppVersion)

	buttons := info.SupportedButtons
	if len(buttons) > 255 {
		buttons = buttons[:255]
	}
	out = append(out, byte(len(buttons)))
	out = append(out, buttons...)

	if profile == ProfileV1 {
		ids := make([]byte, 0, len(info.ButtonHints))
		for id := range info.ButtonHints {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		if len(ids) > 255 {
			ids = ids[:255]
		}
		out = append(out, byte(len(ids)))
		for _, id := range ids {
			out = append(out, id)
			out = appendField(out, info.ButtonHints[id])
		}
	}
	return out
}

// DecodeAppInfo parses an app info message in the given profile.
//
// Mandatory structure is all or nothing: a missing length prefix, an
// overrunning field, an unsupported version or invalid UTF-8 fails the
// whole decode with a zero AppInfo. The trailing button hints section
// of ProfileV1 is the one exception, parsed greedily: hints complete
// before the buffer runs out are kept and the truncation is not an
// error. An absent hints section decodes to an empty map.
func DecodeAppInfo(buf []byte, profile AppInfoProfile, framed bool) (AppInfo, error) {
	if framed {
		if len(buf) == 0 {
			return AppInfo{}, fmt.Errorf("app info: %w", ErrTooShort)
		}
		if Kind(buf[0]) != KindAppInfo {
			return AppInfo{}, fmt.Errorf("app info: %w: 0x%02x", ErrWrongTag, buf[0])
		}
		buf = buf[1:]
	}
	if len(buf) < 3 {
		return AppInfo{}, fmt.Errorf("app info: %w", ErrTooShort)
	}
	if buf[0] != AppInfoVersion {
		return AppInfo{}, fmt.Errorf("app info: %w: 0x%02x", ErrUnsupportedVersion, buf[0])
	}
	i := 1

	readField := func(name string) (string, error) {
		if i >= len(buf) {
			return "", fmt.Errorf("app info: %s: %w", name, ErrMissingField)
		}
		n := int(buf[i])
		i++
		if i+n > len(buf) {
			return "", fmt.Errorf("app info: %s: %w", name, ErrFieldExceedsBuffer)
		}
		raw := buf[i : i+n]
		i += n
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("app info: %s: %w", name, ErrInvalidUTF8)
		}
		return string(raw), nil
	}

	var info AppInfo
	var err error
	if profile == ProfileV1 {
		if info.DeviceType, err = readField("device type"); err != nil {
			return AppInfo{}, err
		}
	}
	if info.AppID, err = readField("app id"); err != nil {
		return AppInfo{}, err
	}
	if info.AppVersion, err = readField("app version"); err != nil {
		return AppInfo{}, err
	}

	if i >= len(buf) {
		return AppInfo{}, fmt.Errorf("app info: button count: %w", ErrMissingField)
	}
	count := int(buf[i])
	i++
	if i+count > len(buf) {
		return AppInfo{}, fmt.Errorf("app info: button list: %w", ErrFieldExceedsBuffer)
	}
	info.SupportedButtons = make([]byte, count)
	copy(info.SupportedButtons, buf[i:i+count])
	i += count

	info.ButtonHints = make(map[byte]string)
	if profile != ProfileV1 || i >= len(buf) {
		return info, nil
	}
	hintCount := int(buf[i])
	i++
	for h := 0; h < hintCount; h++ {
		if i >= len(buf) {
			break
		}
		id := buf[i]
		i++
		if i >= len(buf) {
			break
		}
		n := int(buf[i])
		i++
		if i+n > len(buf) {
			break
		}
		raw := buf[i : i+n]
		i += n
		if !utf8.Valid(raw) {
			return AppInfo{}, fmt.Errorf("app info: button hint label: %w", ErrInvalidUTF8)
		}
		info.ButtonHints[id] = string(raw)
	}
	return info, nil
}
