package wire

import (
	"fmt"
	"log/slog"
)

// Mux decodes raw buffers and routes each message kind to its
// registered callback, the way a trainer app or remote firmware
// consumes a connection. Kinds without a callback are logged and
// dropped rather than treated as errors, so a peer registers only what
// it cares about.
//
// Register callbacks before the first dispatch; Mux does not guard
// registration against concurrent dispatching.
type Mux struct {
	profile AppInfoProfile

	onButtonState    func(ButtonState)
	onDeviceStatus   func(DeviceStatus)
	onHapticFeedback func(HapticCommand)
	onAppInfo        func(AppInfo)
}

// NewMux returns a Mux using the ProfileV1 app info layout.
func NewMux() *Mux {
	return &Mux{profile: ProfileV1}
}

// SetProfile selects the app info layout for decoded app info messages.
func (m *Mux) SetProfile(p AppInfoProfile) {
	m.profile = p
}

// ---------- callback registration ---------- //

func (m *Mux) OnButtonState(fn func(ButtonState)) {
	m.onButtonState = fn
}

func (m *Mux) OnDeviceStatus(fn func(DeviceStatus)) {
	m.onDeviceStatus = fn
}

func (m *Mux) OnHapticFeedback(fn func(HapticCommand)) {
	m.onHapticFeedback = fn
}

func (m *Mux) OnAppInfo(fn func(AppInfo)) {
	m.onAppInfo = fn
}

// ---------- dispatch ---------- //

// Dispatch decodes one framed buffer, routing by its leading tag byte.
func (m *Mux) Dispatch(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("dispatch: %w", ErrTooShort)
	}
	return m.dispatch(buf, Kind(buf[0]), true)
}

// DispatchUnframed decodes one unframed buffer, typically a BLE
// characteristic value, with the kind supplied by the caller from
// transport context. Device status has no unframed form; on BLE that
// telemetry rides the standard battery service instead.
func (m *Mux) DispatchUnframed(buf []byte, kind Kind) error {
	if kind == KindDeviceStatus {
		return fmt.Errorf("dispatch: %w: device status is framed only", ErrUnknownKind)
	}
	return m.dispatch(buf, kind, false)
}

func (m *Mux) dispatch(buf []byte, kind Kind, framed bool) error {
	switch kind {
	case KindButtonState:
		events := DecodeButtonState(buf, framed)
		if m.onButtonState == nil {
			m.drop(kind)
			return nil
		}
		m.onButtonState(events)

	case KindDeviceStatus:
		status, err := DecodeDeviceStatus(buf)
		if err != nil {
			return err
		}
		if m.onDeviceStatus == nil {
			m.drop(kind)
			return nil
		}
		m.onDeviceStatus(status)

	case KindHapticFeedback:
		cmd, err := DecodeHapticFeedback(buf, framed)
		if err != nil {
			return err
		}
		if m.onHapticFeedback == nil {
			m.drop(kind)
			return nil
		}
		m.onHapticFeedback(cmd)

	case KindAppInfo:
		info, err := DecodeAppInfo(buf, m.profile, framed)
		if err != nil {
			return err
		}
		if m.onAppInfo == nil {
			m.drop(kind)
			return nil
		}
		m.onAppInfo(info)

	default:
		slog.Warn("Unhandled message kind", "kind", kind.String())
		return fmt.Errorf("dispatch: %w: 0x%02x", ErrUnknownKind, byte(kind))
	}
	return nil
}

func (m *Mux) drop(kind Kind) {
	slog.Debug("No callback registered, dropping message", "kind", kind.String())
}
