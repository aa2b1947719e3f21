package wsjson

import (
	"time"

	"github.com/OpenBikeControl/openbikecontrol-protocol/wire"
)

func stamp(at time.Time) int64 {
	if at.IsZero() {
		return 0
	}
	return at.UnixMilli()
}

// NewButtonState mirrors a decoded button report as a JSON message.
func NewButtonState(events wire.ButtonState, at time.Time) ButtonState {
	buttons := make([]Button, len(events))
	for i, ev := range events {
		buttons[i] = Button{ID: ev.ID, State: ev.State}
	}
	return ButtonState{Type: TypeButtonState, Timestamp: stamp(at), Buttons: buttons}
}

// Events converts the JSON message back to the binary report form.
func (m ButtonState) Events() wire.ButtonState {
	events := make(wire.ButtonState, len(m.Buttons))
	for i, b := range m.Buttons {
		events[i] = wire.ButtonEvent{ID: b.ID, State: b.State}
	}
	return events
}

// NewDeviceStatus mirrors a decoded device status as a JSON message.
func NewDeviceStatus(status wire.DeviceStatus, at time.Time) DeviceStatus {
	return DeviceStatus{
		Type:      TypeDeviceStatus,
		Timestamp: stamp(at),
		Battery:   status.Battery,
		Connected: status.Connected,
	}
}

// Status converts the JSON message back to the binary form.
func (m DeviceStatus) Status() wire.DeviceStatus {
	return wire.DeviceStatus{Battery: m.Battery, Connected: m.Connected}
}

// NewHapticFeedback mirrors a haptic command as a JSON message. The
// pattern travels by name, so an unrecognized byte becomes "unknown".
func NewHapticFeedback(cmd wire.HapticCommand, at time.Time) HapticFeedback {
	return HapticFeedback{
		Type:      TypeHapticFeedback,
		Timestamp: stamp(at),
		Pattern:   cmd.Pattern.String(),
		Duration:  cmd.Duration,
		Intensity: cmd.Intensity,
	}
}

// Command converts the JSON message back to the binary form. Pattern
// names outside the known set map to wire.PatternUnknown rather than a
// default, so nothing is silently played in their place.
func (m HapticFeedback) Command() wire.HapticCommand {
	pattern, ok := wire.LookupPattern(m.Pattern)
	if !ok {
		pattern = wire.PatternUnknown
	}
	return wire.HapticCommand{
		Pattern:   pattern,
		Raw:       byte(pattern),
		Duration:  m.Duration,
		Intensity: m.Intensity,
	}
}

// NewHapticResponse is the acknowledgement a device sends after a
// haptic command.
func NewHapticResponse(success bool, at time.Time) HapticResponse {
	return HapticResponse{Type: TypeHapticResponse, Timestamp: stamp(at), Success: success}
}

// NewAppInfo mirrors decoded app information as a JSON message.
func NewAppInfo(info wire.AppInfo, at time.Time) AppInfo {
	buttons := make([]int, len(info.SupportedButtons))
	for i, id := range info.SupportedButtons {
		buttons[i] = int(id)
	}
	hints := make(map[byte]string, len(info.ButtonHints))
	for id, label := range info.ButtonHints {
		hints[id] = label
	}
	return AppInfo{
		Type:             TypeAppInfo,
		Timestamp:        stamp(at),
		DeviceType:       info.DeviceType,
		AppID:            info.AppID,
		AppVersion:       info.AppVersion,
		SupportedButtons: buttons,
		ButtonHints:      hints,
	}
}

// Info converts the JSON message back to the binary form. Button IDs
// outside the byte range are dropped.
func (m AppInfo) Info() wire.AppInfo {
	buttons := make([]byte, 0, len(m.SupportedButtons))
	for _, id := range m.SupportedButtons {
		if id < 0 || id > 0xFF {
			continue
		}
		buttons = append(buttons, byte(id))
	}
	hints := make(map[byte]string, len(m.ButtonHints))
	for id, label := range m.ButtonHints {
		hints[id] = label
	}
	return wire.AppInfo{
		DeviceType:       m.DeviceType,
		AppID:            m.AppID,
		AppVersion:       m.AppVersion,
		SupportedButtons: buttons,
		ButtonHints:      hints,
	}
}
