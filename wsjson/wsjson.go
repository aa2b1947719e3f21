// Package wsjson carries the protocol messages over WebSocket as flat
// JSON objects, one per text frame. The "type" key selects the schema.
package wsjson

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	TypeButtonState    = "button_state"
	TypeDeviceStatus   = "device_status"
	TypeHapticFeedback = "haptic_feedback"
	TypeHapticResponse = "haptic_feedback_response"
	TypeAppInfo        = "app_info"
)

// ErrUnknownType reports a JSON object whose "type" key names no known
// schema.
var ErrUnknownType = errors.New("unknown message type")

// Message is implemented by every JSON message schema. Messages are
// passed by value.
type Message interface {
	MessageType() string
}

type Button struct {
	ID    byte `json:"id"`
	State byte `json:"state"` // 0 released, 1 pressed, 2-255 enum or analog position
}

type ButtonState struct {
	Type      string   `json:"type"`
	Timestamp int64    `json:"timestamp"` // UNIX timestamp in milliseconds
	Buttons   []Button `json:"buttons"`
}

type DeviceStatus struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Battery   *uint8 `json:"battery"` // null when the device does not report battery
	Connected bool   `json:"connected"`
}

type HapticFeedback struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Pattern   string `json:"pattern"`             // pattern name, e.g. "double"
	Duration  byte   `json:"duration,omitempty"`  // 10ms units, 0 = device default
	Intensity byte   `json:"intensity,omitempty"` // 0 = device default
}

type HapticResponse struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Success   bool   `json:"success"`
}

type AppInfo struct {
	Type             string          `json:"type"`
	Timestamp        int64           `json:"timestamp"`
	DeviceType       string          `json:"device_type,omitempty"` // "remote", "controller", or "app"
	AppID            string          `json:"app_id"`
	AppVersion       string          `json:"app_version"`
	SupportedButtons []int           `json:"supported_buttons"` // empty list = all buttons
	ButtonHints      map[byte]string `json:"button_hints,omitempty"`
}

func (m ButtonState) MessageType() string    { return TypeButtonState }
func (m DeviceStatus) MessageType() string   { return TypeDeviceStatus }
func (m HapticFeedback) MessageType() string { return TypeHapticFeedback }
func (m HapticResponse) MessageType() string { return TypeHapticResponse }
func (m AppInfo) MessageType() string        { return TypeAppInfo }

// Marshal renders a message as a JSON text frame. The "type" key is
// filled from the concrete type, so a stale or empty Type field cannot
// desynchronize the frame.
func Marshal(msg Message) ([]byte, error) {
	switch m := msg.(type) {
	case ButtonState:
		m.Type = TypeButtonState
		return json.Marshal(m)
	case DeviceStatus:
		m.Type = TypeDeviceStatus
		return json.Marshal(m)
	case HapticFeedback:
		m.Type = TypeHapticFeedback
		return json.Marshal(m)
	case HapticResponse:
		m.Type = TypeHapticResponse
		return json.Marshal(m)
	case AppInfo:
		m.Type = TypeAppInfo
		return json.Marshal(m)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownType, msg)
	}
}

// Unmarshal parses a JSON text frame into the schema its "type" key
// names.
func Unmarshal(data []byte) (Message, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Type {
	case TypeButtonState:
		var m ButtonState
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case TypeDeviceStatus:
		var m DeviceStatus
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case TypeHapticFeedback:
		var m HapticFeedback
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case TypeHapticResponse:
		var m HapticResponse
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case TypeAppInfo:
		var m AppInfo
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, probe.Type)
	}
}
