package buttons

import "fmt"

// Enum value names for the two buttons the protocol defines as analog
// enums. Apps override these with button hints; the tables cover the
// documented defaults for logging when no hints are available.
var emoteNames = map[byte]string{
	0: "None",
	1: "Wave",
	2: "Thumbs Up",
	3: "Hammer Time",
	4: "Bell",
}

var cameraNames = map[byte]string{
	0: "Camera 1",
	1: "Camera 2",
	2: "Camera 3",
}

// EmoteName returns the display name for an emote enum value.
func EmoteName(value byte) string {
	if name, ok := emoteNames[value]; ok {
		return name
	}
	return fmt.Sprintf("Emote %d", value)
}

// CameraName returns the display name for a camera view enum value.
func CameraName(value byte) string {
	if name, ok := cameraNames[value]; ok {
		return name
	}
	return fmt.Sprintf("Camera View %d", value)
}

// AnalogPercent converts an analog state byte to a 0-100 percentage.
// States 0 and 1 are the digital released/pressed values, so the
// analog scale runs from 2 to 255.
func AnalogPercent(state byte) int {
	if state < 2 {
		return 0
	}
	return int(state-2) * 100 / 253
}

// StateString renders a state byte the way the reference tooling logs
// it: RELEASED/PRESSED for digital values, an enum name for the analog
// enum buttons and a percentage for everything else.
func StateString(id, state byte) string {
	switch {
	case id == Emote:
		return "ENUM: " + EmoteName(state)
	case id == CameraView:
		return "ENUM: " + CameraName(state)
	case state == 0:
		return "RELEASED"
	case state == 1:
		return "PRESSED"
	default:
		return fmt.Sprintf("ANALOG %d%%", AnalogPercent(state))
	}
}

// FormatState renders a button event as "name: state" for logs.
func FormatState(id, state byte) string {
	return fmt.Sprintf("%s: %s", Name(id), StateString(id, state))
}
