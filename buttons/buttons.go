// Package buttons names the protocol's button ID space: the well-known
// IDs, the documented ID ranges and the display conventions for button
// states. The tables mirror the protocol documentation, are built once
// at startup and never mutated; they are display helpers and play no
// part in codec logic.
package buttons

import "fmt"

// Well-known button IDs.
const (
	// Gear shifting (0x01-0x0F)
	ShiftUp   byte = 0x01
	ShiftDown byte = 0x02
	GearSet   byte = 0x03

	// Navigation (0x10-0x1F)
	Up     byte = 0x10
	Down   byte = 0x11
	Left   byte = 0x12
	Right  byte = 0x13
	Select byte = 0x14
	Back   byte = 0x15
	Menu   byte = 0x16

	// Social/emotes (0x20-0x2F), analog enum semantics
	Emote byte = 0x20

	// View controls (0x40-0x4F), 0x40 analog enum semantics
	CameraView byte = 0x40
	HUDToggle  byte = 0x44
	MapToggle  byte = 0x45

	// Power-ups / generic digital (0x50-0x5F)
	PowerUp1 byte = 0x50
	PowerUp2 byte = 0x51
	PowerUp3 byte = 0x52
)

var names = map[byte]string{
	ShiftUp:    "Shift Up",
	ShiftDown:  "Shift Down",
	GearSet:    "Gear Set",
	Up:         "Up",
	Down:       "Down",
	Left:       "Left/Steer Left",
	Right:      "Right/Steer Right",
	Select:     "Select/Confirm",
	Back:       "Back/Cancel",
	Menu:       "Menu",
	Emote:      "Emote (analog enum)",
	CameraView: "Switch Camera View (analog enum)",
	HUDToggle:  "HUD Toggle",
	MapToggle:  "Map Toggle",
	PowerUp1:   "Power-up 1",
	PowerUp2:   "Power-up 2",
	PowerUp3:   "Power-up 3",
}

// Range is one of the protocol's documented button ID ranges.
type Range struct {
	Start byte
	End   byte
	Name  string
}

var ranges = []Range{
	{0x01, 0x0F, "Gear Shifting"},
	{0x10, 0x1F, "Navigation"},
	{0x20, 0x2F, "Social/Emotes"},
	{0x30, 0x3F, "Training"},
	{0x40, 0x4F, "View Controls"},
	{0x50, 0x5F, "Generic Digital"},
	{0x60, 0x6F, "Generic Analog"},
}

// Name returns the documented display name for a button ID, or a hex
// placeholder like "Button 0x7A" for IDs the protocol does not name.
func Name(id byte) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("Button 0x%02X", id)
}

// RangeOf returns the documented ID range containing id.
func RangeOf(id byte) (Range, bool) {
	for _, r := range ranges {
		if id >= r.Start && id <= r.End {
			return r, true
		}
	}
	return Range{}, false
}

// RangeName returns the name of the range containing id, or "Reserved"
// for IDs outside every documented range.
func RangeName(id byte) string {
	if r, ok := RangeOf(id); ok {
		return r.Name
	}
	return "Reserved"
}

// IsGeneric reports whether id falls in an app-defined range, where
// apps assign meaning through button hints.
func IsGeneric(id byte) bool {
	return id >= 0x50 && id <= 0x6F
}

// IsAnalog reports whether id falls in the generic analog range.
func IsAnalog(id byte) bool {
	return id >= 0x60 && id <= 0x6F
}
