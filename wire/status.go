package wire

import "fmt"

// NoBattery is the wire sentinel a device reports in the battery slot
// when it has no battery telemetry.
const NoBattery byte = 0xFF

// DeviceStatus is a decoded device status message.
//
// Battery is nil when the device reported no battery level. Values
// above 100 pass through undamped; the protocol leaves validation to
// presentation so that future firmware can widen the range.
type DeviceStatus struct {
	Battery   *uint8
	Connected bool
}

func (DeviceStatus) Kind() Kind { return KindDeviceStatus }

// EncodeDeviceStatus serializes a device status message. Status is
// always framed: it has no BLE characteristic and travels only on
// stream transports. A nil battery encodes as the NoBattery sentinel,
// which also means a genuine reading of 255 cannot be represented.
func EncodeDeviceStatus(battery *uint8, connected bool) []byte {
	b := NoBattery
	if battery != nil {
		b = *battery
	}
	c := byte(0x00)
	if connected {
		c = 0x01
	}
	return []byte{byte(KindDeviceStatus), b, c}
}

// DecodeDeviceStatus parses a device status message. Bytes beyond the
// fixed three are ignored. Connected is true only for an exact 0x01.
func DecodeDeviceStatus(buf []byte) (DeviceStatus, error) {
	if len(buf) < 3 {
		return DeviceStatus{}, fmt.Errorf("device status: %w", ErrTooShort)
	}
	if Kind(buf[0]) != KindDeviceStatus {
		return DeviceStatus{}, fmt.Errorf("device status: %w: 0x%02x", ErrWrongTag, buf[0])
	}
	var status DeviceStatus
	if buf[1] != NoBattery {
		level := buf[1]
		status.Battery = &level
	}
	status.Connected = buf[2] == 0x01
	return status, nil
}
