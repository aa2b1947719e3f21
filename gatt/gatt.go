// Package gatt defines the BLE identifiers OpenBikeControl devices
// expose: the protocol service with its three characteristics, and the
// standard device information and battery services advertised alongside
// it. Registering these with a BLE stack is the transport's job; this
// package only maps identifiers to message kinds.
package gatt

import (
	"github.com/google/uuid"

	"github.com/OpenBikeControl/openbikecontrol-protocol/wire"
)

// OpenBikeControl service and characteristics. Button state is
// READ/NOTIFY from the device; haptic feedback and app info are
// written by the app. Characteristic values use the unframed message
// forms.
var (
	Service        = uuid.MustParse("d273f680-d548-419d-b9d1-fa0472345229")
	ButtonState    = uuid.MustParse("d273f681-d548-419d-b9d1-fa0472345229")
	HapticFeedback = uuid.MustParse("d273f682-d548-419d-b9d1-fa0472345229")
	AppInfo        = uuid.MustParse("d273f683-d548-419d-b9d1-fa0472345229")
)

// Standard services devices expose next to the protocol service.
// Device status has no protocol characteristic: on BLE, battery
// telemetry rides the battery service instead.
var (
	DeviceInformationService = uuid.MustParse("0000180a-0000-1000-8000-00805f9b34fb")
	ManufacturerName         = uuid.MustParse("00002a29-0000-1000-8000-00805f9b34fb")
	ModelNumber              = uuid.MustParse("00002a24-0000-1000-8000-00805f9b34fb")
	SerialNumber             = uuid.MustParse("00002a25-0000-1000-8000-00805f9b34fb")
	HardwareRevision         = uuid.MustParse("00002a27-0000-1000-8000-00805f9b34fb")
	FirmwareRevision         = uuid.MustParse("00002a26-0000-1000-8000-00805f9b34fb")

	BatteryService = uuid.MustParse("0000180f-0000-1000-8000-00805f9b34fb")
	BatteryLevel   = uuid.MustParse("00002a19-0000-1000-8000-00805f9b34fb")
)

var kindByCharacteristic = map[uuid.UUID]wire.Kind{
	ButtonState:    wire.KindButtonState,
	HapticFeedback: wire.KindHapticFeedback,
	AppInfo:        wire.KindAppInfo,
}

// KindFor returns the message kind carried by a protocol
// characteristic. It reports false for characteristics outside the
// OpenBikeControl service.
func KindFor(characteristic uuid.UUID) (wire.Kind, bool) {
	kind, ok := kindByCharacteristic[characteristic]
	return kind, ok
}

// CharacteristicFor returns the characteristic that carries a message
// kind. Device status travels only on stream transports and reports
// false.
func CharacteristicFor(kind wire.Kind) (uuid.UUID, bool) {
	switch kind {
	case wire.KindButtonState:
		return ButtonState, true
	case wire.KindHapticFeedback:
		return HapticFeedback, true
	case wire.KindAppInfo:
		return AppInfo, true
	default:
		return uuid.UUID{}, false
	}
}
