package wire

import (
	"errors"
	"reflect"
	"testing"
)

func TestMuxDispatch(t *testing.T) {
	mux := NewMux()

	var gotButtons ButtonState
	var gotStatus DeviceStatus
	var gotHaptic HapticCommand
	var gotInfo AppInfo
	mux.OnButtonState(func(events ButtonState) { gotButtons = events })
	mux.OnDeviceStatus(func(status DeviceStatus) { gotStatus = status })
	mux.OnHapticFeedback(func(cmd HapticCommand) { gotHaptic = cmd })
	mux.OnAppInfo(func(info AppInfo) { gotInfo = info })

	if err := mux.Dispatch(EncodeButtonState([]ButtonEvent{{ID: 0x01, State: 0x01}}, true)); err != nil {
		t.Fatalf("Button state dispatch failed: %v", err)
	}
	level := uint8(60)
	if err := mux.Dispatch(EncodeDeviceStatus(&level, true)); err != nil {
		t.Fatalf("Device status dispatch failed: %v", err)
	}
	if err := mux.Dispatch(EncodeHapticFeedback(HapticCommand{Pattern: PatternTriple}, true)); err != nil {
		t.Fatalf("Haptic dispatch failed: %v", err)
	}
	info := AppInfo{DeviceType: "app", AppID: "x", AppVersion: "1"}
	if err := mux.Dispatch(EncodeAppInfo(info, ProfileV1, true)); err != nil {
		t.Fatalf("App info dispatch failed: %v", err)
	}

	want := ButtonState{{ID: 0x01, State: 0x01}}
	if !reflect.DeepEqual(gotButtons, want) {
		t.Errorf("Expected %v, got %v", want, gotButtons)
	}
	if gotStatus.Battery == nil || *gotStatus.Battery != 60 {
		t.Errorf("Expected battery 60, got %v", gotStatus.Battery)
	}
	if gotHaptic.Pattern != PatternTriple {
		t.Errorf("Expected pattern triple, got %s", gotHaptic.Pattern)
	}
	if gotInfo.AppID != "x" || gotInfo.DeviceType != "app" {
		t.Errorf("Unexpected app info: %+v", gotInfo)
	}
}

func TestMuxDispatchUnframed(t *testing.T) {
	mux := NewMux()

	var gotButtons ButtonState
	var gotHaptic HapticCommand
	var gotInfo AppInfo
	mux.OnButtonState(func(events ButtonState) { gotButtons = events })
	mux.OnHapticFeedback(func(cmd HapticCommand) { gotHaptic = cmd })
	mux.OnAppInfo(func(info AppInfo) { gotInfo = info })

	if err := mux.DispatchUnframed([]byte{0x14, 0x01}, KindButtonState); err != nil {
		t.Fatalf("Button state dispatch failed: %v", err)
	}
	if err := mux.DispatchUnframed([]byte{0x02, 10, 200}, KindHapticFeedback); err != nil {
		t.Fatalf("Haptic dispatch failed: %v", err)
	}
	unframedInfo := EncodeAppInfo(AppInfo{DeviceType: "remote", AppID: "r", AppVersion: "2"}, ProfileV1, false)
	if err := mux.DispatchUnframed(unframedInfo, KindAppInfo); err != nil {
		t.Fatalf("App info dispatch failed: %v", err)
	}

	want := ButtonState{{ID: 0x14, State: 0x01}}
	if !reflect.DeepEqual(gotButtons, want) {
		t.Errorf("Expected %v, got %v", want, gotButtons)
	}
	if gotHaptic.Pattern != PatternDouble || gotHaptic.Duration != 10 {
		t.Errorf("Unexpected haptic: %+v", gotHaptic)
	}
	if gotInfo.DeviceType != "remote" {
		t.Errorf("Unexpected app info: %+v", gotInfo)
	}
}

func TestMuxDispatchUnframedRejectsDeviceStatus(t *testing.T) {
	mux := NewMux()
	mux.OnDeviceStatus(func(DeviceStatus) {})

	err := mux.DispatchUnframed([]byte{0x55, 0x01}, KindDeviceStatus)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestMuxDispatchErrors(t *testing.T) {
	mux := NewMux()

	if err := mux.Dispatch(nil); !errors.Is(err, ErrTooShort) {
		t.Errorf("Expected ErrTooShort for empty buffer, got %v", err)
	}
	if err := mux.Dispatch([]byte{0x7F, 0x00}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
	if err := mux.Dispatch([]byte{0x02, 0xFF}); !errors.Is(err, ErrTooShort) {
		t.Errorf("Expected ErrTooShort for truncated status, got %v", err)
	}
}

func TestMuxNoCallback(t *testing.T) {
	mux := NewMux()

	// Decodable messages without a registered callback are dropped
	// silently, not errors.
	if err := mux.Dispatch([]byte{0x02, 0x55, 0x01}); err != nil {
		t.Errorf("Expected dropped message without error, got %v", err)
	}
}

func TestMuxProfile(t *testing.T) {
	mux := NewMux()
	mux.SetProfile(ProfileLegacy)

	var got AppInfo
	mux.OnAppInfo(func(info AppInfo) { got = info })

	buf := EncodeAppInfo(AppInfo{AppID: "old", AppVersion: "1"}, ProfileLegacy, true)
	if err := mux.Dispatch(buf); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if got.AppID != "old" {
		t.Errorf("Expected app ID 'old', got %q", got.AppID)
	}
}
