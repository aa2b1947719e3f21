package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDeviceStatus(t *testing.T) {
	level := uint8(85)

	got := EncodeDeviceStatus(&level, true)

	want := []byte{0x02, 0x55, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestEncodeDeviceStatusNoBattery(t *testing.T) {
	got := EncodeDeviceStatus(nil, false)

	want := []byte{0x02, 0xFF, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDecodeDeviceStatus(t *testing.T) {
	status, err := DecodeDeviceStatus([]byte{0x02, 0x55, 0x01})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if status.Battery == nil || *status.Battery != 85 {
		t.Errorf("Expected battery 85, got %v", status.Battery)
	}
	if !status.Connected {
		t.Error("Expected connected true")
	}
}

func TestDecodeDeviceStatusBatterySentinel(t *testing.T) {
	status, err := DecodeDeviceStatus([]byte{0x02, 0xFF, 0x00})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if status.Battery != nil {
		t.Errorf("Expected nil battery, got %d", *status.Battery)
	}
	if status.Connected {
		t.Error("Expected connected false")
	}
}

func TestDecodeDeviceStatusLenientBattery(t *testing.T) {
	// Values above 100 are not validated on the wire.
	status, err := DecodeDeviceStatus([]byte{0x02, 0xFE, 0x01})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if status.Battery == nil || *status.Battery != 254 {
		t.Errorf("Expected battery 254, got %v", status.Battery)
	}
}

func TestDecodeDeviceStatusConnectedByte(t *testing.T) {
	cases := []struct {
		b    byte
		want bool
	}{
		{0x00, false},
		{0x01, true},
		{0x02, false},
		{0xFF, false},
	}

	for _, c := range cases {
		status, err := DecodeDeviceStatus([]byte{0x02, 0x50, c.b})
		if err != nil {
			t.Fatalf("byte 0x%02x: unexpected error: %v", c.b, err)
		}
		if status.Connected != c.want {
			t.Errorf("byte 0x%02x: expected connected %t, got %t", c.b, c.want, status.Connected)
		}
	}
}

func TestDecodeDeviceStatusTooShort(t *testing.T) {
	_, err := DecodeDeviceStatus([]byte{0x02, 0xFF})
	if !errors.Is(err, ErrTooShort) {
		t.Errorf("Expected ErrTooShort, got %v", err)
	}
}

func TestDecodeDeviceStatusWrongTag(t *testing.T) {
	_, err := DecodeDeviceStatus([]byte{0x01, 0xFF, 0x00})
	if !errors.Is(err, ErrWrongTag) {
		t.Errorf("Expected ErrWrongTag, got %v", err)
	}
}

func TestDecodeDeviceStatusIgnoresTrailingBytes(t *testing.T) {
	status, err := DecodeDeviceStatus([]byte{0x02, 0x32, 0x01, 0xAA, 0xBB})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if status.Battery == nil || *status.Battery != 50 {
		t.Errorf("Expected battery 50, got %v", status.Battery)
	}
	if !status.Connected {
		t.Error("Expected connected true")
	}
}

func TestDeviceStatusRoundTrip(t *testing.T) {
	level := uint8(42)

	status, err := DecodeDeviceStatus(EncodeDeviceStatus(&level, true))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if status.Battery == nil || *status.Battery != 42 {
		t.Errorf("Expected battery 42, got %v", status.Battery)
	}
	if !status.Connected {
		t.Error("Expected connected true")
	}
}
