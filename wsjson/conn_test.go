package wsjson

import (
	"net/http"
	"testing"
	"time"

	"github.com/OpenBikeControl/openbikecontrol-protocol/wire"
	"github.com/gorilla/websocket"
)

// Runs a miniature device over a real socket: it greets with a status
// report and acknowledges haptic commands, like the reference mock
// device does.
func TestConnAgainstMockDevice(t *testing.T) {
	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		device := NewConn(ws)
		defer device.Close()

		// Two junk frames ahead of the greeting. The client's Read
		// is expected to skip both.
		ws.WriteMessage(websocket.TextMessage, []byte(`not json`))
		ws.WriteMessage(websocket.TextMessage, []byte(`{"type":"telemetry","value":1}`))

		battery := uint8(85)
		if err := device.Write(DeviceStatus{Timestamp: 1, Battery: &battery, Connected: true}); err != nil {
			return
		}

		for {
			msg, err := device.Read()
			if err != nil {
				return
			}
			if _, ok := msg.(HapticFeedback); ok {
				if err := device.Write(NewHapticResponse(true, time.Now())); err != nil {
					return
				}
			}
		}
	})

	// Use a specific port for testing
	server := &http.Server{Addr: "localhost:18893", Handler: mux}
	go func() {
		server.ListenAndServe()
	}()
	defer server.Close()

	// Wait for server to start
	time.Sleep(200 * time.Millisecond)

	conn, err := Dial("ws://localhost:18893/")
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	msg, err := conn.Read()
	if err != nil {
		t.Fatalf("Failed to read greeting: %v", err)
	}
	status, ok := msg.(DeviceStatus)
	if !ok {
		t.Fatalf("Expected DeviceStatus greeting, got %T", msg)
	}
	if status.Battery == nil || *status.Battery != 85 {
		t.Errorf("Expected battery 85, got %v", status.Battery)
	}
	if !status.Connected {
		t.Error("Expected connected true")
	}

	cmd := wire.HapticCommand{Pattern: wire.PatternDouble, Duration: 20, Intensity: 128}
	if err := conn.Write(NewHapticFeedback(cmd, time.Now())); err != nil {
		t.Fatalf("Failed to send haptic command: %v", err)
	}

	msg, err = conn.Read()
	if err != nil {
		t.Fatalf("Failed to read acknowledgement: %v", err)
	}
	resp, ok := msg.(HapticResponse)
	if !ok {
		t.Fatalf("Expected HapticResponse, got %T", msg)
	}
	if !resp.Success {
		t.Error("Expected success true")
	}
}
