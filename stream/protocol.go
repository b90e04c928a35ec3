// Package stream publishes sticks snapshots to WebSocket clients.
//
// Every message is a JSON envelope {"t": type, "p": payload}. A client
// receives one "hello" with the constants and walls on connect, then a
// "frame" for every published tick.
package stream

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/sticks"
)

const (
	MsgHello = "hello"
	MsgFrame = "frame"
)

// ProtocolVersion is sent in Hello.V.
const ProtocolVersion = 1

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

// Hello carries what does not change during a run.
type Hello struct {
	V           int           `json:"v"`
	Dt          float64       `json:"dt"`
	Dissipation float64       `json:"dissipation"`
	Walls       []sticks.Wall `json:"walls"`
}

// Frame is one published tick.
type Frame struct {
	Tick       int                `json:"tick"`
	Time       float64            `json:"time"`
	Energy     float64            `json:"energy"`
	Sticks     []sticks.Stick     `json:"sticks"`
	Collisions []sticks.Collision `json:"collisions,omitempty"`
}

// NewFrame builds the frame for a resolved scene.
func NewFrame(scene sticks.Scene, result sticks.TickResult) Frame {
	return Frame{
		Tick:       result.Tick,
		Time:       result.Time,
		Energy:     sticks.SceneEnergy(scene.Sticks),
		Sticks:     scene.Sticks,
		Collisions: result.Collisions,
	}
}

func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("encode envelope: empty type")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode envelope %q: nil payload", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode envelope %q: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode envelope: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return e, nil
}

func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}
