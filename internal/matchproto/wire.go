// Package matchproto implements the match server's wire protocol (spec
// §6 "Match protocol"): a length-prefixed JSON stream over TCP. Messages
// in both directions share one frame shape, a 4-byte big-endian length
// followed by that many bytes of UTF-8 JSON; the weight-file reader in
// pkg/eval/model applies the same encoding/binary package to a
// different wire format.
package matchproto

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// ServerMessage is the server→engine payload (spec §6): the full board
// as occupant strings, and whose turn it is, including the terminal
// values that end a match.
type ServerMessage struct {
	Board [9][9]string `json:"board"`
	Turn  string       `json:"turn"`
}

const (
	TurnWhite     = "WHITE"
	TurnBlack     = "BLACK"
	TurnWhiteWins = "WHITEWIN"
	TurnBlackWins = "BLACKWIN"
	TurnDraw      = "DRAW"
)

// IsTerminal reports whether t is one of the server's game-over turn
// values.
func IsTerminal(t string) bool {
	return t == TurnWhiteWins || t == TurnBlackWins || t == TurnDraw
}

// EngineMove is the engine→server payload for a chosen move (spec §6).
type EngineMove struct {
	From string `json:"from"`
	To   string `json:"to"`
	Turn string `json:"turn"` // "W" or "B"
}

// WriteFrame writes a length-prefixed frame: a 4-byte big-endian length
// followed by payload.
func WriteFrame(w io.Writer, payload []byte) error {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(payload)))
	if _, err := w.Write(length[:]); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}

// ReadFrame reads one length-prefixed frame's payload. A short read at
// any point, including of the length prefix itself, is a protocol error
// (spec §7) and is returned, wrapped with which part of the frame failed,
// for the caller to treat as fatal.
func ReadFrame(r io.Reader) ([]byte, error) {
	var length [4]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return nil, fmt.Errorf("read frame length: %w", err)
	}
	n := binary.BigEndian.Uint32(length[:])

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read frame payload: %w", err)
	}
	return payload, nil
}

// WriteName sends the engine's chosen player name as the connection's
// first frame (spec §6: "immediately after connect").
func WriteName(w io.Writer, name string) error {
	return WriteFrame(w, []byte(name))
}

// ReadMessage reads and decodes one server message frame.
func ReadMessage(r io.Reader) (ServerMessage, error) {
	payload, err := ReadFrame(r)
	if err != nil {
		return ServerMessage{}, err
	}

	var sm ServerMessage
	if err := json.Unmarshal(payload, &sm); err != nil {
		return ServerMessage{}, fmt.Errorf("decode server message: %w", err)
	}
	return sm, nil
}

// WriteMove encodes and writes one engine move frame.
func WriteMove(w io.Writer, m EngineMove) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode engine move: %w", err)
	}
	return WriteFrame(w, payload)
}
