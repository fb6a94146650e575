package protocol

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b, err := Encode(MsgShoot, Shoot{GameID: "ABC123", TargetMarkerID: 7})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.T != MsgShoot {
		t.Fatalf("envelope type = %q, want %q", env.T, MsgShoot)
	}
	s, err := DecodePayload[Shoot](env)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if s.GameID != "ABC123" || s.TargetMarkerID != 7 {
		t.Fatalf("payload = %+v", s)
	}
}

func TestEncodeNilPayload(t *testing.T) {
	b, err := Encode(MsgReloadComplete, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.T != MsgReloadComplete || len(env.P) != 0 {
		t.Fatalf("envelope = %+v, want bare %q", env, MsgReloadComplete)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Encode("", nil); err == nil {
		t.Fatalf("expected error for empty envelope type")
	}
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty frame")
	}
	if _, err := DecodePayload[Shoot](Envelope{T: MsgShoot}); err == nil {
		t.Fatalf("expected error for missing payload")
	}
}

func TestClientMessageNames(t *testing.T) {
	// Pinned: the web clients emit these exact strings.
	want := map[string]string{
		MsgCreateGame: "create_game",
		MsgJoinGame:   "join_game",
		MsgStartGame:  "start_game",
		MsgWatchGame:  "watch_game",
		MsgShoot:      "shoot",
		MsgBomb:       "bomb",
	}
	for got, name := range want {
		if got != name {
			t.Fatalf("message constant = %q, want %q", got, name)
		}
	}
}
