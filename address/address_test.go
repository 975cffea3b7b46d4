package address

import "testing"

func TestFromBytesEmptyIsZero(t *testing.T) {
	addr, err := FromBytes(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !addr.IsZero() {
		t.Fatalf("expected zero address")
	}
}

func TestFromBytesWrongLength(t *testing.T) {
	if _, err := FromBytes(make([]byte, 20)); err != ErrInvalidLength {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	raw := make([]byte, Length)
	raw[0] = Prefix
	raw[1] = 0xAB
	addr, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.Bytes()[1] != 0xAB {
		t.Fatalf("round trip lost data")
	}
}

func TestEqual(t *testing.T) {
	raw := make([]byte, Length)
	raw[0] = Prefix
	a, _ := FromBytes(raw)
	b, _ := FromBytes(raw)
	if !a.Equal(b) {
		t.Fatalf("expected equal addresses")
	}
	raw[5] = 1
	c, _ := FromBytes(raw)
	if a.Equal(c) {
		t.Fatalf("expected distinct addresses")
	}
}

func TestStringProducesBase58(t *testing.T) {
	raw := make([]byte, Length)
	raw[0] = Prefix
	addr, _ := FromBytes(raw)
	s := addr.String()
	if len(s) == 0 {
		t.Fatalf("expected non-empty base58check string")
	}
}
