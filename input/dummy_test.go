package input

import "testing"

func TestDummyInputNeverProducesKeys(t *testing.T) {
	d := NewDummyInput()
	if keys := d.ReadKeys(); keys != nil {
		t.Fatalf("expected no keys from a dummy input, got %v", keys)
	}
	if keys := d.FlushKeys(); keys != nil {
		t.Fatalf("expected no keys from flush either, got %v", keys)
	}
	if _, err := d.Fileno(); err == nil {
		t.Fatal("expected Fileno to error on a dummy input")
	}
}

func TestDummyInputCloseIsIdempotent(t *testing.T) {
	d := NewDummyInput()
	if err := d.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Closed() {
		t.Fatal("expected Closed to report true after Close")
	}
	if err := d.Close(); err != nil {
		t.Fatalf("expected a second Close to be harmless, got %v", err)
	}
}
