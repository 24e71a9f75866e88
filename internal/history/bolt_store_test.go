package history

import (
	"path/filepath"
	"testing"
)

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("failed to open bolt store: %v", err)
	}

	if s.HasPosted("LAL-0211") {
		t.Fatalf("expected empty store")
	}
	if err := s.RecordPosted("LAL-0211"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if !s.HasPosted("LAL-0211") {
		t.Fatalf("expected identity to be recorded")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Durable across reopen.
	reopened, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("failed to reopen bolt store: %v", err)
	}
	defer reopened.Close()
	if !reopened.HasPosted("LAL-0211") {
		t.Fatalf("expected identity to survive reopen")
	}
}

func TestBoltStoreRecordIsIdempotent(t *testing.T) {
	s, err := OpenBolt(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open bolt store: %v", err)
	}
	defer s.Close()

	for i := 0; i < 3; i++ {
		if err := s.RecordPosted("OKC-1103"); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	if !s.HasPosted("OKC-1103") {
		t.Fatalf("expected identity to be recorded")
	}
}
