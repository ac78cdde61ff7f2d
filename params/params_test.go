package params

import "testing"

func TestDefaultSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}

func TestValidateCatchesBadFields(t *testing.T) {
	mutations := []struct {
		name string
		mut  func(*Settings)
	}{
		{"zero size", func(s *Settings) { s.Size = 0 }},
		{"zero window", func(s *Settings) { s.Window = 0 }},
		{"negative sample", func(s *Settings) { s.Sample = -0.1 }},
		{"negative negative", func(s *Settings) { s.Negative = -1 }},
		{"zero threads", func(s *Settings) { s.Threads = 0 }},
		{"zero iterations", func(s *Settings) { s.Iterations = 0 }},
		{"zero alpha", func(s *Settings) { s.Alpha = 0 }},
		{"zero exp table", func(s *Settings) { s.ExpTableSize = 0 }},
		{"zero max exp", func(s *Settings) { s.MaxExp = 0 }},
		{"zero ns table", func(s *Settings) { s.HS = false; s.NSTableSize = 0 }},
	}
	for _, m := range mutations {
		s := DefaultSettings()
		m.mut(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s passed validation", m.name)
		}
	}
}

func TestModelTypeString(t *testing.T) {
	if CBOW.String() != "cbow" || SkipGram.String() != "skip-gram" {
		t.Fatalf("unexpected names: %s / %s", CBOW, SkipGram)
	}
}
