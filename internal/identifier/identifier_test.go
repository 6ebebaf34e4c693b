package identifier

import (
	"strings"
	"testing"
)

func TestNanoidFormat(t *testing.T) {
	gen := NewNanoid()

	tests := []struct {
		prefix   string
		alphabet string
		size     int
	}{
		{ApplicantPrefix, LowerNum, ApplicantLen},
		{StudentPrefix, Digits, StudentLen},
		{TeacherPrefix, LowerNum, TeacherLen},
		{ClassPrefix, Digits, ClassLen},
		{AttendancePrefix, LowerNum, AttendanceLen},
	}

	for _, tt := range tests {
		id, err := gen.NewID(tt.prefix, tt.alphabet, tt.size)
		if err != nil {
			t.Fatalf("NewID(%q): %v", tt.prefix, err)
		}
		if !strings.HasPrefix(id, tt.prefix) {
			t.Errorf("id %q missing prefix %q", id, tt.prefix)
		}
		suffix := strings.TrimPrefix(id, tt.prefix)
		if len(suffix) != tt.size {
			t.Errorf("id %q suffix length = %d, want %d", id, len(suffix), tt.size)
		}
		for _, r := range suffix {
			if !strings.ContainsRune(tt.alphabet, r) {
				t.Errorf("id %q contains %q outside alphabet %q", id, r, tt.alphabet)
			}
		}
	}
}

func TestNanoidUniqueness(t *testing.T) {
	gen := NewNanoid()
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		id, err := gen.NewID(ApplicantPrefix, LowerNum, ApplicantLen)
		if err != nil {
			t.Fatalf("NewID: %v", err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = struct{}{}
	}
}
