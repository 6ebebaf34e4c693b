package model

import "testing"

func TestParseAdmissionStatus(t *testing.T) {
	valid := []string{"Pending", "Accepted", "Rejected"}
	for _, raw := range valid {
		status, ok := ParseAdmissionStatus(raw)
		if !ok {
			t.Errorf("ParseAdmissionStatus(%q) not ok, want valid", raw)
		}
		if string(status) != raw {
			t.Errorf("ParseAdmissionStatus(%q) = %q", raw, status)
		}
	}

	invalid := []string{"", "pending", "ACCEPTED", "Enrolled", "Accepted "}
	for _, raw := range invalid {
		if _, ok := ParseAdmissionStatus(raw); ok {
			t.Errorf("ParseAdmissionStatus(%q) ok, want invalid", raw)
		}
	}
}

func TestDefaultAvatarURL(t *testing.T) {
	got := DefaultAvatarURL("SIS-12345")
	want := "https://picsum.photos/seed/SIS-12345/100/100"
	if got != want {
		t.Errorf("DefaultAvatarURL = %q, want %q", got, want)
	}
}
