package identifier

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabets used by the various entity ID formats.
const (
	Digits   = "1234567890"
	LowerNum = "1234567890abcdefghijklmnopqrstuvwxyz"
)

// Entity ID formats: prefix plus a fixed-length random suffix.
const (
	ApplicantPrefix  = "APP-"
	StudentPrefix    = "SIS-"
	TeacherPrefix    = "GURU-"
	ClassPrefix      = "KLS-"
	EmployeePrefix   = "EMP-"
	SchedulePrefix   = "SCH-"
	AttendancePrefix = "ATT-"

	ApplicantLen  = 12
	StudentLen    = 5
	TeacherLen    = 8
	ClassLen      = 4
	EmployeeLen   = 10
	ScheduleLen   = 12
	AttendanceLen = 12
)

// Generator produces prefixed random identifiers. It is injected into
// services so tests can substitute a deterministic implementation and so
// the scheme can later be swapped for a collision-checked one.
type Generator interface {
	NewID(prefix, alphabet string, size int) (string, error)
}

// Nanoid generates identifiers from a cryptographically random nanoid.
type Nanoid struct{}

// NewNanoid creates the default Generator.
func NewNanoid() *Nanoid {
	return &Nanoid{}
}

// NewID returns prefix + size random characters drawn from alphabet.
func (n *Nanoid) NewID(prefix, alphabet string, size int) (string, error) {
	suffix, err := gonanoid.Generate(alphabet, size)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return prefix + suffix, nil
}
