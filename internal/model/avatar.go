package model

import "fmt"

// DefaultAvatarHint is the hint stored with generated placeholder avatars.
const DefaultAvatarHint = "person portrait"

// DefaultAvatarURL derives a deterministic placeholder portrait URL keyed
// by the entity ID.
func DefaultAvatarURL(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/100/100", id)
}
