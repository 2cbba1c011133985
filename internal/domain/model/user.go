package model

import (
	"fmt"
	"strings"
)

// Gender selects avatar artwork for a user.
type Gender string

const (
	GenderBoy  Gender = "boy"
	GenderGirl Gender = "girl"
)

const avatarBaseURL = "https://avatar.iran.liara.run/public"

// User represents a dashboard contact.
type User struct {
	ID           int64
	Name         string
	Gender       Gender
	ProfileImage string
}

// AvatarURL builds public avatar address for name and gender.
func AvatarURL(name string, gender Gender) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	return fmt.Sprintf("%s/%s?username=%s", avatarBaseURL, gender, slug)
}
