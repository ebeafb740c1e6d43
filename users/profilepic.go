package users

import (
	"regexp"
	"strings"

	"bhromon/utils"
)

const placeholderPic = "https://placehold.co/200x200/cccccc/555555?text=User"

var httpURL = regexp.MustCompile(`(?i)^https?://`)

// normalizeProfilePic returns a usable web URL or "". Fixes the ".ibb.co.com"
// typo that a batch of imported accounts carries.
func normalizeProfilePic(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	fixed := strings.ReplaceAll(s, ".ibb.co.com", ".ibb.co")
	if httpURL.MatchString(fixed) {
		return fixed
	}
	return ""
}

// gravatarURL derives the gravatar fallback for an email.
func gravatarURL(email string) string {
	if email == "" {
		return ""
	}
	hash := utils.MD5Hex(strings.ToLower(strings.TrimSpace(email)))
	return "https://www.gravatar.com/avatar/" + hash + "?d=identicon&s=200"
}

// ResolveProfilePic picks the first usable picture source: the stored URL,
// the identity provider's photo URL, a gravatar, then a placeholder.
func ResolveProfilePic(profilePic, photoURL, email string) string {
	if p := normalizeProfilePic(profilePic); p != "" {
		return p
	}
	if p := normalizeProfilePic(photoURL); p != "" {
		return p
	}
	if p := gravatarURL(email); p != "" {
		return p
	}
	return placeholderPic
}
