package users

import (
	"strings"
	"testing"
)

func TestResolveProfilePicPrefersStoredURL(t *testing.T) {
	got := ResolveProfilePic("https://i.ibb.co/xyz/me.jpg", "https://lh3.example.com/p.jpg", "a@b.com")
	if got != "https://i.ibb.co/xyz/me.jpg" {
		t.Errorf("got %q", got)
	}
}

func TestResolveProfilePicFixesIbbTypo(t *testing.T) {
	got := ResolveProfilePic("https://i.ibb.co.com/xyz/me.jpg", "", "a@b.com")
	if got != "https://i.ibb.co/xyz/me.jpg" {
		t.Errorf("typo not fixed: %q", got)
	}
}

func TestResolveProfilePicFallsBackToPhotoURL(t *testing.T) {
	got := ResolveProfilePic("not-a-url", "https://lh3.example.com/p.jpg", "a@b.com")
	if got != "https://lh3.example.com/p.jpg" {
		t.Errorf("got %q", got)
	}
}

func TestResolveProfilePicGravatar(t *testing.T) {
	got := ResolveProfilePic("", "", "  User@Example.COM ")
	// md5 of "user@example.com"
	want := "https://www.gravatar.com/avatar/b58996c504c5638798eb6b511e6f49af?d=identicon&s=200"
	if got != want {
		t.Errorf("gravatar = %q, want %q", got, want)
	}
}

func TestResolveProfilePicPlaceholder(t *testing.T) {
	got := ResolveProfilePic("", "", "")
	if !strings.Contains(got, "placehold.co") {
		t.Errorf("expected placeholder, got %q", got)
	}
}
