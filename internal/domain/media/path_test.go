package media

import (
	"testing"
	"time"
)

func TestObjectPath(t *testing.T) {
	t.Parallel()

	if got := ObjectPath("user-1", PurposeAvatar, "PNG"); got != "user-1/avatar.png" {
		t.Fatalf("unexpected path: %s", got)
	}
	if got := ObjectPath("user-1", PurposeScoutCover, ".jpg"); got != "user-1/scout-cover.jpg" {
		t.Fatalf("unexpected path: %s", got)
	}
	if got := ObjectPath("user-1", PurposeScoutAvatar, ""); got != "user-1/scout-avatar.bin" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestVideoPath(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	want := "user-1/1773500966000.mp4"
	if got := VideoPath("user-1", "mp4", now); got != want {
		t.Fatalf("unexpected path: got=%s want=%s", got, want)
	}
}

func TestExt(t *testing.T) {
	t.Parallel()

	if got := Ext("Photo.JPG"); got != "jpg" {
		t.Fatalf("unexpected ext: %s", got)
	}
	if got := Ext("noext"); got != "" {
		t.Fatalf("expected empty ext, got %s", got)
	}
}

func TestKeyFromURL(t *testing.T) {
	t.Parallel()

	base := "https://cdn.example.com/avatars"
	if got := KeyFromURL(base, "https://cdn.example.com/avatars/user-1/avatar.png"); got != "user-1/avatar.png" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := KeyFromURL(base, "https://elsewhere.example.com/user-1/avatar.png"); got != "" {
		t.Fatalf("expected empty key for foreign url, got %s", got)
	}
	if got := KeyFromURL("", "https://cdn.example.com/x"); got != "" {
		t.Fatalf("expected empty key for empty base, got %s", got)
	}
}
