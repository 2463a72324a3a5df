package media

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Purpose names a singular, overwritable asset slot on a profile.
type Purpose string

const (
	PurposeAvatar      Purpose = "avatar"
	PurposeScoutAvatar Purpose = "scout-avatar"
	PurposeScoutCover  Purpose = "scout-cover"
)

var allPurposes = map[Purpose]struct{}{
	PurposeAvatar:      {},
	PurposeScoutAvatar: {},
	PurposeScoutCover:  {},
}

func (p Purpose) Valid() bool {
	_, ok := allPurposes[p]
	return ok
}

// ObjectPath builds the fixed path for a singular asset:
// {userId}/{purpose}.{ext}. Re-uploading the same purpose overwrites.
func ObjectPath(userID string, purpose Purpose, ext string) string {
	return fmt.Sprintf("%s/%s.%s", userID, purpose, normalizeExt(ext))
}

// VideoPath builds an append-only path for an uploaded video:
// {userId}/{timestamp}.{ext}. Each upload lands on a fresh key.
func VideoPath(userID, ext string, now time.Time) string {
	return fmt.Sprintf("%s/%d.%s", userID, now.UnixMilli(), normalizeExt(ext))
}

// UserPrefix is the key prefix under which all of a user's assets live.
func UserPrefix(userID string) string {
	return userID + "/"
}

// Ext extracts the lowercased extension from a filename, without the dot.
func Ext(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	return strings.ToLower(ext)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if ext == "" {
		return "bin"
	}

	return ext
}

// KeyFromURL maps a public URL back to its object key, or "" if the URL is
// not served from baseURL. Used to find which stored objects a profile
// still references.
func KeyFromURL(baseURL, url string) string {
	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if base == "" || !strings.HasPrefix(url, base+"/") {
		return ""
	}

	return strings.TrimPrefix(url, base+"/")
}
