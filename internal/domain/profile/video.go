package profile

import "regexp"

var youtubeIDRegex = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractYouTubeID pulls the 11-character video id out of a watch, embed or
// short-form YouTube URL. Non-YouTube URLs are kept as plain links.
func ExtractYouTubeID(url string) (string, bool) {
	match := youtubeIDRegex.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// YouTubeEmbedURL returns the embeddable player URL for a video id.
func YouTubeEmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
