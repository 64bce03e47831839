package services

import (
	"fmt"
	"regexp"
)

// The four YouTube URL shapes that encode a video id: short link, watch
// page, shorts, embed.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/watch\?v=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]+)`),
}

// ResolveThumbnail derives YouTube's predictable high-quality thumbnail
// URL from a video URL, or returns the empty string when the URL matches
// none of the known shapes. Called on project create/update when the
// payload has a video URL but no thumbnail.
func ResolveThumbnail(videoURL string) string {
	if videoURL == "" {
		return ""
	}

	for _, pattern := range youtubePatterns {
		if match := pattern.FindStringSubmatch(videoURL); match != nil {
			return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", match[1])
		}
	}
	return ""
}
