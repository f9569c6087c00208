package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// Thumbnail dimensions requested for reshaped records.
const (
	ThumbnailWidth  = 440
	ThumbnailHeight = 248
)

// ResolveThumbnail fills the dimension placeholders in an upstream thumbnail
// URL template. Stream thumbnails use `{width}x{height}`, video thumbnails
// `%{width}x%{height}`; both forms are handled. Unknown templates pass
// through unchanged.
func ResolveThumbnail(template string, width, height int) string {
	if template == "" {
		return ""
	}
	w := strconv.Itoa(width)
	h := strconv.Itoa(height)

	resolved := strings.ReplaceAll(template, "%{width}", w)
	resolved = strings.ReplaceAll(resolved, "%{height}", h)
	resolved = strings.ReplaceAll(resolved, "{width}", w)
	resolved = strings.ReplaceAll(resolved, "{height}", h)
	return resolved
}

// PlayerURL builds the platform's embeddable player URL for a channel. The
// parent parameter names the domain embedding the player, required by the
// player iframe.
func PlayerURL(channelLogin, parent string) string {
	params := url.Values{
		"channel": {channelLogin},
		"parent":  {parent},
	}
	return "https://player.twitch.tv/?" + params.Encode()
}
