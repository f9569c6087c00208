package utils

import "testing"

func TestResolveThumbnail(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "stream template",
			template: "https://static-cdn.example.com/previews-ttv/live_user_foo-{width}x{height}.jpg",
			expected: "https://static-cdn.example.com/previews-ttv/live_user_foo-440x248.jpg",
		},
		{
			name:     "video template with percent form",
			template: "https://static-cdn.example.com/vods/thumb-%{width}x%{height}.jpg",
			expected: "https://static-cdn.example.com/vods/thumb-440x248.jpg",
		},
		{
			name:     "no placeholders",
			template: "https://static-cdn.example.com/plain.jpg",
			expected: "https://static-cdn.example.com/plain.jpg",
		},
		{
			name:     "empty",
			template: "",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveThumbnail(tc.template, ThumbnailWidth, ThumbnailHeight)
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestPlayerURL(t *testing.T) {
	got := PlayerURL("somechannel", "guide.example.com")
	want := "https://player.twitch.tv/?channel=somechannel&parent=guide.example.com"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
