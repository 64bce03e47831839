package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThumbnail(t *testing.T) {
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"

	cases := []struct {
		name string
		url  string
		want string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", want},
		{"watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want},
		{"shorts link", "https://youtube.com/shorts/dQw4w9WgXcQ", want},
		{"embed link", "https://www.youtube.com/embed/dQw4w9WgXcQ", want},
		{"watch link with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", want},
		{"empty url", "", ""},
		{"non-youtube url", "https://vimeo.com/123456789", ""},
		{"plain text", "not a url at all", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveThumbnail(tc.url))
		})
	}
}
