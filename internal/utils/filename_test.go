package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "house.jpg", want: "house.jpg"},
		{name: "spaces", input: "My cool  house.JPG", want: "My_cool_house.JPG"},
		{name: "path traversal", input: "../../etc/passwd", want: "etc_passwd"},
		{name: "windows path", input: `C:\photos\front.png`, want: "C_photos_front.png"},
		{name: "accents", input: "maison_été.png", want: "maison_ete.png"},
		{name: "non latin only", input: "日本.png", want: "png"},
		{name: "special chars", input: "a*b?c<d>.gif", want: "abcd.gif"},
		{name: "hidden file", input: ".htaccess", want: "htaccess"},
		{name: "empty", input: "", want: ""},
		{name: "only dots", input: "...", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SecureFilename(tt.input))
		})
	}
}
