package utils

import "testing"

func TestDetectContentType(t *testing.T) {
	cases := []struct {
		name string
		file []byte
		want string
	}{
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, "image/png"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
		{"gif", []byte("GIF89a"), "image/gif"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectContentType(tc.file); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}

func TestImageExtension(t *testing.T) {
	if got := ImageExtension([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}); got != ".png" {
		t.Fatalf("expected .png got %s", got)
	}
	if got := ImageExtension([]byte{0xFF, 0xD8, 0xFF, 0xE0}); got != ".jpg" {
		t.Fatalf("expected .jpg got %s", got)
	}
	if got := ImageExtension([]byte("not an image")); got != ".jpg" {
		t.Fatalf("unrecognized payloads default to .jpg, got %s", got)
	}
}
