package linkcode

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gosimple/slug"
)

const (
	suffixBytes  = 4
	maxSlugChars = 24
)

// Generate builds a public link code from the campaign title: a slugified
// prefix for readability plus a random hex suffix for uniqueness.
func Generate(title string) string {
	s := slug.Make(title)
	if len(s) > maxSlugChars {
		s = s[:maxSlugChars]
	}
	if s == "" {
		s = "donate"
	}

	buf := make([]byte, suffixBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return s + "-" + hex.EncodeToString(buf)
}
