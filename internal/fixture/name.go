package fixture

import (
	"math/rand/v2"
	"strings"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyz"

	// minNameLength is the shortest letter run RandomName produces.
	minNameLength = 2
)

// BaseTags are the wifi-like prefixes a name may carry.
var BaseTags = []string{"wifi_", "wi-fi_", "wlan_", "wireless_"}

// SecurityTags are the bracketed protocol markers added to the tag set when
// security tags are allowed.
var SecurityTags = []string{"[wpa] ", "[wpa2] ", "[wep] ", "[wpa3] "}

// RandomName returns a random lowercase name of 2 to maxLength+1 letters.
//
// With a tagProbability percent chance the letters are prefixed by a tag
// picked uniformly from [BaseTags], extended by [SecurityTags] when
// allowSecurityTag is set. Two times out of three the chosen tag is
// upper-cased.
func RandomName(r *rand.Rand, maxLength, tagProbability int, allowSecurityTag bool) string {
	if maxLength < minNameLength {
		maxLength = minNameLength
	}
	length := minNameLength + r.IntN(maxLength-minNameLength+2)

	var b strings.Builder
	b.Grow(length + len("wireless_"))
	b.WriteString(randomTag(r, tagProbability, allowSecurityTag))

	for range length {
		b.WriteByte(letters[r.IntN(len(letters))])
	}

	return b.String()
}

func randomTag(r *rand.Rand, tagProbability int, allowSecurityTag bool) string {
	if r.IntN(100) >= tagProbability {
		return ""
	}

	tags := BaseTags
	if allowSecurityTag {
		tags = append(append(make([]string, 0, len(BaseTags)+len(SecurityTags)), BaseTags...), SecurityTags...)
	}

	tag := tags[r.IntN(len(tags))]
	if r.IntN(3) < 2 {
		tag = strings.ToUpper(tag)
	}
	return tag
}
