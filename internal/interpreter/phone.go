package interpreter

import (
	"regexp"
	"strings"
)

// countryCode is the Brazilian international dialing prefix.
const countryCode = "55"

// phoneSeqRe matches a run of digits allowing embedded spaces and hyphens,
// as speech-to-text tends to break numbers apart.
var phoneSeqRe = regexp.MustCompile(`\d[\d \-]*\d`)

// ExtractPhone finds a Brazilian contact number in the transcript and
// normalizes it to country-code form. A number stated without an area code
// (8–9 digits) is ambiguous and rejected rather than guessed at. The phone
// is always optional: anything that does not normalize to exactly 12 or 13
// digits yields an empty string, never an error.
func ExtractPhone(transcript string) string {
	for _, seq := range phoneSeqRe.FindAllString(transcript, -1) {
		digits := digitsOnly(seq)

		switch n := len(digits); {
		case n == 8 || n == 9:
			// Local number with no area code: cannot safely assume one.
			continue
		case n == 10 || n == 11:
			digits = countryCode + digits
		case n >= 12 && !strings.HasPrefix(digits, countryCode):
			digits = countryCode + digits
		}

		if len(digits) == 12 || len(digits) == 13 {
			return digits
		}
	}
	return ""
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
