package chessgame

import (
	"fmt"
	"regexp"
	"strings"
)

// Bracketed sub-annotation tags embedded in a comment string, per
// gamex.cpp's s_specList: elapsed move time, clock reading, elapsed game
// time, colored-square markup, and arrow markup.
const (
	tagEMT = "emt"
	tagCLK = "clk"
	tagEGT = "egt"
	tagCSL = "csl"
	tagCAL = "cal"
)

var (
	timeTagRe  = regexp.MustCompile(`\[%(egt|emt|clk)\s*(\d?\d:\d?\d:\d\d)\]`)
	cslTagRe   = regexp.MustCompile(`\[%csl\s*([^\]]*)\]`)
	calTagRe   = regexp.MustCompile(`\[%cal\s*([^\]]*)\]`)
	anyTagRe   = regexp.MustCompile(`\[%(emt|clk|egt|csl|cal)\s*[^\]]*\]`)
)

// stripSpecTag removes every occurrence of re from s.
func stripSpecTag(s string, re *regexp.Regexp) string {
	return re.ReplaceAllString(s, "")
}

// specAnnotation returns the last capture group of the first match of re
// in s (the body inside the brackets, after any tag-name group), or "" if
// re does not match. Mirrors gamex.cpp's specAnnotation, which returns
// QRegExp::cap(2) -- the body inside the brackets.
func specAnnotation(s string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[len(m)-1]
}

// textAnnotation strips every recognized bracketed tag from s and returns
// the human-authored remainder, trimmed.
func textAnnotation(s string) string {
	return strings.TrimSpace(stripSpecTag(s, anyTagRe))
}

// squareAnnotationOf extracts the [%csl ...] body from a raw comment.
func squareAnnotationOf(s string) string { return specAnnotation(s, cslTagRe) }

// arrowAnnotationOf extracts the [%cal ...] body from a raw comment.
func arrowAnnotationOf(s string) string { return specAnnotation(s, calTagRe) }

// timeAnnotationOf extracts whichever of egt/emt/clk is present, trimmed.
func timeAnnotationOf(s string) string { return strings.TrimSpace(specAnnotation(s, timeTagRe)) }

// withSquareAnnotation replaces any existing [%csl] tag in s with one
// carrying squareAnnotation, or removes the tag entirely when empty.
func withSquareAnnotation(s, squareAnnotation string) string {
	s = stripSpecTag(s, cslTagRe)
	squareAnnotation = strings.TrimSpace(squareAnnotation)
	if squareAnnotation == "" {
		return s
	}
	return s + fmt.Sprintf("[%%csl %s]", squareAnnotation)
}

// withArrowAnnotation replaces any existing [%cal] tag in s with one
// carrying arrowAnnotation, or removes the tag entirely when empty.
func withArrowAnnotation(s, arrowAnnotation string) string {
	s = stripSpecTag(s, calTagRe)
	arrowAnnotation = strings.TrimSpace(arrowAnnotation)
	if arrowAnnotation == "" {
		return s
	}
	return s + fmt.Sprintf("[%%cal %s]", arrowAnnotation)
}

// withEMT removes every existing time tag (emt, clk or egt) from s and
// appends one [%emt] tag, formatted as h:mm:ss the way gamex.cpp's emt
// field is produced ("0:%02d:%02d").
func withEMT(s string, hours, minutes, seconds int) string {
	s = stripSpecTag(s, timeTagRe)
	return s + fmt.Sprintf("[%%emt %d:%02d:%02d]", hours, minutes, seconds)
}

// appendColorCode implements the comma-joined square/arrow list toggle used
// by appendSquareAnnotation/appendArrowAnnotation: if key is already present
// in list it is removed, otherwise colorCode+key is appended.
func appendColorCode(list, key string, colorCode byte) string {
	parts := splitNonEmpty(list, ',')
	out := parts[:0]
	found := false
	for _, p := range parts {
		if strings.HasSuffix(p, key) {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found && colorCode != 0 {
		out = append(out, string(colorCode)+key)
	}
	return strings.Join(out, ",")
}

func splitNonEmpty(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, string(sep))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}
