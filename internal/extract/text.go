package extract

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	reRTFControl = regexp.MustCompile(`\\[a-z]+-?\d* ?|[{}]|\\'[0-9a-f]{2}`)
	reCRLF       = regexp.MustCompile("\r\n?")
)

// DecodeText turns raw plain-text or RTF bytes into a normalized string.
// Handles UTF-8/UTF-16 BOMs and strips RTF control words.
func DecodeText(data []byte) string {
	s := decodeBytes(data)
	if strings.HasPrefix(s, `{\rtf`) {
		s = stripRTF(s)
	}
	return NormalizeText(s)
}

func decodeBytes(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xef, 0xbb, 0xbf}):
		return string(data[3:])
	case bytes.HasPrefix(data, []byte{0xff, 0xfe}):
		return decodeUTF16(data[2:], false)
	case bytes.HasPrefix(data, []byte{0xfe, 0xff}):
		return decodeUTF16(data[2:], true)
	}
	if utf8.Valid(data) {
		return string(data)
	}
	// Latin-1 fallback keeps the bytes readable instead of producing
	// replacement runes.
	runes := make([]rune, 0, len(data))
	for _, b := range data {
		runes = append(runes, rune(b))
	}
	return string(runes)
}

func decodeUTF16(data []byte, bigEndian bool) string {
	u := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		if bigEndian {
			u = append(u, uint16(data[i])<<8|uint16(data[i+1]))
		} else {
			u = append(u, uint16(data[i+1])<<8|uint16(data[i]))
		}
	}
	return string(utf16.Decode(u))
}

func stripRTF(s string) string {
	s = strings.ReplaceAll(s, `\par`, "\n")
	s = reRTFControl.ReplaceAllString(s, "")
	return s
}

// NormalizeText canonicalizes line endings, expands tabs, and trims
// trailing spaces per line without collapsing line structure.
func NormalizeText(s string) string {
	s = reCRLF.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "\t", "    ")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// PrintableRatio returns the share of printable characters in text,
// used as a cheap extraction-quality signal.
func PrintableRatio(text string) float64 {
	if text == "" {
		return 1.0
	}
	total, printable := 0, 0
	for _, r := range text {
		total++
		if r == 0xfffd || (r >= 0xe000 && r <= 0xf8ff) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	return float64(printable) / float64(total)
}
