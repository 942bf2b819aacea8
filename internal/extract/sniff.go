package extract

import (
	"bytes"
	"path/filepath"
	"unicode/utf8"

	"github.com/haroldmt/resume-parser/constants"
)

// SniffFormat detects the document format from magic bytes, falling back
// to the filename extension. The sniffed format wins over the declared
// media type: clients routinely mislabel uploads.
func SniffFormat(data []byte, filename string) string {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return constants.PDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		// OOXML container; treat any zip as DOCX and let the markup
		// extractor reject non-Word archives.
		return constants.DOCX
	case bytes.HasPrefix(data, []byte(`{\rtf`)):
		return constants.TXT
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")),
		bytes.HasPrefix(data, []byte("\xff\xd8\xff")),
		bytes.HasPrefix(data, []byte("BM")),
		bytes.HasPrefix(data, []byte("II*\x00")),
		bytes.HasPrefix(data, []byte("MM\x00*")):
		return constants.IMAGE
	}

	if f := constants.MapExtToFormat(filepath.Ext(filename)); f != "" {
		return f
	}
	if looksLikeText(data) {
		return constants.TXT
	}
	return ""
}

// looksLikeText reports whether the head of the payload decodes as
// mostly printable UTF-8.
func looksLikeText(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	if !utf8.Valid(sample) {
		return false
	}
	printable := 0
	total := 0
	for _, r := range string(sample) {
		total++
		if r == '\n' || r == '\r' || r == '\t' || (r >= 0x20 && r != 0x7f) {
			printable++
		}
	}
	if total == 0 {
		return false
	}
	return float64(printable)/float64(total) > 0.9
}
