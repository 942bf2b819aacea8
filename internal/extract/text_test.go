package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haroldmt/resume-parser/constants"
)

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		filename string
		want     string
	}{
		{"pdf magic", []byte("%PDF-1.4 ..."), "whatever.bin", constants.PDF},
		{"zip magic", []byte("PK\x03\x04rest"), "resume.docx", constants.DOCX},
		{"rtf magic", []byte(`{\rtf1\ansi hi}`), "resume.rtf", constants.TXT},
		{"png magic", []byte("\x89PNG\r\n\x1a\n"), "scan", constants.IMAGE},
		{"jpeg magic", []byte("\xff\xd8\xff\xe0"), "scan", constants.IMAGE},
		{"tiff magic", []byte("II*\x00data"), "scan", constants.IMAGE},
		{"extension fallback", []byte("plain words"), "resume.pdf", constants.PDF},
		{"printable fallback", []byte("just a text resume\nwith lines"), "noext", constants.TXT},
		{"binary junk", []byte{0x00, 0x01, 0x02, 0xff, 0xfe}, "noext", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffFormat(tt.data, tt.filename))
		})
	}
}

func TestDecodeTextBOMs(t *testing.T) {
	assert.Equal(t, "hi", DecodeText([]byte{0xef, 0xbb, 0xbf, 'h', 'i'}))
	// UTF-16LE "hi"
	assert.Equal(t, "hi", DecodeText([]byte{0xff, 0xfe, 'h', 0x00, 'i', 0x00}))
	// UTF-16BE "hi"
	assert.Equal(t, "hi", DecodeText([]byte{0xfe, 0xff, 0x00, 'h', 0x00, 'i'}))
}

func TestDecodeTextLatin1Fallback(t *testing.T) {
	// 0xe9 alone is invalid UTF-8; Latin-1 maps it to e-acute.
	got := DecodeText([]byte{'r', 0xe9, 's', 'u', 'm', 0xe9})
	assert.Equal(t, "résumé", got)
}

func TestDecodeTextRTF(t *testing.T) {
	rtf := `{\rtf1\ansi\deff0 Jane Doe\par Senior Engineer}`
	got := DecodeText([]byte(rtf))
	assert.Contains(t, got, "Jane Doe")
	assert.Contains(t, got, "Senior Engineer")
	assert.NotContains(t, got, `\rtf`)
	assert.NotContains(t, got, "{")
}

func TestNormalizeText(t *testing.T) {
	in := "line one  \r\nline\ttwo\rline three   \n\n"
	got := NormalizeText(in)
	assert.Equal(t, "line one\nline    two\nline three", got)
}

func TestPrintableRatio(t *testing.T) {
	assert.Equal(t, 1.0, PrintableRatio(""))
	assert.Equal(t, 1.0, PrintableRatio("clean text\nwith lines"))
	assert.Less(t, PrintableRatio("ab��"), 1.0)
}
