package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPages is a canned PageExtractor so orchestrator tests run without
// pdftotext or tesseract installed.
type stubPages struct {
	pdfText  string
	pdfErr   error
	ocrText  string
	ocrErr   error
	imgText  string
	imgErr   error
	ocrCalls int
}

func (s *stubPages) PDFText(_ context.Context, _ string) (string, int, []string, error) {
	return s.pdfText, 1, nil, s.pdfErr
}

func (s *stubPages) PDFOCR(_ context.Context, _ string, _ ProgressFunc) (string, int, []string, error) {
	s.ocrCalls++
	return s.ocrText, 1, nil, s.ocrErr
}

func (s *stubPages) ImageOCR(_ context.Context, _ string) (string, []string, error) {
	return s.imgText, nil, s.imgErr
}

func newTestOrchestrator(t *testing.T, pages PageExtractor) *Orchestrator {
	t.Helper()
	return NewOrchestrator(Config{WorkDir: t.TempDir()}, pages, nil)
}

func pdfDoc(text string) Document {
	return Document{Filename: "resume.pdf", Data: []byte("%PDF-1.7\n" + text)}
}

func longText(prefix string) string {
	return prefix + " " + strings.Repeat("professional experience with distributed systems. ", 6)
}

func TestExtractEmptyFile(t *testing.T) {
	o := newTestOrchestrator(t, &stubPages{})
	_, err := o.Extract(context.Background(), Document{Filename: "empty.pdf"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyFile))

	var ee *Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, KindEmptyFile, ee.Kind)
	assert.NotEmpty(t, ee.Suggestion)
}

func TestExtractFileTooLarge(t *testing.T) {
	o := NewOrchestrator(Config{MaxFileSize: 10, WorkDir: t.TempDir()}, &stubPages{}, nil)
	doc := Document{Filename: "big.pdf", Data: bytes.Repeat([]byte("x"), 11)}
	_, err := o.Extract(context.Background(), doc, nil)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
}

func TestExtractUnsupportedMediaType(t *testing.T) {
	o := newTestOrchestrator(t, &stubPages{})
	doc := Document{
		Filename:  "resume.exe",
		MediaType: "application/x-msdownload",
		Data:      []byte{0x4d, 0x5a, 0x00, 0x01},
	}
	_, err := o.Extract(context.Background(), doc, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestExtractPDFNativeText(t *testing.T) {
	pages := &stubPages{pdfText: longText("Jane Doe")}
	o := newTestOrchestrator(t, pages)

	res, err := o.Extract(context.Background(), pdfDoc("ignored"), nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyPDFText, res.Strategy)
	assert.Contains(t, res.Text, "Jane Doe")
	assert.Len(t, res.Attempts, 1)
	assert.Zero(t, pages.ocrCalls, "OCR must not run when the text layer is rich enough")
	assert.Greater(t, res.Confidence, float32(0))
}

func TestExtractPDFEscalatesToOCR(t *testing.T) {
	pages := &stubPages{pdfText: "short", ocrText: longText("Jane Doe, Software Engineer")}
	o := newTestOrchestrator(t, pages)

	res, err := o.Extract(context.Background(), pdfDoc("scan"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, pages.ocrCalls)
	assert.Equal(t, StrategyOCR, res.Strategy)
	assert.Contains(t, res.Text, "Jane Doe")
	require.Len(t, res.Attempts, 2)
	assert.Equal(t, StrategyPDFText, res.Attempts[0].Strategy)
	assert.Equal(t, StrategyOCR, res.Attempts[1].Strategy)
}

func TestExtractPDFKeepsNativeWhenOCRIsShorter(t *testing.T) {
	// 60 chars: below MinTextLength so OCR runs, above MinUsableLength
	// so the native output still wins a tie-down.
	native := strings.Repeat("ab ", 20)
	pages := &stubPages{pdfText: native, ocrText: "noise"}
	o := newTestOrchestrator(t, pages)

	res, err := o.Extract(context.Background(), pdfDoc("mixed"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, pages.ocrCalls)
	assert.Equal(t, StrategyPDFText, res.Strategy)
	assert.Equal(t, strings.TrimSpace(native), res.Text)
}

func TestExtractPDFExhausted(t *testing.T) {
	pages := &stubPages{pdfText: "", ocrText: "??"}
	o := newTestOrchestrator(t, pages)

	_, err := o.Extract(context.Background(), pdfDoc("blank"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhausted))

	var ee *Error
	require.True(t, errors.As(err, &ee))
	assert.Len(t, ee.Attempts, 2)
}

func TestExtractPlainTextNeverExhaustsOnContent(t *testing.T) {
	// Even a two-character file is accepted for plain text; exhaustion
	// is reserved for empty decodes.
	o := newTestOrchestrator(t, &stubPages{})
	doc := Document{Filename: "resume.txt", Data: []byte("JD")}

	res, err := o.Extract(context.Background(), doc, nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyRawText, res.Strategy)
	assert.Equal(t, "JD", res.Text)
}

func TestExtractDocxDocument(t *testing.T) {
	o := newTestOrchestrator(t, &stubPages{})
	doc := Document{
		Filename: "resume.docx",
		Data: buildDocx(t,
			"Jane Doe",
			longText("Led the payments platform team."),
		),
	}

	res, err := o.Extract(context.Background(), doc, nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyDocx, res.Strategy)
	assert.Contains(t, res.Text, "Jane Doe")
	assert.Contains(t, res.Text, "payments platform")
}

func TestExtractImageOCR(t *testing.T) {
	pages := &stubPages{imgText: longText("Jane Doe")}
	o := newTestOrchestrator(t, pages)
	doc := Document{Filename: "resume.png", Data: []byte("\x89PNG\r\n\x1a\nrest")}

	res, err := o.Extract(context.Background(), doc, nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyOCR, res.Strategy)
	assert.Equal(t, 1, res.Pages)
}

func TestExtractImageOCRFailure(t *testing.T) {
	pages := &stubPages{imgErr: errors.New("tesseract exploded")}
	o := newTestOrchestrator(t, pages)
	doc := Document{Filename: "resume.png", Data: []byte("\x89PNG\r\n\x1a\nrest")}

	_, err := o.Extract(context.Background(), doc, nil)
	assert.True(t, errors.Is(err, ErrExhausted))
}

func TestExtractReportsProgress(t *testing.T) {
	o := newTestOrchestrator(t, &stubPages{})
	var labels []string
	progress := func(done, total int, label string) {
		labels = append(labels, label)
	}
	_, err := o.Extract(context.Background(), Document{Filename: "r.txt", Data: []byte("hello world")}, progress)
	require.NoError(t, err)
	assert.Equal(t, "validating", labels[0])
	assert.Equal(t, "done", labels[len(labels)-1])
}

// buildDocx assembles a minimal OOXML archive with one paragraph per
// argument.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	body.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>")
		if err := xmlEscapeTo(&body, p); err != nil {
			t.Fatal(err)
		}
		body.WriteString("</w:t></w:r></w:p>")
	}
	body.WriteString("</w:body></w:document>")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(body.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func xmlEscapeTo(b *strings.Builder, s string) error {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	_, err := r.WriteString(b, s)
	return err
}
