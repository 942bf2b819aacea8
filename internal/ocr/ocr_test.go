package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner dispatches on the binary name so one stub can serve a
// whole ladder run.
type stubRunner struct {
	outputs map[string][]byte
	errs    map[string]error
	calls   []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))
	if err := s.errs[name]; err != nil {
		return nil, []byte("stub failure"), err
	}
	return s.outputs[name], nil, nil
}

func newStubExtractor(cfg Config, r Runner) *Extractor {
	e := NewExtractor(cfg, nil)
	e.runner = r
	return e
}

func TestPDFTextCountsPages(t *testing.T) {
	r := &stubRunner{outputs: map[string][]byte{
		"pdftotext": []byte("page one\fpage two\fpage three"),
	}}
	e := newStubExtractor(Config{}, r)

	text, pages, warns, err := e.PDFText(context.Background(), "in.pdf")
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
	assert.Contains(t, text, "page two")
	assert.Empty(t, warns)
}

func TestPDFTextFailure(t *testing.T) {
	r := &stubRunner{errs: map[string]error{"pdftotext": errors.New("exit 1")}}
	e := newStubExtractor(Config{}, r)

	_, _, warns, err := e.PDFText(context.Background(), "in.pdf")
	require.Error(t, err)
	assert.NotEmpty(t, warns, "stderr should surface as a warning")
}

func TestImageOCRAppliesCleanup(t *testing.T) {
	r := &stubRunner{outputs: map[string][]byte{
		"tesseract": []byte("JaneDoe\r\n\r\n\r\n\r\nSenior   Engineer"),
	}}
	e := newStubExtractor(Config{}, r)

	text, _, err := e.ImageOCR(context.Background(), "scan.png")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSenior Engineer", text)
}

func TestImageOCRPassesLanguageAndTessdata(t *testing.T) {
	r := &stubRunner{outputs: map[string][]byte{"tesseract": []byte("hello")}}
	e := newStubExtractor(Config{TesseractLang: "deu", TessdataDir: "/opt/tessdata"}, r)

	_, _, err := e.ImageOCR(context.Background(), "scan.png")
	require.NoError(t, err)
	require.Len(t, r.calls, 1)
	assert.Contains(t, r.calls[0], "-l deu")
	assert.Contains(t, r.calls[0], "--tessdata-dir /opt/tessdata")
}

func TestTesseractTSVConfidence(t *testing.T) {
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\tJane\n" +
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t70\tDoe\n" +
		"5\t1\t1\t1\t1\t3\t0\t0\t10\t10\t-1\t\n"
	r := &stubRunner{outputs: map[string][]byte{"tesseract": []byte(tsv)}}
	e := newStubExtractor(Config{}, r)

	conf, warns, err := e.tesseractTSVConfidence(context.Background(), "scan.png")
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.InDelta(t, 0.8, conf, 0.001)
}
