package parse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haroldmt/resume-parser/internal/extract"
	"github.com/haroldmt/resume-parser/internal/parser"
	"github.com/haroldmt/resume-parser/internal/sections"
)

// failPages stands in for the exec-backed extractors; plain-text
// documents never reach it.
type failPages struct{}

func (failPages) PDFText(context.Context, string) (string, int, []string, error) {
	return "", 0, nil, errors.New("unavailable")
}

func (failPages) PDFOCR(context.Context, string, extract.ProgressFunc) (string, int, []string, error) {
	return "", 0, nil, errors.New("unavailable")
}

func (failPages) ImageOCR(context.Context, string) (string, []string, error) {
	return "", nil, errors.New("unavailable")
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	orch := extract.NewOrchestrator(extract.Config{WorkDir: t.TempDir()}, failPages{}, nil)
	pipeline := parser.NewProcessor(orch, sections.NewEngine(sections.DefaultRuleSet(), nil), nil)
	return NewService(nil, pipeline, nil, nil)
}

func TestParseBytes(t *testing.T) {
	svc := newTestService(t)
	text := "Jane Doe\njane.doe@example.com\n\nExperience\nSenior Engineer at Acme Corp\nJan 2020 - Present\n"

	out, err := svc.ParseBytes(context.Background(), "resume.txt", []byte(text), nil)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", out.Data.Contact.Email)
	require.NotEmpty(t, out.Data.WorkExperiences)
	assert.Equal(t, "Senior Engineer", out.Data.WorkExperiences[0].JobTitle)
}

func TestParseBytesRequiresFilename(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ParseBytes(context.Background(), "  ", []byte("text"), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseBytesEmptyPayload(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ParseBytes(context.Background(), "resume.txt", nil, nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseFileRejectsBadUUID(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ParseFile(context.Background(), ParseFileRequest{FileID: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMapExtractError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{extract.ErrEmptyFile, codes.InvalidArgument},
		{extract.ErrFileTooLarge, codes.InvalidArgument},
		{extract.ErrUnsupportedFormat, codes.InvalidArgument},
		{extract.ErrExhausted, codes.FailedPrecondition},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, status.Code(mapExtractError(tt.err)), "for %v", tt.err)
	}
}
