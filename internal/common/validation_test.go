package common

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator().
		Field("path", "", Required).
		Field("file_id", "not-a-uuid", UUID)

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "path")
	assert.Contains(t, v.ErrorMessage(), "must be a valid UUID")
}

func TestValidatorPasses(t *testing.T) {
	v := NewValidator().
		Field("path", "/data/resumes/jane.pdf", Required).
		Field("file_id", uuid.NewString(), Required, UUID)

	require.False(t, v.HasErrors())
	assert.Empty(t, v.ErrorMessage())
	assert.NoError(t, ValidateAndReturnError(v))
}

func TestValidateAndReturnErrorIsInvalidArgument(t *testing.T) {
	v := NewValidator().Field("path", "  ", Required)
	err := ValidateAndReturnError(v)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestMaxLength(t *testing.T) {
	assert.Nil(t, MaxLength("path", "short", 10))
	assert.NotNil(t, MaxLength("path", strings.Repeat("x", 11), 10))
	// non-string values are not length-checked
	assert.Nil(t, MaxLength("size", 12345, 3))
}

func TestRequiredNilPointer(t *testing.T) {
	var s *string
	assert.NotNil(t, Required("note", s))
	val := "ok"
	assert.Nil(t, Required("note", &val))
}

func TestContextCarriesRequestAndFileIDs(t *testing.T) {
	ctx := WithRequestID(context.Background(), "trace-1")
	ctx = WithFileID(ctx, "file-9")

	assert.Equal(t, "trace-1", RequestIDFromContext(ctx))
	assert.Equal(t, "file-9", FileIDFromContext(ctx))

	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, FileIDFromContext(context.Background()))
}
