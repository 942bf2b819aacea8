package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "docx", NormalizeExt("docx"))
	assert.Equal(t, "", NormalizeExt("."))
}

func TestIsAllowedExt(t *testing.T) {
	assert.True(t, IsAllowedExt(".pdf"))
	assert.True(t, IsAllowedExt("JPEG"))
	assert.False(t, IsAllowedExt(".exe"))
	assert.False(t, IsAllowedExt(""))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".pdf"))
	assert.Equal(t, DOCX, MapExtToFormat(".DOC"))
	assert.Equal(t, TXT, MapExtToFormat("rtf"))
	assert.Equal(t, IMAGE, MapExtToFormat(".tiff"))
	assert.Equal(t, "", MapExtToFormat(".zip"))
}
