package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".pdf"))
	assert.True(t, AllowedExt(".DOCX"))
	assert.False(t, AllowedExt(".tmp"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/inbox/.DS_Store"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("/inbox/resume.pdf"))
}
