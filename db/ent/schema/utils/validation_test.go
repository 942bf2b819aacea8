package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidator(t *testing.T) {
	v := EnumValidator("QUEUED", "RUNNING")

	assert.NoError(t, v("QUEUED"))
	assert.NoError(t, v("RUNNING"))

	err := v("DONE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"DONE"`)
	assert.Contains(t, err.Error(), "QUEUED, RUNNING")
}
