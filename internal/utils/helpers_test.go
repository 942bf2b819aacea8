package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrOrEmpty(t *testing.T) {
	assert.Equal(t, "", StrOrEmpty(nil))
	s := "hi"
	assert.Equal(t, "hi", StrOrEmpty(&s))
}

func TestTimeOrZero(t *testing.T) {
	assert.True(t, TimeOrZero(nil).IsZero())
	now := time.Now()
	assert.Equal(t, now, TimeOrZero(&now))
}
