package nanolog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResultBounds(t *testing.T) {
	r := NewResult(7, strings.Repeat("T", MaxTagSize+4), strings.Repeat("d", MaxDescSize+50))

	assert.Len(t, r.Tag, MaxTagSize)
	assert.Len(t, r.Description, MaxDescSize)
	assert.Equal(t, 7, r.Code)
	assert.False(t, r.Ok())
}

func TestNewResultKeepsShortFields(t *testing.T) {
	r := NewResult(0, "NET", "link established")

	assert.Equal(t, "NET", r.Tag)
	assert.Equal(t, "link established", r.Description)
	assert.True(t, r.Ok())
}

func TestResultAsError(t *testing.T) {
	var err error = NewResult(5, "NET", "connection refused")

	assert.Equal(t, "[NET] 5: connection refused", err.Error())
}

func TestResultDrivesErrorLogging(t *testing.T) {
	l, buf := newBufferLogger(t, plainConfig())

	res := NewResult(5, "NET", "connection refused")
	if !res.Ok() {
		l.Error(res.Tag, "operation failed: %s", res.Description)
	}

	assert.Contains(t, buf.String(), "[1] E : [NET] operation failed: connection refused\n")
}
