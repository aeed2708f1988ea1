package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "clean", Clean.String())
	assert.Equal(t, "dirty", Dirty.String())

	// Out-of-range values fall back to unknown rather than panicking.
	assert.Equal(t, "unknown", Classification(42).String())
}
