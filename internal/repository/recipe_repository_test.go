package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripImagePrefix(t *testing.T) {
	assert.Equal(t, "resep/1-a.jpg", stripImagePrefix("uploads/resep/1-a.jpg", "uploads/"))
	// The convention follows the configured upload root.
	assert.Equal(t, "1-a.jpg", stripImagePrefix("static/files/1-a.jpg", "static/files/"))
	// Paths outside the store are passed through untouched.
	assert.Equal(t, "external/a.jpg", stripImagePrefix("external/a.jpg", "uploads/"))
}
