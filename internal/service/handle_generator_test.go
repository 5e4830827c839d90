package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "resepku/internal/errors"
)

type fakeHandleChecker struct {
	exists func(handle string) (bool, error)
	calls  int
}

func (f *fakeHandleChecker) HandleExists(_ context.Context, handle string) (bool, error) {
	f.calls++
	return f.exists(handle)
}

func TestHandleGenerator_Format(t *testing.T) {
	checker := &fakeHandleChecker{exists: func(string) (bool, error) { return false, nil }}
	gen := NewHandleGenerator(checker)

	for i := 0; i < 50; i++ {
		handle, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, `^@cook\d{6}$`, handle)
	}
}

func TestHandleGenerator_RetriesOnCollision(t *testing.T) {
	collisions := 3
	checker := &fakeHandleChecker{}
	checker.exists = func(string) (bool, error) {
		return checker.calls <= collisions, nil
	}
	gen := NewHandleGenerator(checker)

	handle, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^@cook\d{6}$`, handle)
	assert.Equal(t, collisions+1, checker.calls)
}

func TestHandleGenerator_Exhaustion(t *testing.T) {
	checker := &fakeHandleChecker{exists: func(string) (bool, error) { return true, nil }}
	gen := NewHandleGenerator(checker)

	_, err := gen.Generate(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrHandleSpaceExhausted)
	assert.Equal(t, maxHandleAttempts, checker.calls)
}
