package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_PassesThroughResults(t *testing.T) {
	cb := NewCircuitBreaker("test")

	result, err := cb.Execute(context.Background(), func() (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensOnFailureRatio(t *testing.T) {
	cb := NewCircuitBreaker("test")
	cb.maxRequests = 5
	boom := errors.New("boom")

	for i := 0; i < 5; i++ {
		_, err := cb.Execute(context.Background(), func() (any, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
	}

	assert.Equal(t, StateOpen, cb.State())

	_, err := cb.Execute(context.Background(), func() (any, error) {
		t.Fatal("must not be called while open")
		return nil, nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb := NewCircuitBreaker("test")
	cb.maxRequests = 2
	cb.timeout = 0

	for i := 0; i < 2; i++ {
		cb.Execute(context.Background(), func() (any, error) {
			return nil, errors.New("boom")
		})
	}
	require.Equal(t, StateHalfOpen, cb.State(), "zero timeout moves straight to half-open")

	_, err := cb.Execute(context.Background(), func() (any, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}
