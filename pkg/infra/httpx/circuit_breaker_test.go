package httpx

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCircuitBreaker(t *testing.T) {
	tests := []struct {
		name        string
		breakerName string
		timeout     time.Duration
		maxFailures uint32
	}{
		{name: "Valid circuit breaker", breakerName: "openai-tagger", timeout: 30 * time.Second, maxFailures: 3},
		{name: "Zero timeout", breakerName: "zero-timeout", timeout: 0, maxFailures: 1},
		{name: "Zero max failures", breakerName: "zero-failures", timeout: 10 * time.Second, maxFailures: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := NewCircuitBreaker(tt.breakerName, tt.timeout, tt.maxFailures)

			wrapper, ok := breaker.(*circuitBreakerWrapper)
			assert.True(t, ok)
			assert.Equal(t, tt.breakerName, wrapper.breaker.Name())
			assert.Equal(t, "closed", breaker.State())
		})
	}
}

func TestCircuitBreaker_Failure(t *testing.T) {
	breaker := NewCircuitBreaker("vision", 30*time.Second, 3)
	providerErr := errors.New("503 service unavailable")

	err := breaker.Execute(func() error { return providerErr })

	assert.ErrorIs(t, err, providerErr)
	assert.Contains(t, err.Error(), "breaker (vision)")
	assert.False(t, IsOpen(err))
}

func TestCircuitBreaker_PanicBecomesError(t *testing.T) {
	breaker := NewCircuitBreaker("panicky", 30*time.Second, 3)

	err := breaker.Execute(func() error { panic("nil response") })

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered: nil response")
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("tagger", 30*time.Second, 2)

	for i := 0; i < 2; i++ {
		assert.Error(t, breaker.Execute(func() error { return errors.New("fail") }))
	}

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.True(t, IsOpen(err))
	assert.Equal(t, "open", breaker.State())
}

func TestCircuitBreaker_CancellationDoesNotTrip(t *testing.T) {
	breaker := NewCircuitBreaker("cancel", 30*time.Second, 1)

	err := breaker.Execute(func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	breaker := NewCircuitBreaker("recovery", 50*time.Millisecond, 1)

	assert.Error(t, breaker.Execute(func() error { return errors.New("trigger") }))
	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
}

func TestCircuitBreaker_ConcurrentAccess(t *testing.T) {
	breaker := NewCircuitBreaker("concurrent", 30*time.Second, 100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = breaker.Execute(func() error {
				if id%2 == 0 {
					return nil
				}
				return errors.New("failure")
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "closed", breaker.State())
}
