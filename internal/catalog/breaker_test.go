package catalog

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestCatalogBreakerIgnoresNotFound(t *testing.T) {
	breaker := newCatalogBreaker()

	for i := 0; i < 20; i++ {
		_, err := breaker.Execute(func() (interface{}, error) {
			return nil, ErrNotFound
		})
		assert.ErrorIs(t, err, ErrNotFound)
	}

	assert.Equal(t, gobreaker.StateClosed, breaker.State())
}

func TestCatalogBreakerTripsOnRealFailures(t *testing.T) {
	breaker := newCatalogBreaker()

	ioErr := errors.New("connection refused")
	for i := 0; i < 20; i++ {
		breaker.Execute(func() (interface{}, error) {
			return nil, ioErr
		})
	}

	assert.Equal(t, gobreaker.StateOpen, breaker.State())
}
