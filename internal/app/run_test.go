package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRun_ExitCodes(t *testing.T) {
	ok := runWithContext(context.Background(), "test", zerolog.Nop(), func(ctx context.Context) error {
		return nil
	})
	assert.Equal(t, 0, ok)

	failed := runWithContext(context.Background(), "test", zerolog.Nop(), func(ctx context.Context) error {
		return errors.New("boom")
	})
	assert.Equal(t, 1, failed)
}

func TestRun_CanceledWaitsForRunner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := runWithContext(ctx, "test", zerolog.Nop(), func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	})

	assert.Equal(t, 0, code)
	select {
	case <-stopped:
	default:
		t.Fatal("runner was not awaited")
	}
}
