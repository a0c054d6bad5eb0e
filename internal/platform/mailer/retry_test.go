package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls    int
	failUpTo int
}

func (f *fakeSender) Send(ctx context.Context, msg Message) error {
	f.calls++
	if f.calls <= f.failUpTo {
		return errors.New("smtp unavailable")
	}
	return nil
}

func newTestRetrying(inner Sender) *RetryingSender {
	r := NewRetryingSender(inner, nil)
	r.initialDelay = time.Millisecond
	return r
}

func TestRetryingSenderEventualSuccess(t *testing.T) {
	inner := &fakeSender{failUpTo: 2}
	r := newTestRetrying(inner)

	err := r.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryingSenderGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &fakeSender{failUpTo: 10}
	r := newTestRetrying(inner)

	err := r.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "hi"})
	require.Error(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryingSenderHonorsContextCancel(t *testing.T) {
	inner := &fakeSender{failUpTo: 10}
	r := newTestRetrying(inner)
	r.initialDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	err := r.Send(ctx, Message{To: []string{"a@b.c"}})
	assert.ErrorIs(t, err, context.Canceled)
}
