package shutdown

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

type fakeStoppable struct {
	calls int
	err   error
}

func (f *fakeStoppable) Shutdown(ctx context.Context) error {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("missing deadline")
	}
	return f.err
}

func TestStopOnTrigger(t *testing.T) {
	s := &fakeStoppable{}
	trigger, fire := context.WithCancel(context.Background())
	fire()

	stopOn(context.Background(), trigger, s, time.Second, logging.NewNop())
	assert.Equal(t, 1, s.calls)
}

func TestStopOnShutdownError(t *testing.T) {
	s := &fakeStoppable{err: errors.New("busy")}
	trigger, fire := context.WithCancel(context.Background())
	fire()

	stopOn(context.Background(), trigger, s, time.Second, logging.NewNop())
	assert.Equal(t, 1, s.calls)
}

func TestGracefulReturnsWhenParentEnds(t *testing.T) {
	s := &fakeStoppable{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Graceful(ctx, []os.Signal{syscall.SIGUSR2}, s, time.Second, logging.NewNop())
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Graceful did not return after parent context ended")
	}
	assert.Equal(t, 0, s.calls)
}
