package shutdown

import (
	"os"
	"testing"

	"github.com/rs/zerolog"

	"hamview/internal/logger"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.NewZerolog(os.Stderr, zerolog.Disabled))

	var order []string
	m.Register(Func(func() { order = append(order, "first") }))
	m.Register(Func(func() { order = append(order, "second") }))

	m.Shutdown()

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("shutdown order = %v, want [second first]", order)
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	m := NewManager(logger.NewZerolog(os.Stderr, zerolog.Disabled))

	calls := 0
	m.Register(Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	if calls != 1 {
		t.Errorf("shutdown hook ran %d times, want 1", calls)
	}
}
