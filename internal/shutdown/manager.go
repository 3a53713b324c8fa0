package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"hamview/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

// Manager runs registered shutdown hooks once, in reverse
// registration order, either on demand or on SIGINT/SIGTERM.
type Manager struct {
	mu         sync.Mutex
	components []Shutdownable
	log        logger.Logger
	done       bool
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{log: log}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		m.log.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return
	}
	m.done = true

	m.log.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		m.components[i].Shutdown()
	}
}
