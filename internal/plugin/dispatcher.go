package plugin

import (
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// DefaultTimeout bounds a single plugin invocation. Fired actions are
// latency-sensitive; a plugin that cannot act quickly should not act at all.
const DefaultTimeout = 500 * time.Millisecond

// Dispatcher fans one fired action out to every plugin that declares it.
type Dispatcher struct {
	manager  *Manager
	executor *Executor
	configs  map[string]json.RawMessage
}

// NewDispatcher creates a Dispatcher over the given manager. Per-plugin
// configuration is keyed by plugin name and passed through verbatim.
func NewDispatcher(m *Manager, configs map[string]json.RawMessage) *Dispatcher {
	return &Dispatcher{
		manager:  m,
		executor: NewExecutor(DefaultTimeout),
		configs:  configs,
	}
}

// Dispatch delivers the fired action to each plugin declaring it, in
// sequence. Plugin failures are collected, not fatal: one broken plugin
// must not stop the others.
func (d *Dispatcher) Dispatch(action, gesture string) error {
	var firstErr error

	for _, p := range d.manager.ForAction(action) {
		req := &Request{
			Action:  action,
			Gesture: gesture,
			Config:  d.configs[p.Manifest.Name],
		}

		resp, err := d.executor.Execute(p, req)
		if err == nil && !resp.Success {
			err = fmt.Errorf("plugin %s: %s", p.Manifest.Name, resp.Error)
		}
		if err != nil {
			log.Printf("Plugin %s failed for action %s: %v", p.Manifest.Name, action, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
