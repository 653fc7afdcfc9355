package logger

import "sync"

var (
	componentsMu sync.RWMutex
	components   = map[string]*Logger{}
)

// Register binds a logger to a component name.
func Register(component string, l *Logger) {
	componentsMu.Lock()
	components[component] = l
	componentsMu.Unlock()
}

// Unregister drops the logger bound to component.
func Unregister(component string) {
	componentsMu.Lock()
	delete(components, component)
	componentsMu.Unlock()
}

// Get returns the logger bound to component, or the global logger tagged
// with the component name.
func Get(component string) *Logger {
	componentsMu.RLock()
	l, ok := components[component]
	componentsMu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(component)
}

// RegisterComponents binds a component-tagged child of base to each name.
func RegisterComponents(base *Logger, names ...string) {
	for _, name := range names {
		Register(name, base.WithComponent(name))
	}
}
