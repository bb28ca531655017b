package backoffice

import "sync"

const (
	// LoginPath is the unauthenticated entry view.
	LoginPath = "/login"
	// DashboardPath is the default authenticated view.
	DashboardPath = "/dashboard"
)

var _ Navigator = (*MemoryNavigator)(nil)

// MemoryNavigator tracks the current view path in memory. Hosts embedding the
// client into a real UI supply their own Navigator; this one backs tests and
// headless tools.
type MemoryNavigator struct {
	mu   sync.Mutex
	path string
	// History records every navigation signal in order.
	History []string
}

func NewMemoryNavigator(start string) *MemoryNavigator {
	return &MemoryNavigator{path: start}
}

func (n *MemoryNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

func (n *MemoryNavigator) NavigateTo(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = path
	n.History = append(n.History, path)
}
