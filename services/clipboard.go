package services

import "sync"

// Clipboard is the system clipboard. fyne.Clipboard satisfies it.
type Clipboard interface {
	SetContent(content string)
}

// MemoryClipboard keeps the last copied value. Used when no desktop
// clipboard exists and in tests.
type MemoryClipboard struct {
	mu      sync.Mutex
	content string
}

func (c *MemoryClipboard) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = content
}

// Content returns the last copied value.
func (c *MemoryClipboard) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}
