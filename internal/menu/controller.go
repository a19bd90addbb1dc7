// Package menu implements the per-message action menu state: which
// message's menu is open, whether its language submenu is open, and
// which actions are bound to which messages.
package menu

import "sync"

// Controller owns the open/closed state for every message's action
// menu. The representation makes the exclusivity rules structural: a
// single open ID means at most one main menu is ever open, and the
// submenu flag is only meaningful under that ID, so a submenu can never
// outlive or escape its parent menu.
type Controller struct {
	mu      sync.RWMutex
	openID  string
	submenu bool
}

// NewController creates a controller with everything closed.
func NewController() *Controller {
	return &Controller{}
}

// ToggleMain toggles the main menu for id. Opening it closes any other
// message's menu and always starts with the submenu closed.
func (c *Controller) ToggleMain(id string) {
	if id == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openID == id {
		c.openID = ""
		c.submenu = false
		return
	}
	c.openID = id
	c.submenu = false
}

// ToggleSubmenu toggles the language submenu under id's open menu.
// It is a no-op unless id's main menu is open.
func (c *Controller) ToggleSubmenu(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openID != id {
		return
	}
	c.submenu = !c.submenu
}

// Close dismisses id's menu after one of its actions ran. Foreign or
// unknown ids are no-ops.
func (c *Controller) Close(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openID != id {
		return
	}
	c.openID = ""
	c.submenu = false
}

// CloseAll dismisses every menu, the outside-click behavior.
func (c *Controller) CloseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openID = ""
	c.submenu = false
}

// OpenID returns the id of the message whose menu is open, or "".
func (c *Controller) OpenID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.openID
}

// IsMainOpen reports whether id's main menu is open.
func (c *Controller) IsMainOpen(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return id != "" && c.openID == id
}

// IsSubmenuOpen reports whether id's language submenu is open.
func (c *Controller) IsSubmenuOpen(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return id != "" && c.openID == id && c.submenu
}

// AnyOpen reports whether any menu is open.
func (c *Controller) AnyOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.openID != ""
}
