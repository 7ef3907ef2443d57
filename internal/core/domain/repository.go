package domain

// RepositoryCursor tracks the active mirror within one run.
// It only moves forward.
type RepositoryCursor struct {
	mirrors []string
	index   int
}

// NewRepositoryCursor creates a cursor positioned on the primary mirror.
func NewRepositoryCursor(mirrors []string) *RepositoryCursor {
	return &RepositoryCursor{mirrors: mirrors}
}

// Len returns the number of configured mirrors.
func (c *RepositoryCursor) Len() int {
	return len(c.mirrors)
}

// Primary returns the first mirror, if any.
func (c *RepositoryCursor) Primary() (string, bool) {
	if len(c.mirrors) == 0 {
		return "", false
	}
	return c.mirrors[0], true
}

// Current returns the mirror the cursor points at.
func (c *RepositoryCursor) Current() string {
	if len(c.mirrors) == 0 {
		return ""
	}
	return c.mirrors[c.index]
}

// HasNext reports whether a later mirror is still available.
func (c *RepositoryCursor) HasNext() bool {
	return c.index+1 < len(c.mirrors)
}

// Advance moves to the next mirror and returns it.
// It returns false once the list is exhausted.
func (c *RepositoryCursor) Advance() (string, bool) {
	if !c.HasNext() {
		return "", false
	}
	c.index++
	return c.mirrors[c.index], true
}
