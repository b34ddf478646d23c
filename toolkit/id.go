package toolkit

// ID uniquely identifies a widget across frames. IDs are derived from
// widget labels hashed against the enclosing ID scope, so a widget keeps
// its ID as long as its label and scope stay the same, regardless of how
// many widgets are submitted around it.
type ID uint64

const (
	fnv64Offset uint64 = 14695981039346656037
	fnv64Prime  uint64 = 1099511628211
)

// hashString hashes s with FNV-1a, chained onto seed so the same label
// yields different IDs under different scopes.
func hashString(seed ID, s string) ID {
	h := uint64(seed)
	if h == 0 {
		h = fnv64Offset
	}
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnv64Prime
	}
	return ID(h)
}

// hashInt hashes an integer, chained onto seed.
func hashInt(seed ID, n int) ID {
	h := uint64(seed)
	if h == 0 {
		h = fnv64Offset
	}
	v := uint64(n)
	for i := 0; i < 8; i++ {
		h ^= v & 0xFF
		h *= fnv64Prime
		v >>= 8
	}
	return ID(h)
}

// GetID returns the ID for a label within the current ID scope.
func (c *Context) GetID(label string) ID {
	return hashString(c.CurrentID(), label)
}

// GetIDInt returns the ID for an integer within the current ID scope.
// Useful for widgets generated in loops without distinct labels.
func (c *Context) GetIDInt(n int) ID {
	return hashInt(c.CurrentID(), n)
}

// PushID pushes a new ID scope derived from id.
// Widgets created until the matching PopID hash their labels against it.
func (c *Context) PushID(id string) {
	c.idStack = append(c.idStack, c.GetID(id))
}

// PushIDInt pushes a new ID scope derived from an integer.
func (c *Context) PushIDInt(n int) {
	c.idStack = append(c.idStack, c.GetIDInt(n))
}

// pushRawID pushes an already-computed ID as a scope.
func (c *Context) pushRawID(id ID) {
	c.idStack = append(c.idStack, id)
}

// PopID pops the current ID scope.
func (c *Context) PopID() {
	if len(c.idStack) == 0 {
		tkLogger.Debug("PopID called on empty ID stack")
		return
	}
	c.idStack = c.idStack[:len(c.idStack)-1]
}

// CurrentID returns the ID at the top of the scope stack, or 0 if the
// stack is empty.
func (c *Context) CurrentID() ID {
	if len(c.idStack) == 0 {
		return 0
	}
	return c.idStack[len(c.idStack)-1]
}
