package testutil

// Counter tracks how many Tracked values are alive, in the sense of the
// element lifecycle: New and Clone add one, Destroy removes one.
type Counter struct {
	Live   int
	Clones int
}

// Tracked is an element type with a copy hook and a destructor, for
// checking that containers construct and destroy exactly once per element.
type Tracked struct {
	cnt  *Counter
	Name []byte
}

// NewTracked constructs a live element registered with cnt.
func (c *Counter) NewTracked(name string) *Tracked {
	c.Live++
	return &Tracked{cnt: c, Name: []byte(name)}
}

// Clone implements alloc.Cloner. The copy owns its own Name.
func (t *Tracked) Clone() *Tracked {
	t.cnt.Live++
	t.cnt.Clones++
	return &Tracked{cnt: t.cnt, Name: append([]byte(nil), t.Name...)}
}

// Destroy implements alloc.Destroyer.
func (t *Tracked) Destroy() {
	t.cnt.Live--
	t.Name = nil
}
