package proteomics

// renderCache lazily holds a derived string. Mutations invalidate it;
// the next read rebuilds it once. The build funcs used with it are pure,
// so a redundant rebuild after invalidation is correct, just wasted
// work.
type renderCache struct {
	valid bool
	text  string
}

func (c *renderCache) invalidate() {
	c.valid = false
}

func (c *renderCache) get(build func() string) string {
	if !c.valid {
		c.text = build()
		c.valid = true
	}
	return c.text
}
