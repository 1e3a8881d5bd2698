package proteomics

import "testing"

func Test_renderCache(t *testing.T) {
	var c renderCache
	builds := 0
	build := func() string {
		builds++
		return "rendered"
	}

	if got := c.get(build); got != "rendered" {
		t.Errorf("get() = %q, want %q", got, "rendered")
	}
	if got := c.get(build); got != "rendered" {
		t.Errorf("get() = %q, want %q", got, "rendered")
	}
	if builds != 1 {
		t.Errorf("build ran %d times for two reads, want 1", builds)
	}

	c.invalidate()
	c.get(build)
	if builds != 2 {
		t.Errorf("build ran %d times after invalidate, want 2", builds)
	}
}

// two renders without an intervening mutation must not rebuild
func Test_rendering_idempotent(t *testing.T) {
	p, err := NewPolymer("TTGS[Phospho]SK")
	if err != nil {
		t.Fatal(err)
	}

	first := p.SequenceWithModifications()
	second := p.SequenceWithModifications()
	if first != second {
		t.Errorf("repeated rendering differed: %q vs %q", first, second)
	}

	// a no-op mutation must not invalidate the cache
	phospho, _ := GetModification("Phospho")
	if n, _ := p.SetModificationAt(phospho, 4); n != 0 {
		t.Error("replacing a modification with an equal one should be a no-op")
	}
	if p.render.valid != true {
		t.Error("no-op mutation dirtied the render cache")
	}

	// a real mutation must
	acetyl, _ := GetModification("Acetyl")
	p.SetTerminusModification(acetyl, NTerminus)
	if p.render.valid {
		t.Error("mutation left the render cache clean")
	}
	if got := p.SequenceWithModifications(); got != "[Acetyl]-TTGS[Phospho]SK" {
		t.Errorf("render after mutation = %q", got)
	}
}
