package widgets

// Cards stores the last-observed visibility boolean per card index, as
// reported by the host's scroll observer, and forwards changes to
// subscribers. Widgets subscribe so their drivers pause off-screen.
type Cards struct {
	visible []bool
	subs    map[int][]func(bool)
}

// NewCards returns an empty visibility store.
func NewCards() *Cards {
	return &Cards{subs: make(map[int][]func(bool))}
}

// Observe records the visibility of a card and notifies its subscribers
// when the value changes.
func (c *Cards) Observe(index int, visible bool) {
	if index < 0 {
		return
	}
	for len(c.visible) <= index {
		c.visible = append(c.visible, false)
	}
	if c.visible[index] == visible {
		return
	}
	c.visible[index] = visible
	for _, fn := range c.subs[index] {
		fn(visible)
	}
}

// Visible returns the last-observed visibility of a card. Unobserved cards
// report false.
func (c *Cards) Visible(index int) bool {
	if index < 0 || index >= len(c.visible) {
		return false
	}
	return c.visible[index]
}

// Subscribe registers fn for visibility changes of one card.
func (c *Cards) Subscribe(index int, fn func(visible bool)) {
	c.subs[index] = append(c.subs[index], fn)
}

// Bind subscribes a widget's driver to a card so it pauses while hidden.
func (c *Cards) Bind(index int, w Widget) {
	c.Subscribe(index, w.SetVisible)
	w.SetVisible(c.Visible(index))
}
