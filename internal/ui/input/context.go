package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Focused int   // case study index of the focused carousel
	Order   []int // case study indices that have a carousel
	Slides  func(index int) int
}

// FocusedCarousel returns the focused case study index, -1 for none
func (c *ModelContext) FocusedCarousel() int {
	return c.Focused
}

// CarouselCount returns the number of mounted carousels
func (c *ModelContext) CarouselCount() int {
	return len(c.Order)
}

// SlideCount returns the number of slides in the focused carousel
func (c *ModelContext) SlideCount() int {
	if c.Focused < 0 || c.Slides == nil {
		return 0
	}
	return c.Slides(c.Focused)
}
