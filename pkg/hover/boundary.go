package hover

// atExtreme reports whether the instance's content is already at the
// extreme a scroll in dir would push toward. The second return is false
// when the native scroll state could not be read this cycle; callers skip
// the jiggle in that case and retry on a later event.
func (e *Engine) atExtreme(inst *instance, dir Direction) (atExtreme, ok bool) {
	switch dir {
	case DirectionUp, DirectionDown:
		vs, err := e.native.VScroll(inst.handle)
		if err != nil {
			return false, false
		}
		if dir == DirectionUp {
			return vs.Top <= 0, true
		}
		maxTop := vs.Total - vs.PerPage
		if maxTop < 0 {
			maxTop = 0
		}
		return vs.Top >= maxTop, true

	case DirectionLeft, DirectionRight:
		hs, err := e.native.HScroll(inst.handle)
		if err != nil {
			return false, false
		}
		if dir == DirectionLeft {
			return hs.Pos <= hs.Min, true
		}
		slack := 0
		if hs.Page > 0 {
			slack = hs.Page - 1
		}
		return hs.Pos >= hs.Max-slack, true
	}
	return false, false
}
