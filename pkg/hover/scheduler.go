package hover

// OnTick runs one scheduler cycle: pick the single instance under the
// pointer and poll it. Affinity is sticky, so an active instance keeps
// receiving polls without rescanning as long as the pointer stays inside
// its rect; this avoids reselecting every tick when widgets overlap.
func (e *Engine) OnTick() {
	if !e.running {
		return
	}
	ptr, err := e.native.CursorPos()
	if err != nil {
		return
	}

	if a := e.active; a != nil && e.native.VisibleEnabled(a.handle) {
		if rect, err := e.native.WindowRect(a.handle); err == nil {
			a.rect = rect
			if rect.Contains(ptr) {
				e.poll(a)
				return
			}
		}
	}

	e.active = nil
	for _, inst := range e.order {
		if !e.native.VisibleEnabled(inst.handle) {
			continue
		}
		rect, err := e.native.WindowRect(inst.handle)
		if err != nil {
			continue
		}
		inst.rect = rect
		if !rect.Contains(ptr) {
			continue
		}
		e.active = inst
		// Prime the pointer memory so the first poll of a freshly selected
		// instance does not read a spurious "moved".
		inst.lastPointer = ptr
		e.poll(inst)
		return
	}
	// Pointer over none of the registered widgets: idle tick.
}
