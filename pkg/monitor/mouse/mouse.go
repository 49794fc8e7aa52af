// Package mouse translates terminal mouse input into demo actions and maps
// screen cells back to the pane that owns them.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OneTapDeploy/ListView-Hover-Creator/pkg/hover"
)

// Rect is a cell-based screen region.
type Rect struct {
	X, Y, W, H int
}

// Contains checks if a cell lies within the region (exclusive W/H).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit-test area carrying the widget handle it belongs to.
type Region struct {
	ID     string
	Rect   Rect
	Handle hover.Handle
}

// HitMap resolves screen cells to regions. Regions added later win on
// overlap (drawn on top).
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (hm *HitMap) AddRect(id string, x, y, w, h int, handle hover.Handle) {
	hm.regions = append(hm.regions, Region{
		ID:     id,
		Rect:   Rect{X: x, Y: y, W: w, H: h},
		Handle: handle,
	})
}

// Test returns the topmost region containing the cell, or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Clear removes all regions. Call before re-registering on each layout.
func (hm *HitMap) Clear() {
	hm.regions = nil
}

// Regions returns all registered regions.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// ActionType classifies a translated mouse action.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionHover
	ActionClick
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

// Action is a translated mouse event with the region it landed on.
type Action struct {
	Type   ActionType
	X, Y   int
	Region *Region
}

// Handler translates bubbletea mouse messages against a hit map.
type Handler struct {
	HitMap *HitMap
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse converts a mouse message into an action. Shift+wheel means
// horizontal scrolling: up maps to left, down to right.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionMotion:
		action.Type = ActionHover
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Type = ActionClick
		case tea.MouseButtonWheelUp:
			if msg.Shift {
				action.Type = ActionScrollLeft
			} else {
				action.Type = ActionScrollUp
			}
		case tea.MouseButtonWheelDown:
			if msg.Shift {
				action.Type = ActionScrollRight
			} else {
				action.Type = ActionScrollDown
			}
		case tea.MouseButtonWheelLeft:
			action.Type = ActionScrollLeft
		case tea.MouseButtonWheelRight:
			action.Type = ActionScrollRight
		}
	}

	return action
}
