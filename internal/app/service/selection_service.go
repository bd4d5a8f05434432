package service

import (
	"sync"

	"github.com/kaizensushi/storefront-backend/internal/app/model"
	"github.com/kaizensushi/storefront-backend/pkg/logger"
)

// SelectionManager tracks the in-progress custom-item composition, one
// entry per builder step. Unknown step or option ids are silent no-ops.
type SelectionManager interface {
	// Configure replaces the declared steps and empties every selection.
	// Called whenever a catalog is (re)loaded.
	Configure(steps []model.BuilderStep)
	// Toggle flips the named option on the given step and reports whether
	// anything changed.
	Toggle(stepID, optionName string) bool
	// Reset empties every step without touching the declared steps.
	Reset()
	// IsComplete reports whether every required step holds a selection.
	IsComplete() bool
	Snapshot() SelectionSnapshot
}

// StepSelection is the current selection of one step, in declaration order.
type StepSelection struct {
	StepID      string              `json:"step_id"`
	Label       string              `json:"label"`
	Cardinality model.Cardinality   `json:"cardinality"`
	Required    bool                `json:"required"`
	Items       []model.CatalogItem `json:"items"`
}

type SelectionSnapshot struct {
	Steps []StepSelection `json:"steps"`
}

// stepState is the tagged per-step value: exactly one of single/multi is
// meaningful, matching the step's declared cardinality.
type stepState struct {
	step   model.BuilderStep
	single *model.CatalogItem
	multi  []model.CatalogItem // in addition order
}

type selectionManager struct {
	mu     sync.RWMutex
	states []*stepState
	byID   map[string]*stepState
}

func NewSelectionManager() SelectionManager {
	return &selectionManager{
		byID: make(map[string]*stepState),
	}
}

func (m *selectionManager) Configure(steps []model.BuilderStep) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states = make([]*stepState, 0, len(steps))
	m.byID = make(map[string]*stepState, len(steps))
	for _, step := range steps {
		state := &stepState{step: step}
		m.states = append(m.states, state)
		m.byID[step.ID] = state
	}

	logger.Debug("Selection steps configured", map[string]interface{}{
		"steps": len(steps),
	})
}

func (m *selectionManager) Toggle(stepID, optionName string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.byID[stepID]
	if !ok {
		logger.Warn("Toggle on unknown builder step", map[string]interface{}{
			"step_id": stepID,
		})
		return false
	}

	option, ok := findOption(state.step.Options, optionName)
	if !ok {
		logger.Warn("Toggle on unknown builder option", map[string]interface{}{
			"step_id": stepID,
			"option":  optionName,
		})
		return false
	}

	if state.step.Cardinality == model.CardinalityMulti {
		for i, item := range state.multi {
			if item.Name == option.Name {
				state.multi = append(state.multi[:i], state.multi[i+1:]...)
				return true
			}
		}
		state.multi = append(state.multi, option)
		return true
	}

	// Single: re-selecting the current option clears the step, anything
	// else replaces it.
	if state.single != nil && state.single.Name == option.Name {
		state.single = nil
	} else {
		selected := option
		state.single = &selected
	}
	return true
}

func findOption(options []model.CatalogItem, name string) (model.CatalogItem, bool) {
	for _, opt := range options {
		if opt.Name == name {
			return opt, true
		}
	}
	return model.CatalogItem{}, false
}

func (m *selectionManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, state := range m.states {
		state.single = nil
		state.multi = nil
	}
}

func (m *selectionManager) IsComplete() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.states) == 0 {
		return false
	}
	for _, state := range m.states {
		if !state.step.Required {
			continue
		}
		if state.step.Cardinality == model.CardinalityMulti {
			if len(state.multi) == 0 {
				return false
			}
		} else if state.single == nil {
			return false
		}
	}
	return true
}

func (m *selectionManager) Snapshot() SelectionSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := SelectionSnapshot{Steps: make([]StepSelection, 0, len(m.states))}
	for _, state := range m.states {
		sel := StepSelection{
			StepID:      state.step.ID,
			Label:       state.step.Label,
			Cardinality: state.step.Cardinality,
			Required:    state.step.Required,
			Items:       []model.CatalogItem{},
		}
		if state.step.Cardinality == model.CardinalityMulti {
			sel.Items = append(sel.Items, state.multi...)
		} else if state.single != nil {
			sel.Items = append(sel.Items, *state.single)
		}
		snapshot.Steps = append(snapshot.Steps, sel)
	}
	return snapshot
}
