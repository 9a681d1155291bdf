package statemachine

import (
	"fmt"
	"time"

	"assetflow/internal/pkg/errs"
)

const (
	// InitialStateID is the first state of every machine.
	InitialStateID = "initiated"

	// TerminalStateID is the last state of every machine.
	TerminalStateID = "completed"
)

// StateDescriptor describes one processing stage. It is purely descriptive:
// the id is the only field the engine acts on, the rest is presentation copy.
type StateDescriptor struct {
	ID          string
	Name        string
	Description string
	Duration    string
}

// Definition is the ordered state machine for one asset class.
// States are traversed strictly one step at a time in slice order.
type Definition struct {
	assetClass          AssetClass
	name                string
	description         string
	states              []StateDescriptor
	estimatedCompletion time.Duration
	estimatedTime       string
}

// NewDefinition builds a validated definition. The sequence must have at least
// two states, start at InitialStateID, end at TerminalStateID, and carry no
// duplicate ids.
func NewDefinition(
	assetClass AssetClass,
	name string,
	description string,
	states []StateDescriptor,
	estimatedCompletion time.Duration,
	estimatedTime string,
) (Definition, error) {
	if err := assetClass.Validate(); err != nil {
		return Definition{}, err
	}
	if len(states) < 2 {
		return Definition{}, errs.NewValueIsInvalidErrorWithCause("states",
			fmt.Errorf("machine for %s has %d states, need at least 2", assetClass, len(states)))
	}
	if states[0].ID != InitialStateID {
		return Definition{}, errs.NewValueIsInvalidErrorWithCause("states",
			fmt.Errorf("first state is %q, must be %q", states[0].ID, InitialStateID))
	}
	if states[len(states)-1].ID != TerminalStateID {
		return Definition{}, errs.NewValueIsInvalidErrorWithCause("states",
			fmt.Errorf("last state is %q, must be %q", states[len(states)-1].ID, TerminalStateID))
	}

	seen := make(map[string]struct{}, len(states))
	for _, s := range states {
		if _, ok := seen[s.ID]; ok {
			return Definition{}, errs.NewValueIsInvalidErrorWithCause("states",
				fmt.Errorf("duplicate state id %q", s.ID))
		}
		seen[s.ID] = struct{}{}
	}

	copied := make([]StateDescriptor, len(states))
	copy(copied, states)

	return Definition{
		assetClass:          assetClass,
		name:                name,
		description:         description,
		states:              copied,
		estimatedCompletion: estimatedCompletion,
		estimatedTime:       estimatedTime,
	}, nil
}

// AssetClass returns the class this machine belongs to.
func (d Definition) AssetClass() AssetClass {
	return d.assetClass
}

// Name returns the display name of the machine.
func (d Definition) Name() string {
	return d.name
}

// Description returns the display description of the machine.
func (d Definition) Description() string {
	return d.description
}

// States returns a copy of the ordered state sequence.
func (d Definition) States() []StateDescriptor {
	copied := make([]StateDescriptor, len(d.states))
	copy(copied, d.states)
	return copied
}

// StateCount returns the number of states in the progression path.
func (d Definition) StateCount() int {
	return len(d.states)
}

// FirstState returns the descriptor every new order starts at.
func (d Definition) FirstState() StateDescriptor {
	return d.states[0]
}

// EstimatedCompletion is the fixed per-class offset added to an order's
// creation time to compute its estimated completion timestamp.
// The defaults are deployment-tunable constants, not business law.
func (d Definition) EstimatedCompletion() time.Duration {
	return d.estimatedCompletion
}

// EstimatedTime returns the human-readable settlement estimate.
func (d Definition) EstimatedTime() string {
	return d.estimatedTime
}

// IndexOf returns the position of a state id in the progression path,
// or -1 if the id is not part of this machine.
func (d Definition) IndexOf(stateID string) int {
	for i, s := range d.states {
		if s.ID == stateID {
			return i
		}
	}
	return -1
}

// StateByID returns the descriptor for a state id.
func (d Definition) StateByID(stateID string) (StateDescriptor, bool) {
	i := d.IndexOf(stateID)
	if i < 0 {
		return StateDescriptor{}, false
	}
	return d.states[i], true
}

// Next returns the state following currentStateID in the progression path.
// The second return is false when currentStateID is the terminal state or is
// not part of this machine; skipping ahead is not expressible through this API.
func (d Definition) Next(currentStateID string) (StateDescriptor, bool) {
	i := d.IndexOf(currentStateID)
	if i < 0 || i >= len(d.states)-1 {
		return StateDescriptor{}, false
	}
	return d.states[i+1], true
}

// IsTerminal reports whether a state id is the machine's terminal state.
func (d Definition) IsTerminal(stateID string) bool {
	return stateID == TerminalStateID
}
