// Package checkout tracks the confirmation page lifecycle. A confirmation
// starts in the loading state and settles into exactly one terminal state;
// terminal states never change afterwards.
package checkout

import (
	"sync"

	"github.com/Muashef/audiophile-ecommerce/internal/models"
)

type State string

const (
	StateLoading  State = "loading"
	StateFound    State = "found"
	StateNotFound State = "not-found"
	StateFailed   State = "failed"
)

// Confirmation is the state machine behind one confirmation view. The
// onFound hook fires exactly once, on the transition into StateFound; it
// is where the session cart gets cleared.
type Confirmation struct {
	mu      sync.Mutex
	state   State
	order   *models.Order
	onFound func(order *models.Order)
}

func NewConfirmation(onFound func(order *models.Order)) *Confirmation {
	return &Confirmation{state: StateLoading, onFound: onFound}
}

func (c *Confirmation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Resolve settles the confirmation with a located order. Returns false
// without effect when the confirmation already left the loading state.
func (c *Confirmation) Resolve(order *models.Order) bool {
	c.mu.Lock()

	if c.state != StateLoading {
		c.mu.Unlock()

		return false
	}

	c.state = StateFound
	c.order = order
	hook := c.onFound
	c.mu.Unlock()

	if hook != nil {
		hook(order)
	}

	return true
}

// RejectNotFound settles the confirmation as not-found: the backend
// answered, but no order exists under the requested id.
func (c *Confirmation) RejectNotFound() bool {
	return c.settle(StateNotFound)
}

// Fail settles the confirmation as failed: the lookup itself could not
// complete.
func (c *Confirmation) Fail() bool {
	return c.settle(StateFailed)
}

func (c *Confirmation) settle(terminal State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateLoading {
		return false
	}

	c.state = terminal

	return true
}

// View materializes the current state for the API response. The order is
// only present in the found state.
func (c *Confirmation) View() models.ConfirmationView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := models.ConfirmationView{State: string(c.state)}
	if c.state == StateFound {
		view.Order = c.order
	}

	return view
}
