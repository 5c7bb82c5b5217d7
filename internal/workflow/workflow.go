// Package workflow drives the content-approval step sequence shown in the
// progress banner: onboarding, generating, approval, posting. One controller
// models one banner; per-item spinners are tracked separately by the store.
package workflow

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Step is one stage of the fixed approval pipeline.
type Step string

// The fixed step order. Completed steps always form a prefix of this order.
const (
	StepOnboarding Step = "onboarding"
	StepGenerating Step = "generating"
	StepApproval   Step = "approval"
	StepPosting    Step = "posting"
)

// Steps returns the pipeline steps in order.
func Steps() []Step {
	return []Step{StepOnboarding, StepGenerating, StepApproval, StepPosting}
}

// Phase is the controller's position in one approval run.
type Phase int

// Controller phases.
const (
	PhaseIdle Phase = iota
	PhaseApproving
	PhasePosting
	PhaseCompleted
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseApproving:
		return "approving"
	case PhasePosting:
		return "posting"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// State is a snapshot of the controller.
type State struct {
	Phase     Phase
	Current   Step
	Completed []Step
	ItemID    string
}

// baseline indexes into Steps(): the approval baseline has the first two
// steps complete, a posting dispatch has three, full completion has four.
const (
	completedBaseline = 2
	completedPosting  = 3
	completedAll      = 4
)

// DefaultResetDelay is how long the completed banner stays up before the
// controller returns to the approval baseline.
const DefaultResetDelay = 2 * time.Second

// DefaultCallTimeout bounds the backend approval call so a hung backend
// resolves to a failure instead of a stuck posting banner.
const DefaultCallTimeout = 30 * time.Second

// ErrRunInProgress is returned when an approval is requested while another
// run holds the banner.
var ErrRunInProgress = errors.New("an approval is already in progress")

// Controller sequences the visible steps of approving one content item.
// It is safe for concurrent use; only one run may be active at a time.
type Controller struct {
	mu          sync.Mutex
	phase       Phase
	current     Step
	completedN  int
	itemID      string
	gen         int
	resetTimer  *time.Timer
	resetDelay  time.Duration
	callTimeout time.Duration
	afterFunc   func(time.Duration, func()) *time.Timer
	onChange    func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithResetDelay overrides the completed-banner display window.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.resetDelay = d
		}
	}
}

// WithCallTimeout overrides the backend call timeout.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.callTimeout = d
		}
	}
}

// WithAfterFunc replaces the timer source. Tests use this to fire the reset
// deterministically.
func WithAfterFunc(after func(time.Duration, func()) *time.Timer) Option {
	return func(c *Controller) {
		if after != nil {
			c.afterFunc = after
		}
	}
}

// WithTransitionHook registers a callback invoked on every state change.
// The hook runs with the controller lock held and must not call back into
// the controller.
func WithTransitionHook(hook func(State)) Option {
	return func(c *Controller) {
		c.onChange = hook
	}
}

// NewController creates an idle controller at the approval baseline.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		phase:       PhaseIdle,
		current:     StepApproval,
		completedN:  completedBaseline,
		resetDelay:  DefaultResetDelay,
		callTimeout: DefaultCallTimeout,
		afterFunc:   time.AfterFunc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	completed := make([]Step, c.completedN)
	copy(completed, Steps()[:c.completedN])
	return State{
		Phase:     c.phase,
		Current:   c.current,
		Completed: completed,
		ItemID:    c.itemID,
	}
}

func (c *Controller) transitionLocked(phase Phase, current Step, completedN int) {
	c.phase = phase
	c.current = current
	c.completedN = completedN
	if c.onChange != nil {
		c.onChange(c.snapshotLocked())
	}
}

// Run executes one approval: the banner enters the approval baseline, moves
// to posting as soon as the backend call is dispatched, and resolves to
// completed or back to the baseline depending on the call's outcome. After a
// success the completed banner holds for the reset delay, then the
// controller returns to idle at the baseline.
//
// post performs the backend call; it receives a context bounded by the call
// timeout. Run returns post's error unchanged so callers can surface the
// server's message.
func (c *Controller) Run(ctx context.Context, itemID string, post func(context.Context) error) error {
	c.mu.Lock()
	if c.phase == PhaseApproving || c.phase == PhasePosting {
		c.mu.Unlock()
		return ErrRunInProgress
	}
	// A new run claims the banner from a lingering completed display.
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
	c.gen++
	gen := c.gen
	c.itemID = itemID
	c.transitionLocked(PhaseApproving, StepApproval, completedBaseline)
	// Posting is entered optimistically on dispatch; only completion waits
	// for backend confirmation.
	c.transitionLocked(PhasePosting, StepPosting, completedPosting)
	c.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()
	err := post(callCtx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// A newer run owns the banner; do not touch it.
		return err
	}
	if err != nil {
		c.transitionLocked(PhaseFailed, StepApproval, completedBaseline)
		return err
	}
	c.transitionLocked(PhaseCompleted, StepPosting, completedAll)
	c.resetTimer = c.afterFunc(c.resetDelay, func() {
		c.resetAfterDisplay(gen)
	})
	return nil
}

// resetAfterDisplay returns the banner to the idle baseline once the
// completed display window elapses, unless a newer run took over.
func (c *Controller) resetAfterDisplay(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen || c.phase != PhaseCompleted {
		return
	}
	c.itemID = ""
	c.resetTimer = nil
	c.transitionLocked(PhaseIdle, StepApproval, completedBaseline)
}
