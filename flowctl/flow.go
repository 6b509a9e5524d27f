// Package flowctl implements the credit-based flow controller used by a
// host transport to pace writes into a terminal widget (spec §4.7). It has
// no dependency on vtcore: the teacher repo has no transport/flow-control
// analogue at all (it is a local PTY widget), so this package is grounded
// instead on noppefoxwolf-vibetunnel's pkg/stream/buffer_aggregator.go and
// pkg/session/manager.go — per-channel mutex-guarded state, explicit
// pause-reason sets, and returning observable state rather than invoking
// callbacks synchronously.
package flowctl

import (
	"sync"

	"github.com/google/uuid"
)

// PauseReason names one cause of a global pause (spec §4.7).
type PauseReason uint8

const (
	ReasonTransportBackpressure PauseReason = iota
	ReasonVisibilityHidden
	ReasonOffline
)

// PolicyEventKind discriminates the policy events the controller emits
// (spec §4.7).
type PolicyEventKind uint8

const (
	EventCreditGrant PolicyEventKind = iota
	EventFlowPause
	EventFlowResume
)

// PolicyEvent is a tagged event returned alongside a state-changing call
// (spec §5, "return a next-state value plus a vector of policy events").
type PolicyEvent struct {
	Kind   PolicyEventKind
	Channel ChannelID
	Grant  int
	Reason PauseReason
}

// ChannelID identifies a logical channel registered with the controller.
type ChannelID string

// NewChannelID mints a fresh channel identifier via google/uuid, grounded
// on vibetunnel's session-manager use of uuid for session identity.
func NewChannelID() ChannelID {
	return ChannelID(uuid.NewString())
}

// RegisterOptions configures a channel at registration (spec §4.7,
// "register(id, {windowTarget?, maxWindow?})").
type RegisterOptions struct {
	WindowTarget int
	MaxWindow    int
}

type channelState struct {
	outstanding  int
	windowTarget int
	maxWindow    int
}

// Controller is the credit-based flow controller for one host transport
// (spec §4.7). All methods are synchronous; ordering and scheduling are the
// caller's responsibility (spec §5).
type Controller struct {
	mu       sync.Mutex
	channels map[ChannelID]*channelState
	reasons  map[PauseReason]bool
}

// NewController returns an empty Controller with no registered channels and
// no active pause reasons.
func NewController() *Controller {
	return &Controller{
		channels: make(map[ChannelID]*channelState),
		reasons:  make(map[PauseReason]bool),
	}
}

// Register initializes per-channel credit state (spec §4.7). A zero
// WindowTarget/MaxWindow defaults to 4096/16384.
func (c *Controller) Register(id ChannelID, opts RegisterOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()
	windowTarget := opts.WindowTarget
	if windowTarget <= 0 {
		windowTarget = 4096
	}
	maxWindow := opts.MaxWindow
	if maxWindow <= 0 {
		maxWindow = 16384
	}
	if maxWindow < windowTarget {
		maxWindow = windowTarget
	}
	c.channels[id] = &channelState{windowTarget: windowTarget, maxWindow: maxWindow}
}

// Deregister removes a channel's credit state.
func (c *Controller) Deregister(id ChannelID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.channels, id)
}

// ApplyDataReceipt decreases a channel's outstanding credit by bytes,
// flooring at 0 (spec §4.7, "applyDataReceipt").
func (c *Controller) ApplyDataReceipt(id ChannelID, bytes int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.channels[id]
	if !ok {
		return
	}
	st.outstanding -= bytes
	if st.outstanding < 0 {
		st.outstanding = 0
	}
}

// PlanCreditGrant computes and applies a credit grant for a channel (spec
// §4.7): grant = min(windowTarget - outstanding, maxWindow - outstanding),
// clamped to 0 while globally paused or on an unknown channel. A positive
// grant raises outstanding and returns a credit_grant PolicyEvent.
func (c *Controller) PlanCreditGrant(id ChannelID) (int, *PolicyEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.channels[id]
	if !ok {
		return 0, nil
	}
	if len(c.reasons) > 0 {
		return 0, nil
	}

	grant := st.windowTarget - st.outstanding
	if m := st.maxWindow - st.outstanding; m < grant {
		grant = m
	}
	if grant < 0 {
		grant = 0
	}
	if grant == 0 {
		return 0, nil
	}

	st.outstanding += grant
	ev := PolicyEvent{Kind: EventCreditGrant, Channel: id, Grant: grant}
	return grant, &ev
}

// UpdateTransportBackpressure toggles the transport-backpressure pause
// reason, returning a flow_pause/flow_resume event on a state transition
// (spec §4.7).
func (c *Controller) UpdateTransportBackpressure(active bool) *PolicyEvent {
	return c.updateReason(ReasonTransportBackpressure, active)
}

// UpdateVisibilityHidden toggles the visibility-hidden pause reason.
func (c *Controller) UpdateVisibilityHidden(hidden bool) *PolicyEvent {
	return c.updateReason(ReasonVisibilityHidden, hidden)
}

// UpdateOffline toggles the offline pause reason.
func (c *Controller) UpdateOffline(offline bool) *PolicyEvent {
	return c.updateReason(ReasonOffline, offline)
}

func (c *Controller) updateReason(reason PauseReason, active bool) *PolicyEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasSet := c.reasons[reason]
	if active == wasSet {
		return nil
	}
	if active {
		c.reasons[reason] = true
		return &PolicyEvent{Kind: EventFlowPause, Reason: reason}
	}
	delete(c.reasons, reason)
	return &PolicyEvent{Kind: EventFlowResume, Reason: reason}
}

// Outstanding returns a channel's current outstanding credit, for tests and
// diagnostics.
func (c *Controller) Outstanding(id ChannelID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.channels[id]; ok {
		return st.outstanding
	}
	return 0
}
