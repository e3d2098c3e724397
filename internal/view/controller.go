// File: internal/view/controller.go

// Package view holds the site's view state machine: five named views plus an
// implicit bootstrapping phase while the existing session is checked.
package view

import (
	"context"
	"errors"

	"talento_backend/internal/careers"
	"talento_backend/internal/gateway"
	"talento_backend/internal/shared"

	"go.uber.org/zap"
)

// View names one of the site's top-level views.
type View string

const (
	ViewHome           View = "home"
	ViewAuth           View = "auth"
	ViewForgotPassword View = "forgot-password"
	ViewDashboard      View = "dashboard"
	ViewCareers        View = "careers"
)

// careersFragmentClosed is written to the URL hash when the job detail
// modal closes while staying on the careers view.
const careersFragmentClosed = "#careers"

// ErrSignInRequired is returned when navigation targets the dashboard
// without an authenticated user in memory.
var ErrSignInRequired = errors.New("dashboard requires a signed-in user")

// SessionSource resolves the current session during bootstrap.
// *gateway.Gateway satisfies it.
type SessionSource interface {
	GetCurrentUser(ctx context.Context, idToken string) gateway.Result[*shared.SessionUser]
}

// Controller drives view transitions. Transitions happen only on explicit
// user actions; nothing here is timer-driven. The controller is not safe
// for concurrent use: it models a single client's view state.
type Controller struct {
	session SessionSource
	logger  *zap.Logger

	current       View
	bootstrapping bool
	user          *shared.SessionUser
	selectedJobID string
	fragment      string
}

// NewController creates a controller in the bootstrapping phase, rendering
// home once the session check completes.
func NewController(session SessionSource, logger *zap.Logger) *Controller {
	return &Controller{
		session:       session,
		logger:        logger.Named("ViewController"),
		current:       ViewHome,
		bootstrapping: true,
	}
}

// Bootstrap performs the async session check that gates the first real
// render. A missing session is the normal signed-out case, not a failure.
func (c *Controller) Bootstrap(ctx context.Context, idToken string) *shared.SessionUser {
	res := c.session.GetCurrentUser(ctx, idToken)
	c.bootstrapping = false
	if res.Success {
		c.user = res.Data
	}
	return c.user
}

// Current returns the active view.
func (c *Controller) Current() View {
	return c.current
}

// IsBootstrapping reports whether the initial session check is still
// pending; callers render a loading view until it clears.
func (c *Controller) IsBootstrapping() bool {
	return c.bootstrapping
}

// User returns the authenticated user held in memory, or nil.
func (c *Controller) User() *shared.SessionUser {
	return c.user
}

// NavigateTo switches views on a nav action. The dashboard is only
// reachable with a user in memory.
func (c *Controller) NavigateTo(target View) error {
	if target == ViewDashboard && c.user == nil {
		return ErrSignInRequired
	}
	c.leaveCareersIfNeeded(target)
	c.current = target
	return nil
}

// SignedIn records a successful sign-in or sign-up and moves to the
// dashboard.
func (c *Controller) SignedIn(user *shared.SessionUser) {
	c.user = user
	c.leaveCareersIfNeeded(ViewDashboard)
	c.current = ViewDashboard
}

// SignOut clears the in-memory user. If the dashboard was showing it is no
// longer reachable, so the controller forces home; any other view stays.
func (c *Controller) SignOut() {
	c.user = nil
	if c.current == ViewDashboard {
		c.current = ViewHome
	}
}

// EnterCareers opens the careers view, honoring a "#careers/{jobId}" hash:
// a known id opens that job's detail immediately, an unknown id leaves the
// plain list showing.
func (c *Controller) EnterCareers(fragment string) {
	c.current = ViewCareers
	c.selectedJobID = ""
	c.fragment = careersFragmentClosed
	if id, ok := careers.ParseShareFragment(fragment); ok {
		if !c.OpenJob(id) {
			c.logger.Debug("Unknown job id in careers hash", zap.String("jobID", id))
		}
	}
}

// OpenJob selects a job detail on the careers view and writes its deep-link
// fragment. Unknown ids and calls outside the careers view are no-ops.
func (c *Controller) OpenJob(jobID string) bool {
	if c.current != ViewCareers {
		return false
	}
	if _, ok := careers.Lookup(jobID); !ok {
		return false
	}
	c.selectedJobID = jobID
	c.fragment = "#careers/" + jobID
	return true
}

// CloseJob dismisses the job detail, dropping the id from the hash while
// keeping the careers fragment.
func (c *Controller) CloseJob() {
	if c.current != ViewCareers {
		return
	}
	c.selectedJobID = ""
	c.fragment = careersFragmentClosed
}

// SelectedJobID returns the open job detail's id, or "" when the list is
// showing.
func (c *Controller) SelectedJobID() string {
	return c.selectedJobID
}

// Fragment returns the URL hash the careers view persists. This is the only
// view state written to the URL; it is empty outside the careers view.
func (c *Controller) Fragment() string {
	return c.fragment
}

func (c *Controller) leaveCareersIfNeeded(target View) {
	if c.current == ViewCareers && target != ViewCareers {
		c.selectedJobID = ""
		c.fragment = ""
	}
}
