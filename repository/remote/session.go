package remote

import "librarydesk/model"

// Session is the explicit per-request identity handed to every backend
// call. Login populates it, logout drops it; there is no ambient token
// lookup anywhere below the controllers.
type Session struct {
	Token  string
	UserID string
	Role   model.Role
	CCCD   string
}

// Authenticated is gated on token presence alone; expiry is the
// backend's problem.
func (s Session) Authenticated() bool { return s.Token != "" }

// Anonymous is the degraded no-token session used for public routes.
func Anonymous() Session { return Session{} }
