// Package auth defines the external authentication boundary used by the
// connection state machine. Session/Microsoft authentication itself is out
// of scope for this module: callers supply a [CredentialProvider] that
// already knows how to produce and refresh a Minecraft access token.
package auth

import "context"

// Credentials is the minimal identity needed to join a server.
//
// AccessToken may be empty for offline-mode servers; in that case the
// connection state machine never performs a session-server join and any
// EncryptionRequest from the server (which implies online mode) is a fatal
// protocol error.
type Credentials struct {
	Username    string
	UUID        string
	AccessToken string
}

// CredentialProvider yields credentials and can refresh an expired access
// token on demand. Implementations typically wrap Microsoft OAuth, a cached
// session, or a static offline-mode identity.
type CredentialProvider interface {
	// Credentials returns the current identity to join with.
	Credentials(ctx context.Context) (Credentials, error)

	// Refresh is called exactly once by the state machine after the session
	// server rejects a join with InvalidSession or ForbiddenOperation. It
	// must return fresh credentials or an error; a second rejection after
	// refresh is always fatal.
	Refresh(ctx context.Context) (Credentials, error)
}

// Static is a [CredentialProvider] for a fixed identity, most commonly an
// offline-mode username where AccessToken is empty. Refresh is a no-op that
// returns the same credentials, matching the "no refresh possible" case for
// offline accounts.
type Static struct {
	Creds Credentials
}

func NewStatic(creds Credentials) Static {
	return Static{Creds: creds}
}

func (s Static) Credentials(context.Context) (Credentials, error) {
	return s.Creds, nil
}

func (s Static) Refresh(context.Context) (Credentials, error) {
	return s.Creds, nil
}
