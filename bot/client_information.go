package bot

import "github.com/go-mcbot/client/conn"

// ClientInformation is the client-side settings a bot reports on joining,
// and can resend any time afterward via ClientHandle.SetClientInformation.
// It is the same shape conn.ClientInformation already validates against the
// wire packet; re-exported here so callers never need to import conn
// directly just to configure a bot.
type ClientInformation = conn.ClientInformation

// DefaultClientInformation matches vanilla's client defaults.
func DefaultClientInformation() ClientInformation {
	return conn.DefaultClientInformation()
}
