package conn

import jp "github.com/go-mcbot/client/protocol"

// Phase is the connection's position in the state machine (spec's state set
// S), which is one state wider than protocol.State: it adds Disconnected,
// the terminal state no packet is ever decoded against.
type Phase uint8

const (
	PhaseHandshake Phase = iota
	PhaseStatus
	PhaseLogin
	PhaseConfiguration
	PhaseGame
	PhaseDisconnected
)

func (p Phase) String() string {
	switch p {
	case PhaseHandshake:
		return "Handshake"
	case PhaseStatus:
		return "Status"
	case PhaseLogin:
		return "Login"
	case PhaseConfiguration:
		return "Configuration"
	case PhaseGame:
		return "Game"
	case PhaseDisconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

// protocolState converts a live Phase to the protocol.State used to key
// packet registrations. Only called while p is a state packets actually get
// decoded in; PhaseDisconnected has no counterpart.
func (p Phase) protocolState() jp.State {
	switch p {
	case PhaseHandshake:
		return jp.StateHandshake
	case PhaseStatus:
		return jp.StateStatus
	case PhaseLogin:
		return jp.StateLogin
	case PhaseConfiguration:
		return jp.StateConfiguration
	default:
		return jp.StatePlay
	}
}
