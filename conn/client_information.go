package conn

import (
	"fmt"

	"github.com/go-mcbot/client/protocol/packets"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// ClientInformation is the client-side settings sent once on entering
// Configuration and resendable any time afterward, same fields as the wire
// packet (protocol/packets.C2SClientInformationPacketData) but with friendly
// Go types instead of raw VarInts.
type ClientInformation struct {
	Locale              string
	ViewDistance        int8
	ChatMode            packets.ChatMode
	ChatColors          bool
	SkinParts           packets.DisplayedSkinParts
	MainHand            packets.MainHand
	EnableTextFiltering bool
	AllowServerListings bool
	ParticleStatus      packets.ParticleStatus
}

// DefaultClientInformation matches vanilla's client defaults: US English,
// a 10-chunk view distance, every skin part shown, right-handed.
func DefaultClientInformation() ClientInformation {
	return ClientInformation{
		Locale:       "en_us",
		ViewDistance: 10,
		ChatMode:     packets.ChatModeEnabled,
		ChatColors:   true,
		SkinParts: packets.DisplayedSkinParts{
			Cape: true, Jacket: true, LeftSleeve: true, RightSleeve: true,
			LeftPantsLeg: true, RightPantsLeg: true, Hat: true,
		},
		MainHand:            packets.MainHandRight,
		EnableTextFiltering: false,
		AllowServerListings: true,
		ParticleStatus:      packets.ParticleStatusAll,
	}
}

// Validate rejects client information vanilla servers would themselves
// reject or that would desync the protocol — checked synchronously so
// callers get a user-input error rather than a later protocol disconnect.
func (c ClientInformation) Validate() error {
	if c.ViewDistance < 1 || c.ViewDistance > 32 {
		return fmt.Errorf("view distance %d out of range [1, 32]", c.ViewDistance)
	}
	if len(c.Locale) == 0 || len(c.Locale) > 16 {
		return fmt.Errorf("locale %q must be 1-16 characters", c.Locale)
	}
	return nil
}

// ToPacket encodes the client information as the wire packet a caller
// outside this package would need to resend it (e.g. after Validate).
func (c ClientInformation) ToPacket() *packets.C2SClientInformationPacketData {
	return c.toPacket()
}

func (c ClientInformation) toPacket() *packets.C2SClientInformationPacketData {
	return &packets.C2SClientInformationPacketData{
		Locale:              ns.String(c.Locale),
		ViewDistance:        ns.Int8(c.ViewDistance),
		ChatMode:            ns.VarInt(c.ChatMode),
		ChatColors:          ns.Boolean(c.ChatColors),
		SkinParts:           c.SkinParts,
		MainHand:            ns.VarInt(c.MainHand),
		EnableTextFiltering: ns.Boolean(c.EnableTextFiltering),
		AllowServerListings: ns.Boolean(c.AllowServerListings),
		ParticleStatus:      ns.VarInt(c.ParticleStatus),
	}
}
