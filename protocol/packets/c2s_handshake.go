package packets

import (
	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// Intent values carried by C2SIntentionPacketData.Intent.
const (
	IntentStatus ns.VarInt = iota + 1
	IntentLogin
	IntentTransfer
)

// C2SIntentionPacketData represents "Intention" (serverbound/handshake).
//
// > This packet causes the server to switch into the target state.
// It should be sent right after opening the TCP connection to prevent the server from disconnecting.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Handshake
type C2SIntentionPacketData struct {
	ProtocolVersion ns.VarInt
	ServerAddress   ns.String
	ServerPort      ns.Uint16
	Intent          ns.VarInt
}

func (p *C2SIntentionPacketData) ID() ns.VarInt   { return 0x00 }
func (p *C2SIntentionPacketData) State() jp.State { return jp.StateHandshake }
func (p *C2SIntentionPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SIntentionPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.ProtocolVersion, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ServerAddress, err = buf.ReadString(255); err != nil {
		return err
	}
	if p.ServerPort, err = buf.ReadUint16(); err != nil {
		return err
	}
	p.Intent, err = buf.ReadVarInt()
	return err
}

func (p *C2SIntentionPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ProtocolVersion); err != nil {
		return err
	}
	if err := buf.WriteString(p.ServerAddress); err != nil {
		return err
	}
	if err := buf.WriteUint16(p.ServerPort); err != nil {
		return err
	}
	return buf.WriteVarInt(p.Intent)
}

// don't handle Legacy Server List Ping, as it's not part of
// the modern protocol that this library is designed to handle
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Legacy_Server_List_Ping
