package packets

import (
	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// C2SStatusRequestPacketData represents "Status Request" (serverbound/status). Has no fields.
//
// > The status can only be requested once immediately after the handshake, before any ping.
// The server won't respond otherwise.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Status_Request
type C2SStatusRequestPacketData struct{}

func (p *C2SStatusRequestPacketData) ID() ns.VarInt               { return 0x00 }
func (p *C2SStatusRequestPacketData) State() jp.State             { return jp.StateStatus }
func (p *C2SStatusRequestPacketData) Bound() jp.Bound             { return jp.C2S }
func (p *C2SStatusRequestPacketData) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *C2SStatusRequestPacketData) Write(buf *ns.PacketBuffer) error { return nil }

// C2SPingRequestPacketData represents "Ping Request (status)" (serverbound/status)
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_Request_(status)
type C2SPingRequestPacketData struct {
	// May be any number, but vanilla clients will always use the timestamp in milliseconds.
	Timestamp ns.Int64
}

func (p *C2SPingRequestPacketData) ID() ns.VarInt   { return 0x01 }
func (p *C2SPingRequestPacketData) State() jp.State { return jp.StateStatus }
func (p *C2SPingRequestPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SPingRequestPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Timestamp, err = buf.ReadInt64()
	return err
}

func (p *C2SPingRequestPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Timestamp)
}
