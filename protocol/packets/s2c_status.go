package packets

import (
	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// S2CStatusResponsePacketData represents "Status Response" (clientbound/status).
// The response is a JSON string.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Status_Response
type S2CStatusResponsePacketData struct {
	JSON ns.String
}

func (p *S2CStatusResponsePacketData) ID() ns.VarInt   { return 0x00 }
func (p *S2CStatusResponsePacketData) State() jp.State { return jp.StateStatus }
func (p *S2CStatusResponsePacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CStatusResponsePacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.JSON, err = buf.ReadString(0)
	return err
}

func (p *S2CStatusResponsePacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.JSON)
}

// S2CPongResponseStatusPacketData represents "Pong Response (status)" (clientbound/status).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Pong_Response_(status)
type S2CPongResponseStatusPacketData struct {
	Payload ns.Int64
}

func (p *S2CPongResponseStatusPacketData) ID() ns.VarInt   { return 0x01 }
func (p *S2CPongResponseStatusPacketData) State() jp.State { return jp.StateStatus }
func (p *S2CPongResponseStatusPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CPongResponseStatusPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *S2CPongResponseStatusPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}
