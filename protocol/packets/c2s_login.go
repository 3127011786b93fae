package packets

// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login

import (
	"io"

	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// C2SHelloPacketData represents "Login Start" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Hello
type C2SHelloPacketData struct {
	// Player's Username.
	Name ns.String
	// The UUID of the player logging in. Unused by the vanilla server.
	PlayerUUID ns.UUID
}

func (p *C2SHelloPacketData) ID() ns.VarInt   { return 0x00 }
func (p *C2SHelloPacketData) State() jp.State { return jp.StateLogin }
func (p *C2SHelloPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SHelloPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Name, err = buf.ReadString(16); err != nil {
		return err
	}
	p.PlayerUUID, err = buf.ReadUUID()
	return err
}

func (p *C2SHelloPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Name); err != nil {
		return err
	}
	return buf.WriteUUID(p.PlayerUUID)
}

// C2SKeyPacketData represents "Encryption Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Response
// https://minecraft.wiki/w/Protocol_encryption
type C2SKeyPacketData struct {
	// Shared Secret value, encrypted with the server's public key.
	SharedSecret ns.ByteArray
	// Verify Token value, encrypted with the same public key as the shared secret.
	VerifyToken ns.ByteArray
}

func (p *C2SKeyPacketData) ID() ns.VarInt   { return 0x01 }
func (p *C2SKeyPacketData) State() jp.State { return jp.StateLogin }
func (p *C2SKeyPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SKeyPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.SharedSecret, err = buf.ReadByteArray(512); err != nil {
		return err
	}
	p.VerifyToken, err = buf.ReadByteArray(512)
	return err
}

func (p *C2SKeyPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteByteArray(p.SharedSecret); err != nil {
		return err
	}
	return buf.WriteByteArray(p.VerifyToken)
}

// C2SCustomQueryAnswerPacketData represents "Login Plugin Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Plugin_Response
type C2SCustomQueryAnswerPacketData struct {
	// Should match ID from server.
	MessageID ns.VarInt
	// Any data, depending on the channel. The length of this array must be inferred
	// from the packet length. Only present if the client understood the request.
	Data ns.PrefixedOptional[ns.ByteArray]
}

func (p *C2SCustomQueryAnswerPacketData) ID() ns.VarInt   { return 0x02 }
func (p *C2SCustomQueryAnswerPacketData) State() jp.State { return jp.StateLogin }
func (p *C2SCustomQueryAnswerPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SCustomQueryAnswerPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	return p.Data.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.ByteArray, error) {
		return io.ReadAll(b.Reader())
	})
}

func (p *C2SCustomQueryAnswerPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return err
	}
	return p.Data.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.ByteArray) error {
		return b.WriteFixedByteArray(v)
	})
}

// C2SLoginAcknowledgedPacketData represents "Login Acknowledged" (serverbound/login). Has no fields.
//
// > Acknowledgement to the Login Success packet sent by the server.
// This packet switches the connection state to configuration.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Acknowledged
type C2SLoginAcknowledgedPacketData struct{}

func (p *C2SLoginAcknowledgedPacketData) ID() ns.VarInt               { return 0x03 }
func (p *C2SLoginAcknowledgedPacketData) State() jp.State             { return jp.StateLogin }
func (p *C2SLoginAcknowledgedPacketData) Bound() jp.Bound             { return jp.C2S }
func (p *C2SLoginAcknowledgedPacketData) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *C2SLoginAcknowledgedPacketData) Write(buf *ns.PacketBuffer) error { return nil }

// C2SCookieResponseLoginPacketData represents "Cookie Response (login)" (serverbound/login).
//
// > Response to a Cookie Request (login) from the server.
// The vanilla server only accepts responses of up to 5 kiB in size.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Response_(login)
type C2SCookieResponseLoginPacketData struct {
	// The identifier of the cookie.
	Key ns.Identifier
	// The data of the cookie.
	Payload ns.PrefixedOptional[ns.ByteArray]
}

func (p *C2SCookieResponseLoginPacketData) ID() ns.VarInt   { return 0x04 }
func (p *C2SCookieResponseLoginPacketData) State() jp.State { return jp.StateLogin }
func (p *C2SCookieResponseLoginPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SCookieResponseLoginPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Key, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	return p.Payload.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.ByteArray, error) {
		return b.ReadByteArray(5120)
	})
}

func (p *C2SCookieResponseLoginPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return err
	}
	return p.Payload.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.ByteArray) error {
		return b.WriteByteArray(v)
	})
}
