package packets

import (
	"io"

	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// S2CDisconnectLoginPacketData represents "Disconnect (login)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Disconnect_(login)
type S2CDisconnectLoginPacketData struct {
	Reason ns.TextComponent
}

func (p *S2CDisconnectLoginPacketData) ID() ns.VarInt   { return 0x00 }
func (p *S2CDisconnectLoginPacketData) State() jp.State { return jp.StateLogin }
func (p *S2CDisconnectLoginPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CDisconnectLoginPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Reason, err = buf.ReadTextComponent()
	return err
}

func (p *S2CDisconnectLoginPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteTextComponent(p.Reason)
}

// S2CEncryptionRequestPacketData represents "Encryption Request".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Request
type S2CEncryptionRequestPacketData struct {
	ServerID  ns.String
	PublicKey ns.ByteArray
	VerifyTok ns.ByteArray
}

func (p *S2CEncryptionRequestPacketData) ID() ns.VarInt   { return 0x01 }
func (p *S2CEncryptionRequestPacketData) State() jp.State { return jp.StateLogin }
func (p *S2CEncryptionRequestPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CEncryptionRequestPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.ServerID, err = buf.ReadString(20); err != nil {
		return err
	}
	if p.PublicKey, err = buf.ReadByteArray(4096); err != nil {
		return err
	}
	p.VerifyTok, err = buf.ReadByteArray(512)
	return err
}

func (p *S2CEncryptionRequestPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	return buf.WriteByteArray(p.VerifyTok)
}

// LoginSuccessProperty is one entry of the profile property array carried by
// S2CLoginSuccessPacketData (textures, capes, etc).
type LoginSuccessProperty struct {
	Name      ns.String
	Value     ns.String
	Signature ns.PrefixedOptional[ns.String]
}

// S2CLoginSuccessPacketData represents "Login Success".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Success
type S2CLoginSuccessPacketData struct {
	UUID       ns.UUID
	Username   ns.String
	Properties ns.PrefixedArray[LoginSuccessProperty]
}

func (p *S2CLoginSuccessPacketData) ID() ns.VarInt   { return 0x02 }
func (p *S2CLoginSuccessPacketData) State() jp.State { return jp.StateLogin }
func (p *S2CLoginSuccessPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CLoginSuccessPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.Username, err = buf.ReadString(16); err != nil {
		return err
	}
	return p.Properties.DecodeWith(buf, func(b *ns.PacketBuffer) (LoginSuccessProperty, error) {
		var prop LoginSuccessProperty
		var err error
		if prop.Name, err = b.ReadString(0); err != nil {
			return prop, err
		}
		if prop.Value, err = b.ReadString(0); err != nil {
			return prop, err
		}
		err = prop.Signature.DecodeWith(b, func(b2 *ns.PacketBuffer) (ns.String, error) {
			return b2.ReadString(0)
		})
		return prop, err
	})
}

func (p *S2CLoginSuccessPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return err
	}
	if err := buf.WriteString(p.Username); err != nil {
		return err
	}
	return p.Properties.EncodeWith(buf, func(b *ns.PacketBuffer, prop LoginSuccessProperty) error {
		if err := b.WriteString(prop.Name); err != nil {
			return err
		}
		if err := b.WriteString(prop.Value); err != nil {
			return err
		}
		return prop.Signature.EncodeWith(b, func(b2 *ns.PacketBuffer, v ns.String) error {
			return b2.WriteString(v)
		})
	})
}

// S2CSetCompressionPacketData represents "Set Compression".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Compression
type S2CSetCompressionPacketData struct {
	Threshold ns.VarInt
}

func (p *S2CSetCompressionPacketData) ID() ns.VarInt   { return 0x03 }
func (p *S2CSetCompressionPacketData) State() jp.State { return jp.StateLogin }
func (p *S2CSetCompressionPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetCompressionPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Threshold, err = buf.ReadVarInt()
	return err
}

func (p *S2CSetCompressionPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.Threshold)
}

// S2CLoginPluginRequestPacketData represents "Login Plugin Request".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Plugin_Request
type S2CLoginPluginRequestPacketData struct {
	MessageID ns.VarInt
	Channel   ns.Identifier
	Data      ns.ByteArray
}

func (p *S2CLoginPluginRequestPacketData) ID() ns.VarInt   { return 0x04 }
func (p *S2CLoginPluginRequestPacketData) State() jp.State { return jp.StateLogin }
func (p *S2CLoginPluginRequestPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CLoginPluginRequestPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Data, err = io.ReadAll(buf.Reader())
	return err
}

func (p *S2CLoginPluginRequestPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return err
	}
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Data)
}
