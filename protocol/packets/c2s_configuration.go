package packets

import (
	"io"

	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// ChatMode is the value of C2SClientInformationPacketData.ChatMode.
type ChatMode ns.VarInt

const (
	ChatModeEnabled ChatMode = iota
	ChatModeCommandsOnly
	ChatModeHidden
)

// MainHand is the value of C2SClientInformationPacketData.MainHand.
type MainHand ns.VarInt

const (
	MainHandLeft MainHand = iota
	MainHandRight
)

// ParticleStatus is the value of C2SClientInformationPacketData.ParticleStatus.
type ParticleStatus ns.VarInt

const (
	ParticleStatusAll ParticleStatus = iota
	ParticleStatusDecreased
	ParticleStatusMinimal
)

// DisplayedSkinParts is the bit mask carried in Client Information, unpacked
// into individually named flags.
type DisplayedSkinParts struct {
	Cape         bool
	Jacket       bool
	LeftSleeve   bool
	RightSleeve  bool
	LeftPantsLeg bool
	RightPantsLeg bool
	Hat          bool
}

// FromByte unpacks the wire bit mask (bit 7 is unused).
func (d *DisplayedSkinParts) FromByte(b byte) {
	d.Cape = b&0x01 != 0
	d.Jacket = b&0x02 != 0
	d.LeftSleeve = b&0x04 != 0
	d.RightSleeve = b&0x08 != 0
	d.LeftPantsLeg = b&0x10 != 0
	d.RightPantsLeg = b&0x20 != 0
	d.Hat = b&0x40 != 0
}

// ToByte packs the flags back into the wire bit mask.
func (d DisplayedSkinParts) ToByte() byte {
	var b byte
	if d.Cape {
		b |= 0x01
	}
	if d.Jacket {
		b |= 0x02
	}
	if d.LeftSleeve {
		b |= 0x04
	}
	if d.RightSleeve {
		b |= 0x08
	}
	if d.LeftPantsLeg {
		b |= 0x10
	}
	if d.RightPantsLeg {
		b |= 0x20
	}
	if d.Hat {
		b |= 0x40
	}
	return b
}

// C2SClientInformationPacketData represents "Client Information" (serverbound/configuration).
//
// > Sent when the player connects, or when settings are changed.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Client_Information_(configuration)
type C2SClientInformationPacketData struct {
	// e. g. `en_GB`
	Locale ns.String
	// Client-side render distance, in chunks.
	ViewDistance ns.Int8
	// 0: enabled, 1: commands only, 2: hidden, see ChatMode
	ChatMode ns.VarInt
	// "Colors" multiplayer setting. The vanilla server stores this value but does nothing with it.
	ChatColors ns.Boolean
	// Bit mask, see DisplayedSkinParts
	SkinParts DisplayedSkinParts
	// 0: Left, 1: Right, see MainHand
	MainHand ns.VarInt
	// Enables filtering of text on signs and written book titles.
	EnableTextFiltering ns.Boolean
	// Servers usually list online players; this lets a player opt out.
	AllowServerListings ns.Boolean
	// 0: all, 1: decreased, 2: minimal, see ParticleStatus
	ParticleStatus ns.VarInt
}

func (p *C2SClientInformationPacketData) ID() ns.VarInt   { return 0x00 }
func (p *C2SClientInformationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *C2SClientInformationPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SClientInformationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Locale, err = buf.ReadString(16); err != nil {
		return err
	}
	if p.ViewDistance, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.ChatMode, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ChatColors, err = buf.ReadBool(); err != nil {
		return err
	}
	mask, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.SkinParts.FromByte(byte(mask))
	if p.MainHand, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.EnableTextFiltering, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.AllowServerListings, err = buf.ReadBool(); err != nil {
		return err
	}
	p.ParticleStatus, err = buf.ReadVarInt()
	return err
}

func (p *C2SClientInformationPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Locale); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ChatMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ChatColors); err != nil {
		return err
	}
	if err := buf.WriteUint8(ns.Uint8(p.SkinParts.ToByte())); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MainHand); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableTextFiltering); err != nil {
		return err
	}
	if err := buf.WriteBool(p.AllowServerListings); err != nil {
		return err
	}
	return buf.WriteVarInt(p.ParticleStatus)
}

// C2SCookieResponseConfigurationPacketData represents "Cookie Response (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Response_(configuration)
type C2SCookieResponseConfigurationPacketData struct {
	Key     ns.Identifier
	Payload ns.PrefixedOptional[ns.ByteArray]
}

func (p *C2SCookieResponseConfigurationPacketData) ID() ns.VarInt   { return 0x01 }
func (p *C2SCookieResponseConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *C2SCookieResponseConfigurationPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SCookieResponseConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Key, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	return p.Payload.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.ByteArray, error) {
		return b.ReadByteArray(5120)
	})
}

func (p *C2SCookieResponseConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return err
	}
	return p.Payload.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.ByteArray) error {
		return b.WriteByteArray(v)
	})
}

// C2SCustomPayloadConfigurationPacketData represents "Serverbound Plugin Message (configuration)".
//
// > Note that the length of Data is known only from the packet length, since the packet has no
// length field of any kind.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Plugin_Message_(configuration)
type C2SCustomPayloadConfigurationPacketData struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (p *C2SCustomPayloadConfigurationPacketData) ID() ns.VarInt   { return 0x02 }
func (p *C2SCustomPayloadConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *C2SCustomPayloadConfigurationPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SCustomPayloadConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Data, err = io.ReadAll(buf.Reader())
	return err
}

func (p *C2SCustomPayloadConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Data)
}

// C2SFinishConfigurationPacketData represents "Acknowledge Finish Configuration".
//
// > Sent by the client to notify the server that the configuration process has finished.
// This packet switches the connection state to play.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Acknowledge_Finish_Configuration
type C2SFinishConfigurationPacketData struct{}

func (p *C2SFinishConfigurationPacketData) ID() ns.VarInt               { return 0x03 }
func (p *C2SFinishConfigurationPacketData) State() jp.State             { return jp.StateConfiguration }
func (p *C2SFinishConfigurationPacketData) Bound() jp.Bound             { return jp.C2S }
func (p *C2SFinishConfigurationPacketData) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *C2SFinishConfigurationPacketData) Write(buf *ns.PacketBuffer) error { return nil }

// C2SKeepAliveConfigurationPacketData represents "Serverbound Keep Alive (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Keep_Alive_(configuration)
type C2SKeepAliveConfigurationPacketData struct {
	KeepAliveID ns.Int64
}

func (p *C2SKeepAliveConfigurationPacketData) ID() ns.VarInt   { return 0x04 }
func (p *C2SKeepAliveConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *C2SKeepAliveConfigurationPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SKeepAliveConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *C2SKeepAliveConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// C2SPongConfigurationPacketData represents "Pong (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Pong_(configuration)
type C2SPongConfigurationPacketData struct {
	ID_ ns.Int32
}

func (p *C2SPongConfigurationPacketData) ID() ns.VarInt   { return 0x05 }
func (p *C2SPongConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *C2SPongConfigurationPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SPongConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.ID_, err = buf.ReadInt32()
	return err
}

func (p *C2SPongConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.ID_)
}

// ResourcePackStatus is the value of C2SResourcePackConfigurationPacketData.Result.
type ResourcePackStatus ns.VarInt

const (
	ResourcePackStatusSuccessfullyDownloaded ResourcePackStatus = iota
	ResourcePackStatusDeclined
	ResourcePackStatusFailedToDownload
	ResourcePackStatusAccepted
	ResourcePackStatusDownloaded
	ResourcePackStatusInvalidURL
	ResourcePackStatusFailedToReload
	ResourcePackStatusDiscarded
)

// C2SResourcePackConfigurationPacketData represents "Resource Pack Response (Configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Resource_Pack_Response_(Configuration)
type C2SResourcePackConfigurationPacketData struct {
	UUID   ns.UUID
	Result ns.VarInt
}

func (p *C2SResourcePackConfigurationPacketData) ID() ns.VarInt   { return 0x06 }
func (p *C2SResourcePackConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *C2SResourcePackConfigurationPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SResourcePackConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	p.Result, err = buf.ReadVarInt()
	return err
}

func (p *C2SResourcePackConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return err
	}
	return buf.WriteVarInt(p.Result)
}

// KnownPack identifies a data pack the client reports as already present, so
// the server can omit its contents from the Registry Data packets.
type KnownPack struct {
	Namespace ns.String
	ID        ns.String
	Version   ns.String
}

// C2SSelectKnownPacksPacketData represents "Serverbound Known Packs" (serverbound/configuration).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Known_Packs
type C2SSelectKnownPacksPacketData struct {
	KnownPacks ns.PrefixedArray[KnownPack]
}

func (p *C2SSelectKnownPacksPacketData) ID() ns.VarInt   { return 0x07 }
func (p *C2SSelectKnownPacksPacketData) State() jp.State { return jp.StateConfiguration }
func (p *C2SSelectKnownPacksPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SSelectKnownPacksPacketData) Read(buf *ns.PacketBuffer) error {
	return p.KnownPacks.DecodeWith(buf, func(b *ns.PacketBuffer) (KnownPack, error) {
		var kp KnownPack
		var err error
		if kp.Namespace, err = b.ReadString(0); err != nil {
			return kp, err
		}
		if kp.ID, err = b.ReadString(0); err != nil {
			return kp, err
		}
		kp.Version, err = b.ReadString(0)
		return kp, err
	})
}

func (p *C2SSelectKnownPacksPacketData) Write(buf *ns.PacketBuffer) error {
	return p.KnownPacks.EncodeWith(buf, func(b *ns.PacketBuffer, kp KnownPack) error {
		if err := b.WriteString(kp.Namespace); err != nil {
			return err
		}
		if err := b.WriteString(kp.ID); err != nil {
			return err
		}
		return b.WriteString(kp.Version)
	})
}

// C2SCustomClickActionConfigurationPacketData represents "Custom Click Action (configuration)".
//
// > Sent when the client clicks a Text Component with the minecraft:custom click action.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Custom_Click_Action_(configuration)
type C2SCustomClickActionConfigurationPacketData struct {
	ID_     ns.Identifier
	Payload ns.ByteArray
}

func (p *C2SCustomClickActionConfigurationPacketData) ID() ns.VarInt   { return 0x08 }
func (p *C2SCustomClickActionConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *C2SCustomClickActionConfigurationPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SCustomClickActionConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.ID_, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Payload, err = io.ReadAll(buf.Reader())
	return err
}

func (p *C2SCustomClickActionConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.ID_); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Payload)
}
