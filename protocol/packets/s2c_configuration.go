package packets

import (
	"io"

	jp "github.com/go-mcbot/client/protocol"
	"github.com/go-mcbot/client/nbt"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// S2CCookieRequestConfigurationPacketData represents "Cookie Request (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Request_(configuration)
type S2CCookieRequestConfigurationPacketData struct {
	Key ns.Identifier
}

func (p *S2CCookieRequestConfigurationPacketData) ID() ns.VarInt   { return 0x00 }
func (p *S2CCookieRequestConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *S2CCookieRequestConfigurationPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CCookieRequestConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Key, err = buf.ReadIdentifier()
	return err
}

func (p *S2CCookieRequestConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteIdentifier(p.Key)
}

// S2CCustomPayloadConfigurationPacketData represents "Clientbound Plugin Message (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Plugin_Message_(configuration)
type S2CCustomPayloadConfigurationPacketData struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (p *S2CCustomPayloadConfigurationPacketData) ID() ns.VarInt   { return 0x01 }
func (p *S2CCustomPayloadConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *S2CCustomPayloadConfigurationPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CCustomPayloadConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Data, err = io.ReadAll(buf.Reader())
	return err
}

func (p *S2CCustomPayloadConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Data)
}

// S2CDisconnectConfigurationPacketData represents "Disconnect (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Disconnect_(configuration)
type S2CDisconnectConfigurationPacketData struct {
	Reason ns.TextComponent
}

func (p *S2CDisconnectConfigurationPacketData) ID() ns.VarInt   { return 0x02 }
func (p *S2CDisconnectConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *S2CDisconnectConfigurationPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CDisconnectConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Reason, err = buf.ReadTextComponent()
	return err
}

func (p *S2CDisconnectConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteTextComponent(p.Reason)
}

// S2CFinishConfigurationPacketData represents "Finish Configuration". Has no data.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Finish_Configuration
type S2CFinishConfigurationPacketData struct{}

func (p *S2CFinishConfigurationPacketData) ID() ns.VarInt               { return 0x03 }
func (p *S2CFinishConfigurationPacketData) State() jp.State             { return jp.StateConfiguration }
func (p *S2CFinishConfigurationPacketData) Bound() jp.Bound             { return jp.S2C }
func (p *S2CFinishConfigurationPacketData) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *S2CFinishConfigurationPacketData) Write(buf *ns.PacketBuffer) error { return nil }

// S2CKeepAliveConfigurationPacketData represents "Clientbound Keep Alive (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(configuration)
type S2CKeepAliveConfigurationPacketData struct {
	ID_ ns.Int64
}

func (p *S2CKeepAliveConfigurationPacketData) ID() ns.VarInt   { return 0x04 }
func (p *S2CKeepAliveConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *S2CKeepAliveConfigurationPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CKeepAliveConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.ID_, err = buf.ReadInt64()
	return err
}

func (p *S2CKeepAliveConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.ID_)
}

// S2CPingConfigurationPacketData represents "Ping (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(configuration)
type S2CPingConfigurationPacketData struct {
	ID_ ns.Int32
}

func (p *S2CPingConfigurationPacketData) ID() ns.VarInt   { return 0x05 }
func (p *S2CPingConfigurationPacketData) State() jp.State { return jp.StateConfiguration }
func (p *S2CPingConfigurationPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CPingConfigurationPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.ID_, err = buf.ReadInt32()
	return err
}

func (p *S2CPingConfigurationPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.ID_)
}

// S2CRegistryDataPacketData represents "Registry Data".
//
// > Represents certain registries that are sent from the server and are applied on the client.
// The payload is an NBT compound describing the registry entries.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Registry_Data
type S2CRegistryDataPacketData struct {
	RegistryID ns.Identifier
	Entries    ns.PrefixedArray[RegistryDataEntry]
}

// RegistryDataEntry is one entry of a Registry Data packet: an identifier,
// plus optional inline NBT data (absent means "use the vanilla default").
type RegistryDataEntry struct {
	ID   ns.Identifier
	Data nbt.Tag
}

func (p *S2CRegistryDataPacketData) ID() ns.VarInt   { return 0x07 }
func (p *S2CRegistryDataPacketData) State() jp.State { return jp.StateConfiguration }
func (p *S2CRegistryDataPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CRegistryDataPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.RegistryID, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	return p.Entries.DecodeWith(buf, func(b *ns.PacketBuffer) (RegistryDataEntry, error) {
		var e RegistryDataEntry
		var err error
		if e.ID, err = b.ReadIdentifier(); err != nil {
			return e, err
		}
		present, err := b.ReadBool()
		if err != nil || !bool(present) {
			return e, err
		}
		r := nbt.NewReaderFrom(b)
		e.Data, _, err = r.ReadTag(true)
		return e, err
	})
}

func (p *S2CRegistryDataPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.RegistryID); err != nil {
		return err
	}
	return p.Entries.EncodeWith(buf, func(b *ns.PacketBuffer, e RegistryDataEntry) error {
		if err := b.WriteIdentifier(e.ID); err != nil {
			return err
		}
		if e.Data == nil {
			return b.WriteBool(false)
		}
		if err := b.WriteBool(true); err != nil {
			return err
		}
		w := nbt.NewWriterTo(b)
		return w.WriteTag(e.Data, "", true)
	})
}

// S2CSelectKnownPacksPacketData represents "Clientbound Known Packs".
//
// > Informs the client of which data packs are present on the server.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Known_Packs
type S2CSelectKnownPacksPacketData struct {
	KnownPacks ns.PrefixedArray[KnownPack]
}

func (p *S2CSelectKnownPacksPacketData) ID() ns.VarInt   { return 0x0E }
func (p *S2CSelectKnownPacksPacketData) State() jp.State { return jp.StateConfiguration }
func (p *S2CSelectKnownPacksPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CSelectKnownPacksPacketData) Read(buf *ns.PacketBuffer) error {
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

func (p *S2CSelectKnownPacksPacketData) Write(buf *ns.PacketBuffer) error {
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
