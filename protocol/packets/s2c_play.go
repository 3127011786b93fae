package packets

import (
	"io"

	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// S2CKeepAlivePlayPacketData represents "Clientbound Keep Alive (play)".
//
// > The server will frequently send out a keep-alive, each containing a random ID.
// The client must respond with the same payload. If the client does not respond within
// 15 seconds, the server kicks it; if the server stops sending keep-alives for 20 seconds,
// the client disconnects with a "Timed out" error.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(play)
type S2CKeepAlivePlayPacketData struct {
	KeepAliveID ns.Int64
}

func (p *S2CKeepAlivePlayPacketData) ID() ns.VarInt   { return 0x26 }
func (p *S2CKeepAlivePlayPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CKeepAlivePlayPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CKeepAlivePlayPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *S2CKeepAlivePlayPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// S2CSystemChatMessagePacketData represents "System Chat Message".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#System_Chat_Message
type S2CSystemChatMessagePacketData struct {
	Content ns.TextComponent
	Overlay ns.Boolean
}

func (p *S2CSystemChatMessagePacketData) ID() ns.VarInt   { return 0x72 }
func (p *S2CSystemChatMessagePacketData) State() jp.State { return jp.StatePlay }
func (p *S2CSystemChatMessagePacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CSystemChatMessagePacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Content, err = buf.ReadTextComponent(); err != nil {
		return err
	}
	p.Overlay, err = buf.ReadBool()
	return err
}

func (p *S2CSystemChatMessagePacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteTextComponent(p.Content); err != nil {
		return err
	}
	return buf.WriteBool(p.Overlay)
}

// S2CPlayerChatMessagePacketData represents "Player Chat Message", a chat message sent by
// another player. Only the plain-text fallback is decoded; the signature chain carried by
// vanilla servers is not verified by this library.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Player_Chat_Message
type S2CPlayerChatMessagePacketData struct {
	SenderUUID      ns.UUID
	Index           ns.VarInt
	Message         ns.String
	Timestamp       ns.Int64
	Salt            ns.Int64
	UnsignedContent ns.PrefixedOptional[ns.TextComponent]
}

func (p *S2CPlayerChatMessagePacketData) ID() ns.VarInt   { return 0x3A }
func (p *S2CPlayerChatMessagePacketData) State() jp.State { return jp.StatePlay }
func (p *S2CPlayerChatMessagePacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CPlayerChatMessagePacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.SenderUUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.Index, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Message, err = buf.ReadString(256); err != nil {
		return err
	}
	if p.Timestamp, err = buf.ReadInt64(); err != nil {
		return err
	}
	if p.Salt, err = buf.ReadInt64(); err != nil {
		return err
	}
	return p.UnsignedContent.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.TextComponent, error) {
		return b.ReadTextComponent()
	})
}

func (p *S2CPlayerChatMessagePacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.SenderUUID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.Index); err != nil {
		return err
	}
	if err := buf.WriteString(p.Message); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.Timestamp); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.Salt); err != nil {
		return err
	}
	return p.UnsignedContent.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.TextComponent) error {
		return b.WriteTextComponent(v)
	})
}

// S2CDisconnectPlayPacketData represents "Disconnect (play)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Disconnect_(play)
type S2CDisconnectPlayPacketData struct {
	Reason ns.TextComponent
}

func (p *S2CDisconnectPlayPacketData) ID() ns.VarInt   { return 0x1D }
func (p *S2CDisconnectPlayPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CDisconnectPlayPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CDisconnectPlayPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Reason, err = buf.ReadTextComponent()
	return err
}

func (p *S2CDisconnectPlayPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteTextComponent(p.Reason)
}

// DeathLocation is carried by Login (play) and Respawn when the player died in a
// different dimension, so the client can render the "you died here" compass.
type DeathLocation struct {
	Dimension ns.Identifier
	Position  ns.Position
}

// S2CLoginPlayPacketData represents "Login (play)", sent once on entering the play state
// with the player's own entity ID and the initial dimension/gamemode.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_(play)
type S2CLoginPlayPacketData struct {
	EntityID            ns.Int32
	IsHardcore          ns.Boolean
	DimensionNames      ns.PrefixedArray[ns.Identifier]
	MaxPlayers          ns.VarInt
	ViewDistance        ns.VarInt
	SimulationDistance  ns.VarInt
	ReducedDebugInfo    ns.Boolean
	EnableRespawnScreen ns.Boolean
	DoLimitedCrafting   ns.Boolean
	DimensionType       ns.VarInt
	DimensionName       ns.Identifier
	HashedSeed          ns.Int64
	GameMode            ns.Uint8
	PreviousGameMode    ns.Int8
	IsDebug             ns.Boolean
	IsFlat              ns.Boolean
	HasDeathLocation    ns.PrefixedOptional[DeathLocation]
	PortalCooldown      ns.VarInt
	SeaLevel            ns.VarInt
	EnforcesSecureChat  ns.Boolean
}

func (p *S2CLoginPlayPacketData) ID() ns.VarInt   { return 0x2B }
func (p *S2CLoginPlayPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CLoginPlayPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CLoginPlayPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadInt32(); err != nil {
		return err
	}
	if p.IsHardcore, err = buf.ReadBool(); err != nil {
		return err
	}
	if err = p.DimensionNames.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.Identifier, error) {
		return b.ReadIdentifier()
	}); err != nil {
		return err
	}
	if p.MaxPlayers, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ViewDistance, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.SimulationDistance, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ReducedDebugInfo, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.EnableRespawnScreen, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DoLimitedCrafting, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DimensionType, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.DimensionName, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	if p.HashedSeed, err = buf.ReadInt64(); err != nil {
		return err
	}
	if p.GameMode, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.PreviousGameMode, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.IsDebug, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.IsFlat, err = buf.ReadBool(); err != nil {
		return err
	}
	if err = p.HasDeathLocation.DecodeWith(buf, func(b *ns.PacketBuffer) (DeathLocation, error) {
		var dl DeathLocation
		var err error
		if dl.Dimension, err = b.ReadIdentifier(); err != nil {
			return dl, err
		}
		dl.Position, err = b.ReadPosition()
		return dl, err
	}); err != nil {
		return err
	}
	if p.PortalCooldown, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.SeaLevel, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.EnforcesSecureChat, err = buf.ReadBool()
	return err
}

func (p *S2CLoginPlayPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsHardcore); err != nil {
		return err
	}
	if err := p.DimensionNames.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.Identifier) error {
		return b.WriteIdentifier(v)
	}); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MaxPlayers); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.SimulationDistance); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ReducedDebugInfo); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableRespawnScreen); err != nil {
		return err
	}
	if err := buf.WriteBool(p.DoLimitedCrafting); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.DimensionType); err != nil {
		return err
	}
	if err := buf.WriteIdentifier(p.DimensionName); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.HashedSeed); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.GameMode); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.PreviousGameMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsDebug); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsFlat); err != nil {
		return err
	}
	if err := p.HasDeathLocation.EncodeWith(buf, func(b *ns.PacketBuffer, dl DeathLocation) error {
		if err := b.WriteIdentifier(dl.Dimension); err != nil {
			return err
		}
		return b.WritePosition(dl.Position)
	}); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.PortalCooldown); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.SeaLevel); err != nil {
		return err
	}
	return buf.WriteBool(p.EnforcesSecureChat)
}

// S2CSetChunkCacheCenterPacketData represents "Set Center Chunk", informing the
// client which chunk coordinate the view-distance radius is now centered on.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Center_Chunk
type S2CSetChunkCacheCenterPacketData struct {
	ChunkX, ChunkZ ns.VarInt
}

func (p *S2CSetChunkCacheCenterPacketData) ID() ns.VarInt   { return 0x57 }
func (p *S2CSetChunkCacheCenterPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CSetChunkCacheCenterPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetChunkCacheCenterPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.ChunkX, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.ChunkZ, err = buf.ReadVarInt()
	return err
}

func (p *S2CSetChunkCacheCenterPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ChunkX); err != nil {
		return err
	}
	return buf.WriteVarInt(p.ChunkZ)
}

// S2CLevelChunkWithLightPacketData represents "Chunk Data and Update Light".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chunk_Data_and_Update_Light
type S2CLevelChunkWithLightPacketData struct {
	ChunkX, ChunkZ ns.Int32
	Chunk          ns.ChunkData
	Light          ns.LightData
}

func (p *S2CLevelChunkWithLightPacketData) ID() ns.VarInt   { return 0x28 }
func (p *S2CLevelChunkWithLightPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CLevelChunkWithLightPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CLevelChunkWithLightPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.ChunkX, err = buf.ReadInt32(); err != nil {
		return err
	}
	if p.ChunkZ, err = buf.ReadInt32(); err != nil {
		return err
	}
	if err = p.Chunk.Decode(buf); err != nil {
		return err
	}
	return p.Light.Decode(buf)
}

func (p *S2CLevelChunkWithLightPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.ChunkX); err != nil {
		return err
	}
	if err := buf.WriteInt32(p.ChunkZ); err != nil {
		return err
	}
	if err := p.Chunk.Encode(buf); err != nil {
		return err
	}
	return p.Light.Encode(buf)
}

// S2CForgetLevelChunkPacketData represents "Unload Chunk", telling the client a
// previously-sent chunk has left its view distance and can be discarded.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Unload_Chunk
type S2CForgetLevelChunkPacketData struct {
	ChunkZ, ChunkX ns.Int32
}

func (p *S2CForgetLevelChunkPacketData) ID() ns.VarInt   { return 0x21 }
func (p *S2CForgetLevelChunkPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CForgetLevelChunkPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CForgetLevelChunkPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.ChunkZ, err = buf.ReadInt32(); err != nil {
		return err
	}
	p.ChunkX, err = buf.ReadInt32()
	return err
}

func (p *S2CForgetLevelChunkPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.ChunkZ); err != nil {
		return err
	}
	return buf.WriteInt32(p.ChunkX)
}

// S2CPlayerPositionPacketData represents "Player Position", the server's authoritative
// teleport that the client must acknowledge with Teleport Confirm using TeleportID.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Player_Position
type S2CPlayerPositionPacketData struct {
	TeleportID                      ns.VarInt
	X, Y, Z                         ns.Float64
	VelocityX, VelocityY, VelocityZ ns.Float64
	Yaw, Pitch                      ns.Float32
	Flags                           ns.Int32
}

func (p *S2CPlayerPositionPacketData) ID() ns.VarInt   { return 0x42 }
func (p *S2CPlayerPositionPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CPlayerPositionPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CPlayerPositionPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.TeleportID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityZ, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.Flags, err = buf.ReadInt32()
	return err
}

func (p *S2CPlayerPositionPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.TeleportID); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityX); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityZ); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteInt32(p.Flags)
}

// S2CAddEntityPacketData represents "Spawn Entity".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Spawn_Entity
type S2CAddEntityPacketData struct {
	EntityID                        ns.VarInt
	EntityUUID                      ns.UUID
	EntityType                      ns.VarInt
	X, Y, Z                         ns.Float64
	Pitch, Yaw, HeadYaw             ns.Angle
	Data                            ns.VarInt
	VelocityX, VelocityY, VelocityZ ns.Int16
}

func (p *S2CAddEntityPacketData) ID() ns.VarInt   { return 0x01 }
func (p *S2CAddEntityPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CAddEntityPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CAddEntityPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.EntityUUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.EntityType, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadAngle(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadAngle(); err != nil {
		return err
	}
	if p.HeadYaw, err = buf.ReadAngle(); err != nil {
		return err
	}
	if p.Data, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadInt16(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadInt16(); err != nil {
		return err
	}
	p.VelocityZ, err = buf.ReadInt16()
	return err
}

func (p *S2CAddEntityPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteUUID(p.EntityUUID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.EntityType); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.Pitch); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.HeadYaw); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.Data); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.VelocityX); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.VelocityY); err != nil {
		return err
	}
	return buf.WriteInt16(p.VelocityZ)
}

// S2CRemoveEntitiesPacketData represents "Remove Entities".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Remove_Entities
type S2CRemoveEntitiesPacketData struct {
	EntityIDs ns.PrefixedArray[ns.VarInt]
}

func (p *S2CRemoveEntitiesPacketData) ID() ns.VarInt   { return 0x47 }
func (p *S2CRemoveEntitiesPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CRemoveEntitiesPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CRemoveEntitiesPacketData) Read(buf *ns.PacketBuffer) error {
	return p.EntityIDs.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.VarInt, error) {
		return b.ReadVarInt()
	})
}

func (p *S2CRemoveEntitiesPacketData) Write(buf *ns.PacketBuffer) error {
	return p.EntityIDs.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.VarInt) error {
		return b.WriteVarInt(v)
	})
}

// S2CMoveEntityPosPacketData represents "Update Entity Position".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Update_Entity_Position
type S2CMoveEntityPosPacketData struct {
	EntityID   ns.VarInt
	DX, DY, DZ ns.Int16
	OnGround   ns.Boolean
}

func (p *S2CMoveEntityPosPacketData) ID() ns.VarInt   { return 0x2F }
func (p *S2CMoveEntityPosPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CMoveEntityPosPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CMoveEntityPosPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.DX, err = buf.ReadInt16(); err != nil {
		return err
	}
	if p.DY, err = buf.ReadInt16(); err != nil {
		return err
	}
	if p.DZ, err = buf.ReadInt16(); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

func (p *S2CMoveEntityPosPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.DX); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.DY); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.DZ); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

// S2CMoveEntityPosRotPacketData represents "Update Entity Position and Rotation".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Update_Entity_Position_and_Rotation
type S2CMoveEntityPosRotPacketData struct {
	EntityID   ns.VarInt
	DX, DY, DZ ns.Int16
	Yaw, Pitch ns.Angle
	OnGround   ns.Boolean
}

func (p *S2CMoveEntityPosRotPacketData) ID() ns.VarInt   { return 0x30 }
func (p *S2CMoveEntityPosRotPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CMoveEntityPosRotPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CMoveEntityPosRotPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.DX, err = buf.ReadInt16(); err != nil {
		return err
	}
	if p.DY, err = buf.ReadInt16(); err != nil {
		return err
	}
	if p.DZ, err = buf.ReadInt16(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadAngle(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadAngle(); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

func (p *S2CMoveEntityPosRotPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.DX); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.DY); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.DZ); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.Pitch); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

// S2CTeleportEntityPacketData represents "Teleport Entity", an absolute position update
// used when the relative-delta encoding of Update Entity Position would overflow.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Teleport_Entity
type S2CTeleportEntityPacketData struct {
	EntityID                        ns.VarInt
	X, Y, Z                         ns.Float64
	VelocityX, VelocityY, VelocityZ ns.Float64
	Yaw, Pitch                      ns.Angle
	OnGround                        ns.Boolean
}

func (p *S2CTeleportEntityPacketData) ID() ns.VarInt   { return 0x1F }
func (p *S2CTeleportEntityPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CTeleportEntityPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CTeleportEntityPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityX, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityY, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.VelocityZ, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadAngle(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadAngle(); err != nil {
		return err
	}
	p.OnGround, err = buf.ReadBool()
	return err
}

func (p *S2CTeleportEntityPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityX); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.VelocityZ); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.Pitch); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

// S2CSetEntityMotionPacketData represents "Set Entity Velocity".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Entity_Velocity
type S2CSetEntityMotionPacketData struct {
	EntityID ns.VarInt
	Velocity ns.LpVec3
}

func (p *S2CSetEntityMotionPacketData) ID() ns.VarInt   { return 0x5D }
func (p *S2CSetEntityMotionPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CSetEntityMotionPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetEntityMotionPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.Velocity, err = buf.ReadLpVec3()
	return err
}

func (p *S2CSetEntityMotionPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	return buf.WriteLpVec3(p.Velocity)
}

// S2CSetEntityMetadataPacketData represents "Set Entity Metadata".
//
// > The raw metadata entry stream is exposed as opaque bytes rather than fully decoded,
// since the per-index type table changes across versions; callers that need specific
// fields (health, pose, sneaking) decode them with the version's metadata table.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Entity_Metadata
type S2CSetEntityMetadataPacketData struct {
	EntityID ns.VarInt
	Metadata ns.ByteArray
}

func (p *S2CSetEntityMetadataPacketData) ID() ns.VarInt   { return 0x5E }
func (p *S2CSetEntityMetadataPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CSetEntityMetadataPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetEntityMetadataPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.Metadata, err = io.ReadAll(buf.Reader())
	return err
}

func (p *S2CSetEntityMetadataPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Metadata)
}

// S2CRotateHeadPacketData represents "Set Head Rotation".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Head_Rotation
type S2CRotateHeadPacketData struct {
	EntityID ns.VarInt
	HeadYaw  ns.Angle
}

func (p *S2CRotateHeadPacketData) ID() ns.VarInt   { return 0x4C }
func (p *S2CRotateHeadPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CRotateHeadPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CRotateHeadPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.HeadYaw, err = buf.ReadAngle()
	return err
}

func (p *S2CRotateHeadPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	return buf.WriteAngle(p.HeadYaw)
}

// S2CPlayerInfoUpdatePacketData represents "Player Info Update". The action-dependent
// entry stream is exposed as opaque bytes; decoding a specific action (add-player,
// update-listed, update-latency, ...) requires walking it against the Actions bit mask.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Player_Info_Update
type S2CPlayerInfoUpdatePacketData struct {
	Actions ns.Uint8
	Entries ns.ByteArray
}

func (p *S2CPlayerInfoUpdatePacketData) ID() ns.VarInt   { return 0x3F }
func (p *S2CPlayerInfoUpdatePacketData) State() jp.State { return jp.StatePlay }
func (p *S2CPlayerInfoUpdatePacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CPlayerInfoUpdatePacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Actions, err = buf.ReadUint8(); err != nil {
		return err
	}
	p.Entries, err = io.ReadAll(buf.Reader())
	return err
}

func (p *S2CPlayerInfoUpdatePacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.Actions); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Entries)
}

// S2CPlayerInfoRemovePacketData represents "Player Info Remove".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Player_Info_Remove
type S2CPlayerInfoRemovePacketData struct {
	UUIDs ns.PrefixedArray[ns.UUID]
}

func (p *S2CPlayerInfoRemovePacketData) ID() ns.VarInt   { return 0x3E }
func (p *S2CPlayerInfoRemovePacketData) State() jp.State { return jp.StatePlay }
func (p *S2CPlayerInfoRemovePacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CPlayerInfoRemovePacketData) Read(buf *ns.PacketBuffer) error {
	return p.UUIDs.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.UUID, error) {
		return b.ReadUUID()
	})
}

func (p *S2CPlayerInfoRemovePacketData) Write(buf *ns.PacketBuffer) error {
	return p.UUIDs.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.UUID) error {
		return b.WriteUUID(v)
	})
}

// S2CSetHealthPacketData represents "Set Health".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Health
type S2CSetHealthPacketData struct {
	Health         ns.Float32
	Food           ns.VarInt
	FoodSaturation ns.Float32
}

func (p *S2CSetHealthPacketData) ID() ns.VarInt   { return 0x62 }
func (p *S2CSetHealthPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CSetHealthPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetHealthPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Health, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Food, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.FoodSaturation, err = buf.ReadFloat32()
	return err
}

func (p *S2CSetHealthPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat32(p.Health); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.Food); err != nil {
		return err
	}
	return buf.WriteFloat32(p.FoodSaturation)
}

// S2CRespawnPacketData represents "Respawn".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Respawn
type S2CRespawnPacketData struct {
	DimensionType      ns.VarInt
	DimensionName      ns.Identifier
	HashedSeed         ns.Int64
	GameMode           ns.Uint8
	PreviousGameMode   ns.Int8
	IsDebug            ns.Boolean
	IsFlat             ns.Boolean
	HasDeathLocation   ns.PrefixedOptional[DeathLocation]
	PortalCooldown     ns.VarInt
	SeaLevel           ns.VarInt
	DataKept           ns.Uint8
}

func (p *S2CRespawnPacketData) ID() ns.VarInt   { return 0x45 }
func (p *S2CRespawnPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CRespawnPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CRespawnPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.DimensionType, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.DimensionName, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	if p.HashedSeed, err = buf.ReadInt64(); err != nil {
		return err
	}
	if p.GameMode, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.PreviousGameMode, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.IsDebug, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.IsFlat, err = buf.ReadBool(); err != nil {
		return err
	}
	if err = p.HasDeathLocation.DecodeWith(buf, func(b *ns.PacketBuffer) (DeathLocation, error) {
		var dl DeathLocation
		var err error
		if dl.Dimension, err = b.ReadIdentifier(); err != nil {
			return dl, err
		}
		dl.Position, err = b.ReadPosition()
		return dl, err
	}); err != nil {
		return err
	}
	if p.PortalCooldown, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.SeaLevel, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.DataKept, err = buf.ReadUint8()
	return err
}

func (p *S2CRespawnPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.DimensionType); err != nil {
		return err
	}
	if err := buf.WriteIdentifier(p.DimensionName); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.HashedSeed); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.GameMode); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.PreviousGameMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsDebug); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsFlat); err != nil {
		return err
	}
	if err := p.HasDeathLocation.EncodeWith(buf, func(b *ns.PacketBuffer, dl DeathLocation) error {
		if err := b.WriteIdentifier(dl.Dimension); err != nil {
			return err
		}
		return b.WritePosition(dl.Position)
	}); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.PortalCooldown); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.SeaLevel); err != nil {
		return err
	}
	return buf.WriteUint8(p.DataKept)
}

// S2CPingPlayPacketData represents "Ping (play)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(play)
type S2CPingPlayPacketData struct {
	ID_ ns.Int32
}

func (p *S2CPingPlayPacketData) ID() ns.VarInt   { return 0x37 }
func (p *S2CPingPlayPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CPingPlayPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CPingPlayPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.ID_, err = buf.ReadInt32()
	return err
}

func (p *S2CPingPlayPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.ID_)
}

// S2CContainerSetContentPacketData represents "Set Container Content",
// replacing the full contents of a window in one packet (sent right after
// Login and Respawn for the player's own inventory, window id 0).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Container_Content
type S2CContainerSetContentPacketData struct {
	WindowID    ns.Uint8
	StateID     ns.VarInt
	Slots       ns.PrefixedArray[ns.Slot]
	CarriedItem ns.Slot
}

func (p *S2CContainerSetContentPacketData) ID() ns.VarInt   { return 0x13 }
func (p *S2CContainerSetContentPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CContainerSetContentPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CContainerSetContentPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.WindowID, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.StateID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if err = p.Slots.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.Slot, error) {
		return b.ReadSlot()
	}); err != nil {
		return err
	}
	p.CarriedItem, err = buf.ReadSlot()
	return err
}

func (p *S2CContainerSetContentPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.WindowID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.StateID); err != nil {
		return err
	}
	if err := p.Slots.EncodeWith(buf, func(b *ns.PacketBuffer, s ns.Slot) error {
		return b.WriteSlot(s)
	}); err != nil {
		return err
	}
	return buf.WriteSlot(p.CarriedItem)
}

// S2CContainerSetSlotPacketData represents "Set Container Slot", a patch to
// a single slot of an already-open window.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Container_Slot
type S2CContainerSetSlotPacketData struct {
	WindowID ns.Int8
	StateID  ns.VarInt
	Slot     ns.Int16
	Item     ns.Slot
}

func (p *S2CContainerSetSlotPacketData) ID() ns.VarInt   { return 0x14 }
func (p *S2CContainerSetSlotPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CContainerSetSlotPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CContainerSetSlotPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.WindowID, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.StateID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Slot, err = buf.ReadInt16(); err != nil {
		return err
	}
	p.Item, err = buf.ReadSlot()
	return err
}

func (p *S2CContainerSetSlotPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt8(p.WindowID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.StateID); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.Slot); err != nil {
		return err
	}
	return buf.WriteSlot(p.Item)
}

// S2CSetHeldItemPacketData represents "Set Held Item", telling the client
// which hotbar slot (0-8) the server considers selected.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Held_Item_(clientbound)
type S2CSetHeldItemPacketData struct {
	Slot ns.Int8
}

func (p *S2CSetHeldItemPacketData) ID() ns.VarInt   { return 0x63 }
func (p *S2CSetHeldItemPacketData) State() jp.State { return jp.StatePlay }
func (p *S2CSetHeldItemPacketData) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetHeldItemPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Slot, err = buf.ReadInt8()
	return err
}

func (p *S2CSetHeldItemPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt8(p.Slot)
}
