package packets

import (
	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
)

// C2STeleportConfirmPacketData represents "Teleport Confirm" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Teleport_Confirm
type C2STeleportConfirmPacketData struct {
	TeleportID ns.VarInt
}

func (p *C2STeleportConfirmPacketData) ID() ns.VarInt   { return 0x00 }
func (p *C2STeleportConfirmPacketData) State() jp.State { return jp.StatePlay }
func (p *C2STeleportConfirmPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2STeleportConfirmPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.TeleportID, err = buf.ReadVarInt()
	return err
}

func (p *C2STeleportConfirmPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.TeleportID)
}

// C2SChatMessagePacketData represents "Chat Message" (serverbound/play).
//
// > Note: for this library, only the raw content is exposed; the acknowledgement/signing
// chain vanilla servers expect from a signed-chat-enabled client is not implemented.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chat_Message
type C2SChatMessagePacketData struct {
	Message   ns.String
	Timestamp ns.Int64
	Salt      ns.Int64
}

func (p *C2SChatMessagePacketData) ID() ns.VarInt   { return 0x03 }
func (p *C2SChatMessagePacketData) State() jp.State { return jp.StatePlay }
func (p *C2SChatMessagePacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SChatMessagePacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Message, err = buf.ReadString(256); err != nil {
		return err
	}
	if p.Timestamp, err = buf.ReadInt64(); err != nil {
		return err
	}
	p.Salt, err = buf.ReadInt64()
	return err
}

func (p *C2SChatMessagePacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Message); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.Timestamp); err != nil {
		return err
	}
	return buf.WriteInt64(p.Salt)
}

// C2SChatCommandPacketData represents "Chat Command" (serverbound/play), sent for
// any message beginning with "/".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chat_Command
type C2SChatCommandPacketData struct {
	Command ns.String
}

func (p *C2SChatCommandPacketData) ID() ns.VarInt   { return 0x04 }
func (p *C2SChatCommandPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SChatCommandPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SChatCommandPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Command, err = buf.ReadString(256)
	return err
}

func (p *C2SChatCommandPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Command)
}

// C2SMovePlayerPosPacketData represents "Set Player Position" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Player_Position
type C2SMovePlayerPosPacketData struct {
	X, Y, Z ns.Float64
	Flags   ns.Uint8
}

func (p *C2SMovePlayerPosPacketData) ID() ns.VarInt   { return 0x1C }
func (p *C2SMovePlayerPosPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SMovePlayerPosPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SMovePlayerPosPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	p.Flags, err = buf.ReadUint8()
	return err
}

func (p *C2SMovePlayerPosPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	return buf.WriteUint8(p.Flags)
}

// C2SMovePlayerPosRotPacketData represents "Set Player Position and Rotation" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Player_Position_and_Rotation
type C2SMovePlayerPosRotPacketData struct {
	X, Y, Z    ns.Float64
	Yaw, Pitch ns.Float32
	Flags      ns.Uint8
}

func (p *C2SMovePlayerPosRotPacketData) ID() ns.VarInt   { return 0x1D }
func (p *C2SMovePlayerPosRotPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SMovePlayerPosRotPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SMovePlayerPosRotPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.Flags, err = buf.ReadUint8()
	return err
}

func (p *C2SMovePlayerPosRotPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteUint8(p.Flags)
}

// C2SMovePlayerRotPacketData represents "Set Player Rotation" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Player_Rotation
type C2SMovePlayerRotPacketData struct {
	Yaw, Pitch ns.Float32
	Flags      ns.Uint8
}

func (p *C2SMovePlayerRotPacketData) ID() ns.VarInt   { return 0x1E }
func (p *C2SMovePlayerRotPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SMovePlayerRotPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SMovePlayerRotPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return err
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return err
	}
	p.Flags, err = buf.ReadUint8()
	return err
}

func (p *C2SMovePlayerRotPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteUint8(p.Flags)
}

// C2SMovePlayerStatusOnlyPacketData represents "Set Player Movement Flags" (serverbound/play),
// sent when neither position nor rotation changed but on-ground status may have.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Player_Movement_Flags
type C2SMovePlayerStatusOnlyPacketData struct {
	Flags ns.Uint8
}

func (p *C2SMovePlayerStatusOnlyPacketData) ID() ns.VarInt   { return 0x1F }
func (p *C2SMovePlayerStatusOnlyPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SMovePlayerStatusOnlyPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SMovePlayerStatusOnlyPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.Flags, err = buf.ReadUint8()
	return err
}

func (p *C2SMovePlayerStatusOnlyPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteUint8(p.Flags)
}

// PlayerCommandAction is the value of C2SPlayerCommandPacketData.ActionID.
type PlayerCommandAction ns.VarInt

const (
	PlayerCommandStartSneaking PlayerCommandAction = iota
	PlayerCommandStopSneaking
	PlayerCommandLeaveBed
	PlayerCommandStartSprinting
	PlayerCommandStopSprinting
	PlayerCommandStartJumpWithHorse
	PlayerCommandStopJumpWithHorse
	PlayerCommandOpenVehicleInventory
	PlayerCommandStartFlyingWithElytra
)

// C2SPlayerCommandPacketData represents "Player Command" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Player_Command
type C2SPlayerCommandPacketData struct {
	EntityID  ns.VarInt
	ActionID  ns.VarInt
	JumpBoost ns.VarInt
}

func (p *C2SPlayerCommandPacketData) ID() ns.VarInt   { return 0x25 }
func (p *C2SPlayerCommandPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SPlayerCommandPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SPlayerCommandPacketData) Read(buf *ns.PacketBuffer) (err error) {
	if p.EntityID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ActionID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.JumpBoost, err = buf.ReadVarInt()
	return err
}

func (p *C2SPlayerCommandPacketData) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ActionID); err != nil {
		return err
	}
	return buf.WriteVarInt(p.JumpBoost)
}

// C2SKeepAlivePlayPacketData represents "Serverbound Keep Alive (play)". The client
// must echo back the ID the server sent in its own Keep Alive within 15 seconds.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Keep_Alive_(play)
type C2SKeepAlivePlayPacketData struct {
	KeepAliveID ns.Int64
}

func (p *C2SKeepAlivePlayPacketData) ID() ns.VarInt   { return 0x1A }
func (p *C2SKeepAlivePlayPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SKeepAlivePlayPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SKeepAlivePlayPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *C2SKeepAlivePlayPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// C2SPingRequestPlayPacketData represents "Ping Request (play)" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_Request_(play)
type C2SPingRequestPlayPacketData struct {
	ID_ ns.Int64
}

func (p *C2SPingRequestPlayPacketData) ID() ns.VarInt   { return 0x24 }
func (p *C2SPingRequestPlayPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SPingRequestPlayPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SPingRequestPlayPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.ID_, err = buf.ReadInt64()
	return err
}

func (p *C2SPingRequestPlayPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.ID_)
}

// C2SClientCommandPacketData represents "Client Command" (serverbound/play), used
// to request respawn or open the stats screen.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Client_Command
type C2SClientCommandPacketData struct {
	ActionID ns.VarInt
}

func (p *C2SClientCommandPacketData) ID() ns.VarInt   { return 0x0A }
func (p *C2SClientCommandPacketData) State() jp.State { return jp.StatePlay }
func (p *C2SClientCommandPacketData) Bound() jp.Bound { return jp.C2S }

func (p *C2SClientCommandPacketData) Read(buf *ns.PacketBuffer) (err error) {
	p.ActionID, err = buf.ReadVarInt()
	return err
}

func (p *C2SClientCommandPacketData) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.ActionID)
}
