// Package bot is the public entry point: it wires conn.StateMachine,
// world.*, physics.*, tick.*, and pathfinder.* together behind a single
// ClientHandle, the headless-player API a caller drives instead of reading
// and writing protocol packets directly.
package bot

import (
	"context"
	"fmt"
	"log"
	"math"
	"net"
	"sync"
	"time"

	"github.com/go-mcbot/client/auth"
	"github.com/go-mcbot/client/conn"
	"github.com/go-mcbot/client/nbt"
	"github.com/go-mcbot/client/physics"
	"github.com/go-mcbot/client/pathfinder"
	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
	"github.com/go-mcbot/client/protocol/packets"
	"github.com/go-mcbot/client/tick"
	"github.com/go-mcbot/client/world"
)

// defaultViewDistance seeds the chunk store before the server's own Login
// (play) packet reports its simulation/view distance.
const defaultViewDistance = 10

// eyeHeight is added to an entity's feet Y to get the point it looks from,
// matching the standing player's eye height.
const eyeHeight = 1.62

// overworldMinY/overworldHeight are vanilla's default dimension bounds, used
// when a joined dimension's registry entry can't be resolved.
const (
	overworldMinY  = -64
	overworldHeight = 384
)

// Options configures Join. The zero value is usable: default client
// information, Mojang's production session server, and compression enabled.
type Options struct {
	conn.Options
	ClientInformation ClientInformation
}

// DefaultOptions returns an Options with vanilla-matching client information
// and every conn.Options default.
func DefaultOptions() Options {
	return Options{ClientInformation: DefaultClientInformation()}
}

// ClientHandle is a joined, running bot: its connection, world view, and
// movement state, plus the public control surface a caller drives it with.
// One ClientHandle corresponds to one logged-in player entity.
type ClientHandle struct {
	sm     *conn.StateMachine
	events *tick.EventBus
	ingress *tick.IngressQueue
	egress  *tick.EgressQueue
	sched   *tick.Scheduler

	chunks    *world.ChunkStorage
	entities  *world.EntityStorage
	tabList   *world.TabList
	inventory *world.Inventory
	registry  *world.RegistryHolder

	solid physics.SolidPredicate

	mu         sync.Mutex
	self       physics.Entity
	move       physics.State
	entityID   int32
	teleportID ns.VarInt
	onGround   bool

	pf *pathfinder.Pathfinder

	cancel   context.CancelFunc
	done     chan struct{}
	loggedIn chan struct{}
	runErr   error
}

// nonAirSolid treats every non-zero block state as a full collision cube.
// This library has no block-shape registry (see physics.SolidPredicate's
// doc comment), so zero (air) is the only state this bot ever treats as
// non-solid.
func nonAirSolid(state world.BlockState) bool { return state != 0 }

// Join dials address, runs the full connection lifecycle, and once the Game
// phase is reached returns a running ClientHandle. Join blocks until either
// the Game phase is entered or the attempt fails; the returned handle keeps
// running in the background until Disconnect is called, the connection is
// dropped by the server, or ctx is cancelled.
func Join(ctx context.Context, creds auth.CredentialProvider, address string, opts Options) (*ClientHandle, error) {
	dialAddr, hostname, port, err := conn.ResolveAddress(address)
	if err != nil {
		return nil, fmt.Errorf("bot: resolve address: %w", err)
	}

	netConn, err := (&net.Dialer{}).DialContext(ctx, "tcp", dialAddr)
	if err != nil {
		return nil, fmt.Errorf("bot: dial %s: %w", dialAddr, err)
	}

	registry := jp.NewRegistry()
	packets.RegisterDefaults(registry)

	info := opts.ClientInformation
	if info == (ClientInformation{}) {
		info = DefaultClientInformation()
	}
	sm := conn.NewStateMachine(netConn, registry, creds, info, opts.Options)

	logger := opts.Options.Logger
	if logger == nil {
		logger = log.Default()
	}

	c := &ClientHandle{
		sm:       sm,
		events:   tick.NewEventBus(logger),
		ingress:  tick.NewIngressQueue(),
		egress:   tick.NewEgressQueue(logger, opts.Options.Debug),
		chunks:    world.NewChunkStorage(overworldMinY, overworldHeight, defaultViewDistance),
		entities:  world.NewEntityStorage(),
		tabList:   world.NewTabList(),
		inventory: world.NewInventory(),
		solid:     nonAirSolid,
		done:     make(chan struct{}),
		loggedIn: make(chan struct{}),
	}
	c.sched = tick.NewScheduler(c.runTick, logger, opts.Options.Debug)

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	ready := make(chan error, 1)
	go func() {
		err := sm.Run(runCtx, hostname, port, c.onPacket)
		c.mu.Lock()
		c.runErr = err
		c.mu.Unlock()
		reason := ""
		if de, ok := err.(*conn.DisconnectError); ok {
			reason = de.Reason
		} else if err != nil {
			reason = err.Error()
		}
		c.events.Publish(Disconnect{Reason: reason})
		cancel()
		close(c.done)
	}()

	// Wait for Game phase (or failure) before handing the caller a handle:
	// nothing in ClientHandle is meaningful until the world store exists.
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				ready <- fmt.Errorf("bot: connection ended before reaching game phase")
				return
			case <-ticker.C:
				if sm.Phase() == conn.PhaseGame {
					ready <- nil
					return
				}
			}
		}
	}()

	if err := <-ready; err != nil {
		<-c.done
		if c.runErr != nil {
			return nil, c.runErr
		}
		return nil, err
	}

	c.registry = world.NewRegistryHolder(sm.RegistryData)

	go c.sched.Run(runCtx)
	go func() {
		if err := c.egress.Run(runCtx, sm); err != nil {
			logger.Printf("bot: egress writer stopped: %v", err)
		}
	}()

	// Game phase only means Configuration finished; the entity id and
	// initial dimension bounds aren't set until the scheduler's runTick
	// has drained and applied the Login (play) packet itself. Wait for
	// that so a caller never observes a zero-value entityID/chunks window
	// right after Join returns.
	select {
	case <-c.loggedIn:
	case <-runCtx.Done():
		<-c.done
		if c.runErr != nil {
			return nil, c.runErr
		}
		return nil, fmt.Errorf("bot: connection ended before Login (play)")
	}

	profile := sm.Profile()
	c.events.Publish(Init{UUID: profile.UUID, Username: profile.Username})

	return c, nil
}

// onPacket is the StateMachine's callback for every Game-phase packet not
// already intercepted for connection bookkeeping. It only enqueues: all
// world/entity mutation and event publication happens on the scheduler's
// goroutine via runTick, so callers never observe a half-applied world.
func (c *ClientHandle) onPacket(p jp.Packet) {
	c.ingress.Enqueue(tick.PacketEvent{Entity: c.entityID, Packet: p})
	c.sched.Nudge()
}

// runTick is the scheduler's RunFunc: drain ingress, apply every packet to
// the world/entity/tablist stores, step physics and path execution, then
// emit whatever movement packet the tick's pose change calls for.
func (c *ClientHandle) runTick() {
	for _, ev := range c.ingress.Drain() {
		c.handlePacket(ev.Packet)
	}

	c.mu.Lock()
	c.move.TickControls()
	c.move.MaybeStartSprinting()
	physics.Step(&c.self, &c.move, c.move.Yaw, c.chunks, c.solid)
	c.onGround = c.self.OnGround

	if c.pf != nil {
		snap := pathfinder.Snapshot{
			Pos:      world.Vec3{X: c.self.X, Y: c.self.Y, Z: c.self.Z},
			OnGround: c.self.OnGround,
			Physics:  c.self,
		}
		pathfinder.Tick(c.pf, snap, eyeHeight, c.chunks, c.solid, c.pathfinderEvents())
		if len(c.pf.Path) == 0 {
			c.pf = nil
		}
	}

	yaw, pitch := c.move.Yaw, c.move.Pitch
	out := c.move.NextOutbound(c.self.X, c.self.Y, c.self.Z, yaw, pitch, c.self.OnGround)
	c.mu.Unlock()

	c.sendOutbound(out)

	c.events.Publish(Tick{})
}

// pathfinderEvents builds the callback set Tick drives path execution with,
// translating look/jump/walk/sprint intents into this bot's own move state
// (must be called with c.mu held).
func (c *ClientHandle) pathfinderEvents() pathfinder.Events {
	return pathfinder.Events{
		LookAt: func(target world.Vec3) {
			dx := target.X - c.self.X
			dz := target.Z - c.self.Z
			c.move.Yaw = yawBetween(dx, dz)
		},
		Jump: func() {
			physics.Jump(&c.self)
		},
		Walk: func(dir physics.WalkDirection) {
			c.move.MoveDirection = dir
			c.move.TryingToSprint = false
			c.move.Sprinting = false
		},
		Sprint: func(dir physics.SprintDirection) {
			c.move.MoveDirection = dir.AsWalkDirection()
			c.move.TryingToSprint = true
		},
	}
}

// yawBetween returns the yaw (degrees) facing from the origin toward an
// offset of (dx, dz), matching Minecraft's south-origin, clockwise yaw
// convention.
func yawBetween(dx, dz float64) float32 {
	rad := math.Atan2(-dx, dz)
	return float32(rad * 180 / math.Pi)
}

// sendOutbound enqueues the movement packet an Outbound calls for, if any.
func (c *ClientHandle) sendOutbound(out physics.Outbound) {
	var p jp.Packet
	switch out.Kind {
	case physics.OutboundPosRot:
		p = &packets.C2SMovePlayerPosRotPacketData{
			X: ns.Float64(out.X), Y: ns.Float64(out.Y), Z: ns.Float64(out.Z),
			Yaw: ns.Float32(out.Yaw), Pitch: ns.Float32(out.Pitch),
			Flags: onGroundFlags(out.OnGround),
		}
	case physics.OutboundPos:
		p = &packets.C2SMovePlayerPosPacketData{
			X: ns.Float64(out.X), Y: ns.Float64(out.Y), Z: ns.Float64(out.Z),
			Flags: onGroundFlags(out.OnGround),
		}
	case physics.OutboundRot:
		p = &packets.C2SMovePlayerRotPacketData{
			Yaw: ns.Float32(out.Yaw), Pitch: ns.Float32(out.Pitch),
			Flags: onGroundFlags(out.OnGround),
		}
	case physics.OutboundStatusOnly:
		p = &packets.C2SMovePlayerStatusOnlyPacketData{Flags: onGroundFlags(out.OnGround)}
	default:
		return
	}
	c.send(p)
}

func onGroundFlags(onGround bool) ns.Uint8 {
	if onGround {
		return 1
	}
	return 0
}

func (c *ClientHandle) send(p jp.Packet) {
	if err := c.egress.Enqueue(context.Background(), tick.SendPacket{Entity: c.entityID, Packet: p}); err != nil {
		// Enqueue only fails when its context is cancelled, and
		// context.Background() never is.
		panic(err)
	}
}

// handlePacket applies one decoded Game-phase packet to the world/entity/
// tablist stores and publishes the matching public event. Called only from
// runTick, so it never races the physics/pathfinder step above it.
func (c *ClientHandle) handlePacket(p jp.Packet) {
	defer c.events.Publish(Packet{Raw: p})

	switch pkt := p.(type) {
	case *packets.S2CLoginPlayPacketData:
		c.entityID = int32(pkt.EntityID)
		minY, height := dimensionBounds(c.registry, string(pkt.DimensionName))
		c.mu.Lock()
		c.chunks = world.NewChunkStorage(minY, height, int32(pkt.ViewDistance))
		c.mu.Unlock()
		close(c.loggedIn)

	case *packets.S2CRespawnPacketData:
		minY, height := dimensionBounds(c.registry, string(pkt.DimensionName))
		c.mu.Lock()
		c.chunks = world.NewChunkStorage(minY, height, defaultViewDistance)
		c.mu.Unlock()

	case *packets.S2CSetChunkCacheCenterPacketData:
		c.chunks.SetViewCenter(world.ChunkPos{X: int32(pkt.ChunkX), Z: int32(pkt.ChunkZ)})

	case *packets.S2CLevelChunkWithLightPacketData:
		pos := world.ChunkPos{X: int32(pkt.ChunkX), Z: int32(pkt.ChunkZ)}
		if err := c.chunks.ReplaceWithPacketData(pos, pkt.Chunk); err != nil {
			c.events.Publish(Disconnect{Reason: fmt.Sprintf("decode chunk %+v: %v", pos, err)})
		}

	case *packets.S2CForgetLevelChunkPacketData:
		c.chunks.Remove(world.ChunkPos{X: int32(pkt.ChunkX), Z: int32(pkt.ChunkZ)})

	case *packets.S2CPlayerPositionPacketData:
		c.mu.Lock()
		c.self.X, c.self.Y, c.self.Z = float64(pkt.X), float64(pkt.Y), float64(pkt.Z)
		c.self.VX, c.self.VY, c.self.VZ = 0, 0, 0
		c.move.Yaw, c.move.Pitch = float32(pkt.Yaw), float32(pkt.Pitch)
		c.move.LastSentX, c.move.LastSentY, c.move.LastSentZ = c.self.X, c.self.Y, c.self.Z
		c.move.LastSentYaw, c.move.LastSentPitch = c.move.Yaw, c.move.Pitch
		c.mu.Unlock()
		c.send(&packets.C2STeleportConfirmPacketData{TeleportID: pkt.TeleportID})

	case *packets.S2CAddEntityPacketData:
		c.entities.Add(&world.Entity{
			ID: int32(pkt.EntityID), UUID: pkt.EntityUUID, Type: int32(pkt.EntityType),
			Pos:      world.Vec3{X: float64(pkt.X), Y: float64(pkt.Y), Z: float64(pkt.Z)},
			Velocity: world.Vec3{X: float64(pkt.VelocityX) / 8000, Y: float64(pkt.VelocityY) / 8000, Z: float64(pkt.VelocityZ) / 8000},
			Yaw:      angleToDegrees(pkt.Yaw), Pitch: angleToDegrees(pkt.Pitch), HeadYaw: angleToDegrees(pkt.HeadYaw),
		})

	case *packets.S2CRemoveEntitiesPacketData:
		for _, id := range pkt.EntityIDs {
			c.entities.Remove(int32(id))
		}

	case *packets.S2CMoveEntityPosPacketData:
		c.entities.MoveDelta(int32(pkt.EntityID), float64(pkt.DX)/4096, float64(pkt.DY)/4096, float64(pkt.DZ)/4096, bool(pkt.OnGround))

	case *packets.S2CMoveEntityPosRotPacketData:
		c.entities.MoveDelta(int32(pkt.EntityID), float64(pkt.DX)/4096, float64(pkt.DY)/4096, float64(pkt.DZ)/4096, bool(pkt.OnGround))
		if e, ok := c.entities.Get(int32(pkt.EntityID)); ok {
			e.Yaw, e.Pitch = angleToDegrees(pkt.Yaw), angleToDegrees(pkt.Pitch)
		}

	case *packets.S2CTeleportEntityPacketData:
		c.entities.Teleport(int32(pkt.EntityID),
			world.Vec3{X: float64(pkt.X), Y: float64(pkt.Y), Z: float64(pkt.Z)},
			angleToDegrees(pkt.Yaw), angleToDegrees(pkt.Pitch), bool(pkt.OnGround))

	case *packets.S2CRotateHeadPacketData:
		c.entities.SetHeadYaw(int32(pkt.EntityID), angleToDegrees(pkt.HeadYaw))

	case *packets.S2CSetEntityMetadataPacketData:
		c.entities.SetMetadata(int32(pkt.EntityID), pkt.Metadata)

	case *packets.S2CPlayerInfoUpdatePacketData:
		added, updated, err := c.tabList.ApplyUpdate(uint8(pkt.Actions), pkt.Entries)
		if err != nil {
			c.events.Publish(Disconnect{Reason: fmt.Sprintf("decode player info update: %v", err)})
			return
		}
		for _, u := range added {
			entry, _ := c.tabList.Get(u)
			c.events.Publish(AddPlayer{UUID: u, Name: entry.Name})
		}
		for _, u := range updated {
			c.events.Publish(UpdatePlayer{UUID: u})
		}

	case *packets.S2CPlayerInfoRemovePacketData:
		c.tabList.Remove(pkt.UUIDs)
		for _, u := range pkt.UUIDs {
			c.events.Publish(RemovePlayer{UUID: u})
		}

	case *packets.S2CSystemChatMessagePacketData:
		c.events.Publish(Chat{Message: pkt.Content.String()})

	case *packets.S2CPlayerChatMessagePacketData:
		c.events.Publish(Chat{Message: string(pkt.Message)})

	case *packets.S2CSetHealthPacketData:
		if pkt.Health <= 0 {
			c.events.Publish(Death{})
		}

	case *packets.S2CContainerSetContentPacketData:
		if int(pkt.WindowID) != 0 {
			return // some other container; this client tracks only its own inventory
		}
		c.inventory.ReplaceAll(pkt.Slots, pkt.StateID)
		c.events.Publish(InventoryChanged{})

	case *packets.S2CContainerSetSlotPacketData:
		if int(pkt.WindowID) != 0 {
			return
		}
		c.inventory.Set(int32(pkt.Slot), pkt.Item, pkt.StateID)
		c.events.Publish(InventoryChanged{})

	case *packets.S2CSetHeldItemPacketData:
		c.inventory.SetHeld(int32(pkt.Slot))
		c.events.Publish(InventoryChanged{})
	}
}

// angleToDegrees converts a wire Angle (256ths of a turn) to degrees.
func angleToDegrees(a ns.Angle) float32 {
	return float32(a) * 360.0 / 256.0
}

// dimensionBounds resolves a dimension's min_y/height from the registry data
// gathered during Configuration, falling back to the vanilla overworld's
// bounds if the entry or its NBT fields can't be found — a joined server
// that omits them is still walkable, just possibly with a wrong fall-distance
// cutoff at the world's true floor/ceiling.
func dimensionBounds(holder *world.RegistryHolder, dimensionName string) (minY, height int32) {
	minY, height = overworldMinY, overworldHeight
	if holder == nil {
		return minY, height
	}
	tag, ok := holder.Lookup("minecraft:dimension_type", dimensionName)
	if !ok {
		return minY, height
	}
	compound, ok := tag.(nbt.Compound)
	if !ok {
		return minY, height
	}
	if v, ok := compound["min_y"].(nbt.Int); ok {
		minY = int32(v)
	}
	if v, ok := compound["height"].(nbt.Int); ok {
		height = int32(v)
	}
	return minY, height
}

// Chat sends a chat message, routed as a command if it begins with "/".
func (c *ClientHandle) Chat(text string) {
	if len(text) > 0 && text[0] == '/' {
		c.send(&packets.C2SChatCommandPacketData{Command: ns.String(text[1:])})
		return
	}
	c.send(&packets.C2SChatMessagePacketData{Message: ns.String(text)})
}

// Walk sets the bot's horizontal movement intent, replacing any in-progress
// pathfinder goal's control over it next tick.
func (c *ClientHandle) Walk(dir physics.WalkDirection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pf = nil
	c.move.MoveDirection = dir
	c.move.TryingToSprint = false
	if dir == physics.WalkNone {
		c.move.Sprinting = false
	}
}

// Sprint is Walk plus a request to sprint once enough forward impulse
// builds up. It sends a start-sprinting Player Command when the bot is not
// already sprinting; this client never sends the stop-sprinting command,
// from Sprint, Walk or anywhere else.
func (c *ClientHandle) Sprint(dir physics.SprintDirection) {
	c.mu.Lock()
	wasSprinting := c.move.Sprinting
	c.pf = nil
	c.move.MoveDirection = dir.AsWalkDirection()
	c.move.TryingToSprint = true
	c.mu.Unlock()
	if !wasSprinting {
		c.send(&packets.C2SPlayerCommandPacketData{EntityID: ns.VarInt(c.entityID), ActionID: ns.VarInt(packets.PlayerCommandStartSprinting)})
	}
}

// Sneak starts or stops sneaking, emitting the matching Player Command.
func (c *ClientHandle) Sneak(sneaking bool) {
	c.mu.Lock()
	was := c.move.Sneaking
	c.move.Sneaking = sneaking
	c.mu.Unlock()
	if was == sneaking {
		return
	}
	action := packets.PlayerCommandStopSneaking
	if sneaking {
		action = packets.PlayerCommandStartSneaking
	}
	c.send(&packets.C2SPlayerCommandPacketData{EntityID: ns.VarInt(c.entityID), ActionID: ns.VarInt(action)})
}

// SetJumping requests (or releases) a jump; a jump only actually happens
// once the entity is on the ground, per physics.Jump.
func (c *ClientHandle) SetJumping(jumping bool) {
	if !jumping {
		return
	}
	c.mu.Lock()
	physics.Jump(&c.self)
	c.mu.Unlock()
}

// SetDirection sets the bot's look direction directly, overriding whatever
// the pathfinder's LookAt was about to set this tick.
func (c *ClientHandle) SetDirection(yaw, pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.move.Yaw, c.move.Pitch = yaw, pitch
}

// SetClientInformation resends client settings mid-session, e.g. after the
// caller changes its configured render distance.
func (c *ClientHandle) SetClientInformation(info ClientInformation) error {
	if err := info.Validate(); err != nil {
		return fmt.Errorf("bot: invalid client information: %w", err)
	}
	c.send(info.ToPacket())
	return nil
}

// Disconnect tears down the connection and stops the scheduler/egress
// goroutines. It blocks until the background Run goroutine has returned.
func (c *ClientHandle) Disconnect() {
	c.cancel()
	c.sm.Close()
	<-c.done
}

// On subscribes h to every event the bot publishes (Init, Chat, Tick, Death,
// Packet, Disconnect, AddPlayer, RemovePlayer, UpdatePlayer,
// InventoryChanged).
func (c *ClientHandle) On(h func(tick.Event)) {
	c.events.Subscribe(h)
}

// Goto starts (or replaces) pathfinding toward goal, searching from the
// bot's current block position against its own loaded chunk storage.
func (c *ClientHandle) Goto(goal pathfinder.Goal) {
	c.mu.Lock()
	start := world.BlockPos{X: int32(floorDiv(c.self.X)), Y: int32(floorDiv(c.self.Y)), Z: int32(floorDiv(c.self.Z))}
	w := pathfinder.World{Storage: c.chunks, Solid: pathfinder.Solid(c.solid), Passable: isPassableState}
	c.mu.Unlock()

	path, _ := pathfinder.Search(start, goal, w, pathfinder.AllMoves())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pf = &pathfinder.Pathfinder{Path: path}
}

func isPassableState(state world.BlockState) bool { return state == 0 }

func floorDiv(v float64) float64 {
	i := float64(int64(v))
	if v < 0 && i != v {
		i--
	}
	return i
}
