package bot

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	jp "github.com/go-mcbot/client/protocol"
	"github.com/go-mcbot/client/nbt"
	"github.com/go-mcbot/client/pathfinder"
	"github.com/go-mcbot/client/physics"
	ns "github.com/go-mcbot/client/protocol/net_structures"
	"github.com/go-mcbot/client/protocol/packets"
	"github.com/go-mcbot/client/tick"
	"github.com/go-mcbot/client/world"
)

// fakeSender records every packet handed to it, letting a test assert what
// a ClientHandle sent without a live connection.
type fakeSender struct {
	mu  sync.Mutex
	got []jp.Packet
}

func (s *fakeSender) Send(p jp.Packet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, p)
	return nil
}

func (s *fakeSender) last() jp.Packet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.got) == 0 {
		return nil
	}
	return s.got[len(s.got)-1]
}

func TestAngleToDegrees(t *testing.T) {
	tests := []struct {
		angle ns.Angle
		want  float32
	}{
		{0, 0},
		{64, 90},
		{128, 180},
		{192, 270},
	}
	for _, tt := range tests {
		if got := angleToDegrees(tt.angle); got != tt.want {
			t.Errorf("angleToDegrees(%d) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestDimensionBoundsNilHolder(t *testing.T) {
	minY, height := dimensionBounds(nil, "minecraft:overworld")
	if minY != overworldMinY || height != overworldHeight {
		t.Fatalf("dimensionBounds(nil) = (%d, %d), want overworld defaults", minY, height)
	}
}

func TestDimensionBoundsMissingEntry(t *testing.T) {
	holder := world.NewRegistryHolder(map[string][]packets.RegistryDataEntry{})
	minY, height := dimensionBounds(holder, "minecraft:the_end")
	if minY != overworldMinY || height != overworldHeight {
		t.Fatalf("dimensionBounds(missing) = (%d, %d), want overworld defaults", minY, height)
	}
}

func TestDimensionBoundsResolvesFromRegistry(t *testing.T) {
	holder := world.NewRegistryHolder(map[string][]packets.RegistryDataEntry{
		"minecraft:dimension_type": {
			{
				ID: "minecraft:the_nether",
				Data: nbt.Compound{
					"min_y":  nbt.Int(0),
					"height": nbt.Int(128),
				},
			},
		},
	})
	minY, height := dimensionBounds(holder, "minecraft:the_nether")
	if minY != 0 || height != 128 {
		t.Fatalf("dimensionBounds(the_nether) = (%d, %d), want (0, 128)", minY, height)
	}
}

func TestYawBetween(t *testing.T) {
	tests := []struct {
		dx, dz float64
		want   float32
	}{
		{0, 1, 0},    // facing +Z is yaw 0
		{-1, 0, 90},  // facing -X is yaw 90
		{0, -1, -180}, // facing -Z is yaw -180 (the same heading as 180)
		{1, 0, -90},  // facing +X is yaw -90
	}
	for _, tt := range tests {
		if got := yawBetween(tt.dx, tt.dz); absFloat32(got-tt.want) > 1e-3 {
			t.Errorf("yawBetween(%v, %v) = %v, want %v", tt.dx, tt.dz, got, tt.want)
		}
	}
}

func absFloat32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.5, 1},
		{-1.5, -2},
		{0, 0},
		{-0.1, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.in); got != tt.want {
			t.Errorf("floorDiv(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOnGroundFlags(t *testing.T) {
	if onGroundFlags(true) != 1 {
		t.Error("onGroundFlags(true) should be 1")
	}
	if onGroundFlags(false) != 0 {
		t.Error("onGroundFlags(false) should be 0")
	}
}

// newTestHandle builds a ClientHandle with no live connection, suitable for
// exercising handlePacket and the world-store side effects it drives. Tests
// that only check world/event state never run the egress queue at all,
// relying on its buffered channel to absorb the handful of packets sent;
// tests that need to inspect sent packets call runEgress instead.
func newTestHandle(t *testing.T) *ClientHandle {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	return &ClientHandle{
		events:   tick.NewEventBus(logger),
		ingress:  tick.NewIngressQueue(),
		egress:   tick.NewEgressQueue(logger, false),
		chunks:    world.NewChunkStorage(overworldMinY, overworldHeight, defaultViewDistance),
		entities:  world.NewEntityStorage(),
		tabList:   world.NewTabList(),
		inventory: world.NewInventory(),
		solid:     nonAirSolid,
	}
}

func TestHandlePacketAddAndRemoveEntity(t *testing.T) {
	c := newTestHandle(t)

	c.handlePacket(&packets.S2CAddEntityPacketData{
		EntityID:   5,
		EntityUUID: ns.UUID{1},
		EntityType: 10,
		X:          1, Y: 2, Z: 3,
		VelocityX: 800, VelocityY: 0, VelocityZ: 0,
	})

	e, ok := c.entities.Get(5)
	if !ok {
		t.Fatal("expected entity 5 to be tracked after Add Entity")
	}
	if e.Velocity.X != 0.1 {
		t.Fatalf("Velocity.X = %v, want 0.1 (800/8000)", e.Velocity.X)
	}

	c.handlePacket(&packets.S2CRemoveEntitiesPacketData{
		EntityIDs: ns.PrefixedArray[ns.VarInt]{5},
	})
	if _, ok := c.entities.Get(5); ok {
		t.Fatal("entity 5 should be gone after Remove Entities")
	}
}

func TestHandlePacketMoveEntityDelta(t *testing.T) {
	c := newTestHandle(t)
	c.entities.Add(&world.Entity{ID: 7, Pos: world.Vec3{X: 0, Y: 0, Z: 0}})

	c.handlePacket(&packets.S2CMoveEntityPosPacketData{
		EntityID: 7,
		DX:       4096, DY: 0, DZ: -4096,
		OnGround: true,
	})

	e, _ := c.entities.Get(7)
	if e.Pos != (world.Vec3{X: 1, Y: 0, Z: -1}) {
		t.Fatalf("Pos after move delta = %+v, want (1, 0, -1)", e.Pos)
	}
	if !e.OnGround {
		t.Fatal("expected OnGround true after move delta")
	}
}

func TestHandlePacketPlayerInfoUpdatePublishesAdd(t *testing.T) {
	c := newTestHandle(t)

	var events []tick.Event
	c.events.Subscribe(func(ev tick.Event) { events = append(events, ev) })

	uuid := ns.UUID{9}
	add := ns.NewWriter()
	add.WriteVarInt(1)
	add.WriteUUID(uuid)
	add.WriteString("Steve")
	add.WriteVarInt(0)
	c.handlePacket(&packets.S2CPlayerInfoUpdatePacketData{Actions: 1, Entries: add.Bytes()})

	foundAdd := false
	for _, ev := range events {
		if ap, ok := ev.(AddPlayer); ok && ap.UUID == uuid && ap.Name == "Steve" {
			foundAdd = true
		}
	}
	if !foundAdd {
		t.Fatal("expected an AddPlayer event for the new tab list entry")
	}
}

func TestHandlePacketSetHealthPublishesDeath(t *testing.T) {
	c := newTestHandle(t)

	var died bool
	c.events.Subscribe(func(ev tick.Event) {
		if _, ok := ev.(Death); ok {
			died = true
		}
	})

	c.handlePacket(&packets.S2CSetHealthPacketData{Health: 0})
	if !died {
		t.Fatal("expected a Death event when health drops to zero")
	}
}

func TestHandlePacketContainerSetContentReplacesInventory(t *testing.T) {
	c := newTestHandle(t)

	var events []tick.Event
	c.events.Subscribe(func(ev tick.Event) { events = append(events, ev) })

	slots := make([]ns.Slot, world.InventorySize)
	slots[world.HotbarFrom] = ns.NewSlot(1, 5)
	c.handlePacket(&packets.S2CContainerSetContentPacketData{WindowID: 0, StateID: 3, Slots: slots})

	got, ok := c.inventory.Get(world.HotbarFrom)
	if !ok || got.Count != 5 || got.ItemID != 1 {
		t.Fatalf("inventory slot %d = %+v, want Count=5 ItemID=1", world.HotbarFrom, got)
	}

	found := false
	for _, ev := range events {
		if _, ok := ev.(InventoryChanged); ok {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an InventoryChanged event after Set Container Content")
	}
}

func TestHandlePacketContainerSetContentIgnoresOtherWindows(t *testing.T) {
	c := newTestHandle(t)

	slots := make([]ns.Slot, world.InventorySize)
	slots[0] = ns.NewSlot(9, 1)
	c.handlePacket(&packets.S2CContainerSetContentPacketData{WindowID: 1, StateID: 1, Slots: slots})

	got, _ := c.inventory.Get(0)
	if !got.IsEmpty() {
		t.Fatal("Set Container Content for a non-player window must not touch the tracked inventory")
	}
}

func TestHandlePacketContainerSetSlotPatchesOneSlot(t *testing.T) {
	c := newTestHandle(t)

	c.handlePacket(&packets.S2CContainerSetSlotPacketData{
		WindowID: 0, StateID: 2, Slot: ns.Int16(world.MainFrom), Item: ns.NewSlot(7, 12),
	})

	got, ok := c.inventory.Get(world.MainFrom)
	if !ok || got.Count != 12 || got.ItemID != 7 {
		t.Fatalf("inventory slot %d = %+v, want Count=12 ItemID=7", world.MainFrom, got)
	}
}

func TestHandlePacketSetHeldItemUpdatesHeldSlot(t *testing.T) {
	c := newTestHandle(t)

	c.handlePacket(&packets.S2CSetHeldItemPacketData{Slot: 3})

	idx, _ := c.inventory.Held()
	if idx != world.HotbarFrom+3 {
		t.Fatalf("Held() index = %d, want %d", idx, world.HotbarFrom+3)
	}
}

func TestHandlePacketPlayerPositionSendsTeleportConfirm(t *testing.T) {
	c := newTestHandle(t)
	sender := runEgress(t, c)

	c.handlePacket(&packets.S2CPlayerPositionPacketData{
		X: 10, Y: 64, Z: -5, Yaw: 90, Pitch: 0, TeleportID: 42,
	})

	if c.self.X != 10 || c.self.Y != 64 || c.self.Z != -5 {
		t.Fatalf("self pos = (%v, %v, %v), want (10, 64, -5)", c.self.X, c.self.Y, c.self.Z)
	}
	if c.move.Yaw != 90 {
		t.Fatalf("move.Yaw = %v, want 90", c.move.Yaw)
	}

	sent := awaitSent(t, sender, 1)
	confirm, ok := sent.(*packets.C2STeleportConfirmPacketData)
	if !ok {
		t.Fatalf("expected a Teleport Confirm packet, got %T", sent)
	}
	if confirm.TeleportID != 42 {
		t.Fatalf("TeleportID = %v, want 42", confirm.TeleportID)
	}
}

// awaitSent polls sender until it has recorded at least n packets, or fails
// the test after a short timeout.
func awaitSent(t *testing.T, sender *fakeSender, n int) jp.Packet {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		sender.mu.Lock()
		got := len(sender.got)
		sender.mu.Unlock()
		if got >= n {
			return sender.last()
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d sent packet(s), got %d", n, got)
			return nil
		case <-time.After(time.Millisecond):
		}
	}
}

func runEgress(t *testing.T, c *ClientHandle) *fakeSender {
	t.Helper()
	sender := &fakeSender{}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go c.egress.Run(ctx, sender)
	return sender
}

func TestChatRoutesSlashAsCommand(t *testing.T) {
	c := newTestHandle(t)
	sender := runEgress(t, c)

	c.Chat("/help")
	cmd, ok := awaitSent(t, sender, 1).(*packets.C2SChatCommandPacketData)
	if !ok {
		t.Fatalf("expected a chat command packet, got %T", cmd)
	}
	if string(cmd.Command) != "help" {
		t.Fatalf("Command = %q, want %q", cmd.Command, "help")
	}

	c.Chat("hello")
	msg, ok := awaitSent(t, sender, 2).(*packets.C2SChatMessagePacketData)
	if !ok {
		t.Fatalf("expected a chat message packet, got %T", msg)
	}
	if string(msg.Message) != "hello" {
		t.Fatalf("Message = %q, want %q", msg.Message, "hello")
	}
}

func TestWalkClearsPathfinder(t *testing.T) {
	c := newTestHandle(t)
	c.pf = &pathfinder.Pathfinder{}

	c.Walk(physics.WalkForward)

	if c.pf != nil {
		t.Fatal("expected Walk to clear an in-progress pathfinder goal")
	}
	if c.move.MoveDirection != physics.WalkForward {
		t.Fatalf("MoveDirection = %v, want WalkForward", c.move.MoveDirection)
	}
}

func TestSetDirectionUpdatesMoveState(t *testing.T) {
	c := newTestHandle(t)
	c.SetDirection(45, -10)
	if c.move.Yaw != 45 || c.move.Pitch != -10 {
		t.Fatalf("move.Yaw/Pitch = %v/%v, want 45/-10", c.move.Yaw, c.move.Pitch)
	}
}

func TestSneakTogglesOnlyOnChange(t *testing.T) {
	c := newTestHandle(t)
	c.Sneak(true)
	if !c.move.Sneaking {
		t.Fatal("expected Sneaking true after Sneak(true)")
	}

	// Re-affirming the same state should not enqueue a second Player Command.
	c.Sneak(true)

	c.Sneak(false)
	if c.move.Sneaking {
		t.Fatal("expected Sneaking false after Sneak(false)")
	}
}

func TestWalkSetsMoveDirection(t *testing.T) {
	c := newTestHandle(t)
	c.Walk(physics.WalkForward)
	if c.move.MoveDirection != physics.WalkForward {
		t.Fatalf("MoveDirection = %v, want WalkForward", c.move.MoveDirection)
	}

	c.move.Sprinting = true
	c.Walk(physics.WalkNone)
	if c.move.Sprinting {
		t.Fatal("Walk(WalkNone) should clear Sprinting")
	}
}
