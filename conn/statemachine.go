package conn

import (
	"context"
	"fmt"
	"net"

	"github.com/go-mcbot/client/auth"
	jp "github.com/go-mcbot/client/protocol"
	ns "github.com/go-mcbot/client/protocol/net_structures"
	"github.com/go-mcbot/client/protocol/packets"
	"github.com/go-mcbot/client/protocol/sessionserver"
)

// Profile is the identity the server confirmed via Login Success.
type Profile struct {
	UUID     ns.UUID
	Username string
}

// StateMachine drives one Connection through Handshake -> Login ->
// Configuration -> Game, and is the only component allowed to mutate the
// connection's phase, compression threshold, or encryption, per the
// protocol's state-ownership rule.
type StateMachine struct {
	raw      *jp.Conn
	registry *jp.Registry
	creds    auth.CredentialProvider
	session  *sessionserver.SessionServerClient
	opts     Options
	info     ClientInformation

	phase                Phase
	compressionThreshold int
	profile              Profile

	// RegistryData accumulates every Registry Data packet's entries, keyed
	// by registry identifier (e.g. "minecraft:worldgen/biome"), so a later
	// world-store layer can consume them once Game phase is reached.
	RegistryData map[string][]packets.RegistryDataEntry
}

// NewStateMachine wraps netConn and prepares a state machine to run the
// login handshake against it. registry must have every packet type the
// module understands registered (see packets.RegisterDefaults).
func NewStateMachine(netConn net.Conn, registry *jp.Registry, creds auth.CredentialProvider, info ClientInformation, opts Options) *StateMachine {
	sessionServer := sessionserver.NewSessionServerClient()
	if opts.SessionServerURL != "" {
		sessionServer = sessionserver.NewClientWithURL(opts.SessionServerURL)
	}
	return &StateMachine{
		raw:                  jp.NewConn(netConn),
		registry:             registry,
		creds:                creds,
		session:              sessionServer,
		opts:                 opts,
		info:                 info,
		phase:                PhaseHandshake,
		compressionThreshold: -1,
		RegistryData:         make(map[string][]packets.RegistryDataEntry),
	}
}

// Phase reports the connection's current state.
func (sm *StateMachine) Phase() Phase { return sm.phase }

// Profile reports the identity confirmed by Login Success. Zero value until
// Login completes.
func (sm *StateMachine) Profile() Profile { return sm.profile }

// Close tears down the underlying connection.
func (sm *StateMachine) Close() error { return sm.raw.Close() }

// Send serializes p and writes it to the wire under the current compression
// threshold and encryption settings.
func (sm *StateMachine) Send(p jp.Packet) error {
	wire, err := jp.ToWire(p)
	if err != nil {
		return fmt.Errorf("conn: encode %T: %w", p, err)
	}
	threshold := sm.compressionThreshold
	if sm.opts.DisableCompression {
		threshold = -1
	}
	sm.opts.debugf("-> state=%s id=0x%02X", sm.phase, wire.PacketID)
	if err := wire.WriteTo(sm.raw, threshold); err != nil {
		return fmt.Errorf("conn: write %T: %w", p, err)
	}
	return nil
}

// recv reads one wire packet and decodes it against the registry for the
// current phase and S2C direction. ok is false for an unregistered packet
// id, which per spec §7 is routine ("ignored-with-log"), not an error.
func (sm *StateMachine) recv() (jp.Packet, bool, error) {
	threshold := sm.compressionThreshold
	if sm.opts.DisableCompression {
		threshold = -1
	}
	wire, err := jp.ReadWirePacketFrom(sm.raw, threshold)
	if err != nil {
		return nil, false, err
	}
	p, ok, err := sm.registry.Decode(wire, sm.phase.protocolState(), jp.S2C)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		sm.opts.debugf("<- state=%s id=0x%02X (unregistered, skipped)", sm.phase, wire.PacketID)
		return nil, false, nil
	}
	sm.opts.debugf("<- state=%s id=0x%02X %T", sm.phase, wire.PacketID, p)
	return p, true, nil
}

// Run executes the full connection lifecycle: Handshake, Login (including
// encryption and compression install), Configuration, then Game. Once Game
// is reached it loops reading packets, reactively answering keep-alives and
// intercepting Disconnect itself, forwarding everything else to onPacket.
// Run returns (always as *DisconnectError) when the connection ends, and nil
// only if ctx is cancelled while healthy in Game phase.
func (sm *StateMachine) Run(ctx context.Context, hostname string, port uint16, onPacket func(jp.Packet)) error {
	if err := sm.handshake(hostname, port); err != nil {
		return sm.fail("handshake", err)
	}
	if err := sm.login(ctx); err != nil {
		return err
	}
	if sm.phase == PhaseDisconnected {
		return nil
	}
	if err := sm.configuration(ctx); err != nil {
		return err
	}
	if sm.phase == PhaseDisconnected {
		return nil
	}
	return sm.gameLoop(ctx, onPacket)
}

func (sm *StateMachine) fail(stage string, err error) error {
	sm.phase = PhaseDisconnected
	return &DisconnectError{Reason: fmt.Sprintf("%s failed", stage), Cause: err}
}

// handshake sends ClientIntention(Login) and transitions to Login, per C3's
// single Handshaking -> Login edge (Status is a distinct public operation,
// not part of the join flow).
func (sm *StateMachine) handshake(hostname string, port uint16) error {
	err := sm.Send(&packets.C2SIntentionPacketData{
		ProtocolVersion: jp.Version,
		ServerAddress:   ns.String(hostname),
		ServerPort:      ns.Uint16(port),
		Intent:          packets.IntentLogin,
	})
	if err != nil {
		return err
	}
	sm.phase = PhaseLogin
	return nil
}

// login drives the Login state until GameProfile (-> Configuration) or
// LoginDisconnect (-> Disconnected).
func (sm *StateMachine) login(ctx context.Context) error {
	creds, err := sm.creds.Credentials(ctx)
	if err != nil {
		return sm.fail("login", fmt.Errorf("fetch credentials: %w", err))
	}

	var playerUUID ns.UUID
	if creds.UUID != "" {
		playerUUID, err = ns.UUIDFromString(creds.UUID)
		if err != nil {
			return sm.fail("login", fmt.Errorf("parse credential uuid: %w", err))
		}
	}
	if err := sm.Send(&packets.C2SHelloPacketData{Name: ns.String(creds.Username), PlayerUUID: playerUUID}); err != nil {
		return sm.fail("login", err)
	}

	refreshed := false
	for {
		select {
		case <-ctx.Done():
			return sm.fail("login", ctx.Err())
		default:
		}

		p, ok, err := sm.recv()
		if err != nil {
			return sm.fail("login", err)
		}
		if !ok {
			continue
		}

		switch pkt := p.(type) {
		case *packets.S2CEncryptionRequestPacketData:
			newCreds, err := sm.credentialExchange(ctx, pkt, creds, &refreshed)
			if err != nil {
				return sm.fail("login", err)
			}
			creds = newCreds

		case *packets.S2CSetCompressionPacketData:
			sm.compressionThreshold = int(pkt.Threshold)

		case *packets.S2CLoginPluginRequestPacketData:
			// No plugin channels are understood; tell the server so per spec.
			if err := sm.Send(&packets.C2SCustomQueryAnswerPacketData{MessageID: pkt.MessageID}); err != nil {
				return sm.fail("login", err)
			}

		case *packets.S2CLoginSuccessPacketData:
			sm.profile = Profile{UUID: pkt.UUID, Username: string(pkt.Username)}
			if err := sm.Send(&packets.C2SLoginAcknowledgedPacketData{}); err != nil {
				return sm.fail("login", err)
			}
			sm.phase = PhaseConfiguration
			return nil

		case *packets.S2CDisconnectLoginPacketData:
			sm.phase = PhaseDisconnected
			return &DisconnectError{Reason: pkt.Reason.String()}
		}
	}
}

// credentialExchange runs the session-server join described in spec §4.3,
// retrying exactly once after a recoverable rejection.
func (sm *StateMachine) credentialExchange(ctx context.Context, req *packets.S2CEncryptionRequestPacketData, creds auth.Credentials, refreshed *bool) (auth.Credentials, error) {
	if creds.AccessToken == "" {
		return creds, fmt.Errorf("server requires online-mode authentication but no access token is configured")
	}

	encryption := sm.raw.Encryption()
	secret, err := encryption.GenerateSharedSecret()
	if err != nil {
		return creds, fmt.Errorf("generate shared secret: %w", err)
	}

	for {
		err := sm.session.Join(creds.AccessToken, creds.UUID, string(req.ServerID), secret, req.PublicKey)
		if err == nil {
			break
		}
		joinErr, isJoinErr := err.(*sessionserver.JoinError)
		if isJoinErr && joinErr.Recoverable() && !*refreshed {
			*refreshed = true
			newCreds, rerr := sm.creds.Refresh(ctx)
			if rerr != nil {
				return creds, fmt.Errorf("refresh credentials after %v: %w", joinErr, rerr)
			}
			creds = newCreds
			continue
		}
		return creds, fmt.Errorf("session server join: %w", err)
	}

	encryptedSecret, err := encryption.EncryptWithPublicKey(req.PublicKey, secret)
	if err != nil {
		return creds, fmt.Errorf("encrypt shared secret: %w", err)
	}
	encryptedVerify, err := encryption.EncryptWithPublicKey(req.PublicKey, req.VerifyTok)
	if err != nil {
		return creds, fmt.Errorf("encrypt verify token: %w", err)
	}

	if err := sm.Send(&packets.C2SKeyPacketData{SharedSecret: encryptedSecret, VerifyToken: encryptedVerify}); err != nil {
		return creds, err
	}
	if err := encryption.EnableEncryption(); err != nil {
		return creds, fmt.Errorf("enable encryption: %w", err)
	}
	return creds, nil
}

// configuration sends the two entry packets (Open Question (b)), answers
// the server's housekeeping packets, and drives the state until
// FinishConfiguration (-> Game) or Disconnect (-> Disconnected).
func (sm *StateMachine) configuration(ctx context.Context) error {
	if err := sm.info.Validate(); err != nil {
		return sm.fail("configuration", fmt.Errorf("invalid client information: %w", err))
	}

	brand := &packets.C2SCustomPayloadConfigurationPacketData{
		Channel: "minecraft:brand",
		Data:    []byte("vanilla"),
	}
	if err := sm.Send(brand); err != nil {
		return sm.fail("configuration", err)
	}
	if err := sm.Send(sm.info.toPacket()); err != nil {
		return sm.fail("configuration", err)
	}

	for {
		select {
		case <-ctx.Done():
			return sm.fail("configuration", ctx.Err())
		default:
		}

		p, ok, err := sm.recv()
		if err != nil {
			return sm.fail("configuration", err)
		}
		if !ok {
			continue
		}

		switch pkt := p.(type) {
		case *packets.S2CRegistryDataPacketData:
			sm.RegistryData[string(pkt.RegistryID)] = append(sm.RegistryData[string(pkt.RegistryID)], pkt.Entries...)

		case *packets.S2CKeepAliveConfigurationPacketData:
			if err := sm.Send(&packets.C2SKeepAliveConfigurationPacketData{KeepAliveID: pkt.ID_}); err != nil {
				return sm.fail("configuration", err)
			}

		case *packets.S2CPingConfigurationPacketData:
			if err := sm.Send(&packets.C2SPongConfigurationPacketData{ID_: pkt.ID_}); err != nil {
				return sm.fail("configuration", err)
			}

		case *packets.S2CCookieRequestConfigurationPacketData:
			resp := &packets.C2SCookieResponseConfigurationPacketData{Key: pkt.Key}
			if err := sm.Send(resp); err != nil {
				return sm.fail("configuration", err)
			}

		case *packets.S2CSelectKnownPacksPacketData:
			// Report no cached packs so the server sends every registry entry.
			if err := sm.Send(&packets.C2SSelectKnownPacksPacketData{}); err != nil {
				return sm.fail("configuration", err)
			}

		case *packets.S2CFinishConfigurationPacketData:
			if err := sm.Send(&packets.C2SFinishConfigurationPacketData{}); err != nil {
				return sm.fail("configuration", err)
			}
			sm.phase = PhaseGame
			return nil

		case *packets.S2CDisconnectConfigurationPacketData:
			sm.phase = PhaseDisconnected
			return &DisconnectError{Reason: pkt.Reason.String()}
		}
	}
}

// gameLoop is the steady state: it intercepts only the packets that mutate
// connection state (Disconnect, reactive Keep Alive) and forwards every
// other decoded packet to onPacket for the tick scheduler to dispatch.
func (sm *StateMachine) gameLoop(ctx context.Context, onPacket func(jp.Packet)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		p, ok, err := sm.recv()
		if err != nil {
			return sm.fail("game", err)
		}
		if !ok {
			continue
		}

		switch pkt := p.(type) {
		case *packets.S2CDisconnectPlayPacketData:
			sm.phase = PhaseDisconnected
			return &DisconnectError{Reason: pkt.Reason.String()}

		case *packets.S2CKeepAlivePlayPacketData:
			if err := sm.Send(&packets.C2SKeepAlivePlayPacketData{KeepAliveID: pkt.KeepAliveID}); err != nil {
				return sm.fail("game", err)
			}
			if onPacket != nil {
				onPacket(pkt)
			}

		default:
			if onPacket != nil {
				onPacket(pkt)
			}
		}
	}
}
