package packets

import (
	jp "github.com/go-mcbot/client/protocol"
)

// RegisterDefaults registers every packet type this module implements into r.
// It is meant to be called once against a fresh protocol.Registry to build
// the registry a Conn uses to decode incoming traffic.
func RegisterDefaults(r *jp.Registry) {
	// Handshake
	r.Register(jp.StateHandshake, jp.C2S, 0x00, func() jp.Packet { return &C2SIntentionPacketData{} })

	// Status
	r.Register(jp.StateStatus, jp.C2S, 0x00, func() jp.Packet { return &C2SStatusRequestPacketData{} })
	r.Register(jp.StateStatus, jp.C2S, 0x01, func() jp.Packet { return &C2SPingRequestPacketData{} })
	r.Register(jp.StateStatus, jp.S2C, 0x00, func() jp.Packet { return &S2CStatusResponsePacketData{} })
	r.Register(jp.StateStatus, jp.S2C, 0x01, func() jp.Packet { return &S2CPongResponseStatusPacketData{} })

	// Login
	r.Register(jp.StateLogin, jp.C2S, 0x00, func() jp.Packet { return &C2SHelloPacketData{} })
	r.Register(jp.StateLogin, jp.C2S, 0x01, func() jp.Packet { return &C2SKeyPacketData{} })
	r.Register(jp.StateLogin, jp.C2S, 0x02, func() jp.Packet { return &C2SCustomQueryAnswerPacketData{} })
	r.Register(jp.StateLogin, jp.C2S, 0x03, func() jp.Packet { return &C2SLoginAcknowledgedPacketData{} })
	r.Register(jp.StateLogin, jp.C2S, 0x04, func() jp.Packet { return &C2SCookieResponseLoginPacketData{} })
	r.Register(jp.StateLogin, jp.S2C, 0x00, func() jp.Packet { return &S2CDisconnectLoginPacketData{} })
	r.Register(jp.StateLogin, jp.S2C, 0x01, func() jp.Packet { return &S2CEncryptionRequestPacketData{} })
	r.Register(jp.StateLogin, jp.S2C, 0x02, func() jp.Packet { return &S2CLoginSuccessPacketData{} })
	r.Register(jp.StateLogin, jp.S2C, 0x03, func() jp.Packet { return &S2CSetCompressionPacketData{} })
	r.Register(jp.StateLogin, jp.S2C, 0x04, func() jp.Packet { return &S2CLoginPluginRequestPacketData{} })

	// Configuration
	r.Register(jp.StateConfiguration, jp.C2S, 0x00, func() jp.Packet { return &C2SClientInformationPacketData{} })
	r.Register(jp.StateConfiguration, jp.C2S, 0x01, func() jp.Packet { return &C2SCookieResponseConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.C2S, 0x02, func() jp.Packet { return &C2SCustomPayloadConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.C2S, 0x03, func() jp.Packet { return &C2SFinishConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.C2S, 0x04, func() jp.Packet { return &C2SKeepAliveConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.C2S, 0x05, func() jp.Packet { return &C2SPongConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.C2S, 0x06, func() jp.Packet { return &C2SResourcePackConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.C2S, 0x07, func() jp.Packet { return &C2SSelectKnownPacksPacketData{} })
	r.Register(jp.StateConfiguration, jp.C2S, 0x08, func() jp.Packet { return &C2SCustomClickActionConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.S2C, 0x00, func() jp.Packet { return &S2CCookieRequestConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.S2C, 0x01, func() jp.Packet { return &S2CCustomPayloadConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.S2C, 0x02, func() jp.Packet { return &S2CDisconnectConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.S2C, 0x03, func() jp.Packet { return &S2CFinishConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.S2C, 0x04, func() jp.Packet { return &S2CKeepAliveConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.S2C, 0x05, func() jp.Packet { return &S2CPingConfigurationPacketData{} })
	r.Register(jp.StateConfiguration, jp.S2C, 0x07, func() jp.Packet { return &S2CRegistryDataPacketData{} })
	r.Register(jp.StateConfiguration, jp.S2C, 0x0E, func() jp.Packet { return &S2CSelectKnownPacksPacketData{} })

	// Play: serverbound
	r.Register(jp.StatePlay, jp.C2S, 0x00, func() jp.Packet { return &C2STeleportConfirmPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x03, func() jp.Packet { return &C2SChatMessagePacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x04, func() jp.Packet { return &C2SChatCommandPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x0A, func() jp.Packet { return &C2SClientCommandPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x1A, func() jp.Packet { return &C2SKeepAlivePlayPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x1C, func() jp.Packet { return &C2SMovePlayerPosPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x1D, func() jp.Packet { return &C2SMovePlayerPosRotPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x1E, func() jp.Packet { return &C2SMovePlayerRotPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x1F, func() jp.Packet { return &C2SMovePlayerStatusOnlyPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x24, func() jp.Packet { return &C2SPingRequestPlayPacketData{} })
	r.Register(jp.StatePlay, jp.C2S, 0x25, func() jp.Packet { return &C2SPlayerCommandPacketData{} })

	// Play: clientbound
	r.Register(jp.StatePlay, jp.S2C, 0x01, func() jp.Packet { return &S2CAddEntityPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x13, func() jp.Packet { return &S2CContainerSetContentPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x14, func() jp.Packet { return &S2CContainerSetSlotPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x1D, func() jp.Packet { return &S2CDisconnectPlayPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x1F, func() jp.Packet { return &S2CTeleportEntityPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x21, func() jp.Packet { return &S2CForgetLevelChunkPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x28, func() jp.Packet { return &S2CLevelChunkWithLightPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x2B, func() jp.Packet { return &S2CLoginPlayPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x2F, func() jp.Packet { return &S2CMoveEntityPosPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x30, func() jp.Packet { return &S2CMoveEntityPosRotPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x37, func() jp.Packet { return &S2CPingPlayPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x3A, func() jp.Packet { return &S2CPlayerChatMessagePacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x3E, func() jp.Packet { return &S2CPlayerInfoRemovePacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x3F, func() jp.Packet { return &S2CPlayerInfoUpdatePacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x42, func() jp.Packet { return &S2CPlayerPositionPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x45, func() jp.Packet { return &S2CRespawnPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x47, func() jp.Packet { return &S2CRemoveEntitiesPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x4C, func() jp.Packet { return &S2CRotateHeadPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x57, func() jp.Packet { return &S2CSetChunkCacheCenterPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x5D, func() jp.Packet { return &S2CSetEntityMotionPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x5E, func() jp.Packet { return &S2CSetEntityMetadataPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x62, func() jp.Packet { return &S2CSetHealthPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x63, func() jp.Packet { return &S2CSetHeldItemPacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x72, func() jp.Packet { return &S2CSystemChatMessagePacketData{} })
	r.Register(jp.StatePlay, jp.S2C, 0x26, func() jp.Packet { return &S2CKeepAlivePlayPacketData{} })
}
