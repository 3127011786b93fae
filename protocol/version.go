package protocol

// Version is the single protocol version this module speaks, per the
// external interface's "one target protocol version identified by a single
// integer constant". 770 is the protocol version of Minecraft 1.21.4, the
// most recent release with a stable Configuration phase at the time this
// module was written.
const Version = 770
