package loop

import "time"

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	// MaxFrameDelta caps the simulated step after a stall (a slow SSH
	// write, a suspended process) so objects do not jump through each other.
	MaxFrameDelta = 100 * time.Millisecond
)

// Inactivity, used by hosts that share the machine between players.
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)

// Shutdown
const (
	ShutdownDisplay = 10 * time.Second // How long the shutdown notice shows before disconnect
)
