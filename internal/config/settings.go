package config

import (
	"errors"
	"time"
)

// Defaults
const (
	DefaultSSHHost        = "::"
	DefaultSSHPort        = "2222"
	DefaultHostKeyPath    = "/app/keys/host_key"
	DefaultWebHost        = "0.0.0.0"
	DefaultWebPort        = "8080"
	DefaultDisplayHost    = "your-server.com"
	DefaultLogLevel       = "info"
	DefaultMaxSessions    = 0 // Unlimited
	DefaultIdleWarn       = 90 * time.Second
	DefaultIdleTimeout    = 120 * time.Second
	DefaultShutdownWindow = 15 * time.Second
)

// Settings is everything the entrypoints read from the environment.
type Settings struct {
	Seed     uint64 // UFO_SEED, 0 = time based
	Audio    bool   // UFO_AUDIO, local synth
	Volume   int    // UFO_VOLUME, percent
	LogLevel string // UFO_LOG_LEVEL
	LogFile  string // UFO_LOG_FILE, local game only

	SSHHost     string        // SSH_HOST
	SSHPort     string        // SSH_PORT
	HostKeyPath string        // SSH_HOST_KEY
	MaxSessions int           // SSH_MAX_SESSIONS, 0 = unlimited
	IdleWarn    time.Duration // SSH_IDLE_WARN
	IdleTimeout time.Duration // SSH_IDLE_TIMEOUT, 0 = never
	Shutdown    time.Duration // SSH_SHUTDOWN_TIMEOUT

	WebHost     string // WEB_HOST
	WebPort     string // WEB_PORT
	DisplayHost string // SSH_DISPLAY_HOST, shown on the landing page
}

// Load reads Settings from the environment. Every malformed variable is
// reported, joined into one error; the returned Settings then carry the
// defaults for those variables.
func Load() (Settings, error) {
	s := Settings{
		LogLevel:    GetEnv("UFO_LOG_LEVEL", DefaultLogLevel),
		LogFile:     GetEnv("UFO_LOG_FILE", ""),
		SSHHost:     GetEnv("SSH_HOST", DefaultSSHHost),
		SSHPort:     GetEnv("SSH_PORT", DefaultSSHPort),
		HostKeyPath: GetEnv("SSH_HOST_KEY", DefaultHostKeyPath),
		WebHost:     GetEnv("WEB_HOST", DefaultWebHost),
		WebPort:     GetEnv("WEB_PORT", DefaultWebPort),
		DisplayHost: GetEnv("SSH_DISPLAY_HOST", DefaultDisplayHost),
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	s.Seed, err = GetEnvUint64("UFO_SEED", 0)
	collect(err)
	s.Audio, err = GetEnvBool("UFO_AUDIO", true)
	collect(err)
	s.Volume, err = GetEnvInt("UFO_VOLUME", 60)
	collect(err)
	s.MaxSessions, err = GetEnvInt("SSH_MAX_SESSIONS", DefaultMaxSessions)
	collect(err)
	s.IdleWarn, err = GetEnvDuration("SSH_IDLE_WARN", DefaultIdleWarn)
	collect(err)
	s.IdleTimeout, err = GetEnvDuration("SSH_IDLE_TIMEOUT", DefaultIdleTimeout)
	collect(err)
	s.Shutdown, err = GetEnvDuration("SSH_SHUTDOWN_TIMEOUT", DefaultShutdownWindow)
	collect(err)

	s.Volume = max(0, min(s.Volume, 100))
	s.MaxSessions = max(0, s.MaxSessions)
	return s, errors.Join(errs...)
}

// VolumeFraction is Volume in [0, 1].
func (s Settings) VolumeFraction() float64 {
	return float64(s.Volume) / 100
}
