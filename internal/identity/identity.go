// Package identity detects whether the shell runs inside a remote (SSH)
// session and resolves the user@host pair shown at the end of the status
// line.
package identity

import (
	"os"
	"strings"
)

// hostnameFile is read instead of $HOSTNAME: that variable is not POSIX and
// is frequently missing when the prompt hook runs under plain sh.
const hostnameFile = "/etc/hostname"

// Identity describes the remote session, present only when every part of it
// could be resolved.
type Identity struct {
	User   string
	IsRoot bool
	Host   string
}

// Env abstracts environment and host-identity lookups so detection can be
// tested without mutating the process environment.
type Env interface {
	// LookupEnv reports the value of an environment variable and whether it
	// is set at all.
	LookupEnv(key string) (string, bool)
	// Hostname returns the local host name.
	Hostname() (string, error)
}

type systemEnv struct{}

func (systemEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (systemEnv) Hostname() (string, error) {
	data, err := os.ReadFile(hostnameFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SystemEnv returns the Env backed by the real process environment and the
// system hostname file.
func SystemEnv() Env {
	return systemEnv{}
}

// Detect returns the remote-session identity, or nil when there is none.
//
// An identity exists only when SSH_CONNECTION is set and the user name, the
// numeric user id and the host name all resolve. A miss on any one of them
// yields no identity rather than a partial one.
func Detect(env Env) *Identity {
	if _, ok := env.LookupEnv("SSH_CONNECTION"); !ok {
		return nil
	}
	user, ok := env.LookupEnv("USER")
	if !ok || user == "" {
		return nil
	}
	uid, ok := env.LookupEnv("UID")
	if !ok || uid == "" {
		return nil
	}
	host, err := env.Hostname()
	if err != nil {
		return nil
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return nil
	}

	return &Identity{
		User:   user,
		IsRoot: uid == "0",
		Host:   host,
	}
}
