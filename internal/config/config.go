package config

import "fmt"

// Config holds the startup options for the server. It is built entirely
// from CLI flags and handed to the server constructor; nothing is read from
// the environment or from config files.
type Config struct {
	Port int    // TCP port to listen on, all interfaces.
	Root string // Directory the served files are rooted at.
}

// Addr returns the listen address in the form ":<port>".
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
