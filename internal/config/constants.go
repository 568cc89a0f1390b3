package config

const (
	DefaultPort = 8001
	DefaultRoot = "."
)
