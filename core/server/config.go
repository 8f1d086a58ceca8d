package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Mode controls which routes are exposed (readwrite, readonly).
	Mode string `mapstructure:"mode" default:"readwrite" validate:"oneof=readwrite readonly"`
}

const (
	ModeReadWrite = "readwrite"
	ModeReadOnly  = "readonly"
)

// IsValidMode checks if the configured mode is valid.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeReadWrite, ModeReadOnly:
		return true
	default:
		return false
	}
}

// AllowsWrites reports whether replace and refresh routes should be registered.
func (c Config) AllowsWrites() bool {
	return c.Mode == ModeReadWrite
}
