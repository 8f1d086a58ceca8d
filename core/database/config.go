package database

// Config holds configuration for the database connection.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name. For sqlite it is the file path or ":memory:".
	Name string `mapstructure:"name" default:"backoffice"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql" validate:"oneof=mysql sqlite"`
	// PromoteProcedures promotes staged datasets through usp_promote_<table>
	// procedures instead of the derived DELETE/INSERT pair.
	PromoteProcedures bool `mapstructure:"promote_procedures" default:"false"`
	// TimeoutSeconds bounds connection setup and socket reads/writes.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=0"`
}
