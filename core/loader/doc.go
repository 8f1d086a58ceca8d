// Package loader registers the HTTP features of the back office.
//
// Each dataset family (pair orders, securities, feeds, integrity) is a
// Feature that knows whether its dependencies are configured and mounts its
// own routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.LoadAll mounts enabled features in registration order and skips
// the others with a log line. The first failing Load stops startup.
package loader
