// Package config provides configuration management for the back office service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section and are registered by walking the struct with reflection, so every
// key is also reachable through AutomaticEnv (DATABASE_DRIVER -> database.driver).
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and exposure mode
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials and the feed bucket
//   - Log: Logging level and format
//   - Feeds: object prefix and extension of dataset feeds
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
