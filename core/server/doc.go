// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key, and the exposure mode.
// In readonly mode the replace and refresh routes are not registered, so a
// reporting replica can serve reads without being able to overwrite a dataset.
package server
