// Package commands defines the movefunnel CLI and wires dependencies for subcommands.
//
// Commands
//
//   - serve      Run the funnel HTTP API
//   - estimate   Price a saved session snapshot
//   - catalog    List home-size presets and their rooms
//   - snapshot   Show or reset a stored session snapshot
//   - config     Print the effective configuration
//
// # Implementation
//
// The root command loads the configuration (defaults, config file,
// environment, then any changed persistent flags) before a subcommand runs.
// Subcommands that need stores or services build an app.Wire from it and
// close it when they return.
package commands
