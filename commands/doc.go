// Package commands defines the pong command line.
//
// Commands:
//   - play (default) - open a window and play a match
//   - headless - run a match without a window and print the final state as JSON
//   - validate [files...] - check rule files
//   - configs - list rule sets
//
// Global flags select the rule set (--config-dir, --rules), turn on debug
// logging and optionally serve the spectator API (--spectate). The window
// itself is injected through App.Play so this package stays free of graphics
// dependencies.
package commands
