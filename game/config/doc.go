// Package config provides rule set management for Pong.
//
// The config package handles:
//   - Loading rule sets from JSON files
//   - Validation through engine.ValidateGameConfig
//   - Default rule set selection
//   - Rule set discovery and listing
//
// Configuration Format:
//
// Rule sets are JSON files in the configs directory. Each one defines the
// paddle and ball dimensions, the paddle and ball speeds, the paddle inset
// from the screen edge, the divider width, the score text offset and the key
// bindings for the four player actions.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rules, err := manager.LoadConfig("classic")
//	defaultRules := manager.GetDefault()
//	infos, err := manager.ListConfigs()
//
// The default is classic.json when present, otherwise the first valid file,
// otherwise engine.DefaultConfig.
package config
