// Package conf implements settings file support for the vidar command.
//
// # Usage
//
// Settings are read by a ConfigSource:
//
//	cs := &conf.ConfigSource{
//	    Path:      "/home/user/.config/vidar/config.toml",
//	    DropInDir: "/home/user/.config/vidar/config.toml.d",
//	}
//	settings, err := cs.Read()
//	env, err := vidar.Load(settings.LoaderConfig())
//
// # Load Order
//
// Settings are applied in four layers:
//
//  1. Embedded defaults
//  2. Main settings file (TOML)
//  3. Drop-in files: *.toml and legacy *.ini, in lexicographic order
//  4. VIDAR_* environment variables
//
// Command-line flags are applied last by the caller through Settings.Update.
//
// # Internal Architecture
//
//   - configDTO: pointer fields, so "not set" (nil) differs from "set to the
//     zero value". Every layer decodes into one.
//
//   - Settings: value fields. Update applies a configDTO on top.
//
//   - ConfigSource: finds the layers and applies them in order.
package conf
