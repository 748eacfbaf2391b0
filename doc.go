// Package vidar loads per-environment property files into an immutable
// key-value mapping.
//
// # Usage
//
// Build a Config from the defaults and load it:
//
//	cfg := vidar.DefaultConfig()
//	cfg.AppName = "myapp"
//	cfg.Kind = vidar.Production
//	cfg.Common = true
//	env, err := vidar.Load(cfg)
//	if err != nil {
//	    return err
//	}
//	url, _ := env.Get("url")
//
// # Files
//
// Each Kind maps to one file named after its token: common.env, dev.env,
// test.env, int.env, stage.env and prod.env. A file holds one key=value pair
// per line. When Config.Comments is set, lines starting with
// Config.CommentChar are skipped. Every other line must contain exactly one
// '=' character, otherwise the whole load fails with ErrInvalidProperty.
//
// # Load Order
//
// Properties are merged in three layers, later layers overwriting earlier
// ones key by key:
//
//  1. Process environment variables, when Config.OS is set
//  2. common.env, when Config.Common is set
//  3. The file of Config.Kind
//
// The directory holding the files comes from Config.Locator. Without one,
// UserConfigDir(Config.AppName) is used.
package vidar
