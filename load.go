package vidar

import (
	"maps"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the property files described by cfg and returns the merged
// Environment.
//
// Layers are applied in a fixed order, later layers overwriting earlier ones:
// the process environment (cfg.OS), common.env (cfg.Common), then the file of
// cfg.Kind. A missing or malformed file fails the whole load, common.env
// included when it is enabled.
func Load(cfg Config) (*Environment, error) {
	var seed map[string]string
	if cfg.OS {
		environ := cfg.Environ
		if environ == nil {
			environ = os.Environ
		}
		seed = EnvironMap(environ())
	}

	base, err := cfg.locator().Locate()
	if err != nil {
		return nil, &ConfigPathError{Err: err}
	}

	opts := cfg.ParseOptions()

	var common map[string]string
	if cfg.Common {
		common, err = ParseFile(Path(base, Common), opts)
		if err != nil {
			return nil, err
		}
	}

	specific, err := ParseFile(Path(base, cfg.Kind), opts)
	if err != nil {
		return nil, err
	}

	return &Environment{
		current: cfg.Kind,
		props:   Merge(seed, common, specific),
	}, nil
}

// Path returns the path of the property file for kind under base.
func Path(base string, kind Kind) string {
	return filepath.Join(base, kind.FileName())
}

// Merge returns a new map holding every layer's entries. When a key appears
// in more than one layer the last layer wins. Nil layers are skipped.
func Merge(layers ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	return merged
}

// EnvironMap converts key=value strings, as returned by os.Environ, into a
// map. Entries without '=' are ignored.
func EnvironMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, pair := range environ {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
