package conf

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"git.sr.ht/~spc/go-log"
	"github.com/BurntSushi/toml"

	"github.com/aesir-vanir/vidar"
)

// defaultConfig contains the embedded default settings. It is the base layer
// before the main file, drop-ins and environment variables are applied.
//
//go:embed defaults.toml
var defaultConfig string

// Settings represents the resolved settings of the vidar command.
type Settings struct {
	Kind        vidar.Kind
	AppName     string
	Dir         string
	Common      bool
	Comments    bool
	CommentChar rune
	OS          bool
	LogLevel    log.Level
}

// Update applies non-nil values from a configDTO. Values that cannot be
// decoded leave s unchanged and are reported.
func (s *Settings) Update(dto configDTO) error {
	next := *s

	if dto.Kind != nil {
		kind, err := vidar.ParseKind(*dto.Kind)
		if err != nil {
			return err
		}
		next.Kind = kind
	}
	if dto.AppName != nil {
		next.AppName = *dto.AppName
	}
	if dto.Dir != nil {
		next.Dir = *dto.Dir
	}
	if dto.Common != nil {
		next.Common = *dto.Common
	}
	if dto.Comments != nil {
		next.Comments = *dto.Comments
	}
	if dto.CommentChar != nil {
		if utf8.RuneCountInString(*dto.CommentChar) != 1 {
			return fmt.Errorf("comment-char must be a single character, got %q", *dto.CommentChar)
		}
		next.CommentChar, _ = utf8.DecodeRuneInString(*dto.CommentChar)
	}
	if dto.OS != nil {
		next.OS = *dto.OS
	}
	if dto.LogLevel != nil {
		level, err := log.ParseLevel(*dto.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log-level %q: %w", *dto.LogLevel, err)
		}
		next.LogLevel = level
	}

	*s = next
	return nil
}

// LoaderConfig returns the vidar.Config described by s. The property
// directory is Dir when set, the user configuration directory of AppName
// when that is set, and the working directory otherwise.
func (s Settings) LoaderConfig() vidar.Config {
	cfg := vidar.DefaultConfig()
	cfg.Kind = s.Kind
	cfg.AppName = s.AppName
	cfg.Common = s.Common
	cfg.Comments = s.Comments
	cfg.CommentChar = s.CommentChar
	cfg.OS = s.OS

	switch {
	case s.Dir != "":
		cfg.Locator = vidar.Dir(s.Dir)
	case s.AppName != "":
		cfg.Locator = vidar.UserConfigDir(s.AppName)
	default:
		cfg.Locator = vidar.WorkingDir()
	}
	return cfg
}

// ConfigSource orchestrates loading settings from multiple sources.
// See the Read method.
type ConfigSource struct {
	Path      string
	DropInDir string
	// Environ overrides the process environment for the VIDAR_* layer.
	Environ map[string]string
}

// DefaultSource returns the ConfigSource rooted at the user configuration
// directory of the vidar command.
func DefaultSource() (*ConfigSource, error) {
	dir, err := vidar.UserConfigDir("vidar").Locate()
	if err != nil {
		return nil, err
	}
	return &ConfigSource{
		Path:      filepath.Join(dir, "config.toml"),
		DropInDir: filepath.Join(dir, "config.toml.d"),
	}, nil
}

// Read loads and returns the complete Settings by merging all layers:
// 1. Embedded defaults
// 2. Main settings file
// 3. Drop-in files
// 4. Environment variables
func (cs *ConfigSource) Read() (Settings, error) {
	resolved := Settings{}

	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		return resolved, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	if err := resolved.Update(dto); err != nil {
		return resolved, fmt.Errorf("failed to apply embedded defaults: %w", err)
	}

	if cs.Path != "" {
		data, err := os.ReadFile(cs.Path)
		switch {
		case os.IsNotExist(err):
			log.Debugf("settings file %s not found, skipping", cs.Path)
		case err != nil:
			return resolved, fmt.Errorf("failed to load %s: %w", cs.Path, err)
		default:
			mainDTO, err := parseConfigDTO(string(data))
			if err != nil {
				return resolved, fmt.Errorf("failed to parse %s: %w", cs.Path, err)
			}
			if err := resolved.Update(mainDTO); err != nil {
				return resolved, fmt.Errorf("invalid settings in %s: %w", cs.Path, err)
			}
		}
	}

	paths, err := cs.findDropInFiles()
	if err != nil {
		return resolved, err
	}
	for _, path := range paths {
		dropInDTO, err := parseDropInFile(path)
		if err != nil {
			return resolved, err
		}
		if err := resolved.Update(dropInDTO); err != nil {
			return resolved, fmt.Errorf("invalid settings in %s: %w", path, err)
		}
		log.Debugf("applied settings drop-in %s", path)
	}

	envDTO, err := parseEnvDTO(cs.Environ)
	if err != nil {
		return resolved, err
	}
	if err := resolved.Update(envDTO); err != nil {
		return resolved, fmt.Errorf("invalid settings in environment: %w", err)
	}

	return resolved, nil
}

type configDTO struct {
	Kind        *string `toml:"kind" env:"KIND"`
	AppName     *string `toml:"app-name" env:"APP_NAME"`
	Dir         *string `toml:"dir" env:"DIR"`
	Common      *bool   `toml:"common" env:"COMMON"`
	Comments    *bool   `toml:"comments" env:"COMMENTS"`
	CommentChar *string `toml:"comment-char" env:"COMMENT_CHAR"`
	OS          *bool   `toml:"os" env:"OS"`
	LogLevel    *string `toml:"log-level" env:"LOG_LEVEL"`
}

func parseConfigDTO(doc string) (configDTO, error) {
	var dto configDTO
	if _, err := toml.Decode(doc, &dto); err != nil {
		return configDTO{}, fmt.Errorf("invalid TOML: %w", err)
	}
	return dto, nil
}

// findDropInFiles lists the .toml and .ini files of DropInDir in lexical
// order. A missing directory yields no files.
func (cs *ConfigSource) findDropInFiles() ([]string, error) {
	if cs.DropInDir == "" {
		return nil, nil
	}

	dirents, err := os.ReadDir(cs.DropInDir)
	switch {
	case os.IsNotExist(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("cannot list settings drop-ins in %s: %w", cs.DropInDir, err)
	}

	var paths []string
	for _, d := range dirents {
		name := d.Name()
		if d.IsDir() || !(strings.HasSuffix(name, ".toml") || strings.HasSuffix(name, ".ini")) {
			continue
		}
		paths = append(paths, filepath.Join(cs.DropInDir, name))
	}
	sort.Strings(paths)

	return paths, nil
}

// parseDropInFile decodes one drop-in by its extension.
func parseDropInFile(path string) (configDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return configDTO{}, err
	}

	var dto configDTO
	if strings.HasSuffix(path, ".ini") {
		dto, err = parseLegacyDTO(data)
	} else {
		dto, err = parseConfigDTO(string(data))
	}
	if err != nil {
		return configDTO{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return dto, nil
}

// Overlay is a settings layer built outside this package, such as from
// command-line flags. Nil fields are left unchanged by Update.
type Overlay = configDTO
