// Package export renders loaded properties in formats other tools consume.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/coreos/go-systemd/v22/unit"
	"github.com/joho/godotenv"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	Dotenv  Format = "dotenv"
	Systemd Format = "systemd"
	TOML    Format = "toml"
	JSON    Format = "json"
	Shell   Format = "shell"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{Dotenv, Systemd, TOML, JSON, Shell}
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Properties is the read side of a loaded environment.
type Properties interface {
	Props() map[string]string
}

// Write renders props to w in format f.
func Write(w io.Writer, f Format, props Properties) error {
	m := props.Props()

	switch f {
	case Dotenv:
		return writeDotenv(w, m)
	case Systemd:
		return writeSystemd(w, m)
	case TOML:
		return toml.NewEncoder(w).Encode(m)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case Shell:
		return writeShell(w, m)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

func writeDotenv(w io.Writer, m map[string]string) error {
	content, err := godotenv.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal dotenv: %w", err)
	}
	if content == "" {
		return nil
	}
	_, err = io.WriteString(w, content+"\n")
	return err
}

// writeSystemd writes a unit drop-in with one Environment= line per key.
func writeSystemd(w io.Writer, m map[string]string) error {
	opts := make([]*unit.UnitOption, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if strings.ContainsAny(k, "= \t\n") || k == "" {
			return fmt.Errorf("key %q cannot be used as a systemd environment variable", k)
		}
		opts = append(opts, unit.NewUnitOption("Service", "Environment", systemdQuote(k+"="+m[k])))
	}
	if len(opts) == 0 {
		_, err := io.WriteString(w, "[Service]\n")
		return err
	}

	_, err := io.Copy(w, unit.Serialize(opts))
	return err
}

func systemdQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "%", "%%")
	return `"` + r.Replace(s) + `"`
}

var shellName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// writeShell writes POSIX sh export statements.
func writeShell(w io.Writer, m map[string]string) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if !shellName.MatchString(k) {
			return fmt.Errorf("key %q is not a valid shell variable name", k)
		}
		value := "'" + strings.ReplaceAll(m[k], "'", `'\''`) + "'"
		if _, err := fmt.Fprintf(w, "export %s=%s\n", k, value); err != nil {
			return err
		}
	}
	return nil
}
