package vidar

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// Locator resolves the directory that holds the property files.
type Locator interface {
	Locate() (string, error)
}

// LocatorFunc adapts an ordinary function to the Locator interface.
type LocatorFunc func() (string, error)

// Locate implements the Locator interface.
func (f LocatorFunc) Locate() (string, error) {
	return f()
}

// Dir returns a Locator for an explicit base directory.
func Dir(path string) Locator {
	return LocatorFunc(func() (string, error) {
		if path == "" {
			return "", ErrConfigPath
		}
		return path, nil
	})
}

// WorkingDir returns a Locator for the current working directory.
func WorkingDir() Locator {
	return LocatorFunc(os.Getwd)
}

// UserConfigDir returns a Locator for the per-user configuration directory
// of appName:
//
//   - $XDG_CONFIG_HOME/<appName> on unix, %APPDATA%\<appName> on Windows
//   - <home>/.config/<appName> when that variable is unset or empty
//
// Locate fails with ErrConfigPath when no home directory can be found.
func UserConfigDir(appName string) Locator {
	return userConfigDir{
		appName: appName,
		goos:    runtime.GOOS,
		getenv:  os.Getenv,
		home:    os.UserHomeDir,
	}
}

type userConfigDir struct {
	appName string
	goos    string
	getenv  func(string) string
	home    func() (string, error)
}

func (u userConfigDir) Locate() (string, error) {
	variable := "XDG_CONFIG_HOME"
	if u.goos == "windows" {
		variable = "APPDATA"
	}

	if dir := u.getenv(variable); dir != "" {
		return filepath.Join(dir, u.appName), nil
	}

	home, err := u.home()
	if err != nil || home == "" {
		return "", errors.Join(ErrConfigPath, err)
	}
	return filepath.Join(home, ".config", u.appName), nil
}
