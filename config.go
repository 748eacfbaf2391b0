package vidar

// Config describes a single Load request. The zero value is usable but
// loads Common with no comment support; start from DefaultConfig instead.
type Config struct {
	// Kind selects the kind-specific file to load.
	Kind Kind
	// AppName names the application directory under the user configuration
	// directory. Only used when Locator is nil.
	AppName string
	// Common enables loading common.env before the kind file.
	Common bool
	// Comments enables skipping of comment lines.
	Comments bool
	// CommentChar is the comment leader.
	CommentChar rune
	// OS seeds the properties with the process environment.
	OS bool
	// Locator resolves the directory holding the files.
	Locator Locator
	// Environ returns the process environment as key=value strings.
	// Defaults to os.Environ.
	Environ func() []string
}

// DefaultConfig returns a Config for Development with comments disabled,
// '#' as comment leader, and neither common.env nor the OS environment.
func DefaultConfig() Config {
	return Config{
		Kind:        Development,
		CommentChar: '#',
	}
}

// ParseOptions returns the line parsing options of c.
func (c Config) ParseOptions() ParseOptions {
	return ParseOptions{
		Comments:    c.Comments,
		CommentChar: c.CommentChar,
	}
}

func (c Config) locator() Locator {
	if c.Locator != nil {
		return c.Locator
	}
	return UserConfigDir(c.AppName)
}
