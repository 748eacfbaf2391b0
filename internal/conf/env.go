package conf

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read into the settings.
const EnvPrefix = "VIDAR_"

// parseEnvDTO reads VIDAR_* variables into a configDTO. Unset variables leave
// their field nil. A nil environ means the process environment.
func parseEnvDTO(environ map[string]string) (configDTO, error) {
	var dto configDTO

	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(&dto, opts); err != nil {
		return dto, fmt.Errorf("error getting env settings: %w", err)
	}

	return dto, nil
}
