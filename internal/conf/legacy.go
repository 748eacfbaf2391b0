package conf

import (
	"fmt"
	"strconv"

	"git.sr.ht/~spc/go-ini"
)

// legacyDTO is the INI layout of older drop-ins. INI has no notion of an
// absent value, so empty strings mean "not set".
type legacyDTO struct {
	Kind        string `ini:"kind"`
	AppName     string `ini:"app-name"`
	Dir         string `ini:"dir"`
	Common      string `ini:"common"`
	Comments    string `ini:"comments"`
	CommentChar string `ini:"comment-char"`
	OS          string `ini:"os"`
	LogLevel    string `ini:"log-level"`
}

// parseLegacyDTO parses INI data into a configDTO.
func parseLegacyDTO(data []byte) (configDTO, error) {
	var legacy legacyDTO
	if err := ini.Unmarshal(data, &legacy); err != nil {
		return configDTO{}, fmt.Errorf("failed to parse INI: %w", err)
	}

	var dto configDTO
	dto.Kind = optString(legacy.Kind)
	dto.AppName = optString(legacy.AppName)
	dto.Dir = optString(legacy.Dir)
	dto.CommentChar = optString(legacy.CommentChar)
	dto.LogLevel = optString(legacy.LogLevel)

	var err error
	if dto.Common, err = optBool("common", legacy.Common); err != nil {
		return configDTO{}, err
	}
	if dto.Comments, err = optBool("comments", legacy.Comments); err != nil {
		return configDTO{}, err
	}
	if dto.OS, err = optBool("os", legacy.OS); err != nil {
		return configDTO{}, err
	}

	return dto, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optBool(name, s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", name, s, err)
	}
	return &b, nil
}
