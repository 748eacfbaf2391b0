// Package l10n translates the user-facing messages of the vidar command.
package l10n

import (
	"fmt"

	"github.com/snapcore/go-gettext"
)

// Domain is the gettext text domain of the vidar command.
const Domain = "vidar"

var (
	domain  = &gettext.TextDomain{Name: Domain}
	catalog = domain.UserLocale()
)

// T translates msg and formats it with args.
func T(msg string, args ...any) string {
	return format(catalog.Gettext(msg), args)
}

// TN translates a message that has a plural form, chosen by n.
func TN(singular, plural string, n uint32, args ...any) string {
	return format(catalog.NGettext(singular, plural, n), args)
}

func format(translation string, args []any) string {
	if len(args) == 0 {
		return translation
	}
	return fmt.Sprintf(translation, args...)
}
