package vidar

import "strconv"

// Suffix is appended to a kind token to form its file name.
const Suffix = ".env"

// Kind is an environment category. Each kind has one token, used both to
// name its property file and to parse it from user input.
type Kind uint8

const (
	// Common holds properties shared by every other kind.
	Common Kind = iota
	// Development properties, token "dev".
	Development
	// Test properties, token "test".
	Test
	// Integration properties, token "int".
	Integration
	// Staging properties, token "stage".
	Staging
	// Production properties, token "prod".
	Production

	numKinds
)

var kindTokens = [...]string{
	Common:      "common",
	Development: "dev",
	Test:        "test",
	Integration: "int",
	Staging:     "stage",
	Production:  "prod",
}

// Adding a Kind without a token breaks this index at compile time.
func _() {
	var x [1]struct{}
	_ = x[numKinds-Kind(len(kindTokens))]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Common; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind returns the Kind whose token is exactly token. Matching is
// case-sensitive and does not trim whitespace.
func ParseKind(token string) (Kind, error) {
	for k, t := range kindTokens {
		if t == token {
			return Kind(k), nil
		}
	}
	return 0, &InvalidKindError{Token: token}
}

// String returns the kind token.
func (k Kind) String() string {
	if k >= numKinds {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindTokens[k]
}

// FileName returns the name of the property file for k, e.g. "prod.env".
func (k Kind) FileName() string {
	return k.String() + Suffix
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k >= numKinds {
		return nil, &InvalidKindError{Token: k.String()}
	}
	return []byte(kindTokens[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
