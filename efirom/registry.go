package efirom

import (
	"strings"
)

const Unknown = "Unknown"

type Mapping struct {
	Identifier HardwareIdentifier `yaml:"board-id" plist:"BoardID" json:"board-id"`
	Model      string             `yaml:"model" plist:"Model" json:"model"`
}

type Registry struct {
	entries []Mapping
}

/* First match wins, so earlier entries take precedence */
func NewRegistry(entries ...[]Mapping) *Registry {
	r := &Registry{}
	for _, m := range entries {
		r.entries = append(r.entries, m...)
	}
	return r
}

func (r *Registry) ModelFor(id HardwareIdentifier) string {
	for _, m := range r.entries {
		if m.Identifier == id {
			return m.Model
		}
	}
	return Unknown
}

func (r *Registry) IdentifierFor(model string) HardwareIdentifier {
	/* Several board-ids are listed with an unknown model */
	if model == Unknown {
		return Unknown
	}
	for _, m := range r.entries {
		if m.Model == model {
			return m.Identifier
		}
	}
	return Unknown
}

func (r *Registry) Entries() []Mapping {
	return append([]Mapping(nil), r.entries...)
}

/* Longer prefixes must come before the shorter ones they overlap */
var familyPrefixes = []struct {
	prefix string
	family string
}{
	{"IMP", "iMacPro"},
	{"IM", "iMac"},
	{"MBP", "MacBookPro"},
	{"MBA", "MacBookAir"},
	{"MB", "MacBook"},
	{"MM", "Macmini"},
	{"MP", "MacPro"},
}

func DeriveModelFromToken(token string) string {
	token = strings.ToUpper(strings.TrimSpace(token))

	var digits strings.Builder
	for _, c := range token {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}
	number := digits.String()
	if len(number) < 2 {
		return Unknown
	}

	for _, m := range familyPrefixes {
		if strings.HasPrefix(token, m.prefix) {
			return m.family + number[:len(number)-1] + "," + number[len(number)-1:]
		}
	}
	return Unknown
}
