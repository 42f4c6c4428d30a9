package randomuser

import (
	"fmt"
	"strings"
)

// Nationality is one of the country datasets the upstream generator supports.
type Nationality int

const (
	Australian Nationality = iota + 1
	Brazilian
	Canadian
	Swiss
	German
	Danish
	Spanish
	Finnish
	French
	British
	Irish
	Indian
	Iranian
	Mexican
	Dutch
	Norwegian
	NewZealander
	Serbian
	Turkish
	Ukrainian
	American
)

var nationalityTable = [...]struct {
	code string
	name string
}{
	Australian:   {"AU", "Australian"},
	Brazilian:    {"BR", "Brazilian"},
	Canadian:     {"CA", "Canadian"},
	Swiss:        {"CH", "Swiss"},
	German:       {"DE", "German"},
	Danish:       {"DK", "Danish"},
	Spanish:      {"ES", "Spanish"},
	Finnish:      {"FI", "Finnish"},
	French:       {"FR", "French"},
	British:      {"GB", "British"},
	Irish:        {"IE", "Irish"},
	Indian:       {"IN", "Indian"},
	Iranian:      {"IR", "Iranian"},
	Mexican:      {"MX", "Mexican"},
	Dutch:        {"NL", "Dutch"},
	Norwegian:    {"NO", "Norwegian"},
	NewZealander: {"NZ", "New Zealander"},
	Serbian:      {"RS", "Serbian"},
	Turkish:      {"TR", "Turkish"},
	Ukrainian:    {"UA", "Ukrainian"},
	American:     {"US", "American"},
}

// Nationalities returns every supported nationality in declaration order.
func Nationalities() []Nationality {
	out := make([]Nationality, 0, len(nationalityTable)-1)
	for n := Australian; n <= American; n++ {
		out = append(out, n)
	}
	return out
}

// IsValid reports whether n is a declared nationality.
func (n Nationality) IsValid() bool {
	return n >= Australian && n <= American
}

// Code returns the two-letter wire code, e.g. "AU".
func (n Nationality) Code() string {
	if !n.IsValid() {
		return ""
	}
	return nationalityTable[n].code
}

// Name returns the demonym, e.g. "Australian".
func (n Nationality) Name() string {
	if !n.IsValid() {
		return ""
	}
	return nationalityTable[n].name
}

func (n Nationality) String() string {
	if !n.IsValid() {
		return fmt.Sprintf("Nationality(%d)", int(n))
	}
	return n.Code()
}

// ParseNationality maps a wire code back to its nationality. Lower-case codes
// are accepted.
func ParseNationality(code string) (Nationality, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	for _, n := range Nationalities() {
		if nationalityTable[n].code == c {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown nationality code %q", code)
}

// MarshalText implements encoding.TextMarshaler.
func (n Nationality) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return nil, fmt.Errorf("invalid nationality %d", int(n))
	}
	return []byte(n.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Nationality) UnmarshalText(text []byte) error {
	v, err := ParseNationality(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// joinCodes renders nationalities as a comma separated list of wire codes.
func joinCodes(ns []Nationality) string {
	codes := make([]string, 0, len(ns))
	for _, n := range ns {
		codes = append(codes, n.Code())
	}
	return strings.Join(codes, ",")
}
