package randomuser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// GenderIdentity is one self-identified gender.
type GenderIdentity int

const (
	Female GenderIdentity = iota + 1
	Male
	NonBinary
	Queer
	Agender
	Other
)

var genderIdentityNames = [...]string{
	Female:    "female",
	Male:      "male",
	NonBinary: "nonbinary",
	Queer:     "queer",
	Agender:   "agender",
	Other:     "other",
}

// GenderIdentities returns every identity in declaration order.
func GenderIdentities() []GenderIdentity {
	return []GenderIdentity{Female, Male, NonBinary, Queer, Agender, Other}
}

// IsValid reports whether g is one of the declared identities.
func (g GenderIdentity) IsValid() bool {
	return g >= Female && g <= Other
}

func (g GenderIdentity) String() string {
	if !g.IsValid() {
		return fmt.Sprintf("GenderIdentity(%d)", int(g))
	}
	return genderIdentityNames[g]
}

// ParseGenderIdentity parses a wire name. Matching ignores case, and the
// hyphenated "non-binary" spelling is accepted.
func ParseGenderIdentity(s string) (GenderIdentity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "non-binary" {
		name = "nonbinary"
	}
	for _, id := range GenderIdentities() {
		if genderIdentityNames[id] == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown gender identity %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (g GenderIdentity) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("invalid gender identity %d", int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GenderIdentity) UnmarshalText(text []byte) error {
	id, err := ParseGenderIdentity(string(text))
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// Gender describes how a user identifies. An empty Genders set is valid data:
// the user either does not experience gender or preferred not to say. IsTrans
// is nil when not applicable or not answered.
type Gender struct {
	Genders []GenderIdentity `json:"genders" yaml:"genders"`
	IsTrans *bool            `json:"is_trans" yaml:"is_trans"`
}

// NewGender builds a Gender from a set of identities. Duplicates are dropped
// and the result is ordered by declaration order.
func NewGender(ids ...GenderIdentity) Gender {
	set := make([]GenderIdentity, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(set, id) {
			set = append(set, id)
		}
	}
	slices.Sort(set)
	return Gender{Genders: set}
}

// RandomGender picks a single identity uniformly at random.
func RandomGender() Gender {
	all := GenderIdentities()
	return NewGender(all[rand.Intn(len(all))])
}

// Has reports whether id is part of the set.
func (g Gender) Has(id GenderIdentity) bool {
	return slices.Contains(g.Genders, id)
}

// IsUnspecified reports whether no identity is recorded.
func (g Gender) IsUnspecified() bool {
	return len(g.Genders) == 0
}

// Equal compares identity sets and the trans flag.
func (g Gender) Equal(other Gender) bool {
	if !slices.Equal(g.Genders, other.Genders) {
		return false
	}
	switch {
	case g.IsTrans == nil && other.IsTrans == nil:
		return true
	case g.IsTrans == nil || other.IsTrans == nil:
		return false
	default:
		return *g.IsTrans == *other.IsTrans
	}
}

// Clone returns a copy that shares no memory with g.
func (g Gender) Clone() Gender {
	out := Gender{Genders: slices.Clone(g.Genders)}
	if g.IsTrans != nil {
		v := *g.IsTrans
		out.IsTrans = &v
	}
	return out
}

func (g Gender) String() string {
	if g.IsUnspecified() {
		return "unspecified"
	}
	names := make([]string, len(g.Genders))
	for i, id := range g.Genders {
		names[i] = id.String()
	}
	s := strings.Join(names, "/")
	if g.IsTrans != nil && *g.IsTrans {
		s += " (trans)"
	}
	return s
}

// UnmarshalJSON accepts the bare string sent upstream ("female") as well as
// the object form produced by json.Marshal. Unrecognized names decode as Other
// and an empty string as an empty set.
func (g *Gender) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*g = Gender{}
		if strings.TrimSpace(s) == "" {
			g.Genders = []GenderIdentity{}
			return nil
		}
		id, err := ParseGenderIdentity(s)
		if err != nil {
			id = Other
		}
		g.Genders = []GenderIdentity{id}
		return nil
	}

	type genderObject Gender
	var obj genderObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*g = NewGender(obj.Genders...)
	g.IsTrans = obj.IsTrans
	return nil
}
