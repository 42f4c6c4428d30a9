package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/randomuser"
)

// filterOptions holds the request filters shared by get, one and bench.
type filterOptions struct {
	genders       []string
	nationalities []string
	seed          string
	password      string
}

func (f *filterOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVarP(&f.genders, "gender", "g", nil, "requested gender identities, e.g. female,queer (\"unspecified\" for none)")
	flags.StringSliceVar(&f.nationalities, "nat", nil, "nationality codes, e.g. US,GB")
	flags.StringVar(&f.seed, "seed", "", "seed for reproducible results")
	flags.StringVar(&f.password, "password", "", "password policy, e.g. upper,lower,8-16")
}

// apply layers the flags over the configured defaults onto b. A flag that was
// set replaces the matching default entirely.
func (f *filterOptions) apply(cmd *cobra.Command, o *globalOptions, b randomuser.Builder) (randomuser.Builder, error) {
	defaults := o.cfg.Defaults
	flags := cmd.Flags()

	genders := defaults.Gender
	if flags.Changed("gender") {
		genders = f.genders
	}
	if len(genders) > 0 {
		g, err := parseGender(genders)
		if err != nil {
			return b, err
		}
		b = b.WithGender(g)
	}

	nats := defaults.Nationalities
	if flags.Changed("nat") {
		nats = f.nationalities
	}
	parsed := make([]randomuser.Nationality, 0, len(nats))
	for _, code := range nats {
		n, err := randomuser.ParseNationality(code)
		if err != nil {
			return b, err
		}
		parsed = append(parsed, n)
	}
	switch len(parsed) {
	case 0:
	case 1:
		b = b.Nationality(parsed[0])
	default:
		b = b.Nationalities(parsed...)
	}

	seed := defaults.Seed
	if flags.Changed("seed") {
		seed = f.seed
	}
	if seed != "" {
		b = b.Seed(seed)
	}

	password := defaults.Password
	if flags.Changed("password") {
		password = f.password
	}
	if password != "" {
		b = b.Password(password)
	}

	return b, nil
}

// parseGender turns flag values into a Gender. "unspecified" alone requests
// the empty set; "trans" marks the gender as trans.
func parseGender(values []string) (randomuser.Gender, error) {
	var (
		ids   []randomuser.GenderIdentity
		trans bool
	)
	for _, v := range values {
		v = strings.TrimSpace(v)
		switch strings.ToLower(v) {
		case "unspecified", "none":
			continue
		case "trans":
			trans = true
			continue
		}
		id, err := randomuser.ParseGenderIdentity(v)
		if err != nil {
			return randomuser.Gender{}, fmt.Errorf("invalid --gender: %w", err)
		}
		ids = append(ids, id)
	}

	g := randomuser.NewGender(ids...)
	if trans {
		g.IsTrans = &trans
	}
	return g, nil
}
