package output

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/randomuser"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// FormatProvider renders a batch of users. info is nil when batch info was
// not requested.
type FormatProvider interface {
	FormatUsers(users []randomuser.User, info *randomuser.Info) (string, error)
}

// GetFormatter returns the formatter for format.
func GetFormatter(format OutputFormat, noColor bool) (FormatProvider, error) {
	switch format {
	case FormatText, "":
		return NewTextFormatter(noColor), nil
	case FormatJSON:
		return &JSONFormatter{Pretty: true}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// document is the shape written by the structured formatters.
type document struct {
	Results []randomuser.User `json:"results" yaml:"results"`
	Info    *randomuser.Info  `json:"info,omitempty" yaml:"info,omitempty"`
}

func payload(users []randomuser.User, info *randomuser.Info) interface{} {
	if users == nil {
		users = []randomuser.User{}
	}
	if info == nil {
		return users
	}
	return document{Results: users, Info: info}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

// FormatUsers implements FormatProvider.
func (f *JSONFormatter) FormatUsers(users []randomuser.User, info *randomuser.Info) (string, error) {
	var (
		out []byte
		err error
	)
	if f.Pretty {
		out, err = json.MarshalIndent(payload(users, info), "", "  ")
	} else {
		out, err = json.Marshal(payload(users, info))
	}
	if err != nil {
		return "", fmt.Errorf("marshal users: %w", err)
	}
	return string(out) + "\n", nil
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct{}

// FormatUsers implements FormatProvider.
func (f *YAMLFormatter) FormatUsers(users []randomuser.User, info *randomuser.Info) (string, error) {
	out, err := yaml.Marshal(payload(users, info))
	if err != nil {
		return "", fmt.Errorf("marshal users: %w", err)
	}
	return string(out), nil
}
