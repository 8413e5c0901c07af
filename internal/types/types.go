package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity of a reported issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityOff:
		return "off"
	default:
		return "unknown"
	}
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The raw scalar text is used
// so that "off" is never resolved as a boolean.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", value.Value)
	}
	return nil
}

// ConfigRule is the per-rule configuration block.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Position is a 1-based source location.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Issue represents a finding reported on a dump file.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Severity   Severity
	Start      Position
	End        Position
}
