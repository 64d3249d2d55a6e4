package cli

import (
	"github.com/spf13/pflag"
)

// optionalStringFlag records whether the flag was given at all, so unset
// optional search terms can be left out of the request entirely
type optionalStringFlag struct {
	IsSet bool
	Value string
}

// String implements pflag.Value.
func (s *optionalStringFlag) String() string {
	return s.Value
}

func (s *optionalStringFlag) Set(value string) error {
	s.Value = value
	s.IsSet = true
	return nil
}

func (s *optionalStringFlag) Type() string {
	return "string"
}

var _ pflag.Value = &optionalStringFlag{}
