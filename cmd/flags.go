package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// statusListFlag collects repeated --status values, validating each against
// the entity's status set
type statusListFlag struct {
	name   string
	valid  func(string) bool
	values []string
}

var _ pflag.Value = (*statusListFlag)(nil)

func (f *statusListFlag) String() string {
	return strings.Join(f.values, ",")
}

func (f *statusListFlag) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	if !f.valid(v) {
		return fmt.Errorf("invalid %s status: %s", f.name, v)
	}
	f.values = append(f.values, v)
	return nil
}

func (f *statusListFlag) Type() string {
	return "status"
}
