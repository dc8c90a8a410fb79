package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/smartfarm/internal/domain"
	"github.com/spf13/pflag"
)

// experienceValue is a pflag.Value restricted to the experience levels.
type experienceValue struct {
	v *domain.Experience
}

var _ pflag.Value = experienceValue{}

func (e experienceValue) String() string {
	if e.v == nil {
		return ""
	}
	return string(*e.v)
}

func (e experienceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidExperiences[s] {
		return fmt.Errorf("must be one of %s", joinOptions(domain.ExperienceOptions))
	}
	*e.v = domain.Experience(s)
	return nil
}

func (e experienceValue) Type() string { return "experience" }

// gardenValue is a pflag.Value restricted to the garden types.
type gardenValue struct {
	v *domain.GardenType
}

var _ pflag.Value = gardenValue{}

func (g gardenValue) String() string {
	if g.v == nil {
		return ""
	}
	return string(*g.v)
}

func (g gardenValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidGardenTypes[s] {
		return fmt.Errorf("must be one of %s", joinOptions(domain.GardenTypeOptions))
	}
	*g.v = domain.GardenType(s)
	return nil
}

func (g gardenValue) Type() string { return "garden" }

func joinOptions[T ~string](opts []T) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = string(o)
	}
	return strings.Join(parts, ", ")
}

// addMonthFlag registers the shared --month flag.
func addMonthFlag(fs *pflag.FlagSet, month *int) {
	fs.IntVar(month, "month", 0, "Month 1-12 to use for seasonal advice (default: current month)")
}
