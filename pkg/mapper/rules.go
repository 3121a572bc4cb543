package mapper

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/mirrorsync/pkg/errors"
)

// Rules are the static choice-translation tables applied when mapping into a
// status vocabulary the source cannot extend.
type Rules struct {
	// Renames maps source option names to destination option names,
	// e.g. "WIP" -> "In Progress".
	Renames map[string]string `yaml:"renames"`

	// StatusFallback is written when a status option is still unknown to the
	// destination after renaming. Empty means clear the value instead.
	StatusFallback string `yaml:"status_fallback"`
}

// Rename translates a source option name through the rename table, returning
// the input unchanged when no rename is configured for it.
func (r Rules) Rename(label string) string {
	if renamed, ok := r.Renames[label]; ok {
		return renamed
	}
	return label
}

// LoadRules reads a Rules definition from a YAML file.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, errors.NewConfigError("rules", "cannot read rules file "+path, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, errors.NewConfigError("rules", "cannot parse rules file "+path, err)
	}
	return rules, nil
}
