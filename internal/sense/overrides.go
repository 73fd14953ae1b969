package sense

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// OverrideTableVersion is the only table format understood by LoadOverrideTable.
const OverrideTableVersion = 1

//go:embed overrides.yml
var defaultOverrides []byte

// OverrideTable lists lemmas whose senses cannot be told apart by position in the source.
type OverrideTable struct {
	Version   int        `yaml:"version"`
	Overrides []Override `yaml:"overrides"`
}

// Override assigns meaning ids to the senses of one lemma by their morphology.
type Override struct {
	Lemma string         `yaml:"lemma"`
	Rules []OverrideRule `yaml:"rules"`
}

// OverrideRule matches a record whose morphology contains Contains.
type OverrideRule struct {
	Contains  string `yaml:"contains"`
	MeaningID int    `yaml:"meaning_id"`
}

// DefaultOverrideTable returns the table shipped with the binary.
func DefaultOverrideTable() OverrideTable {
	table, err := ParseOverrideTable(defaultOverrides)
	if err != nil {
		panic(fmt.Errorf("embedded overrides.yml is invalid: %w", err))
	}
	return table
}

// LoadOverrideTable reads a table from path, or returns the default table when path is empty.
func LoadOverrideTable(path string) (OverrideTable, error) {
	if path == "" {
		return DefaultOverrideTable(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return OverrideTable{}, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	table, err := ParseOverrideTable(content)
	if err != nil {
		return OverrideTable{}, fmt.Errorf("ParseOverrideTable(%s) > %w", path, err)
	}
	return table, nil
}

// ParseOverrideTable decodes and validates a YAML override table.
func ParseOverrideTable(content []byte) (OverrideTable, error) {
	var table OverrideTable
	if err := yaml.Unmarshal(content, &table); err != nil {
		return OverrideTable{}, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	if err := table.Validate(); err != nil {
		return OverrideTable{}, err
	}
	return table, nil
}

// Validate checks the version and that every rule can match and assigns a positive id.
func (t OverrideTable) Validate() error {
	if t.Version != OverrideTableVersion {
		return fmt.Errorf("unsupported override table version %d, want %d", t.Version, OverrideTableVersion)
	}
	var errs []error
	seen := make(map[string]struct{})
	for i, override := range t.Overrides {
		if override.Lemma == "" {
			errs = append(errs, fmt.Errorf("overrides[%d]: lemma is empty", i))
		}
		if _, ok := seen[override.Lemma]; ok {
			errs = append(errs, fmt.Errorf("overrides[%d]: duplicate lemma %q", i, override.Lemma))
		}
		seen[override.Lemma] = struct{}{}
		if len(override.Rules) == 0 {
			errs = append(errs, fmt.Errorf("overrides[%d]: no rules for %q", i, override.Lemma))
		}
		for j, rule := range override.Rules {
			if rule.Contains == "" {
				errs = append(errs, fmt.Errorf("overrides[%d].rules[%d]: contains is empty", i, j))
			}
			if rule.MeaningID < 1 {
				errs = append(errs, fmt.Errorf("overrides[%d].rules[%d]: meaning_id must be positive", i, j))
			}
		}
	}
	return errors.Join(errs...)
}

func (t OverrideTable) lookup(lemma string) (Override, bool) {
	for _, override := range t.Overrides {
		if override.Lemma == lemma {
			return override, true
		}
	}
	return Override{}, false
}

// match returns the meaning id of the first rule matching morphology.
func (o Override) match(morphology string) (int, bool) {
	for _, rule := range o.Rules {
		if strings.Contains(morphology, rule.Contains) {
			return rule.MeaningID, true
		}
	}
	return 0, false
}
