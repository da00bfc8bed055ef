package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Provider resolves a requested language to a calendar name table.
// Resolution uses BCP 47 matching, so "en-US" finds an "en" table and an
// unknown language falls back to the default table.
type Provider struct {
	tags     []language.Tag
	tables   []Names
	matcher  language.Matcher
	fallback Names
}

// NewProvider creates a provider over the given language → names tables.
// The fallback table is returned for unknown or unparseable languages.
// Passing an empty map yields a provider that always returns the fallback.
func NewProvider(tables map[string]Names, fallback Names) *Provider {
	p := &Provider{fallback: fallback}
	for lang, names := range tables {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		p.tags = append(p.tags, tag)
		p.tables = append(p.tables, names)
	}
	if len(p.tags) > 0 {
		p.matcher = language.NewMatcher(p.tags)
	}
	return p
}

// Default returns a provider with only the built-in English table.
func Default() *Provider {
	return NewProvider(map[string]Names{"en": English()}, English())
}

// Names resolves lang to the best matching table.
func (p *Provider) Names(lang string) Names {
	if p.matcher == nil {
		return p.fallback
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return p.fallback
	}
	if _, index, conf := p.matcher.Match(tag); conf > language.No {
		return p.tables[index]
	}
	return p.fallback
}

// Languages lists the languages the provider has explicit tables for.
func (p *Provider) Languages() []string {
	langs := make([]string, len(p.tags))
	for i, tag := range p.tags {
		langs[i] = tag.String()
	}
	return langs
}

// ParseYAML parses a document mapping language codes to name tables:
//
//	en:
//	  short_days: [Mon, Tue, Wed, Thu, Fri, Sat, Sun]
//	  long_days: [Monday, ...]
//	  short_months: [Jan, ...]
//	  long_months: [January, ...]
//
// Each sequence length is validated here; this is the only place the package
// defends against malformed data.
func ParseYAML(data []byte) (map[string]Names, error) {
	var doc map[string]Names
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseYAML, err)
	}
	if len(doc) == 0 {
		return nil, ErrNoLanguages
	}
	for lang, names := range doc {
		if err := validateNames(lang, names); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// NewProviderFromYAML parses a YAML document and wraps it in a provider
// falling back to the built-in English table.
func NewProviderFromYAML(data []byte) (*Provider, error) {
	tables, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return NewProvider(tables, English()), nil
}

func validateNames(lang string, names Names) error {
	checks := []struct {
		field string
		got   int
		want  int
	}{
		{"short_days", len(names.ShortDays), 7},
		{"long_days", len(names.LongDays), 7},
		{"short_months", len(names.ShortMonths), 12},
		{"long_months", len(names.LongMonths), 12},
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("%w: %s.%s has %d entries, want %d",
				ErrInvalidNameCount, lang, c.field, c.got, c.want)
		}
	}
	return nil
}
