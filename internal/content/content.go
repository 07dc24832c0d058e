// Package content loads the portfolio shown by folio.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
)

// BuiltIn is the source name reported for the embedded portfolio
const BuiltIn = "built-in"

//go:embed default.toml
var defaultTOML []byte

// Default returns the built-in portfolio
func Default() (*domain.Portfolio, error) {
	p, err := Parse(defaultTOML)
	if err != nil {
		return nil, fmt.Errorf("built-in content: %w", err)
	}
	return p, nil
}

// Load reads a portfolio from a TOML file. An empty path selects the
// built-in portfolio.
func Load(path string) (*domain.Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a TOML portfolio
func Parse(data []byte) (*domain.Portfolio, error) {
	var p domain.Portfolio
	if err := toml.Unmarshal(data, &p); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse content at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	normalize(&p)
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants the page relies on
func Validate(p *domain.Portfolio) error {
	if strings.TrimSpace(p.Owner) == "" {
		return errors.New("content: owner is required")
	}
	seen := make(map[string]int, len(p.CaseStudies))
	for i, cs := range p.CaseStudies {
		if strings.TrimSpace(cs.Title) == "" {
			return fmt.Errorf("content: case study %d has no title", i+1)
		}
		if prev, dup := seen[cs.ID]; dup {
			return fmt.Errorf("content: case studies %d and %d share id %q", prev+1, i+1, cs.ID)
		}
		seen[cs.ID] = i
	}
	return nil
}

// Slug derives an identifier from a title
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func normalize(p *domain.Portfolio) {
	if p.Headline == "" {
		p.Headline = p.Owner
	}
	for i := range p.CaseStudies {
		cs := &p.CaseStudies[i]
		if cs.ID == "" {
			cs.ID = Slug(cs.Title)
		}
		docs := cs.Documents[:0]
		for _, d := range cs.Documents {
			if strings.TrimSpace(d) != "" {
				docs = append(docs, d)
			}
		}
		cs.Documents = docs
	}
}

// FindCaseStudy returns the case study whose ID equals id or whose title
// starts with id, ignoring case
func FindCaseStudy(p *domain.Portfolio, id string) (int, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return -1, false
	}
	for i, cs := range p.CaseStudies {
		if strings.ToLower(cs.ID) == id {
			return i, true
		}
	}
	for i, cs := range p.CaseStudies {
		if strings.HasPrefix(strings.ToLower(cs.Title), id) {
			return i, true
		}
	}
	return -1, false
}
