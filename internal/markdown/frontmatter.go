package markdown

import (
	"bytes"
	"fmt"
	"maps"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-sitemark/pkg/interfaces"
)

// ParseFrontMatter splits source into its metadata block (YAML or TOML) and
// the markdown body that follows. Sources without front matter return an
// empty FrontMatter and the whole input as body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("markdown: parse frontmatter: %w", err)
	}

	return meta.toFrontMatter(), body, nil
}

// BuildDocument parses source into a Document for path. BodyHTML stays empty
// until the document is rendered.
func BuildDocument(path string, source []byte) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:    path,
		FrontMatter: fm,
		Body:        body,
	}, nil
}

type frontMatterEnvelope struct {
	Title    string         `yaml:"title" toml:"title"`
	Slug     string         `yaml:"slug" toml:"slug"`
	Summary  string         `yaml:"summary" toml:"summary"`
	Template string         `yaml:"template" toml:"template"`
	Tags     []string       `yaml:"tags" toml:"tags"`
	Author   string         `yaml:"author" toml:"author"`
	Date     time.Time      `yaml:"date" toml:"date"`
	Draft    bool           `yaml:"draft" toml:"draft"`
	Custom   map[string]any `yaml:",inline" toml:"-"`
}

func (env frontMatterEnvelope) toFrontMatter() interfaces.FrontMatter {
	custom := map[string]any{}
	maps.Copy(custom, env.Custom)

	raw := make(map[string]any, len(custom)+8)
	maps.Copy(raw, custom)

	set := func(key string, value string) {
		if value != "" {
			raw[key] = value
		}
	}
	set("title", env.Title)
	set("slug", env.Slug)
	set("summary", env.Summary)
	set("template", env.Template)
	set("author", env.Author)
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:    env.Title,
		Slug:     env.Slug,
		Summary:  env.Summary,
		Template: env.Template,
		Tags:     append([]string(nil), env.Tags...),
		Author:   env.Author,
		Date:     env.Date,
		Draft:    env.Draft,
		Custom:   custom,
		Raw:      raw,
	}
}
