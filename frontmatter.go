package md2post

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alnah/go-md2post/internal/yamlutil"
)

// frontMatterFence delimits the front matter block.
const frontMatterFence = "---\n"

// TOCSettings asks the blog theme for a generated table of contents.
type TOCSettings struct {
	Beginning bool `yaml:"beginning"`
}

// PostFrontMatter is the header of a post built from a Markdown note.
// Field order is the order written.
type PostFrontMatter struct {
	Layout      string       `yaml:"layout"`
	Title       string       `yaml:"title"`
	Date        string       `yaml:"date"`
	Description string       `yaml:"description"`
	Tags        []string     `yaml:"tags"`
	Categories  string       `yaml:"categories"`
	TOC         *TOCSettings `yaml:"toc,omitempty"`
}

// RedirectFrontMatter is the header of a post pointing at a copied PDF.
type RedirectFrontMatter struct {
	Layout     string `yaml:"layout"`
	Title      string `yaml:"title"`
	Date       string `yaml:"date"`
	Redirect   string `yaml:"redirect"`
	Categories string `yaml:"categories"`
}

// RenderFrontMatter serializes v as block-style YAML between "---" lines.
func RenderFrontMatter(v any) (string, error) {
	data, err := yamlutil.MarshalBlock(v)
	if err != nil {
		return "", fmt.Errorf("rendering front matter: %w", err)
	}
	return frontMatterFence + string(data) + frontMatterFence, nil
}

// NoteFrontMatter holds the fields a note's own front matter may set.
type NoteFrontMatter struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Tags        TagList `yaml:"tags"`
}

// TagList decodes a YAML sequence or a string of comma or space separated
// tags.
type TagList []string

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (t *TagList) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*t = nil
	case string:
		*t = strings.FieldsFunc(v, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	case []any:
		tags := make(TagList, 0, len(v))
		for _, item := range v {
			if tag := strings.TrimSpace(fmt.Sprint(item)); tag != "" {
				tags = append(tags, tag)
			}
		}
		*t = tags
	default:
		return fmt.Errorf("tags: unsupported value %v", v)
	}
	return nil
}

// SplitFrontMatter separates a leading "---" fenced YAML block from a
// note. found is false, and body is content, when the note has no such
// block. On a decode error body is content as well.
func SplitFrontMatter(content string) (note NoteFrontMatter, body string, found bool, err error) {
	if !strings.HasPrefix(content, frontMatterFence) {
		return NoteFrontMatter{}, content, false, nil
	}
	rest := content[len(frontMatterFence):]

	var block string
	switch {
	case strings.HasPrefix(rest, frontMatterFence):
		body = rest[len(frontMatterFence):]
	case strings.Contains(rest, "\n"+frontMatterFence):
		block, body, _ = strings.Cut(rest, "\n"+frontMatterFence)
	case strings.HasSuffix(rest, "\n---"):
		block = strings.TrimSuffix(rest, "\n---")
	default:
		return NoteFrontMatter{}, content, false, nil
	}

	if strings.TrimSpace(block) == "" {
		return NoteFrontMatter{}, body, true, nil
	}
	if err := yamlutil.Unmarshal([]byte(block), &note); err != nil {
		return NoteFrontMatter{}, content, false, fmt.Errorf("note front matter: %w", err)
	}
	return note, body, true, nil
}

// fillFrom sets the fields m leaves empty from a note's front matter.
func (m Metadata) fillFrom(note NoteFrontMatter) Metadata {
	if m.Title == "" {
		m.Title = note.Title
	}
	if m.Description == "" {
		m.Description = note.Description
	}
	if len(m.Tags) == 0 && len(note.Tags) > 0 {
		m.Tags = []string(note.Tags)
	}
	return m
}
