package style

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/sectiondoc/docstring"
	"go.jacobcolvin.com/sectiondoc/item"
	"go.jacobcolvin.com/sectiondoc/render"
)

// SchemaURI is the JSON Schema dialect of [Schema].
const SchemaURI = "https://json-schema.org/draft/2020-12/schema"

// File is the decoded form of a style file.
type File struct {
	// Kinds maps each kind to its section headers.
	Kinds map[string]map[string]FileSection `json:"kinds" yaml:"kinds"`
	Name  string                            `json:"name"  yaml:"name"`
}

// FileSection configures one section header in a style file.
type FileSection struct {
	Handler  string `json:"handler"            yaml:"handler"`
	Renderer string `json:"renderer,omitempty" yaml:"renderer,omitempty"`
	Item     string `json:"item,omitempty"     yaml:"item,omitempty"`
}

// Schema returns the JSON Schema that style files must conform to.
func Schema() *jsonschema.Schema {
	section := &jsonschema.Schema{
		Type:        "object",
		Description: "How the section under one header is rewritten.",
		Properties: map[string]*jsonschema.Schema{
			"handler": {
				Type:        "string",
				Description: "Strategy that consumes and rewrites the section.",
				Enum:        enum(docstring.GetAllHandlerStrings()),
			},
			"renderer": {
				Type:        "string",
				Description: "Output format for items. Defaults to the handler's first compatible renderer.",
				Enum:        enum(render.GetAllKindStrings()),
			},
			"item": {
				Type:        "string",
				Description: "Grammar that recognizes item headers. Defaults to definition, or method for method tables.",
				Enum:        enum(item.Names()),
			},
		},
		PropertyOrder:        []string{"handler", "renderer", "item"},
		Required:             []string{"handler"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	return &jsonschema.Schema{
		Schema:      SchemaURI,
		Title:       "sectiondoc style",
		Description: "Section maps used to rewrite documentation comments, per kind of documented entity.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {
				Type:        "string",
				Description: "Name of the style.",
				MinLength:   jsonschema.Ptr(1),
			},
			"kinds": {
				Type:          "object",
				Description:   "Section maps keyed by kind.",
				PropertyNames: &jsonschema.Schema{Enum: enum(GetAllKindStrings())},
				AdditionalProperties: &jsonschema.Schema{
					Type:                 "object",
					Description:          "Sections keyed by their exact header text.",
					AdditionalProperties: section,
				},
			},
		},
		PropertyOrder:        []string{"name", "kinds"},
		Required:             []string{"name", "kinds"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

func enum(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// LoadFile reads and parses the style file at path.
func LoadFile(path string) (*Style, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Style path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("read style file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a YAML style file, validates it against [Schema], and
// returns the resulting [Style].
func Parse(data []byte) (*Style, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyleFile, err)
	}

	// Round-trip through JSON so the instance only holds JSON types.
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyleFile, err)
	}

	var instance any

	err = json.Unmarshal(js, &instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyleFile, err)
	}

	resolved, err := Schema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolve style schema: %w", err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyleFile, err)
	}

	var f File

	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyleFile, err)
	}

	return f.Style()
}

// Style converts f to a validated [Style].
func (f *File) Style() (*Style, error) {
	sections := make(map[Kind]docstring.SectionMap, len(f.Kinds))

	for kindName, headers := range f.Kinds {
		kind, err := ParseKind(kindName)
		if err != nil {
			return nil, err
		}

		m := make(docstring.SectionMap, len(headers))

		for header, fs := range headers {
			section, err := fs.section()
			if err != nil {
				return nil, fmt.Errorf("%s: %q: %w", kind, header, err)
			}

			m[header] = section
		}

		sections[kind] = m
	}

	return New(f.Name, sections)
}

func (fs FileSection) section() (docstring.Section, error) {
	handler, err := docstring.ParseHandlerKind(fs.Handler)
	if err != nil {
		return docstring.Section{}, err
	}

	s := docstring.Section{Handler: handler}

	if fs.Renderer != "" {
		s.Renderer, err = render.ParseKind(fs.Renderer)
		if err != nil {
			return docstring.Section{}, err
		}
	}

	if fs.Item != "" {
		s.Grammar, err = item.Lookup(fs.Item)
		if err != nil {
			return docstring.Section{}, err
		}
	}

	return s, nil
}
