package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrCatalogLoad marks a content document that could not be fetched or
// parsed. Everything short of that is absorbed with field defaults.
var ErrCatalogLoad = errors.New("catalog: content document could not be loaded")

// documentSchema describes the content document. Only ids are required;
// every other field is absent-tolerant and defaults on read.
const documentSchema = `{
	"type": "object",
	"properties": {
		"sections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id"],
				"properties": {
					"id": {"type": "string"},
					"title": {"type": "string"},
					"summary": {"type": "string"},
					"banner": {"type": "string"},
					"subsections": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["id"],
							"properties": {
								"id": {"type": "string"},
								"title": {"type": "string"},
								"description": {"type": "string"},
								"duration": {"type": "string"},
								"videoUrl": {"type": "string"},
								"text": {"type": ["string", "array"]},
								"quizFormId": {"type": "string"},
								"questions": {
									"type": "array",
									"items": {
										"type": "object",
										"properties": {
											"question": {"type": "string"},
											"options": {"type": "array", "items": {"type": "string"}},
											"correctIndex": {"type": "integer"},
											"explanation": {"type": "string"},
											"fieldName": {"type": "string"}
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}
}`

// ParseCatalog decodes a content document into a Catalog. JSON documents
// are validated against documentSchema first; anything else is tried as
// YAML. A top-level document with no sections yields an empty catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrCatalogLoad)
	}
	if trimmed[0] == '{' {
		return parseJSON(trimmed)
	}
	return parseYAML(trimmed)
}

func parseJSON(data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrCatalogLoad, result.Errors()[0])
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	normalize(&c)
	return &c, nil
}

func parseYAML(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogLoad, err)
	}
	normalize(&c)
	return &c, nil
}

// normalize replaces nil sequences with empty ones so downstream code can
// range without nil checks.
func normalize(c *Catalog) {
	if c.Sections == nil {
		c.Sections = []Section{}
	}
	for i := range c.Sections {
		if c.Sections[i].Subsections == nil {
			c.Sections[i].Subsections = []Subsection{}
		}
		for j := range c.Sections[i].Subsections {
			sub := &c.Sections[i].Subsections[j]
			if sub.Questions == nil {
				sub.Questions = []Question{}
			}
		}
	}
}
