package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Collection payloads are validated before decoding, whether they come from
// the persisted store or a content fetch. A payload failing its schema is
// treated the same as undecodable JSON: the caller reseeds.

var schemaCache sync.Map // map[string]*jsonschema.Schema

// ValidateCourses checks a JSON payload against the course collection schema.
func ValidateCourses(raw []byte) error {
	return validateCollection("courses", coursesSchema, raw)
}

// ValidateSkills checks a JSON payload against the skill collection schema.
func ValidateSkills(raw []byte) error {
	return validateCollection("skills", skillsSchema, raw)
}

// ValidateChallenges checks a JSON payload against the challenge collection schema.
func ValidateChallenges(raw []byte) error {
	return validateCollection("challenges", challengesSchema, raw)
}

func validateCollection(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, def)
	if err != nil {
		return fmt.Errorf("compile %s schema: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%s payload: %w", name, err)
	}
	return nil
}

func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value, not a Go map with typed
	// members. Round-trip through encoding/json to normalize.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

// questionObject is shared by exercises and challenge questions.
func questionObject(extraProps map[string]any, required []any) map[string]any {
	props := map[string]any{
		"id":       map[string]any{"type": "string"},
		"question": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 2,
		},
		"correctAnswer": map[string]any{"type": "integer", "minimum": 0},
		"explanation":   map[string]any{"type": "string"},
	}
	for k, v := range extraProps {
		props[k] = v
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

var progressProp = map[string]any{"type": "number", "minimum": 0, "maximum": 1}

var coursesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"title":       map[string]any{"type": "string"},
			"language":    map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"Beginner", "Intermediate", "Advanced"},
			},
			"lessons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":      map[string]any{"type": "string"},
						"title":   map[string]any{"type": "string"},
						"content": map[string]any{"type": "string"},
						"exercises": map[string]any{
							"type": "array",
							"items": questionObject(
								map[string]any{"type": map[string]any{"type": "string"}},
								[]any{"question", "options", "correctAnswer"},
							),
						},
						"duration": map[string]any{"type": "integer", "minimum": 0},
					},
					"required": []any{"title", "exercises"},
				},
			},
			"progress":      progressProp,
			"estimatedTime": map[string]any{"type": "string"},
			"flag":          map[string]any{"type": "string"},
		},
		"required": []any{"id", "title", "language", "difficulty", "lessons"},
	},
}

var skillsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string"},
			"title": map[string]any{"type": "string"},
			"category": map[string]any{
				"type": "string",
				"enum": []any{
					"Communication", "Negotiation", "Presentation",
					"Networking", "Leadership", "Cultural Etiquette",
				},
			},
			"description": map[string]any{"type": "string"},
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":      map[string]any{"type": "string"},
						"title":   map[string]any{"type": "string"},
						"content": map[string]any{"type": "string"},
						"practiceScenarios": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":              map[string]any{"type": "string"},
									"title":           map[string]any{"type": "string"},
									"situation":       map[string]any{"type": "string"},
									"culturalContext": map[string]any{"type": "string"},
									"keyPhrases":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
									"tips":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
									"language":        map[string]any{"type": "string"},
								},
								"required": []any{"title", "situation"},
							},
						},
						"duration": map[string]any{"type": "integer", "minimum": 0},
					},
					"required": []any{"title", "practiceScenarios"},
				},
			},
			"progress":      progressProp,
			"estimatedTime": map[string]any{"type": "string"},
			"icon":          map[string]any{"type": "string"},
		},
		"required": []any{"id", "title", "category", "modules"},
	},
}

var challengesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string"},
			"title": map[string]any{"type": "string"},
			"type": map[string]any{
				"type": "string",
				"enum": []any{"Movie", "Music", "Literature", "Culture", "History"},
			},
			"language":        map[string]any{"type": "string"},
			"description":     map[string]any{"type": "string"},
			"culturalContext": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": questionObject(
					map[string]any{"culturalNote": map[string]any{"type": "string"}},
					[]any{"question", "options", "correctAnswer"},
				),
				"minItems": 1,
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"Easy", "Medium", "Hard"},
			},
			"points":    map[string]any{"type": "integer", "minimum": 0},
			"timeLimit": map[string]any{"type": "integer", "minimum": 1},
			"mediaReference": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"year":        map[string]any{"type": "integer"},
					"creator":     map[string]any{"type": "string"},
					"genre":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required": []any{"title"},
			},
		},
		"required": []any{"id", "title", "type", "questions", "points", "timeLimit"},
	},
}
