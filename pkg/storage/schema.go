package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/td0m/tickit/pkg/task"
)

const tasksSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "status", "createdAt", "updatedAt"],
		"properties": {
			"id":          {"type": "string", "minLength": 1},
			"title":       {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"status":      {"enum": ["pending", "completed"]},
			"dueDate":     {"type": "string"},
			"createdAt":   {"type": "string"},
			"updatedAt":   {"type": "string"}
		}
	}
}`

var tasksValidator = jsonschema.MustCompileString("tasks.schema.json", tasksSchema)

// decodeTasks checks the payload shape before decoding it
func decodeTasks(bs []byte) ([]task.Task, error) {
	dec := json.NewDecoder(bytes.NewReader(bs))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := tasksValidator.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	tasks := []task.Task{}
	if err := json.Unmarshal(bs, &tasks); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return tasks, nil
}
