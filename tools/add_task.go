package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/internal/taskstore"
)

type AddTaskInput struct {
	Text string `json:"text" jsonschema_description:"The task description text."`
}

var AddTaskInputSchema = GenerateSchema[AddTaskInput]()

// AddTask builds the add_task definition. The text argument is accepted
// as-is; an empty string is a valid task.
func AddTask(store *taskstore.Store) ToolDefinition {
	return ToolDefinition{
		Name:        "add_task",
		Description: "Add a new task to the task list.",
		InputSchema: AddTaskInputSchema,
		Function: func(input json.RawMessage) (Result, error) {
			text := gjson.GetBytes(input, "text").String()
			task, all := store.Add(text)
			return Result{
				Text: fmt.Sprintf("Added task: '%s'. Total tasks: %d", text, len(all)),
				Structured: map[string]any{
					"tasks":       all,
					"total":       len(all),
					"latest_task": task,
				},
				Meta: map[string]any{
					"operation": "add_task",
					"task_id":   task.ID,
				},
			}, nil
		},
	}
}
