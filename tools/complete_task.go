package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/internal/taskstore"
)

type CompleteTaskInput struct {
	TaskID int `json:"task_id" jsonschema_description:"The ID of the task to mark as completed."`
}

var CompleteTaskInputSchema = GenerateSchema[CompleteTaskInput]()

// CompleteTask builds the complete_task definition. An unknown id yields a
// not-found Result, not a Go error, and leaves the store untouched.
func CompleteTask(store *taskstore.Store) ToolDefinition {
	return ToolDefinition{
		Name:        "complete_task",
		Description: "Mark a task as completed.",
		InputSchema: CompleteTaskInputSchema,
		Function: func(input json.RawMessage) (Result, error) {
			id := int(gjson.GetBytes(input, "task_id").Int())

			all, ok := store.Complete(id)
			if !ok {
				return notFoundTask("complete_task", id), nil
			}
			return Result{
				Text: fmt.Sprintf("Task %d marked as completed", id),
				Structured: map[string]any{
					"tasks":   all,
					"total":   len(all),
					"task_id": id,
				},
				Meta: map[string]any{
					"operation": "complete_task",
					"success":   true,
					"task_id":   id,
				},
			}, nil
		},
	}
}

// notFoundTask is the shared failure payload for task lookups by id.
func notFoundTask(operation string, id int) Result {
	return Result{
		Text: fmt.Sprintf("Error: Task with ID %d not found", id),
		Structured: map[string]any{
			"error":   "Task not found",
			"task_id": id,
		},
		Meta: map[string]any{
			"operation": operation,
			"success":   false,
		},
	}
}
