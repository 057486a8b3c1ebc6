package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/internal/taskstore"
)

type DeleteTaskInput struct {
	TaskID int `json:"task_id" jsonschema_description:"The ID of the task to delete."`
}

var DeleteTaskInputSchema = GenerateSchema[DeleteTaskInput]()

// DeleteTask builds the delete_task definition. Removal is idempotent in
// effect: a second delete of the same id reports not found.
func DeleteTask(store *taskstore.Store) ToolDefinition {
	return ToolDefinition{
		Name:        "delete_task",
		Description: "Delete a task from the task list.",
		InputSchema: DeleteTaskInputSchema,
		Function: func(input json.RawMessage) (Result, error) {
			id := int(gjson.GetBytes(input, "task_id").Int())

			all, ok := store.Delete(id)
			if !ok {
				return notFoundTask("delete_task", id), nil
			}
			return Result{
				Text: fmt.Sprintf("Task %d deleted successfully", id),
				Structured: map[string]any{
					"tasks": all,
					"total": len(all),
				},
				Meta: map[string]any{
					"operation": "delete_task",
					"success":   true,
					"task_id":   id,
				},
			}, nil
		},
	}
}
