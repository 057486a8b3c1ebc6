package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/taskpilot/taskpilot/internal/taskstore"
)

type ListTasksInput struct{}

var ListTasksInputSchema = GenerateSchema[ListTasksInput]()

// now stamps the list_tasks meta block; swapped out in tests.
var now = time.Now

// ListTasks builds the list_tasks definition. Read-only; never persists.
func ListTasks(store *taskstore.Store) ToolDefinition {
	return ToolDefinition{
		Name:        "list_tasks",
		Description: "Retrieve all tasks from the task list.",
		InputSchema: ListTasksInputSchema,
		Function: func(_ json.RawMessage) (Result, error) {
			all, pending, completed := store.Tasks()

			message := "No tasks found. Add your first task to get started!"
			if len(all) > 0 {
				message = fmt.Sprintf("Found %d task(s): %d pending, %d completed", len(all), pending, completed)
			}
			return Result{
				Text: message,
				Structured: map[string]any{
					"tasks":     all,
					"total":     len(all),
					"pending":   pending,
					"completed": completed,
				},
				Meta: map[string]any{
					"operation": "list_tasks",
					"timestamp": now().Format(time.RFC3339),
				},
			}, nil
		},
	}
}
