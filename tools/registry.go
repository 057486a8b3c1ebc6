package tools

import (
	"github.com/taskpilot/taskpilot/internal/directory"
	"github.com/taskpilot/taskpilot/internal/taskstore"
)

// Registry returns all tool definitions wired to the given stores.
func Registry(store *taskstore.Store, dir *directory.Directory) []ToolDefinition {
	return []ToolDefinition{
		AddTask(store),
		ListTasks(store),
		CompleteTask(store),
		DeleteTask(store),
		ListCompanies(dir),
		GetCompany(dir),
		SearchCompanies(dir),
	}
}
