// Package tools defines the tool contracts and implementations for the
// task list and company directory.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Task tools: add_task, list_tasks, complete_task, delete_task.
//   - Company tools: list_companies, get_company, search_companies.
//   - Invariant: domain failures (unknown ids) are returned as ordinary
//     Results with success=false metadata, never as Go errors.
package tools
