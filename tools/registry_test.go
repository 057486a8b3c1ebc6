package tools_test

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/tools"
)

func TestRegistry_ToolCount(t *testing.T) {
	defs := tools.Registry(newTaskStore(t), newDirectory())
	wantCount := 7
	if len(defs) != wantCount {
		t.Fatalf("unexpected number of tools: got %d want %d", len(defs), wantCount)
	}
}

func TestRegistry_ToolNames(t *testing.T) {
	defs := tools.Registry(newTaskStore(t), newDirectory())
	want := map[string]struct{}{
		"add_task":         {},
		"list_tasks":       {},
		"complete_task":    {},
		"delete_task":      {},
		"list_companies":   {},
		"get_company":      {},
		"search_companies": {},
	}

	got := map[string]struct{}{}
	for _, d := range defs {
		if _, ok := want[d.Name]; !ok {
			t.Fatalf("unexpected tool in registry: %q", d.Name)
		}
		got[d.Name] = struct{}{}
	}
	for name := range want {
		if _, ok := got[name]; !ok {
			t.Errorf("missing expected tool: %q", name)
		}
	}
	if t.Failed() {
		t.FailNow()
	}
}

func TestRegistry_SchemasDescribeArguments(t *testing.T) {
	defs := tools.Registry(newTaskStore(t), newDirectory())
	wantProp := map[string]string{
		"add_task":         "text",
		"complete_task":    "task_id",
		"delete_task":      "task_id",
		"list_companies":   "industry",
		"get_company":      "company_id",
		"search_companies": "query",
	}
	for _, d := range defs {
		if d.InputSchema == nil {
			t.Fatalf("%s has no input schema", d.Name)
		}
		prop, ok := wantProp[d.Name]
		if !ok {
			continue // list_tasks takes no arguments
		}
		if !gjson.GetBytes(d.InputSchema, "properties."+prop).Exists() {
			t.Errorf("%s schema missing property %q: %s", d.Name, prop, d.InputSchema)
		}
	}
}
