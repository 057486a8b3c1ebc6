package tools_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/internal/directory"
	"github.com/taskpilot/taskpilot/internal/taskstore"
	"github.com/taskpilot/taskpilot/tools"
)

func newTaskStore(t *testing.T) *taskstore.Store {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return taskstore.Open(filepath.Join(t.TempDir(), "tasks.json"), logger)
}

func newDirectory() *directory.Directory {
	companies := []directory.Company{
		{
			ID: 1, Name: "Neurova", Tagline: "Foundation models for robotics",
			Description: "Frontier AI lab training manipulation policies.",
			Industry:    "AI/ML", HQ: "San Francisco, CA", YearFounded: 2021,
			Employees: "51-200", LastRound: "Series B", LastRoundSize: 45_000_000,
			Valuation: 1_500_000_000, FundingHistory: []string{"Seed", "Series A", "Series B"},
		},
		{
			ID: 2, Name: "Helixway", Tagline: "Programmable proteins",
			Description: "Biotech platform for enzyme design.",
			Industry:    "Healthcare", HQ: "Boston, MA", YearFounded: 2019,
			Employees: "11-50", LastRound: "Series A", LastRoundSize: 3_200_000,
			Valuation: 80_000_000, FundingHistory: []string{"Seed", "Series A"},
		},
	}
	return directory.New(companies,
		[]string{"AI/ML", "Healthcare", "Climate"},
		[]string{"Seed", "Series A", "Series B"})
}

// call invokes a tool with raw JSON arguments and fails the test on a
// protocol-level error; domain failures come back inside the Result.
func call(t *testing.T, def tools.ToolDefinition, args string) tools.Result {
	t.Helper()
	res, err := def.Function(json.RawMessage(args))
	if err != nil {
		t.Fatalf("%s returned error: %v", def.Name, err)
	}
	return res
}

// structured marshals the structured content so assertions can use gjson
// paths, the same shape the MCP host serializes.
func structured(t *testing.T, res tools.Result) string {
	t.Helper()
	b, err := json.Marshal(res.Structured)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	return string(b)
}

func meta(t *testing.T, res tools.Result) string {
	t.Helper()
	b, err := json.Marshal(res.Meta)
	if err != nil {
		t.Fatalf("marshal meta: %v", err)
	}
	return string(b)
}

func assertPath(t *testing.T, doc, path, want string) {
	t.Helper()
	if got := gjson.Get(doc, path).String(); got != want {
		t.Fatalf("%s = %q, want %q (doc: %s)", path, got, want, doc)
	}
}
