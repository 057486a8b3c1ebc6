package tools

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/internal/taskstore"
)

func TestListTasks_TimestampComesFromClock(t *testing.T) {
	restore := now
	defer func() { now = restore }()
	now = func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC) }

	logger, _ := test.NewNullLogger()
	store := taskstore.Open(filepath.Join(t.TempDir(), "tasks.json"), logger)

	res, err := ListTasks(store).Function(nil)
	if err != nil {
		t.Fatalf("list_tasks returned error: %v", err)
	}
	b, err := json.Marshal(res.Meta)
	if err != nil {
		t.Fatalf("marshal meta: %v", err)
	}
	if got := gjson.GetBytes(b, "timestamp").String(); got != "2026-01-02T15:04:05Z" {
		t.Fatalf("timestamp = %q, want %q", got, "2026-01-02T15:04:05Z")
	}
}
