package format_test

import (
	"testing"

	"github.com/taskpilot/taskpilot/internal/format"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{45_000_000, "$45M"},
		{3_200_000, "$3.2M"},
		{1_500_000_000, "$1.5B"},
		{2_000_000_000, "$2.0B"},
		{1_000_000, "$1M"},
		{999_999_999, "$1000.0M"},
		{750_000, "$750K"},
		{1_000, "$1K"},
		{999, "$999"},
		{500, "$500"},
		{0, "$0"},
	}
	for _, c := range cases {
		if got := format.Currency(c.amount); got != c.want {
			t.Errorf("Currency(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestFundingHistory(t *testing.T) {
	got := format.FundingHistory([]string{"Seed", "Series A", "Series B"})
	if want := "Seed → Series A → Series B"; got != want {
		t.Fatalf("FundingHistory = %q, want %q", got, want)
	}
}

func TestFundingHistory_Empty(t *testing.T) {
	if got := format.FundingHistory(nil); got != "" {
		t.Fatalf("FundingHistory(nil) = %q, want empty", got)
	}
	if got := format.FundingHistory([]string{}); got != "" {
		t.Fatalf("FundingHistory([]) = %q, want empty", got)
	}
}

func TestFundingHistory_SingleRound(t *testing.T) {
	if got := format.FundingHistory([]string{"Seed"}); got != "Seed" {
		t.Fatalf("FundingHistory single = %q, want %q", got, "Seed")
	}
}
