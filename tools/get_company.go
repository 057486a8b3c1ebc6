package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/internal/directory"
	"github.com/taskpilot/taskpilot/internal/format"
)

type GetCompanyInput struct {
	CompanyID int `json:"company_id" jsonschema_description:"The ID of the company to retrieve."`
}

var GetCompanyInputSchema = GenerateSchema[GetCompanyInput]()

// GetCompany builds the get_company definition: the full record plus
// pre-formatted display strings and a composed description block.
func GetCompany(dir *directory.Directory) ToolDefinition {
	return ToolDefinition{
		Name:        "get_company",
		Description: "Get full details for a single company, including formatted funding information.",
		InputSchema: GetCompanyInputSchema,
		Function: func(input json.RawMessage) (Result, error) {
			id := int(gjson.GetBytes(input, "company_id").Int())

			c, ok := dir.Get(id)
			if !ok {
				return Result{
					Text: fmt.Sprintf("Error: Company with ID %d not found", id),
					Structured: map[string]any{
						"error":      "Company not found",
						"company_id": id,
					},
					Meta: map[string]any{
						"operation": "get_company",
						"success":   false,
					},
				}, nil
			}

			return Result{
				Text: describeCompany(c),
				Structured: map[string]any{
					"company": c,
					"formatted": map[string]any{
						"funding_history": format.FundingHistory(c.FundingHistory),
						"last_round_size": format.Currency(c.LastRoundSize),
						"valuation":       format.Currency(c.Valuation),
					},
				},
				Meta: map[string]any{
					"operation":  "get_company",
					"success":    true,
					"company_id": id,
				},
			}, nil
		},
	}
}

// describeCompany composes the multi-line detail block. Absent fields render
// as "Unknown" rather than erroring.
func describeCompany(c directory.Company) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — %s\n", orUnknown(c.Name), orUnknown(c.Tagline))
	fmt.Fprintf(&b, "%s\n", orUnknown(c.Description))
	fmt.Fprintf(&b, "Industry: %s | HQ: %s | Founded: %s | Employees: %s\n",
		orUnknown(c.Industry), orUnknown(c.HQ), yearOrUnknown(c.YearFounded), orUnknown(c.Employees))
	fmt.Fprintf(&b, "Last round: %s (%s) | Valuation: %s\n",
		orUnknown(c.LastRound), amountOrUnknown(c.LastRoundSize), amountOrUnknown(c.Valuation))
	fmt.Fprintf(&b, "Funding: %s", orUnknown(format.FundingHistory(c.FundingHistory)))

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func yearOrUnknown(year int) string {
	if year == 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", year)
}

func amountOrUnknown(amount int64) string {
	if amount == 0 {
		return "Unknown"
	}
	return format.Currency(amount)
}
