package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/internal/directory"
)

// CompanyListWidgetURI names the widget template the host renders company
// collections with. The server registers the matching resource.
const CompanyListWidgetURI = "ui://widget/company-list.html"

type ListCompaniesInput struct {
	Industry     string `json:"industry,omitempty" jsonschema_description:"Filter by industry (case-insensitive exact match)."`
	FundingStage string `json:"funding_stage,omitempty" jsonschema_description:"Filter by the most recent funding round label."`
	HQ           string `json:"hq,omitempty" jsonschema_description:"Filter by headquarters location (substring match)."`
	Year         int    `json:"year,omitempty" jsonschema_description:"Filter by founding year."`
	Search       string `json:"search,omitempty" jsonschema_description:"Free-text search over name, tagline, and description."`
}

var ListCompaniesInputSchema = GenerateSchema[ListCompaniesInput]()

// ListCompanies builds the list_companies definition. All filters are
// optional and ANDed together; the vocabularies are always returned in full
// so the client can keep its filter controls populated.
func ListCompanies(dir *directory.Directory) ToolDefinition {
	return ToolDefinition{
		Name:        "list_companies",
		Description: "List startup companies, optionally filtered by industry, funding stage, headquarters, founding year, or free-text search.",
		InputSchema: ListCompaniesInputSchema,
		WidgetURI:   CompanyListWidgetURI,
		Function: func(input json.RawMessage) (Result, error) {
			f := directory.Filters{
				Industry:     gjson.GetBytes(input, "industry").String(),
				FundingStage: gjson.GetBytes(input, "funding_stage").String(),
				HQ:           gjson.GetBytes(input, "hq").String(),
				Year:         int(gjson.GetBytes(input, "year").Int()),
				Search:       gjson.GetBytes(input, "search").String(),
			}
			matches := dir.List(f)

			return Result{
				Text: fmt.Sprintf("Found %d company(ies)%s", len(matches), describeFilters(f)),
				Structured: map[string]any{
					"companies":      matches,
					"total":          len(matches),
					"industries":     dir.Industries(),
					"funding_stages": dir.FundingStages(),
				},
				Meta: map[string]any{
					"operation": "list_companies",
					"total":     len(matches),
				},
			}, nil
		},
	}
}

// describeFilters renders the active filters for the summary sentence, e.g.
// " matching industry='AI/ML', year=2021". Empty when nothing was provided.
func describeFilters(f directory.Filters) string {
	parts := []string{}
	if f.Industry != "" {
		parts = append(parts, fmt.Sprintf("industry='%s'", f.Industry))
	}
	if f.FundingStage != "" {
		parts = append(parts, fmt.Sprintf("funding_stage='%s'", f.FundingStage))
	}
	if f.HQ != "" {
		parts = append(parts, fmt.Sprintf("hq='%s'", f.HQ))
	}
	if f.Year != 0 {
		parts = append(parts, fmt.Sprintf("year=%d", f.Year))
	}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search='%s'", f.Search))
	}
	if len(parts) == 0 {
		return ""
	}
	return " matching " + strings.Join(parts, ", ")
}
