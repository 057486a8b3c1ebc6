package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/taskpilot/taskpilot/internal/directory"
)

type SearchCompaniesInput struct {
	Query string `json:"query" jsonschema_description:"Search text matched against company name, tagline, description, and industry."`
}

var SearchCompaniesInputSchema = GenerateSchema[SearchCompaniesInput]()

// SearchCompanies builds the search_companies definition. An empty query
// matches every company; that is deliberate, not an error.
func SearchCompanies(dir *directory.Directory) ToolDefinition {
	return ToolDefinition{
		Name:        "search_companies",
		Description: "Search companies by free text across name, tagline, description, and industry.",
		InputSchema: SearchCompaniesInputSchema,
		WidgetURI:   CompanyListWidgetURI,
		Function: func(input json.RawMessage) (Result, error) {
			query := gjson.GetBytes(input, "query").String()
			matches := dir.Search(query)

			return Result{
				Text: fmt.Sprintf("Found %d company(ies) matching '%s'", len(matches), query),
				Structured: map[string]any{
					"companies":      matches,
					"total":          len(matches),
					"query":          query,
					"industries":     dir.Industries(),
					"funding_stages": dir.FundingStages(),
				},
				Meta: map[string]any{
					"operation": "search_companies",
					"query":     query,
				},
			}, nil
		},
	}
}
