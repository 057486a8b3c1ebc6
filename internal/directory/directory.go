// Package directory serves the read-only startup company directory.
//
// The dataset (companies plus the industry and funding-stage vocabularies)
// is loaded once at startup and never mutated; lookups are unbounded linear
// scans, which is fine at this data scale.
package directory

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Company is a single directory record. Fields are optional for display;
// consumers substitute an "Unknown" placeholder rather than erroring.
type Company struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline"`
	Description    string   `json:"description"`
	Industry       string   `json:"industry"`
	HQ             string   `json:"hq"`
	YearFounded    int      `json:"year_founded"`
	Employees      string   `json:"employees"`
	LastRound      string   `json:"last_round"`
	LastRoundSize  int64    `json:"last_round_size"`
	Valuation      int64    `json:"valuation"`
	FundingHistory []string `json:"funding_history"`
}

// dataset is the on-disk document shape.
type dataset struct {
	Companies     []Company `json:"companies"`
	Industries    []string  `json:"industries"`
	FundingStages []string  `json:"funding_stages"`
}

// Filters narrows List results; zero values mean "not provided".
// Provided filters are ANDed together.
type Filters struct {
	Industry     string // case-insensitive exact match
	FundingStage string // case-insensitive exact match against last_round
	HQ           string // case-insensitive substring match
	Year         int    // exact match against year_founded; 0 = unset
	Search       string // case-insensitive substring over name/tagline/description
}

// Directory is the immutable company collection plus the filter
// vocabularies shown in the client UI.
type Directory struct {
	companies     []Company
	industries    []string
	fundingStages []string
}

// Load reads the directory dataset from path. A missing or malformed file
// yields an empty directory with a logged warning; startup never fails on
// bad reference data.
func Load(path string, log logrus.FieldLogger) *Directory {
	d := &Directory{
		companies:     []Company{},
		industries:    []string{},
		fundingStages: []string{},
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("path", path).Warn("company data file not found; directory is empty")
		} else {
			log.WithError(err).WithField("path", path).Warn("failed to read company data; directory is empty")
		}
		return d
	}

	var ds dataset
	if err := json.Unmarshal(b, &ds); err != nil {
		log.WithError(err).WithField("path", path).Warn("malformed company data; directory is empty")
		return d
	}
	if ds.Companies != nil {
		d.companies = ds.Companies
	}
	if ds.Industries != nil {
		d.industries = ds.Industries
	}
	if ds.FundingStages != nil {
		d.fundingStages = ds.FundingStages
	}
	return d
}

// New builds a directory from already-decoded data. Intended for tests.
func New(companies []Company, industries, fundingStages []string) *Directory {
	return &Directory{companies: companies, industries: industries, fundingStages: fundingStages}
}

// Industries returns the full industry vocabulary, unaffected by filtering.
func (d *Directory) Industries() []string { return d.industries }

// FundingStages returns the full funding-stage vocabulary.
func (d *Directory) FundingStages() []string { return d.fundingStages }

// List returns every company matching all provided filters. An empty result
// is a valid outcome, never an error.
func (d *Directory) List(f Filters) []Company {
	out := []Company{}
	for _, c := range d.companies {
		if f.Industry != "" && !strings.EqualFold(c.Industry, f.Industry) {
			continue
		}
		if f.FundingStage != "" && !strings.EqualFold(c.LastRound, f.FundingStage) {
			continue
		}
		if f.HQ != "" && !containsFold(c.HQ, f.HQ) {
			continue
		}
		if f.Year != 0 && c.YearFounded != f.Year {
			continue
		}
		if f.Search != "" && !matchesText(c, f.Search, false) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Search returns companies whose name, tagline, description, or industry
// contains query, case-insensitively. An empty query matches everything.
func (d *Directory) Search(query string) []Company {
	out := []Company{}
	for _, c := range d.companies {
		if matchesText(c, query, true) {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the company with the given externally assigned id.
func (d *Directory) Get(id int) (Company, bool) {
	for _, c := range d.companies {
		if c.ID == id {
			return c, true
		}
	}
	return Company{}, false
}

// matchesText reports whether q occurs in the company's free-text fields.
// Industry participates only for the search tool, not the list filter.
func matchesText(c Company, q string, includeIndustry bool) bool {
	if containsFold(c.Name, q) || containsFold(c.Tagline, q) || containsFold(c.Description, q) {
		return true
	}
	return includeIndustry && containsFold(c.Industry, q)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
