package places

import "strings"

// categoryKeywords expands a service category into the provider search
// keywords that actually surface relevant places. Provider listings rarely
// use our category vocabulary, so each category fans out to several
// searches and the results are accumulated.
var categoryKeywords = map[string][]string{
	"food": {
		"food bank",
		"food pantry",
		"soup kitchen",
	},
	"housing": {
		"homeless shelter",
		"housing assistance",
		"transitional housing",
	},
	"legal services": {
		"legal aid",
		"immigration lawyer",
		"legal services",
	},
	"health care": {
		"community health center",
		"free clinic",
		"urgent care",
	},
	"mental health services": {
		"mental health services",
		"therapy",
		"counseling",
	},
	"education": {
		"adult education center",
		"esl classes",
		"community college",
	},
	"employment": {
		"job training",
		"career center",
		"employment agency",
	},
	"clothing": {
		"clothing donation center",
		"thrift store",
	},
}

// keywordsFor returns the search keywords for a category. Unknown
// categories search for the category text itself; a wildcard category
// falls back to a broad aid search.
func keywordsFor(category string) []string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" || c == "all" {
		return []string{"social services"}
	}
	if kws, ok := categoryKeywords[c]; ok {
		return kws
	}
	return []string{c}
}
