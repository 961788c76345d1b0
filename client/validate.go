package client

import (
	"strings"

	"hirescope/config"
)

// synonymContexts are the context tags the backend accepts.
var synonymContexts = map[string]bool{
	"web_framework": true,
	"language":      true,
	"database":      true,
	"tool":          true,
	"library":       true,
}

// ValidateResumeIDs checks the candidate-count bounds before any network
// call. Pure function of the slice length; it never truncates.
func ValidateResumeIDs(ids []string) error {
	if len(ids) < config.MinResumesPerComparison {
		return validationError("select at least %d resumes to compare", config.MinResumesPerComparison)
	}
	if len(ids) > config.MaxResumesPerComparison {
		return validationError("cannot compare more than %d resumes at once", config.MaxResumesPerComparison)
	}
	return nil
}

// NormalizeSynonyms trims every synonym and drops empties. An empty result
// is a validation failure: a synonym entry without synonyms is meaningless.
func NormalizeSynonyms(raw []string) ([]string, error) {
	cleaned := make([]string, 0, len(raw))
	for _, s := range raw {
		if t := strings.TrimSpace(s); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return nil, validationError("at least one non-empty synonym is required")
	}
	return cleaned, nil
}

// ValidateSynonymPayload normalizes and checks a create/update body.
func ValidateSynonymPayload(p SynonymPayload) (SynonymPayload, error) {
	p.Skill = strings.TrimSpace(p.Skill)
	if p.Skill == "" {
		return p, validationError("canonical skill name is required")
	}
	if p.OrganizationID == "" {
		return p, validationError("organization id is required")
	}

	cleaned, err := NormalizeSynonyms(p.Synonyms)
	if err != nil {
		return p, err
	}
	p.Synonyms = cleaned

	if p.Context != "" && !synonymContexts[p.Context] {
		return p, validationError("unknown synonym context %q", p.Context)
	}

	return p, nil
}
