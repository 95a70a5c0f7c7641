package roles

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Career types partition the catalog at the top level.
const (
	CareerTypeTech       = "tech"
	CareerTypeNonTech    = "nontech"
	CareerTypeGovernment = "government"

	// DomainGeneral is the sentinel domain that disables domain filtering.
	DomainGeneral = "general"
)

// ErrNoRoles is returned when the career-type/domain filter leaves the
// catalog empty. Callers surface it as a not-found condition, distinct from
// input validation failures.
var ErrNoRoles = errors.New("no roles match the requested career type and domain")

// nonTechTags are the tags that qualify a role for the nontech career type.
var nonTechTags = []string{
	"nontech", "healthcare", "finance", "education", "marketing",
	"hr", "consulting", "operations", "legal",
}

// governmentTags qualify a role for the government career type by tag.
var governmentTags = []string{
	"government", "ias", "banking", "railway", "defense", "ssc", "psu",
	"judiciary", "teaching", "upsc", "civil", "public", "administrative",
	"clerk", "officer", "exam", "competitive", "central", "state",
	"municipal", "local", "service", "commission",
}

// governmentKeywords qualify a role for the government career type when any
// of them appears in the role title (case-insensitive).
var governmentKeywords = []string{
	"government", "civil", "public", "administrative", "clerk", "officer",
	"ias", "ips", "bank", "railway", "defense", "ssc", "upsc", "psu",
	"nabard", "rbi",
}

// Filter narrows the catalog to roles eligible for the given career type and
// domain. Each step reports its initial and dropped counts.
func Filter(catalog []Definition, careerType, domain string, logger *zap.Logger) []Definition {
	byType := filterByCareerType(catalog, careerType)
	logger.Debug("career type filter applied",
		zap.String("career_type", careerType),
		zap.Int("initial", len(catalog)),
		zap.Int("dropped", len(catalog)-len(byType)),
	)

	byDomain := filterByDomain(byType, domain)
	logger.Debug("domain filter applied",
		zap.String("domain", domain),
		zap.Int("initial", len(byType)),
		zap.Int("dropped", len(byType)-len(byDomain)),
	)

	return byDomain
}

// Rank filters the catalog, scores every eligible role and returns the top 3
// by descending score. Ties keep catalog order. ErrNoRoles is returned when
// nothing survives the filter.
func Rank(userSkills []string, catalog []Definition, careerType, domain string, logger *zap.Logger) ([]ScoredRole, error) {
	eligible := Filter(catalog, careerType, domain, logger)
	if len(eligible) == 0 {
		return nil, ErrNoRoles
	}

	scored := make([]ScoredRole, 0, len(eligible))
	for i := range eligible {
		scored = append(scored, ScoredRole{
			Definition:  eligible[i],
			ScoreResult: Score(userSkills, &eligible[i]),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > 3 {
		scored = scored[:3]
	}

	return scored, nil
}

func filterByCareerType(catalog []Definition, careerType string) []Definition {
	var out []Definition

	for i := range catalog {
		role := &catalog[i]

		switch careerType {
		case CareerTypeTech:
			// Tech excludes anything explicitly tagged nontech or government.
			if !role.HasTag("nontech") && !role.HasTag("government") {
				out = append(out, *role)
			}
		case CareerTypeNonTech:
			if hasAnyTag(role, nonTechTags) {
				out = append(out, *role)
			}
		case CareerTypeGovernment:
			if hasAnyTag(role, governmentTags) || titleContainsAny(role.Title, governmentKeywords) {
				out = append(out, *role)
			}
		}
	}

	return out
}

func filterByDomain(catalog []Definition, domain string) []Definition {
	if domain == "" || domain == DomainGeneral {
		return catalog
	}

	var out []Definition
	for i := range catalog {
		if catalog[i].HasTag(domain) {
			out = append(out, catalog[i])
		}
	}
	return out
}

func hasAnyTag(role *Definition, tags []string) bool {
	for _, tag := range tags {
		if role.HasTag(tag) {
			return true
		}
	}
	return false
}

func titleContainsAny(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
