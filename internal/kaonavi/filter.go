package kaonavi

import (
	"strings"

	"MemberDirectory_UnityProject/internal/models"
)

// FilterCriteria are the optional predicates accepted by the user
// list endpoint. Zero-value fields impose no constraint.
type FilterCriteria struct {
	Name         string
	Headquarters string
	Department   string
	Group        string
	Gender       string
}

// FilterMembers applies every populated criterion as a case-sensitive
// substring test, combined with AND, in a fixed order. The three
// organizational criteria all match against the joined department
// path; the tenant's unit names make that unambiguous in practice.
// Empty criteria return the input unchanged.
func FilterMembers(criteria FilterCriteria, members []models.Member) []models.Member {
	records := members

	if criteria.Name != "" {
		records = keep(records, func(m models.Member) bool {
			return strings.Contains(m.Name, criteria.Name)
		})
	}
	if criteria.Headquarters != "" {
		records = keep(records, func(m models.Member) bool {
			return strings.Contains(m.Department.Name, criteria.Headquarters)
		})
	}
	if criteria.Department != "" {
		records = keep(records, func(m models.Member) bool {
			return strings.Contains(m.Department.Name, criteria.Department)
		})
	}
	if criteria.Group != "" {
		records = keep(records, func(m models.Member) bool {
			return strings.Contains(m.Department.Name, criteria.Group)
		})
	}
	if criteria.Gender != "" {
		records = keep(records, func(m models.Member) bool {
			return strings.Contains(m.Gender, criteria.Gender)
		})
	}

	return records
}

func keep(members []models.Member, match func(models.Member) bool) []models.Member {
	kept := make([]models.Member, 0, len(members))
	for _, m := range members {
		if match(m) {
			kept = append(kept, m)
		}
	}
	return kept
}
