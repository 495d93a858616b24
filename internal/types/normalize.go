//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// Normalized returns a copy of the record whose sub-collections are stable-sorted
// by their order field. Items sharing an order keep their input position. The
// receiver is not modified.
func (cv *CVRecord) Normalized() *CVRecord {
	if cv == nil {
		return &CVRecord{}
	}
	out := *cv

	out.Education = sortedCopy(cv.Education, func(e Education) int { return e.Order.Int() })
	out.Experience = sortedCopy(cv.Experience, func(e Experience) int { return e.Order.Int() })
	out.Publications = sortedCopy(cv.Publications, func(p Publication) int { return p.Order.Int() })
	out.Skills = sortedCopy(cv.Skills, func(s Skill) int { return s.Order.Int() })
	out.Projects = sortedCopy(cv.Projects, func(p Project) int { return p.Order.Int() })
	out.Certifications = sortedCopy(cv.Certifications, func(c Certification) int { return c.Order.Int() })
	out.Awards = sortedCopy(cv.Awards, func(a Award) int { return a.Order.Int() })
	out.Languages = sortedCopy(cv.Languages, func(l Language) int { return l.Order.Int() })
	out.References = sortedCopy(cv.References, func(r Reference) int { return r.Order.Int() })
	out.ContactInfo = sortedCopy(cv.ContactInfo, func(c ContactInfo) int { return c.Order.Int() })
	out.CustomSections = sortedCopy(cv.CustomSections, func(c CustomSection) int { return c.Order.Int() })
	out.SocialLinks = sortedCopy(cv.SocialLinks, func(s SocialLink) int { return s.Order.Int() })

	return &out
}

func sortedCopy[T any](in []T, order func(T) int) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return order(out[i]) < order(out[j])
	})
	return out
}

// DisplayName returns the first non-empty of FullName and Name.
func (cv *CVRecord) DisplayName() string {
	return FirstNonEmpty(cv.FullName, cv.Name)
}

// DisplayHeadline returns the first non-empty of Headline and Title.
func (cv *CVRecord) DisplayHeadline() string {
	return FirstNonEmpty(cv.Headline, cv.Title)
}

// PresetID returns the stored theme preset id, honoring the legacy template field.
func (cv *CVRecord) PresetID() string {
	return FirstNonEmpty(cv.ThemeID, cv.Template)
}

// ReferencesOnRequest reports whether reference details should be replaced by a
// fixed "available upon request" line.
func (cv *CVRecord) ReferencesOnRequest() bool {
	return cv.ReferencesAvailableOnRequest || cv.AvailableOnDemand
}
