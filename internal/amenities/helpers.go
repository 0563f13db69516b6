package amenities

import (
	"regexp"
	"strings"
)

// converts an amenity name to a URL-friendly slug
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)

	reg := regexp.MustCompile(`[^\w\s-]`)
	slug = reg.ReplaceAllString(slug, "")

	reg = regexp.MustCompile(`[\s-]+`)
	slug = reg.ReplaceAllString(slug, "-")

	// Trim hyphens from start and end
	return strings.Trim(slug, "-")
}
