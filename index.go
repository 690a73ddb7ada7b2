package scrapedocs

import "context"

// Project URL labels consulted when resolving a documentation home page,
// in order of preference.
const (
	ProjectURLDocumentation = "Documentation"
	ProjectURLHomepage      = "Homepage"
)

// PackageIndex looks up package metadata in a package registry.
type PackageIndex interface {
	// DocHomeURL returns the documentation home page of a package.
	// Returns "" with a nil error when the package is unknown, lists no
	// usable URL, or the registry could not be reached.
	// A 4xx answer from the registry is returned as a *StatusError.
	DocHomeURL(ctx context.Context, packageName string) (string, error)
}

// DocHomeURLFromProjectURLs picks the documentation URL from a package's
// project URLs, falling back to the homepage. Returns "" if neither is set.
func DocHomeURLFromProjectURLs(urls map[string]string) string {
	if u := urls[ProjectURLDocumentation]; u != "" {
		return u
	}
	return urls[ProjectURLHomepage]
}
