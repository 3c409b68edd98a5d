// Package util provides utility functions for working with Package URLs
// (PURLs) appearing in scanner output.
package util

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// ComponentFromPURL reduces a purl to the component name and ecosystem tag
// used for finding identity. Scanners disagree on whether the component field
// holds a plain name or a purl; normalization flattens both to the same pair.
// Example: pkg:npm/lodash@4.17.20 -> ("lodash", "npm").
func ComponentFromPURL(purlStr string) (name, ecosystem string, err error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return "", "", err
	}

	name = parsed.Name
	if parsed.Namespace != "" {
		name = parsed.Namespace + "/" + parsed.Name
	}
	return strings.ToLower(name), strings.ToLower(parsed.Type), nil
}
