// Package theme resolves semantic style roles to CSS utility classes.
//
// Components ask for a role ("brand stroke", "inverse surface") instead of
// embedding class literals, so a page can swap palettes, including their
// dark-mode variants, without touching component code.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Role names a semantic styling slot.
type Role string

const (
	SurfaceInverse     Role = "surface_inverse"
	TextInverse        Role = "text_inverse"
	StrokeInverse      Role = "stroke_inverse"
	SurfaceBrand       Role = "surface_brand"
	TextBrandSubtle    Role = "text_brand_subtle"
	SurfaceBrandSubtle Role = "surface_brand_subtle"
	SurfaceNeutral     Role = "surface_neutral"
	TextBrand          Role = "text_brand"
	StrokeBrand        Role = "stroke_brand"
)

var roles = []Role{
	SurfaceInverse,
	TextInverse,
	StrokeInverse,
	SurfaceBrand,
	TextBrandSubtle,
	SurfaceBrandSubtle,
	SurfaceNeutral,
	TextBrand,
	StrokeBrand,
}

// Roles returns every known role in declaration order.
func Roles() []Role {
	result := make([]Role, len(roles))
	copy(result, roles)
	return result
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

// Resolver maps a role to the classes that implement it.
type Resolver interface {
	Class(Role) string
}

// Theme is a map-backed Resolver. Roles it does not set, including every role
// of the zero value, resolve to the default palette.
type Theme struct {
	classes map[Role]string
}

var defaultClasses = map[Role]string{
	SurfaceInverse:     "bg-scale-1200",
	TextInverse:        "text-scale-100",
	StrokeInverse:      "stroke-white dark:stroke-black",
	SurfaceBrand:       "bg-brand-600 dark:bg-brand-500",
	TextBrandSubtle:    "text-brand-100",
	SurfaceBrandSubtle: "bg-brand-200",
	SurfaceNeutral:     "bg-scale-700",
	TextBrand:          "text-brand",
	StrokeBrand:        "stroke-brand",
}

// Default returns the stock palette.
func Default() Theme {
	return Theme{classes: cloneClasses(defaultClasses)}
}

// Class returns the classes for role.
func (t Theme) Class(role Role) string {
	if class := t.classes[role]; class != "" {
		return class
	}
	return defaultClasses[role]
}

// Merge returns a copy of t with non-empty overrides applied.
func (t Theme) Merge(overrides map[string]string) (Theme, error) {
	merged := cloneClasses(t.classes)
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		role := Role(strings.TrimSpace(strings.ToLower(key)))
		if !role.Valid() {
			return Theme{}, fmt.Errorf("unknown theme role %q", key)
		}
		value := strings.Join(strings.Fields(overrides[key]), " ")
		if value == "" {
			continue
		}
		merged[role] = value
	}
	return Theme{classes: merged}, nil
}

func cloneClasses(src map[Role]string) map[Role]string {
	dst := make(map[Role]string, len(src))
	for role, class := range src {
		dst[role] = class
	}
	return dst
}
