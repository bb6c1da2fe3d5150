// Package iconbadge renders a small rounded badge that frames a stroked SVG
// icon, tinted by a color variant.
package iconbadge

import (
	"strings"

	"github.com/louisbranch/badgekit/internal/platform/theme"
)

// Variant selects a predefined badge color treatment.
type Variant string

const (
	VariantBlack Variant = "black"
	VariantGray  Variant = "gray"
	VariantGreen Variant = "green"
	VariantAlt   Variant = "alt"
)

// Variants returns the supported variants in display order.
func Variants() []Variant {
	return []Variant{VariantBlack, VariantGray, VariantGreen, VariantAlt}
}

// ParseVariant matches s exactly against the known variants; anything else,
// including differently cased values, becomes VariantBlack.
func ParseVariant(s string) Variant {
	switch v := Variant(s); v {
	case VariantGray, VariantGreen, VariantAlt:
		return v
	default:
		return VariantBlack
	}
}

// StylePair holds the classes for the badge container and its SVG stroke.
type StylePair struct {
	Container string
	Graphic   string
}

// Styles maps a variant to its container and graphic classes. A nil resolver
// uses the default palette.
func Styles(v Variant, th theme.Resolver) StylePair {
	if th == nil {
		th = theme.Default()
	}
	switch v {
	case VariantGreen:
		return StylePair{
			Container: joinClasses(th.Class(theme.SurfaceBrand), th.Class(theme.TextBrandSubtle)),
			Graphic:   th.Class(theme.StrokeBrand),
		}
	case VariantAlt:
		return StylePair{
			Container: joinClasses(th.Class(theme.SurfaceBrandSubtle), th.Class(theme.TextBrand)),
			Graphic:   th.Class(theme.StrokeBrand),
		}
	case VariantGray:
		return StylePair{
			Container: joinClasses(th.Class(theme.SurfaceNeutral), th.Class(theme.TextBrand)),
			Graphic:   th.Class(theme.StrokeBrand),
		}
	default:
		return StylePair{
			Container: joinClasses(th.Class(theme.SurfaceInverse), th.Class(theme.TextInverse)),
			Graphic:   th.Class(theme.StrokeInverse),
		}
	}
}

func joinClasses(parts ...string) string {
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		fields = append(fields, strings.Fields(part)...)
	}
	return strings.Join(fields, " ")
}
