package iconbadge

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/badgekit/internal/platform/theme"
)

const (
	containerBaseClass = "inline-flex h-8 w-8 flex-shrink-0 items-center justify-center rounded-md"
	graphicBaseClass   = "h-5 w-5"
)

// Props configures a badge. Icon is SVG path data drawn as-is; an empty
// Color renders the black treatment.
type Props struct {
	Icon  string
	Color Variant
}

// Badge renders the badge markup. The SVG is aria-hidden since the icon is
// decorative.
func Badge(p Props, th theme.Resolver) templ.Component {
	styles := Styles(ParseVariant(string(p.Color)), th)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="`+
			templ.EscapeString(joinClasses(containerBaseClass, styles.Container))+
			`"><svg class="`+
			templ.EscapeString(joinClasses(graphicBaseClass, styles.Graphic))+
			`" xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" aria-hidden="true">`+
			`<path stroke-linecap="round" stroke-linejoin="round" stroke-width="1.5" d="`+
			templ.EscapeString(p.Icon)+
			`"></path></svg></div>`)
		return err
	})
}
