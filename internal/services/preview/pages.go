package preview

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/badgekit/internal/platform/branding"
	"github.com/louisbranch/badgekit/internal/platform/theme"
	"github.com/louisbranch/badgekit/internal/services/shared/iconbadge"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const galleryTitle = "Icon badges | " + branding.AppName

type galleryRow struct {
	Name        string
	Description string
	Path        string
}

// variantLabel returns the display label for a variant column. Casers carry
// state, so each call gets its own.
func variantLabel(v iconbadge.Variant) string {
	return cases.Title(language.English).String(string(v))
}

func galleryPage(rows []galleryRow, th theme.Resolver) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`+
			templ.EscapeString(galleryTitle)+`</title></head><body><main id="gallery">`); err != nil {
			return err
		}
		if err := galleryTable(rows, th).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func galleryTable(rows []galleryRow, th theme.Resolver) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table><thead><tr><th>Icon</th>`); err != nil {
			return err
		}
		for _, v := range iconbadge.Variants() {
			if _, err := io.WriteString(w, `<th>`+templ.EscapeString(variantLabel(v))+`</th>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := io.WriteString(w, `<tr><td title="`+templ.EscapeString(row.Description)+`">`+
				templ.EscapeString(row.Name)+`</td>`); err != nil {
				return err
			}
			for _, v := range iconbadge.Variants() {
				if _, err := io.WriteString(w, `<td>`); err != nil {
					return err
				}
				if err := iconbadge.Badge(iconbadge.Props{Icon: row.Path, Color: v}, th).Render(ctx, w); err != nil {
					return err
				}
				if _, err := io.WriteString(w, `</td>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
