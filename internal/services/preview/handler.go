package preview

import (
	"net/http"
	"strings"

	"github.com/louisbranch/badgekit/internal/platform/icons"
	"github.com/louisbranch/badgekit/internal/platform/theme"
	"github.com/louisbranch/badgekit/internal/services/shared/htmx"
	"github.com/louisbranch/badgekit/internal/services/shared/iconbadge"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/badgekit/internal/services/preview"

type handler struct {
	theme  theme.Resolver
	tracer trace.Tracer
}

// NewHandler returns the preview routes. A nil resolver uses the default
// palette.
func NewHandler(th theme.Resolver) http.Handler {
	if th == nil {
		th = theme.Default()
	}
	h := &handler{
		theme:  th,
		tracer: otel.Tracer(tracerName),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleGallery)
	mux.HandleFunc("GET /badge", h.handleBadge)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	return mux
}

func (h *handler) handleGallery(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "preview.gallery")
	defer span.End()

	rows := make([]galleryRow, 0, len(icons.Catalog()))
	for _, def := range icons.Catalog() {
		rows = append(rows, galleryRow{Name: def.Name, Description: def.Description, Path: def.Path})
	}
	span.SetAttributes(attribute.Int("preview.icons", len(rows)))

	page := galleryPage(rows, h.theme)
	htmx.RenderPage(w, r, nil, page, htmx.TitleTag(galleryTitle))
}

func (h *handler) handleBadge(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	variant := iconbadge.ParseVariant(strings.ToLower(strings.TrimSpace(query.Get("color"))))
	name, path := badgeGeometry(query.Get("icon"), query.Get("d"))

	_, span := h.tracer.Start(r.Context(), "preview.badge")
	span.SetAttributes(
		attribute.String("badge.variant", string(variant)),
		attribute.String("badge.icon", name),
	)
	defer span.End()

	badge := iconbadge.Badge(iconbadge.Props{Icon: path, Color: variant}, h.theme)
	htmx.RenderPage(w, r, badge, badge, "")
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// badgeGeometry picks the path to draw: non-blank raw path data wins over a
// catalog name and is returned unmodified, and unknown names fall back to the
// generic icon.
func badgeGeometry(name, rawPath string) (string, string) {
	if strings.TrimSpace(rawPath) != "" {
		return "custom", rawPath
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := icons.Path(name); !ok {
		name = icons.GenericName
	}
	return name, icons.PathOrDefault(name)
}
