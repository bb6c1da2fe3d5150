package icons

import (
	"strings"
)

//go:generate go run ../../tools/icondocgen -out docs/icon-catalog.md

// GenericName is the icon used when a requested name is unknown.
const GenericName = "sparkles"

// Definition describes a core icon entry.
type Definition struct {
	Name        string
	Description string
	Path        string
}

var catalog = []Definition{
	{
		Name:        GenericName,
		Description: "Default icon for uncategorized entries.",
		Path:        "M9.813 15.904L9 18.75l-.813-2.846a4.5 4.5 0 00-3.09-3.09L2.25 12l2.846-.813a4.5 4.5 0 003.09-3.09L9 5.25l.813 2.846a4.5 4.5 0 003.09 3.09L15.75 12l-2.846.813a4.5 4.5 0 00-3.09 3.09z",
	},
	{
		Name:        "database",
		Description: "Storage and data products.",
		Path:        "M20.25 6.375c0 2.278-3.694 4.125-8.25 4.125S3.75 8.653 3.75 6.375m16.5 0c0-2.278-3.694-4.125-8.25-4.125S3.75 4.097 3.75 6.375m16.5 0v11.25c0 2.278-3.694 4.125-8.25 4.125s-8.25-1.847-8.25-4.125V6.375",
	},
	{
		Name:        "lock",
		Description: "Authentication and access control.",
		Path:        "M16.5 10.5V6.75a4.5 4.5 0 10-9 0v3.75m-.75 11.25h10.5a2.25 2.25 0 002.25-2.25v-6.75a2.25 2.25 0 00-2.25-2.25H6.75a2.25 2.25 0 00-2.25 2.25v6.75a2.25 2.25 0 002.25 2.25z",
	},
	{
		Name:        "bolt",
		Description: "Functions and realtime triggers.",
		Path:        "M3.75 13.5l10.5-11.25L12 10.5h8.25L9.75 21.75 12 13.5H3.75z",
	},
	{
		Name:        "cloud",
		Description: "Hosting and file storage.",
		Path:        "M2.25 15a4.5 4.5 0 004.5 4.5H18a3.75 3.75 0 001.332-7.257 3 3 0 00-3.758-3.848 5.25 5.25 0 00-10.233 2.33A4.502 4.502 0 002.25 15z",
	},
	{
		Name:        "chat",
		Description: "Messaging and presence.",
		Path:        "M8.625 12a.375.375 0 11-.75 0 .375.375 0 01.75 0zm4.125 0a.375.375 0 11-.75 0 .375.375 0 01.75 0zm4.125 0a.375.375 0 11-.75 0 .375.375 0 01.75 0zM2.25 12c0 4.556 4.03 8.25 9 8.25a9.764 9.764 0 002.555-.337A5.972 5.972 0 0018 21a5.97 5.97 0 004.25-1.757 8.21 8.21 0 01-1.057-3.327C21.674 14.75 21.75 13.392 21.75 12c0-4.556-4.03-8.25-9-8.25s-9 3.694-9 8.25z",
	},
	{
		Name:        "code",
		Description: "Developer tooling and APIs.",
		Path:        "M17.25 6.75L22.5 12l-5.25 5.25m-10.5 0L1.5 12l5.25-5.25m7.5-3l-4.5 16.5",
	},
	{
		Name:        "settings",
		Description: "Application settings and configuration.",
		Path:        "M10.5 6h9.75M10.5 6a1.5 1.5 0 11-3 0m3 0a1.5 1.5 0 10-3 0M3.75 6H7.5m3 12h9.75m-9.75 0a1.5 1.5 0 01-3 0m3 0a1.5 1.5 0 00-3 0m-3.75 0H7.5m9-6h3.75m-3.75 0a1.5 1.5 0 01-3 0m3 0a1.5 1.5 0 00-3 0m-9.75 0h9.75",
	},
}

var pathsByName = indexPaths(catalog)

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Path returns the path geometry for a named icon.
func Path(name string) (string, bool) {
	path, ok := pathsByName[strings.ToLower(strings.TrimSpace(name))]
	return path, ok
}

// PathOrDefault provides stable path data even when the name is unknown.
func PathOrDefault(name string) string {
	if path, ok := Path(name); ok {
		return path
	}
	return pathsByName[GenericName]
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go generate ./internal/platform/icons`.\n\n")
	builder.WriteString("| Name | Description |\n")
	builder.WriteString("| --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}

func indexPaths(defs []Definition) map[string]string {
	index := make(map[string]string, len(defs))
	for _, def := range defs {
		index[def.Name] = def.Path
	}
	return index
}
