package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultResolvesEveryRole(t *testing.T) {
	th := Default()
	for _, role := range Roles() {
		if strings.TrimSpace(th.Class(role)) == "" {
			t.Errorf("default theme missing class for %s", role)
		}
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b, err := a.Merge(map[string]string{"text_brand": "text-lime-500"})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if a.Class(TextBrand) != "text-brand" {
		t.Fatalf("merge mutated receiver: %q", a.Class(TextBrand))
	}
	if b.Class(TextBrand) != "text-lime-500" {
		t.Fatalf("TextBrand = %q, want %q", b.Class(TextBrand), "text-lime-500")
	}
	if Default().Class(TextBrand) != "text-brand" {
		t.Fatal("merge mutated default palette")
	}
}

func TestMergeSkipsBlankAndNormalizesWhitespace(t *testing.T) {
	th, err := Default().Merge(map[string]string{
		"Stroke_Brand":    "  stroke-lime-400   dark:stroke-lime-300 ",
		"surface_neutral": "   ",
	})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got := th.Class(StrokeBrand); got != "stroke-lime-400 dark:stroke-lime-300" {
		t.Fatalf("StrokeBrand = %q", got)
	}
	if got := th.Class(SurfaceNeutral); got != "bg-scale-700" {
		t.Fatalf("SurfaceNeutral = %q, want default", got)
	}
}

func TestMergeRejectsUnknownRole(t *testing.T) {
	_, err := Default().Merge(map[string]string{"surface_rainbow": "bg-pink-500"})
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
	if !strings.Contains(err.Error(), "surface_rainbow") {
		t.Fatalf("error = %v, want role name", err)
	}
}

func TestZeroThemeResolvesDefaults(t *testing.T) {
	var th Theme
	for _, role := range Roles() {
		if got, want := th.Class(role), Default().Class(role); got != want {
			t.Errorf("zero theme Class(%s) = %q, want %q", role, got, want)
		}
	}
}

func TestMergeOnZeroThemeKeepsDefaultsForUnsetRoles(t *testing.T) {
	var zero Theme
	th, err := zero.Merge(map[string]string{"text_brand": "text-lime-500"})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if got := th.Class(TextBrand); got != "text-lime-500" {
		t.Fatalf("TextBrand = %q, want %q", got, "text-lime-500")
	}
	if got := th.Class(StrokeBrand); got != "stroke-brand" {
		t.Fatalf("StrokeBrand = %q, want default", got)
	}
}

func TestUnknownRoleResolvesEmpty(t *testing.T) {
	if got := Default().Class(Role("glow")); got != "" {
		t.Fatalf("Class(glow) = %q, want empty", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "theme.yaml", content: "text_brand: text-lime-500\n"},
		{name: "yml", file: "theme.yml", content: "text_brand: text-lime-500\n"},
		{name: "toml", file: "theme.toml", content: "text_brand = \"text-lime-500\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("write theme: %v", err)
			}
			th, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if got := th.Class(TextBrand); got != "text-lime-500" {
				t.Fatalf("TextBrand = %q, want %q", got, "text-lime-500")
			}
			if got := th.Class(StrokeBrand); got != "stroke-brand" {
				t.Fatalf("StrokeBrand = %q, want default", got)
			}
		})
	}
}

func TestLoadFileEmptyPathUsesDefault(t *testing.T) {
	th, err := LoadFile("  ")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if th.Class(SurfaceInverse) != "bg-scale-1200" {
		t.Fatalf("SurfaceInverse = %q", th.Class(SurfaceInverse))
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "missing", path: filepath.Join(dir, "nope.yaml"), want: "read theme file"},
		{name: "extension", path: write("theme.json", "{}"), want: "unsupported extension"},
		{name: "syntax", path: write("bad.toml", "text_brand = "), want: "decode theme file"},
		{name: "role", path: write("role.yaml", "glow: shadow-lg\n"), want: "unknown theme role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
		})
	}
}
