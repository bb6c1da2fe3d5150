// Command icondocgen writes the icon catalog and badge variant reference.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/badgekit/internal/platform/config"
	"github.com/louisbranch/badgekit/internal/platform/icons"
	"github.com/louisbranch/badgekit/internal/platform/theme"
	"github.com/louisbranch/badgekit/internal/services/shared/iconbadge"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("icondocgen: %v", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var outPath string
	var rootFlag string
	var themeFile string
	var toStdout bool
	flags := flag.NewFlagSet("icondocgen", flag.ContinueOnError)
	flags.StringVar(&outPath, "out", "docs/icon-catalog.md", "output path for the icon catalog")
	flags.StringVar(&rootFlag, "root", "", "repo root (defaults to locating go.mod)")
	flags.StringVar(&themeFile, "theme-file", "", "YAML or TOML theme overrides for the variant table")
	flags.BoolVar(&toStdout, "stdout", false, "write to stdout instead of -out")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	th, err := theme.LoadFile(themeFile)
	if err != nil {
		return err
	}
	content := render(th)
	if toStdout {
		_, err := io.WriteString(stdout, content)
		return err
	}

	root, err := resolveRoot(rootFlag)
	if err != nil {
		return err
	}
	output := outPath
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, outPath)
	}
	return writeOutput(output, content)
}

func render(th theme.Resolver) string {
	var b strings.Builder
	b.WriteString("---\ntitle: \"Icon Catalog\"\nnav_order: 30\n---\n\n")
	b.WriteString(icons.CatalogMarkdown())
	b.WriteString("\n## Badge Variants\n\n")
	b.WriteString("| Variant | Container | Graphic |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, v := range iconbadge.Variants() {
		styles := iconbadge.Styles(v, th)
		fmt.Fprintf(&b, "| %s | `%s` | `%s` |\n", v, styles.Container, styles.Graphic)
	}
	return b.String()
}

func writeOutput(output, content string) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// resolveRoot chooses the repository root so generated docs land in the right tree.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	return findModuleRoot(wd)
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("go.mod not found above %s", start)
}
