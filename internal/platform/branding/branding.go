// Package branding holds product naming shared by pages and tooling.
package branding

// AppName is the product name shown in page titles.
const AppName = "Badgekit"
