package portfolio

import "embed"

// EmbeddedAssets contains the stylesheet shipped with the site (site.css).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
