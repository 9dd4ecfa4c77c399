// Package templates embeds the default page assets, used whenever no copy of
// an asset exists on disk.
package templates

import "embed"

// FS holds index.html, game.html, script.js, style.css and
// assets/icons/platforms.svg.
//
//go:embed index.html game.html script.js style.css assets/icons/platforms.svg
var FS embed.FS
