// Package web embeds the HTML templates and static assets served by the site.
package web

import "embed"

// Templates holds every page and partial under template/.
//
//go:embed template
var Templates embed.FS

// Static holds stylesheets and scripts under static/.
//
//go:embed static
var Static embed.FS
