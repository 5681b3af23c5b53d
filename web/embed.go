// Package web carries the embedded UI assets so the binary is
// self-contained.
package web

import "embed"

// TemplatesFS holds the server-rendered HTML templates.
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds the stylesheet and any other static assets.
//go:embed static/*
var StaticFS embed.FS
