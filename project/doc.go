// Package project loads a JSON project: styles, fonts, bitmaps, pages and
// an optional data snapshot. A loaded Project is the style registry that
// renderers resolve against.
//
// Fonts name either a built-in Go font ("goregular", "gobold", "goitalic",
// "gomedium", "gomono", "gomonobold") or a TrueType file relative to the
// project. Bitmaps are PNG, JPEG, GIF, BMP or WebP files, or data URIs.
package project
