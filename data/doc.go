// Package data defines the live data binding contract widgets read at
// render time, plus Static, a snapshot backed by a map.
//
// References are opaque strings. A Source never fails: unknown
// references yield zero values so a page can still be previewed while
// its data is incomplete.
package data
