// Package inputfield contains a labeled single-line text input widget for
// bubbletea programs.
//
// The caller owns the value and every display flag; they are passed as Props
// on each Update and View. The widget keeps only the password visibility flag.
// Edits and the clear action are reported back as messages, never applied to
// the value directly.
package inputfield
