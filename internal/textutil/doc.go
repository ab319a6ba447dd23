// Package textutil provides the text normalization shared by catalog lookups
// and genre matching.
//
// Free-form user input is compared in case-folded form so "Sci-Fi", "SCI-FI"
// and "sci-fi" are the same key, while the originally typed value is what gets
// stored and displayed.
package textutil
