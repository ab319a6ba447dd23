// Package genre resolves free-text genre input against the genres already
// stored in a catalog.
//
// Genre strings are typed by hand and drift ("Sci-Fi", "scifi", "sci fi"), so
// lookups score the query against every known genre with a normalized
// similarity measure and accept the best candidate at or above a cutoff. The
// default measure is the classic similarity ratio 2*M/T, where M is the length
// of the longest common subsequence and T the combined length of both strings.
// Jaro-Winkler and normalized Levenshtein similarity are available as
// alternatives. All measures come from go-edlib.
//
// Comparison happens on case-folded strings. Candidates with equal scores are
// ordered lexicographically so results never depend on map iteration order.
package genre
