// Package poker classifies five-card poker hands.
//
// Cards arrive from the deck service as RawCard values, are normalized to
// Card (ranks 2-14, aces high), counted by rank and suit, turned into pattern
// Signals, and resolved to a single HandCategory by scanning categories from
// strongest to weakest. Every function is pure and safe for concurrent use.
package poker
