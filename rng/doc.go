// Package rng defines the minimal randomness contract the collapse
// engine needs: a sequential source of uniform unsigned integers and
// uniform small floats. Nothing in gridwave calls
// into math/rand directly outside this package, so swapping the source
// (a seeded PRNG for reproducible tests, a CSPRNG, a replay log) never
// touches engine code.
package rng
