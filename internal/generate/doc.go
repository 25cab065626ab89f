// Package generate orchestrates one generation request end to end:
// cache lookup, trial gating, the provider call, cache write, and usage
// accounting.
//
// Ordering matters. The cache is consulted first because a hit costs
// nothing and therefore consumes no quota. Only a miss goes through the
// trial gate and, after the provider delivered, confirms one consumed
// generation. A failed or abandoned provider call writes nothing and
// consumes nothing.
package generate
