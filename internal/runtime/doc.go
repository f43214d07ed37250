// Package runtime implements the Filler turn controller and the territory
// expansion engine on top of the domain model and the region classifier.
package runtime
