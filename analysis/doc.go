// Package analysis measures how faithfully a round trip reproduced its input.
//
// Compare looks at the geometry: how far each recovered sphere point moved
// and how far it drifted off the unit sphere. ValueMismatches looks at the
// recovered integers. A projection that clipped points shows up here as a
// non-zero MaxDeviation even when rounding hides it from the decoded text.
package analysis
