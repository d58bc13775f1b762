// SPDX-License-Identifier: EPL-2.0

// Package render draws an amplitude profile as an area graph.
//
// A frame is composed in two passes over the same shape. The passive pass
// fills the whole graph with the base color, its alpha scaled by the frame
// opacity. The accent pass fills only the played part, x in [0, W*progress],
// with a vertical gradient from the solid accent at the top to a faint
// accent at the baseline. The accent pass always uses full alpha.
//
// The top edge is a chain of quadratic curves: each sample is the control
// point of a curve that ends halfway to the next sample.
//
// Shapes are rasterized with github.com/tdewolff/canvas into a coverage
// mask that both passes share.
//
// Braille renders the same profile as Unicode braille cells for terminals.
package render
