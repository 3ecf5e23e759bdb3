// Package curve defines the value types shared by the smoothing estimators:
// the input [Sample] of (x, y) scatter points and the output [Curve], a table
// of fitted values over a strictly ascending evaluation grid with optional
// confidence bounds. All smoothers in this module consume a Sample and emit a
// Curve, so downstream consumers only deal with one output shape.
package curve
