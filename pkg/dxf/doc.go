// Package dxf reads and writes 2D path geometry in a plain-text CAD
// interchange format of alternating group-code and value lines, modeled
// on DXF.
//
// Import is best effort: records with missing fields or degenerate
// geometry are dropped and the rest of the document is still read.
// Supported entities are LINE, LWPOLYLINE, ARC and CIRCLE inside the
// ENTITIES section. Imported geometry is recentred as a whole on a fixed
// 50x50 logical workspace.
//
// Every function in this package is pure and safe for concurrent use.
package dxf
