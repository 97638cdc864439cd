// Package design defines the path model owned by the design tool.
// The codec and analyzer read these values; only the design tool
// (or the import lift in this module) constructs them.
package design
