// Command pathdxf imports, exports and classifies 2D path geometry in a
// DXF-style interchange format.
package main

func main() {
	Execute()
}
