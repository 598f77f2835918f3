// Command refnx is the command-line entry point of the toolkit:
// evaluate reflectivity models (calc) and refine them against measured
// data (fit), driven by a YAML model description.
package main

func main() {
	Execute()
}
