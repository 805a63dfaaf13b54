// Command moxie expands mock descriptors into dispatch code.
//
// Descriptor packages are discovered through Go package patterns, e.g.
// `moxie generate ./...`. See the root package documentation for the
// descriptor DSL.
package main

func main() {
	Execute()
}
