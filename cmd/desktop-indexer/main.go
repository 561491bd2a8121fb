// Command desktop-indexer indexes freedesktop .desktop application entries
// and answers ranked, typeahead-style searches against them, either via a
// long-lived background daemon or, when one isn't reachable, by computing
// the same pipeline locally.
package main

func main() {
	Execute()
}
