// The phylo command builds guide trees for progressive multiple sequence
// alignment from tab-separated tables of pairwise similarity scores.
package main

func main() {
	Execute() // initialize cobra commands
}
