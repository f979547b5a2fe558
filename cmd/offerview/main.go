// Package main is the entry point for Offerview, the dynamic module
// composition engine behind service offering detail screens.
package main

func main() {
	Execute()
}
