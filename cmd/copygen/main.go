// cmd/copygen/main.go
//
// Entry point for the copygen CLI.

package main

func main() {
	Execute()
}
