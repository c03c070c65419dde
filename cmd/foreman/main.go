// Command foreman runs developer CLI tools and returns structured
// results, as an MCP server or one-shot from the shell.
package main

import "log"

func main() {
	log.SetFlags(0)
	log.SetPrefix("foreman: ")
	Execute()
}
