// Command nexchat is a terminal client for the counsellor chat backend.
package main

import "github.com/ananth/nexchat/internal/commands"

func main() {
	commands.Execute()
}
