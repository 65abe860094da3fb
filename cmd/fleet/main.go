// Command fleet validates and inspects Fleet interaction flow files.
package main

import "github.com/brjennin/Fleet/cmd/fleet/cmd"

func main() {
	cmd.Execute()
}
