// Command termchart plots mathematical functions in the terminal.
package main

import "github.com/rkjdid/termchart/cmd"

func main() {
	cmd.Execute()
}
