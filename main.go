// Command animfind searches Unity animation clips for animated properties.
package main

import "github.com/mouse-blink/animfind/cmd"

func main() {
	cmd.Execute()
}
