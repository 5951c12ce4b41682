/*
	baro renders an i3bar/swaybar status line: media player state over
	MPRIS plus disk, memory and clock blocks.
*/

package main

import (
	"github.com/hoppxi/baro/internal/cmd"
)

func main() {
	cmd.Execute()
}
