/* Generate SSTV transmission audio from an image */
package main

import (
	sstv "github.com/radiogo/sstv/src"
)

func main() {
	sstv.GenSSTVMain()
}
