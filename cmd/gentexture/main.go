// Command gentexture writes the checkerboard texture.png the demo expects
// in its working directory. The demo itself treats a missing texture as a
// fatal startup error, so the fallback pattern lives here instead.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

const (
	size     = 64
	cellSize = 8
)

func main() {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if (x/cellSize+y/cellSize)%2 == 1 {
				c = color.RGBA{30, 30, 30, 255}
			}
			img.Set(x, y, c)
		}
	}

	f, err := os.Create("texture.png")
	if err != nil {
		fmt.Fprintln(os.Stderr, "create texture.png:", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintln(os.Stderr, "encode texture.png:", err)
		os.Exit(1)
	}
	fmt.Println("wrote texture.png")
}
