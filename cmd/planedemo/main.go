package main

import (
	"fmt"

	"github.com/blitkit/bmask"
)

func main() {
	fmt.Println("=== Bit-plane algebra ===")

	a, _ := bmask.Create(12, 8)
	a.SetBit(2, 2)
	a.SetBit(3, 2)
	a.SetBit(2, 3)
	fmt.Printf("a:\n%s\n", a)

	b, _ := bmask.Create(4, 4)
	b.Fill()
	fmt.Printf("b (4x4 filled):\n%s\n", b)

	fmt.Println("overlap(a, b, 1, 1):", bmask.Overlap(a, b, 1, 1))
	fmt.Println("overlap_area(a, b, 1, 1):", bmask.OverlapArea(a, b, 1, 1))
	if x, y, ok := bmask.OverlapPos(a, b, 1, 1); ok {
		fmt.Printf("overlap_pos(a, b, 1, 1): (%d, %d)\n", x, y)
	}

	bmask.Draw(a, b, 6, 3)
	fmt.Printf("a after draw(a, b, 6, 3):\n%s\n", a)

	bmask.Erase(a, b, 1, 1)
	fmt.Printf("a after erase(a, b, 1, 1):\n%s\n", a)

	scaled, _ := bmask.Scale(a, 24, 16)
	fmt.Printf("scale(a, 24, 16):\n%s\n", scaled)
}
