package main

import (
	"fmt"

	"github.com/blitkit/bmask"
)

func main() {
	m, _ := bmask.Create(6, 6)
	for _, p := range [][2]int{{1, 0}, {2, 0}, {1, 1}, {2, 1}, {4, 3}, {1, 4}, {3, 4}} {
		m.SetBit(p[0], p[1])
	}
	fmt.Printf("input:\n%s\n", m)

	rects, err := bmask.BoundingRects(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, r := range rects {
		fmt.Printf("component %d bounding rect: (%d,%d,%d,%d)\n", i, r.X, r.Y, r.W, r.H)
	}

	comps, err := bmask.ConnectedComponents(m, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, c := range comps {
		fmt.Printf("component %d (popcount %d):\n%s\n", i, c.Count(), c)
	}

	largest, err := bmask.LargestComponent(m, -1, -1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("largest component (popcount %d):\n%s\n", largest.Count(), largest)
}
