package placement

import "github.com/zyedidia/generic/mapset"

type DenseOptions struct {
	Width      int
	Height     int
	Region     Region
	Categories []Category
	// Spacing is the Chebyshev radius reserved around every accepted cell.
	Spacing int
}

// PlaceDense scans the grid in row-major order and accepts every admissible,
// unreserved cell. Categories are assigned round-robin in acceptance order.
// Each acceptance reserves the surrounding square of radius Spacing, so a
// cell scanned earlier always wins a spacing conflict.
func PlaceDense(opts DenseOptions) []Placement {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Region == nil || len(opts.Categories) == 0 {
		return nil
	}
	spacing := max(0, opts.Spacing)
	reserved := mapset.New[Coord]()
	var out []Placement

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			c := Coord{X: x, Y: y}
			if !opts.Region.Contains(c) || reserved.Has(c) {
				continue
			}
			out = append(out, Placement{
				Coord:    c,
				Category: opts.Categories[len(out)%len(opts.Categories)],
			})
			for dy := -spacing; dy <= spacing; dy++ {
				for dx := -spacing; dx <= spacing; dx++ {
					reserved.Put(Coord{X: x + dx, Y: y + dy})
				}
			}
		}
	}
	return out
}
