package spatial

import (
	"math"

	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// HashGrid3 is the 3D analogue of HashGrid: a uniform spatial hash grid
// over world-space Vec3 positions, quantized into integer cells. It is
// used both for global intersection-vertex identity (C2) and output
// vertex welding (C5), so it stores plain int payload IDs rather than the
// 2D PSLG's types.VertexID.
type HashGrid3 struct {
	cellSize float64
	cells    map[[3]int64][]int
}

// NewHashGrid3 creates a 3D hash grid index with the given cell size.
func NewHashGrid3(cellSize float64) *HashGrid3 {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HashGrid3{
		cellSize: cellSize,
		cells:    make(map[[3]int64][]int),
	}
}

// CellKey returns the quantized integer cell for a world position. This
// is also used directly as the "quantize world position" step of global
// vertex construction, independent of grid lookups.
func (h *HashGrid3) CellKey(p types.Vec3) [3]int64 {
	return cellOf(p, h.cellSize)
}

func cellOf(p types.Vec3, size float64) [3]int64 {
	return [3]int64{
		int64(math.Round(p.X / size)),
		int64(math.Round(p.Y / size)),
		int64(math.Round(p.Z / size)),
	}
}

// Add inserts id at position p.
func (h *HashGrid3) Add(id int, p types.Vec3) {
	cell := h.CellKey(p)
	h.cells[cell] = append(h.cells[cell], id)
}

// FindNear returns the IDs stored in every cell overlapping the box of
// half-width radius around p. The IDs are not filtered by distance, so
// points slightly farther than radius may be included.
func (h *HashGrid3) FindNear(p types.Vec3, radius float64) []int {
	if radius < 0 {
		radius = 0
	}

	min := h.CellKey(types.Vec3{X: p.X - radius, Y: p.Y - radius, Z: p.Z - radius})
	max := h.CellKey(types.Vec3{X: p.X + radius, Y: p.Y + radius, Z: p.Z + radius})

	var result []int
	for cz := min[2]; cz <= max[2]; cz++ {
		for cy := min[1]; cy <= max[1]; cy++ {
			for cx := min[0]; cx <= max[0]; cx++ {
				if ids, ok := h.cells[[3]int64{cx, cy, cz}]; ok {
					result = append(result, ids...)
				}
			}
		}
	}
	return result
}
