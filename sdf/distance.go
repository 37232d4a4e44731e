package sdf

// infDistance is "farther than any tile diagonal" for the transform
// below. Tiles are at most a few thousand pixels on a side.
const infDistance = 1e20

// squaredDistance computes, for every pixel where mask is true, the
// squared Euclidean distance to the nearest pixel where mask is false.
// Pixels where mask is false get 0. Distances are center-to-center.
//
// This is the Felzenszwalb/Huttenlocher distance transform: an exact 1D
// lower-envelope pass along every row, then along every column of the
// row results. Each pass is linear, so the whole transform is O(n).
func squaredDistance(mask []bool, width, height int) []float64 {
	d := make([]float64, width*height)
	for i, m := range mask {
		if m {
			d[i] = infDistance
		}
	}

	size := width
	if height > size {
		size = height
	}
	f := make([]float64, size)
	dt := make([]float64, size)
	v := make([]int, size)
	z := make([]float64, size+1)

	// Rows.
	for y := 0; y < height; y++ {
		row := d[y*width : (y+1)*width]
		copy(f[:width], row)
		envelope(f[:width], dt[:width], v, z)
		copy(row, dt[:width])
	}

	// Columns.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			f[y] = d[y*width+x]
		}
		envelope(f[:height], dt[:height], v, z)
		for y := 0; y < height; y++ {
			d[y*width+x] = dt[y]
		}
	}

	return d
}

// envelope performs the 1D squared distance transform of sampled function
// f into dt, using v and z as parabola bookkeeping scratch space.
func envelope(f, dt []float64, v []int, z []float64) {
	n := len(f)
	k := 0
	v[0] = 0
	z[0] = -infDistance
	z[1] = +infDistance

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = +infDistance
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		dt[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the horizontal position where the parabola rooted at
// q crosses the one rooted at p.
func intersect(f []float64, q, p int) float64 {
	fq := float64(q)
	fp := float64(p)
	return ((f[q] + fq*fq) - (f[p] + fp*fp)) / (2*fq - 2*fp)
}
