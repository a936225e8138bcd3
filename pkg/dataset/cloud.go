package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Point is a lidar return in meters, relative to the sensor.
type Point struct {
	X, Y, Z float32
}

// pointRangeLimit filters out returns further than 100 meters from the
// sensor on any axis; beyond that the sweeps carry mostly noise.
const pointRangeLimit = 100

// ReadPointCloud decodes a raw lidar sweep: little-endian float32 rows
// of x, y, z, intensity. Intensity is dropped and out-of-range points
// are filtered.
func ReadPointCloud(r io.Reader) ([]Point, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	const rowSize = 4 * 4
	if len(buf)%rowSize != 0 {
		return nil, fmt.Errorf("point cloud length %d is not a whole number of x,y,z,intensity rows", len(buf))
	}

	points := make([]Point, 0, len(buf)/rowSize)
	for offset := 0; offset < len(buf); offset += rowSize {
		p := Point{
			X: float32FromLE(buf[offset:]),
			Y: float32FromLE(buf[offset+4:]),
			Z: float32FromLE(buf[offset+8:]),
		}
		if !inRange(p) {
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

func float32FromLE(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}

func inRange(p Point) bool {
	for _, coordinate := range [...]float32{p.X, p.Y, p.Z} {
		if coordinate < -pointRangeLimit || coordinate > pointRangeLimit {
			return false
		}
	}
	return true
}

// Quantize deduplicates points into a voxel grid with the given edge
// length, keeping the first point seen in each voxel. The sparse
// backbone consumes quantized clouds; a non-positive size disables
// quantization.
func Quantize(points []Point, size float64) []Point {
	if size <= 0 {
		return points
	}

	type voxel struct{ x, y, z int32 }
	seen := make(map[voxel]struct{}, len(points))
	quantized := make([]Point, 0, len(points))

	for _, p := range points {
		v := voxel{
			x: int32(math.Floor(float64(p.X) / size)),
			y: int32(math.Floor(float64(p.Y) / size)),
			z: int32(math.Floor(float64(p.Z) / size)),
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		quantized = append(quantized, p)
	}
	return quantized
}
