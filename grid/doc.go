// Package grid describes the dense, row-major sample grids consumed by the
// local-statistics engines.
//
// A grid is never a container type of its own: callers keep a flat slice of
// length rows*cols and pass the shape alongside every call. Element (i, j)
// lives at offset i*cols + j.
//
// The package provides:
//
//   - Index / Center: linear offsets and window centers (floor division).
//   - ValidateShape / ValidateWindow: the shared guards used by the engines.
//   - Region: the interior rectangle where a krows×kcols window fits entirely.
//   - MinMax / Print: small inspection helpers over grids.
//   - FromGray / FromGray16 / FromImage: adapters from image.Image values.
//
// See the examples in this package for usage patterns.
package grid
