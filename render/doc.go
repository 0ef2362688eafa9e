// Package render converts a trained (or in-training) lattice into
// displayable images, and plots the decay schedules of a training run.
//
// What:
//
//   - RGBImage treats each Dim=3 cell as one color and paints it as a
//     scale×scale block: the classic SOM color-map picture.
//   - GrayTiles reshapes each cell's vector row-major into a pw×ph
//     grayscale patch and tiles the patches row-major over (x, y) —
//     for lattices trained on flattened pixel data.
//   - ScheduleCurves plots neighborhood-radius and learning-rate decay
//     over a full run.
//   - SavePNG writes any image to disk.
//
// The lattice is read through its public accessors only; rendering never
// mutates the model. Components are clamped to [0, 255] on conversion:
// training keeps cells inside the seeding range, but rounding may leave
// values a hair outside it.
//
// Errors:
//
//   - ErrNilLattice: nil model.
//   - ErrUnsupportedDim: cell dimensionality does not match the renderer.
//   - ErrBadPatch: patch geometry with pw or ph ≤ 0.
//   - ErrBadScale: block scale ≤ 0.
package render
