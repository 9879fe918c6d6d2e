// Package circleimage renders a raster image clipped to a circle, with an
// optional ring border, on top of the gg 2D graphics library.
//
// # Overview
//
// The package is split into pure geometry and pixel surfaces:
//
//   - circleimage (this package): fit transforms, circle geometry and the
//     CompositeDescriptor that ties them together
//   - raster: composites a descriptor into an *image.RGBA
//   - ggsurface: executes a descriptor on a *gg.Context
//   - widget: a host-side view that owns the source image, the viewport
//     and the styling attributes, and draws through ggsurface
//   - style: resolves styling attributes from TOML themes
//
// # Quick Start
//
//	d, err := circleimage.RenderComposite(img, circleimage.Viewport{Width: 128, Height: 128},
//	    circleimage.BorderSpec{Color: gg.Hex("#ffffff"), Width: 4})
//	if err != nil {
//	    return err
//	}
//	out, err := raster.Render(img, d)
//
// # Fit Modes
//
// FitCover (the default) scales the image so it covers the viewport and
// crops the excess symmetrically: for a 200x100 source in a 100x100
// viewport the scale is 1 and the X offset is -50. FitContain letterboxes
// instead.
//
// # Coordinate System
//
// Same as gg: origin at top-left, X right, Y down. Descriptor coordinates
// are relative to the viewport origin; surfaces take the origin separately.
package circleimage
