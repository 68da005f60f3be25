// Package pixelart converts raster images into colored spreadsheet grids
// and colored spreadsheet grids back into raster images.
package pixelart

import "fmt"

// Mode represents the conversion direction.
type Mode string

const (
	// ModeImageToGrid converts a raster image into a spreadsheet grid.
	ModeImageToGrid Mode = "image-to-grid"
	// ModeGridToImage converts a spreadsheet grid back into a raster image.
	ModeGridToImage Mode = "grid-to-image"
	// ModeBoth runs image-to-grid then grid-to-image sequentially.
	ModeBoth Mode = "both"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeImageToGrid, ModeGridToImage, ModeBoth:
		return m, nil
	}
	return "", fmt.Errorf("%w: invalid mode %q (must be image-to-grid, grid-to-image, or both)", ErrConfig, s)
}

// Config holds the explicit parameters for one conversion run. All fields
// are validated before any file is touched.
type Config struct {
	// Mode selects the conversion direction.
	Mode Mode
	// ImagePath is the source raster for image-to-grid.
	ImagePath string
	// SheetPath is the workbook path, written by image-to-grid and read
	// by grid-to-image.
	SheetPath string
	// OutputPath is the final raster written by grid-to-image. The image
	// format is inferred from its extension.
	OutputPath string
	// GridWidth and GridHeight are the target grid extent in cells.
	GridWidth  int
	GridHeight int
	// Scale is the integer upscale factor applied when reconstructing
	// an image from the grid.
	Scale int
	// CellWidth is the column width in Excel width units. CellHeight is
	// the row height in points. The defaults render roughly square.
	CellWidth  float64
	CellHeight float64
}

// DefaultConfig returns a configuration with the stock grid size, upscale
// factor, and cell dimensions.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeBoth,
		GridWidth:  64,
		GridHeight: 64,
		Scale:      8,
		CellWidth:  3,
		CellHeight: 18,
	}
}

// Validate checks every field required by the configured mode.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.SheetPath == "" {
		return fmt.Errorf("%w: sheet path is required", ErrConfig)
	}
	if c.Mode == ModeImageToGrid || c.Mode == ModeBoth {
		if c.ImagePath == "" {
			return fmt.Errorf("%w: image path is required", ErrConfig)
		}
		if c.GridWidth < 1 || c.GridHeight < 1 {
			return fmt.Errorf("%w: grid size %dx%d (both dimensions must be positive)", ErrConfig, c.GridWidth, c.GridHeight)
		}
		if c.CellWidth <= 0 || c.CellHeight <= 0 {
			return fmt.Errorf("%w: cell size %gx%g (both dimensions must be positive)", ErrConfig, c.CellWidth, c.CellHeight)
		}
	}
	if c.Mode == ModeGridToImage || c.Mode == ModeBoth {
		if c.OutputPath == "" {
			return fmt.Errorf("%w: output path is required", ErrConfig)
		}
		if c.Scale < 1 {
			return fmt.Errorf("%w: scale %d (must be at least 1)", ErrConfig, c.Scale)
		}
	}
	return nil
}
