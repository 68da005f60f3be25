package pixelart

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chong-yao/pixel-perfect/pkg/pixelart/raster"
	"github.com/chong-yao/pixel-perfect/pkg/pixelart/sheet"
)

// SheetName is the worksheet title used for generated workbooks.
const SheetName = "Pixel Art"

// ImageToSheet downsamples the image at cfg.ImagePath to the configured
// grid size and writes it as a colored-cell workbook at cfg.SheetPath,
// overwriting any existing file.
func ImageToSheet(cfg Config) error {
	src, err := raster.Load(cfg.ImagePath)
	if err != nil {
		return inputError("read image", cfg.ImagePath, err)
	}
	grid := raster.Downsample(src, cfg.GridWidth, cfg.GridHeight)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return writeError("write sheet", cfg.SheetPath, err)
	}
	if err := sheet.WriteGrid(f, SheetName, grid, cfg.CellWidth, cfg.CellHeight); err != nil {
		return writeError("write sheet", cfg.SheetPath, err)
	}
	if err := f.SaveAs(cfg.SheetPath); err != nil {
		return writeError("write sheet", cfg.SheetPath, err)
	}
	return nil
}

// SheetToImage reads the workbook at cfg.SheetPath, reconstructs its
// pixel grid from the active sheet's cell fills, upscales it by
// cfg.Scale, and writes the result to cfg.OutputPath in the format
// implied by that path's extension.
func SheetToImage(cfg Config) error {
	f, err := excelize.OpenFile(cfg.SheetPath)
	if err != nil {
		return inputError("read sheet", cfg.SheetPath, err)
	}
	defer f.Close()

	name := f.GetSheetName(f.GetActiveSheetIndex())
	grid, err := sheet.ReadGrid(f, name)
	if err != nil {
		return inputError("read sheet", cfg.SheetPath, err)
	}

	final := raster.Upsample(grid, cfg.Scale)
	if err := raster.Save(final, cfg.OutputPath); err != nil {
		return writeError("write image", cfg.OutputPath, err)
	}
	return nil
}

// Run validates cfg and executes the conversion(s) selected by cfg.Mode.
// In both mode a failure in the first step prevents the second from
// starting.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch cfg.Mode {
	case ModeImageToGrid:
		return ImageToSheet(cfg)
	case ModeGridToImage:
		return SheetToImage(cfg)
	case ModeBoth:
		if err := ImageToSheet(cfg); err != nil {
			return err
		}
		return SheetToImage(cfg)
	}
	return fmt.Errorf("%w: invalid mode %q", ErrConfig, cfg.Mode)
}
