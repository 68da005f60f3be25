// Package main provides the CLI entry point for pixel-perfect.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chong-yao/pixel-perfect/pkg/pixelart"
)

var (
	mode       string
	imagePath  string
	sheetPath  string
	outputPath string
	gridWidth  int
	gridHeight int
	scale      int
	cellWidth  float64
	cellHeight float64
)

func main() {
	defaults := pixelart.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pixelart",
		Short: "Convert images to colored spreadsheet grids and back",
		Long: `pixelart renders an image as a spreadsheet, one colored cell per
pixel, and reconstructs a viewable image from such a spreadsheet.

Modes:
  image-to-grid  Downsample --image to the grid size and write --sheet.
  grid-to-image  Read --sheet, upscale by --scale, and write --out.
  both           Run image-to-grid then grid-to-image sequentially.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&mode, "mode", string(defaults.Mode), "Conversion mode: image-to-grid, grid-to-image, both")
	rootCmd.Flags().StringVar(&imagePath, "image", "", "Source image path")
	rootCmd.Flags().StringVar(&sheetPath, "sheet", "", "Spreadsheet path (written by image-to-grid, read by grid-to-image)")
	rootCmd.Flags().StringVar(&outputPath, "out", "", "Final image path (format inferred from extension)")
	rootCmd.Flags().IntVar(&gridWidth, "grid-width", defaults.GridWidth, "Pixel grid width in cells")
	rootCmd.Flags().IntVar(&gridHeight, "grid-height", defaults.GridHeight, "Pixel grid height in cells")
	rootCmd.Flags().IntVar(&scale, "scale", defaults.Scale, "Integer upscale factor for the final image")
	rootCmd.Flags().Float64Var(&cellWidth, "cell-width", defaults.CellWidth, "Column width in Excel width units")
	rootCmd.Flags().Float64Var(&cellHeight, "cell-height", defaults.CellHeight, "Row height in points")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	m, err := pixelart.ParseMode(mode)
	if err != nil {
		return err
	}

	cfg := pixelart.Config{
		Mode:       m,
		ImagePath:  imagePath,
		SheetPath:  sheetPath,
		OutputPath: outputPath,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Scale:      scale,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
	start := time.Now()
	if err := pixelart.Run(cfg); err != nil {
		return err
	}

	switch m {
	case pixelart.ModeImageToGrid:
		fmt.Printf("Wrote %dx%d pixel grid to %s\n", cfg.GridWidth, cfg.GridHeight, cfg.SheetPath)
	case pixelart.ModeGridToImage:
		fmt.Printf("Wrote image to %s\n", cfg.OutputPath)
	case pixelart.ModeBoth:
		fmt.Printf("Wrote %dx%d pixel grid to %s and image to %s\n", cfg.GridWidth, cfg.GridHeight, cfg.SheetPath, cfg.OutputPath)
	}
	fmt.Printf("Completed in %s\n", time.Since(start).Round(10*time.Millisecond))
	return nil
}
