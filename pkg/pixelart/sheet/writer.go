// Package sheet encodes pixel grids into xlsx worksheets and decodes
// them back. One worksheet cell corresponds to one pixel; the pixel
// color is stored as the cell's solid pattern fill.
package sheet

import (
	"image"

	"github.com/xuri/excelize/v2"

	"github.com/chong-yao/pixel-perfect/pkg/pixelart/raster"
)

// fillCache hands out one style ID per distinct color within a single
// encode, so runs of identical pixels share a style instead of
// allocating duplicates.
type fillCache struct {
	f      *excelize.File
	styles map[string]int
}

func newFillCache(f *excelize.File) *fillCache {
	return &fillCache{f: f, styles: make(map[string]int)}
}

func (c *fillCache) styleFor(key string) (int, error) {
	if id, ok := c.styles[key]; ok {
		return id, nil
	}
	id, err := c.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{key}},
	})
	if err != nil {
		return 0, err
	}
	c.styles[key] = id
	return id, nil
}

// WriteGrid writes one colored cell per pixel of img into sheetName,
// anchored at A1, sizes every column and row to colWidth/rowHeight, and
// declares the sheet dimension to match the grid extent. Cells outside
// the grid are not touched.
func WriteGrid(f *excelize.File, sheetName string, img *image.NRGBA, colWidth, rowHeight float64) error {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	cache := newFillCache(f)
	var werr error
	raster.EachPixel(img, func(x, y int, r, g, b uint8) {
		if werr != nil {
			return
		}
		styleID, err := cache.styleFor(FillKey(r, g, b))
		if err != nil {
			werr = err
			return
		}
		cell, err := excelize.CoordinatesToCellName(x+1, y+1)
		if err != nil {
			werr = err
			return
		}
		werr = f.SetCellStyle(sheetName, cell, cell, styleID)
	})
	if werr != nil {
		return werr
	}

	lastCol, err := excelize.ColumnNumberToName(width)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, colWidth); err != nil {
		return err
	}
	for row := 1; row <= height; row++ {
		if err := f.SetRowHeight(sheetName, row, rowHeight); err != nil {
			return err
		}
	}

	lastCell, err := excelize.CoordinatesToCellName(width, height)
	if err != nil {
		return err
	}
	return f.SetSheetDimension(sheetName, "A1:"+lastCell)
}
