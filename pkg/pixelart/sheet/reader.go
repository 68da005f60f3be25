package sheet

import (
	"fmt"
	"image"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chong-yao/pixel-perfect/pkg/pixelart/raster"
)

// rgb is a resolved fill color; nil marks a style with no solid fill.
type rgb [3]uint8

// ReadGrid reconstructs the pixel grid stored in sheetName. The raster
// extent comes from the sheet's declared dimension; cells without a
// solid pattern fill decode to white.
func ReadGrid(f *excelize.File, sheetName string) (*image.NRGBA, error) {
	width, height, err := gridExtent(f, sheetName)
	if err != nil {
		return nil, err
	}

	img := raster.NewWhite(width, height)

	// Distinct colors share style IDs, so each ID is resolved once.
	colors := make(map[int]*rgb)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell, err := excelize.CoordinatesToCellName(x+1, y+1)
			if err != nil {
				return nil, err
			}
			styleID, err := f.GetCellStyle(sheetName, cell)
			if err != nil {
				return nil, err
			}
			c, seen := colors[styleID]
			if !seen {
				c, err = solidFill(f, styleID)
				if err != nil {
					return nil, err
				}
				colors[styleID] = c
			}
			if c != nil {
				raster.SetPixel(img, x, y, c[0], c[1], c[2])
			}
		}
	}
	return img, nil
}

// solidFill resolves a style ID to its pattern-fill color, or nil when
// the style carries no solid fill.
func solidFill(f *excelize.File, styleID int) (*rgb, error) {
	style, err := f.GetStyle(styleID)
	if err != nil {
		return nil, err
	}
	if style == nil || style.Fill.Type != "pattern" || style.Fill.Pattern == 0 || len(style.Fill.Color) == 0 {
		return nil, nil
	}
	r, g, b, err := ParseFillColor(style.Fill.Color[0])
	if err != nil {
		return nil, err
	}
	return &rgb{r, g, b}, nil
}

// gridExtent returns the column and row extent of the sheet's declared
// dimension (the bottom-right corner of its range reference).
func gridExtent(f *excelize.File, sheetName string) (width, height int, err error) {
	dim, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return 0, 0, err
	}
	if dim == "" {
		return 0, 0, fmt.Errorf("sheet %q declares no dimension", sheetName)
	}
	for _, ref := range strings.Split(dim, ":") {
		col, row, err := excelize.CellNameToCoordinates(ref)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid sheet dimension %q: %v", dim, err)
		}
		if col > width {
			width = col
		}
		if row > height {
			height = row
		}
	}
	return width, height, nil
}
