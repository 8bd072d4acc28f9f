package ppu

// renderScanline paints LY's 160 pixels into the back buffer, following
// spec.md §4.5's per-pixel algorithm: translate screen coordinates to
// tilemap coordinates, locate the tile, decode its row, and look up the
// resulting colour through the active palette.
func (p *PPU) renderScanline() {
	ly := int(p.LY)
	if ly >= ScreenHeight {
		return
	}

	var bgColorIndex [ScreenWidth]uint8
	var bgPriority [ScreenWidth]bool

	if p.LCDC&0x01 != 0 || p.isColor {
		p.renderBackground(ly, &bgColorIndex, &bgPriority)
	}
	if p.LCDC&0x20 != 0 {
		p.renderWindow(ly, &bgColorIndex, &bgPriority)
	}
	for x := 0; x < ScreenWidth; x++ {
		p.back[ly][x] = p.bgColor(bgColorIndex[x], 0)
	}
	if p.LCDC&0x02 != 0 {
		p.renderSprites(ly, &bgColorIndex, &bgPriority)
	}
}

// tileAttr decodes a CGB background/window tilemap attribute byte.
type tileAttr struct {
	palette  uint8
	bank     uint8
	flipX    bool
	flipY    bool
	priority bool
}

func decodeAttr(b uint8) tileAttr {
	return tileAttr{
		palette:  b & 0x07,
		bank:     (b >> 3) & 0x01,
		flipX:    b&0x20 != 0,
		flipY:    b&0x40 != 0,
		priority: b&0x80 != 0,
	}
}

func (p *PPU) renderBackground(ly int, colorIndex *[ScreenWidth]uint8, priority *[ScreenWidth]bool) {
	mapBase := uint16(0x1800)
	if p.LCDC&0x08 != 0 {
		mapBase = 0x1C00
	}

	y := (ly + int(p.SCY)) & 0xFF
	tileRow := y / 8
	rowInTile := y % 8

	for x := 0; x < ScreenWidth; x++ {
		sx := (x + int(p.SCX)) & 0xFF
		tileCol := sx / 8
		colInTile := sx % 8

		mapAddr := mapBase + uint16(tileRow*32+tileCol)
		tileIdx := p.vram[0][mapAddr]

		attr := tileAttr{}
		if p.isColor {
			attr = decodeAttr(p.vram[1][mapAddr])
		}

		idx := p.tilePixel(attr.bank, tileIdx, rowInTile, colInTile, attr.flipX, attr.flipY)
		colorIndex[x] = idx
		priority[x] = attr.priority
	}
}

func (p *PPU) renderWindow(ly int, colorIndex *[ScreenWidth]uint8, priority *[ScreenWidth]bool) {
	if ly < int(p.WY) {
		return
	}
	wx := int(p.WX) - 7
	if wx >= ScreenWidth {
		return
	}

	mapBase := uint16(0x1800)
	if p.LCDC&0x40 != 0 {
		mapBase = 0x1C00
	}

	tileRow := int(p.windowLine) / 8
	rowInTile := int(p.windowLine) % 8
	drew := false

	for x := 0; x < ScreenWidth; x++ {
		wxPixel := x - wx
		if wxPixel < 0 {
			continue
		}
		drew = true
		tileCol := wxPixel / 8
		colInTile := wxPixel % 8

		mapAddr := mapBase + uint16(tileRow*32+tileCol)
		tileIdx := p.vram[0][mapAddr]

		attr := tileAttr{}
		if p.isColor {
			attr = decodeAttr(p.vram[1][mapAddr])
		}

		idx := p.tilePixel(attr.bank, tileIdx, rowInTile, colInTile, attr.flipX, attr.flipY)
		colorIndex[x] = idx
		priority[x] = attr.priority
	}
	if drew {
		p.windowLine++
	}
}

// tilePixel decodes the 2bpp colour index at (row, col) of the tile
// identified by idx, honouring LCDC's addressing-mode bit.
func (p *PPU) tilePixel(bank uint8, idx uint8, row, col int, flipX, flipY bool) uint8 {
	if flipY {
		row = 7 - row
	}
	if flipX {
		col = 7 - col
	}

	var base uint16
	if p.LCDC&0x10 != 0 {
		base = uint16(idx) * 16
	} else {
		base = uint16(0x1000 + int(int8(idx))*16)
	}

	addr := base + uint16(row*2)
	lo := p.vram[bank][addr]
	hi := p.vram[bank][addr+1]

	bit := 7 - col
	loBit := (lo >> uint(bit)) & 1
	hiBit := (hi >> uint(bit)) & 1
	return hiBit<<1 | loBit
}

type spriteEntry struct {
	y, x   int
	tile   uint8
	attr   uint8
	oamIdx int
}

func (p *PPU) renderSprites(ly int, bgColorIndex *[ScreenWidth]uint8, bgPriority *[ScreenWidth]bool) {
	tall := p.LCDC&0x04 != 0
	height := 8
	if tall {
		height = 16
	}

	var visible []spriteEntry
	for i := 0; i < 40 && len(visible) < 10; i++ {
		base := i * 4
		sy := int(p.oam[base]) - 16
		sx := int(p.oam[base+1]) - 8
		if ly < sy || ly >= sy+height {
			continue
		}
		visible = append(visible, spriteEntry{
			y: sy, x: sx,
			tile:   p.oam[base+2],
			attr:   p.oam[base+3],
			oamIdx: i,
		})
	}

	// DMG priority: lower X wins, ties broken by OAM index. CGB
	// priority: OAM index only. Stable-sort by X leaves CGB order
	// (OAM index) intact when isColor is set.
	if !p.isColor {
		for i := 1; i < len(visible); i++ {
			for j := i; j > 0 && visible[j].x < visible[j-1].x; j-- {
				visible[j], visible[j-1] = visible[j-1], visible[j]
			}
		}
	}

	for x := 0; x < ScreenWidth; x++ {
		for _, s := range visible {
			if x < s.x || x >= s.x+8 {
				continue
			}
			flipX := s.attr&0x20 != 0
			flipY := s.attr&0x40 != 0
			behindBG := s.attr&0x80 != 0

			row := ly - s.y
			tile := s.tile
			if tall {
				tile &^= 0x01
				if flipY {
					row = height - 1 - row
				}
				if row >= 8 {
					tile |= 0x01
					row -= 8
				}
			} else if flipY {
				row = 7 - row
			}

			bank := uint8(0)
			if p.isColor && s.attr&0x08 != 0 {
				bank = 1
			}

			idx := p.tilePixel(bank, tile, row, x-s.x, flipX, false)
			if idx == 0 {
				continue // transparent
			}
			if behindBG && bgColorIndex[x] != 0 && !bgPriority[x] {
				continue
			}
			if p.isColor && bgPriority[x] && bgColorIndex[x] != 0 && p.LCDC&0x01 != 0 {
				continue
			}

			palette := s.attr & 0x07
			var dmgPalette uint8
			if s.attr&0x10 != 0 {
				dmgPalette = p.OBP1
			} else {
				dmgPalette = p.OBP0
			}
			p.back[ly][x] = p.objColor(idx, palette, dmgPalette)
			break
		}
	}
}

// bgColor resolves a background/window colour index through the DMG
// BGP palette or, in colour mode, the indexed CGB palette RAM.
func (p *PPU) bgColor(idx uint8, paletteNum uint8) [4]uint8 {
	if p.isColor {
		return p.cgbColor(p.bgPaletteRAM[:], paletteNum, idx)
	}
	shade := (p.BGP >> (idx * 2)) & 0x03
	return dmgShade(shade)
}

// objColor resolves a sprite colour index through OBP0/OBP1 or, in
// colour mode, the indexed CGB object palette RAM.
func (p *PPU) objColor(idx uint8, paletteNum uint8, dmgPalette uint8) [4]uint8 {
	if p.isColor {
		return p.cgbColor(p.objPaletteRAM[:], paletteNum, idx)
	}
	shade := (dmgPalette >> (idx * 2)) & 0x03
	return dmgShade(shade)
}

func (p *PPU) cgbColor(ram []byte, paletteNum uint8, idx uint8) [4]uint8 {
	off := int(paletteNum)*8 + int(idx)*2
	lo := ram[off]
	hi := ram[off+1]
	rgb555 := uint16(hi)<<8 | uint16(lo)
	r := uint8(rgb555 & 0x1F)
	g := uint8((rgb555 >> 5) & 0x1F)
	b := uint8((rgb555 >> 10) & 0x1F)
	return [4]uint8{scale5to8(r), scale5to8(g), scale5to8(b), 0xFF}
}

func scale5to8(v uint8) uint8 { return v<<3 | v>>2 }

// dmgShade maps a 2-bit DMG shade index to a greyscale RGBA colour.
func dmgShade(shade uint8) [4]uint8 {
	switch shade {
	case 0:
		return [4]uint8{0xE0, 0xF8, 0xD0, 0xFF}
	case 1:
		return [4]uint8{0x88, 0xC0, 0x70, 0xFF}
	case 2:
		return [4]uint8{0x34, 0x68, 0x56, 0xFF}
	default:
		return [4]uint8{0x08, 0x18, 0x20, 0xFF}
	}
}
