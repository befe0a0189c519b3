package script

import "unicode"

const pageBits = 8

// pageMap holds one byte per code point over the whole Unicode range. The
// registry stores script+1 there, so that zero means no script. Code points
// are split into a block number (r >> 8) and an offset into a 256-byte page;
// only blocks holding at least one claimed code point get a page.
type pageMap struct {
	blocks [(unicode.MaxRune >> pageBits) + 1]uint16 // page number + 1, per block
	pages  []uint8
}

func (m *pageMap) get(r rune) uint8 {
	if r < 0 || r > unicode.MaxRune {
		return 0
	}
	p := m.blocks[r>>pageBits]
	if p == 0 {
		return 0
	}
	return m.pages[int(p-1)<<pageBits|int(r&0xFF)]
}

func (m *pageMap) numPages() int { return len(m.pages) >> pageBits }

// set stores v for r. Storing 0 into an unallocated block is a no-op.
func (m *pageMap) set(r rune, v uint8) {
	if r < 0 || r > unicode.MaxRune {
		return
	}
	block := r >> pageBits
	p := m.blocks[block]
	if p == 0 {
		if v == 0 {
			return
		}
		m.pages = append(m.pages, make([]uint8, 1<<pageBits)...)
		p = uint16(m.numPages())
		m.blocks[block] = p
	}
	m.pages[int(p-1)<<pageBits|int(r&0xFF)] = v
}
