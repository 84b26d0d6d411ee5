package dat

// AlphabetMap maps BMP code units (0..65535) to dense alphabet IDs. It is a
// two-level page table: Top[hi] holds a 1-based page index (0 = page
// absent), Pages is a flat array of 256-entry pages. Lookup is two array
// reads. A handful of populated pages costs a few KB per language, against
// 128 KB for a flat table.
type AlphabetMap struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
}

// Dense returns the dense alphabet ID for a BMP code unit.
// Returns 0 if absent.
func (m *AlphabetMap) Dense(bmp uint16) uint16 {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8
	return m.Pages[base+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *AlphabetMap) NumPages() int { return len(m.Pages) >> 8 }

// Set sets mapping bmp -> dense (dense may be 0 to clear).
func (m *AlphabetMap) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		m.Pages = append(m.Pages, make([]uint16, 256)...)
		pi = uint16(len(m.Pages) >> 8)
		m.Top[hi] = pi
	}
	base := int(pi-1) << 8
	m.Pages[base+int(bmp&0xFF)] = dense
}
