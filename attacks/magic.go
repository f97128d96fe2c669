// Copyright (c) 2024 chesscore contributors. MIT License.

package attacks

import . "github.com/kopf/chesscore/types"

// magic holds the per-square data needed to look up a slider's attacks
// from a given occupancy in O(1): mask the board down to the relevant
// occupancy bits, multiply by the magic number, shift right to land in
// the index range, and index into this square's own attack table.
type magic struct {
	mask   Bitboard
	number uint64
	shift  uint
	table  []Bitboard
}

func (m *magic) index(occupied Bitboard) int {
	relevant := occupied & m.mask
	return int((uint64(relevant) * m.number) >> m.shift)
}

// rookMagicNumbers and bishopMagicNumbers are fixed, known-good fancy
// magic multipliers, one per square. They are never (re)computed by this
// program; an offline magic search is how numbers like these get found
// in the first place, but that search is not part of the engine core.
var rookMagicNumbers = [SqLength]uint64{
	0x8a80104000800020, 0x140002000100040, 0x2801880a0017001, 0x100081001000420,
	0x200020010080420, 0x3001c0002010008, 0x8480008002000100, 0x2080088004402900,
	0x800098204000, 0x2024401000200040, 0x100802000801000, 0x120800800801000,
	0x208808088000400, 0x2802200800400, 0x2200800100020080, 0x801000060821100,
	0x80044006422000, 0x100808020004000, 0x12108a0010204200, 0x140848010000802,
	0x481828014002800, 0x8094004002004100, 0x4010040010010802, 0x20008806104,
	0x100400080208000, 0x2040002120081000, 0x21200680100081, 0x20100080080080,
	0x2000a00200410, 0x20080800400, 0x80088400100102, 0x80004600042881,
	0x4040008040800020, 0x440003000200801, 0x4200011004500, 0x188020010100100,
	0x14800401802800, 0x2080040080800200, 0x124080204001001, 0x200046502000484,
	0x480400080088020, 0x1000422010034000, 0x30200100110040, 0x100021010009,
	0x2002080100110004, 0x202008004008002, 0x20020004010100, 0x2048440040820001,
	0x101002200408200, 0x40802000401080, 0x4008142004410100, 0x2060820c0120200,
	0x1001004080100, 0x20c020080040080, 0x2935610830022400, 0x44440041009200,
	0x280001040802101, 0x2100190040002085, 0x80c0084100102001, 0x4024081001000421,
	0x20030a0244872, 0x12001008414402, 0x2006104900a0804, 0x1004081002402,
}

var bishopMagicNumbers = [SqLength]uint64{
	0x40040844404084, 0x2004208a004208, 0x10190041080202, 0x108060845042010,
	0x581104180800210, 0x2112080446200010, 0x1080820820060210, 0x3c0808410220200,
	0x4050404440404, 0x21001420088, 0x24d0080801082102, 0x1020a0a020400,
	0x40308200402, 0x4011002100800, 0x401484104104005, 0x801010402020200,
	0x400210c3880100, 0x404022024108200, 0x810018200204102, 0x4002801a02003,
	0x85040820080400, 0x810102c808880400, 0x2002410088800, 0x2002410088800,
	0x8002100400820, 0x1010100200424202, 0x840050860000002, 0x840050860000002,
	0x1040080020800080, 0x1040080020800080, 0x42044200040802, 0x42044200040802,
	0x2040820080400, 0x2040820080400, 0x412824080202000, 0x412824080202000,
	0x80208410220100, 0x80208410220100, 0x40400000801a00, 0x40400000801a00,
	0x400000020080021, 0x400000020080021, 0x800828028020000, 0x800828028020000,
	0x8080080020004, 0x8080080020004, 0x2000204100041004, 0x2000204100041004,
	0x204420081020400, 0x204420081020400, 0x482000904420000, 0x482000904420000,
	0x40408000400080, 0x40408000400080, 0x8080202000841, 0x8080202000841,
	0x90200046800, 0x90200046800, 0x420208080100, 0x420208080100,
	0x82001002001080, 0x82001002001080, 0xa00080410004100, 0xa00080410004100,
}

// buildMagics computes every square's mask and builds its slice of the
// attack table by enumerating all 2^bits occupancy subsets of the mask
// (the SetOccupancy bijection) and recording the reference ray attack at
// the index the magic multiplier assigns that subset.
func buildMagics(numbers [SqLength]uint64, directions [4]Direction) [SqLength]magic {
	var magics [SqLength]magic
	for sq := SqA1; sq <= SqH8; sq++ {
		mask := slidingMask(sq, directions)
		bitCount := mask.PopCount()
		shift := uint(64 - bitCount)
		size := 1 << uint(bitCount)
		table := make([]Bitboard, size)
		for i := 0; i < size; i++ {
			occupied := SetOccupancy(mask, i, bitCount)
			idx := int((uint64(occupied) * numbers[sq]) >> shift)
			table[idx] = raySlide(sq, occupied, directions)
		}
		magics[sq] = magic{mask: mask, number: numbers[sq], shift: shift, table: table}
	}
	return magics
}
