package secp256k1

// Table holds multiples 1*G .. 15*G, one entry per possible non-zero value
// of a 4-bit scalar window. Data built once at package init with plain
// affine addition — each addition costs a modular inverse, which is fine
// for fifteen one-time additions and would not be fine inside the search
// loop's per-iteration scalar multiplication.
//
// There are two equivalent windowed designs here: a 16-entry table of
// odd multiples (2i+1)*G with a doubling branch for even windows, or a
// flat table covering every value 1..15 with the branch dropped. This
// module takes the latter, simpler variant, so Table[w-1] is a direct,
// branch-free lookup for any non-zero 4-bit window value w.
var Table [15]Affine

func init() {
	Table[0] = G
	for i := 1; i < 15; i++ {
		Table[i] = AffineAdd(Table[i-1], G)
	}
}
