package sh2

// opFunc is the handler signature for a single SH-2 instruction. The
// raw 16-bit opcode is passed in so the executor can extract its own
// fields (n, m, d, imm8, disp) without a shared decode struct.
type opFunc func(c *CPU, opcode uint16)

// opcodeTable is a 64K-entry lookup table indexed by the raw 16-bit
// opcode. It is a pure function of the opcode (spec.md §4.3): each
// ops_*.go file populates its own slice of this table from init(),
// looping over every bit pattern a given instruction form can take
// (top-nibble group, or top-nibble plus the secondary key named in
// spec.md's decoder table). A flat array trades memory for branch-free
// dispatch, the same tradeoff the teacher's opcodeTable makes.
// nil entries are illegal instructions.
var opcodeTable [65536]opFunc
