package a

//go:generate uintgen -type Index -upto NSlots

// NSlots is number of slots in a table.
const NSlots = 65536

// MaxCount is the largest value a counter may reach.
const MaxCount = 1 << 32

const Depth int32 = 300

//uintgen:for Counter MaxCount
//uintgen:for Level Depth
//uintgen:upto Hash 1 << 64
//uintgen:for  Huge  MaxCount * MaxCount * 2	// does not fit 64 bits
//uintgen:upto Nothing 0
//uintgen:for Zero 0
