package b

// Big does not fit into 64 bits.
const Big = 1 << 64

//uintgen:for Huge Big
