package arch

// AddressMode defines absolute jump target address modes.
type AddressMode byte

// Known address modes.
const (
	RegisterDirect   AddressMode = 0 // target = rd
	RegisterIndirect AddressMode = 1 // target = mem[rd]
	Immediate        AddressMode = 2 // target = word following the instruction
)
