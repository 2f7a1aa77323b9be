package arch

// Jump condition codes. Condition 0 and conditions above JMP never jump.
const (
	JA  = 1 + iota // above: !ZF && !CF
	JAE            // above or equal: !CF
	JB             // below: CF
	JBE            // below or equal: CF || ZF
	JG             // greater: !ZF && SF == OF
	JGE            // greater or equal: SF == OF
	JL             // less: SF != OF
	JLE            // less or equal: !ZF || SF != ZF
	JE             // equal: ZF
	JNE            // not equal: !ZF
	JO             // overflow: OF
	JNO            // no overflow: !OF
	JMP            // always
)

// CondName returns the mnemonic for the given condition code.
// Returns false if the code is not recognized.
func CondName(cond int) (string, bool) {
	switch cond {
	case JA:
		return "JA", true
	case JAE:
		return "JAE", true
	case JB:
		return "JB", true
	case JBE:
		return "JBE", true
	case JG:
		return "JG", true
	case JGE:
		return "JGE", true
	case JL:
		return "JL", true
	case JLE:
		return "JLE", true
	case JE:
		return "JE", true
	case JNE:
		return "JNE", true
	case JO:
		return "JO", true
	case JNO:
		return "JNO", true
	case JMP:
		return "JMP", true
	}
	return "", false
}
