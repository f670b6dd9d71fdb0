package radon

import (
	"fmt"
)

// Operator is one step of a Radon script. Operators without arguments are
// serialized as their bare opcode.
type Operator struct {
	Opcode uint8
	Args   []any
}

// Script is an ordered list of Radon operators.
type Script struct {
	Ops []Operator
}

// EmptyScriptBytecode is the CBOR encoding of a script with no operators.
var EmptyScriptBytecode = []byte{0x80}

// Bytecode returns the CBOR serialization of the script.
func (s Script) Bytecode() ([]byte, error) {
	ops := make([]any, 0, len(s.Ops))
	for _, op := range s.Ops {
		if len(op.Args) == 0 {
			ops = append(ops, op.Opcode)
			continue
		}
		call := make([]any, 0, len(op.Args)+1)
		call = append(call, op.Opcode)
		call = append(call, op.Args...)
		ops = append(ops, call)
	}

	bytecode, err := EncodeCBOR(ops)
	if err != nil {
		return nil, fmt.Errorf("failed to encode radon script: %w", err)
	}
	return bytecode, nil
}
