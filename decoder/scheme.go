package decoder

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

const selectorLen = 4

// Scheme decodes call data against one contract interface
type Scheme interface {
	Name() string
	Decode(data []byte) (*Invocation, error)
}

type abiScheme struct {
	name     string
	contract *abi.ABI
}

// NewABIScheme returns a Scheme resolving the method by its selector in the contract interface
func NewABIScheme(name string, contract *abi.ABI) Scheme {
	return &abiScheme{name: name, contract: contract}
}

func (s *abiScheme) Name() string {
	return s.name
}

func (s *abiScheme) Decode(data []byte) (*Invocation, error) {
	if len(data) < selectorLen {
		return nil, errors.Errorf("call data too short: %d bytes", len(data))
	}
	method, err := s.contract.MethodById(data[:selectorLen])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(data[selectorLen:])
	if err != nil {
		return nil, errors.Wrapf(err, "unpacking %s arguments", method.RawName)
	}
	return &Invocation{
		Method: method.RawName,
		Scheme: s.name,
		Args:   args,
	}, nil
}
