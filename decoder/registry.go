package decoder

import (
	"github.com/relaylab/convdiag/etherman/smartcontracts/abis"
	"github.com/relaylab/convdiag/gerror"
	"github.com/relaylab/convdiag/log"
)

// conversionMethods are the calls a diagnosis can be run on
var conversionMethods = map[string]struct{}{
	"quickConvert":            {},
	"quickConvertPrioritized": {},
	"convert2":                {},
	"claimAndConvert2":        {},
}

// IsConversionMethod reports whether method is one of the recognized conversion calls
func IsConversionMethod(method string) bool {
	_, ok := conversionMethods[method]
	return ok
}

// Registry tries its schemes in order and keeps the first recognized conversion call
type Registry struct {
	schemes []Scheme
}

// NewRegistry creates a registry trying the schemes in the given order
func NewRegistry(schemes ...Scheme) *Registry {
	return &Registry{schemes: schemes}
}

// NewDefaultRegistry tries the current converter, then the legacy converter, then the network
func NewDefaultRegistry(contracts *abis.Descriptors) *Registry {
	return NewRegistry(
		NewABIScheme(abis.ConverterName, contracts.Converter),
		NewABIScheme(abis.OldConverterName, contracts.OldConverter),
		NewABIScheme(abis.NetworkName, contracts.Network),
	)
}

// Decode returns the first invocation whose method is a conversion. Decoding success alone is not enough,
// since a permissive scheme may decode something else out of the same bytes.
func (r *Registry) Decode(data []byte) (*Invocation, error) {
	for _, scheme := range r.schemes {
		inv, err := scheme.Decode(data)
		if err != nil {
			log.Debugf("scheme %s cannot decode call data: %v", scheme.Name(), err)
			continue
		}
		if IsConversionMethod(inv.Method) {
			return inv, nil
		}
		log.Debugf("scheme %s decoded %s, not a conversion", scheme.Name(), inv.Method)
	}
	return nil, gerror.ErrDecode
}
