package abis

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/gerror"
	"github.com/relaylab/convdiag/log"
)

const (
	// ConverterName is the current converter interface
	ConverterName = "BancorConverter"
	// OldConverterName is the legacy converter interface
	OldConverterName = "BancorConverterOld"
	// NetworkName is the network router interface
	NetworkName = "BancorNetwork"
	// ERC20Name is the fungible token interface
	ERC20Name = "ERC20Token"
	// SmartTokenName is the relay token interface, owned by its converter
	SmartTokenName = "SmartToken"

	fileExtension = ".abi"
)

//go:embed *.abi
var embedded embed.FS

// Descriptors holds the parsed contract interfaces used to decode call data and to call read-only methods
type Descriptors struct {
	Converter    *abi.ABI
	OldConverter *abi.ABI
	Network      *abi.ABI
	ERC20        *abi.ABI
	SmartToken   *abi.ABI
}

// Load parses the interface descriptors. A descriptor found in cfg.Dir takes precedence over the embedded one.
func Load(cfg Config) (*Descriptors, error) {
	var (
		d   Descriptors
		err error
	)
	targets := []struct {
		name string
		dst  **abi.ABI
	}{
		{ConverterName, &d.Converter},
		{OldConverterName, &d.OldConverter},
		{NetworkName, &d.Network},
		{ERC20Name, &d.ERC20},
		{SmartTokenName, &d.SmartToken},
	}
	for _, target := range targets {
		*target.dst, err = load(cfg.Dir, target.name)
		if err != nil {
			return nil, err
		}
	}
	return &d, nil
}

// MustLoadEmbedded returns the embedded descriptors and panics if they cannot be parsed
func MustLoadEmbedded() *Descriptors {
	d, err := Load(Config{})
	if err != nil {
		panic(err)
	}
	return d
}

func load(dir, name string) (*abi.ABI, error) {
	fileName := name + fileExtension
	var (
		data []byte
		err  error
	)
	if dir != "" {
		data, err = os.ReadFile(filepath.Clean(filepath.Join(dir, fileName)))
		if err == nil {
			log.Debugf("interface descriptor %s loaded from %s", name, dir)
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "reading %s", fileName)
		}
	}
	if data == nil {
		data, err = embedded.ReadFile(fileName)
		if err != nil {
			return nil, errors.Wrap(gerror.ErrDescriptorNotFound, name)
		}
	}
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", fileName)
	}
	return &parsed, nil
}
