package domain

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/mr-tron/base58"
)

// MaxInstructionDataLength bounds a serialized instruction payload to one transaction packet.
const MaxInstructionDataLength = 1232

// AdminInstruction tags the kind of instruction a multisig approval is bound to.
type AdminInstruction uint8

const (
	// AdminInstructionDeployAgent mints a master agent with its token.
	AdminInstructionDeployAgent AdminInstruction = iota
)

func (kind AdminInstruction) String() string {
	switch kind {
	case AdminInstructionDeployAgent:
		return "DeployAgent"
	default:
		return fmt.Sprintf("AdminInstruction(%d)", uint8(kind))
	}
}

// The field order is part of the digest and must not change.
type MintMasterAgentParams struct {
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	URI                  string `json:"uri"`
	SellerFeeBasisPoints uint16 `json:"seller_fee_basis_points"`

	Price     uint64 `json:"price"`
	WYield    uint64 `json:"w_yield"`
	MaxSupply uint64 `json:"max_supply"`
}

type Digest [sha256.Size]byte

func (d Digest) String() string {
	return base58.Encode(d[:])
}

func (d Digest) IsZero() bool {
	return d == Digest{}
}

func DigestFromBase58(s string) (Digest, error) {
	var d Digest
	b, err := base58.Decode(s)
	if err != nil {
		return d, err
	}
	if len(b) != len(d) {
		return d, fmt.Errorf("invalid digest length %v", len(b))
	}
	copy(d[:], b)
	return d, nil
}

// InstructionData returns the canonical encoding of kind followed by params.
func InstructionData(kind AdminInstruction, params any) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := bin.NewBorshEncoder(buf)

	if err := enc.WriteUint8(uint8(kind)); err != nil {
		return nil, err
	}
	if err := enc.Encode(params); err != nil {
		return nil, err
	}

	if buf.Len() > MaxInstructionDataLength {
		return nil, fmt.Errorf("instruction data is %v bytes, limit is %v", buf.Len(), MaxInstructionDataLength)
	}

	return buf.Bytes(), nil
}

// InstructionDigest binds an instruction kind to its exact parameters.
func InstructionDigest(kind AdminInstruction, params any) (Digest, error) {
	data, err := InstructionData(kind, params)
	if err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrorInvalidInstructionHash, err)
	}
	return sha256.Sum256(data), nil
}
