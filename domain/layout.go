package domain

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// multisigLayout is the fixed on-account representation of a Multisig.
type multisigLayout struct {
	NumSigners uint8
	Signers    [MaxSigners]solana.PublicKey
	Threshold  uint8
	Bump       uint8
	Pending    []pendingLayout
}

type pendingLayout struct {
	Digest Digest
	Signed uint8
}

func (m *Multisig) MarshalLayout() ([]byte, error) {
	if len(m.Signers) > MaxSigners {
		return nil, ErrorInvalidSigners
	}

	layout := multisigLayout{
		NumSigners: uint8(len(m.Signers)),
		Threshold:  m.Threshold,
		Bump:       m.Bump,
		Pending:    make([]pendingLayout, 0, len(m.Pending)),
	}
	copy(layout.Signers[:], m.Signers)

	for _, digest := range m.PendingDigests() {
		layout.Pending = append(layout.Pending, pendingLayout{Digest: digest, Signed: uint8(m.Pending[digest])})
	}

	return bin.MarshalBorsh(&layout)
}

func UnmarshalMultisigLayout(address solana.PublicKey, data []byte) (*Multisig, error) {
	var layout multisigLayout
	if err := bin.UnmarshalBorsh(&layout, data); err != nil {
		return nil, fmt.Errorf("decoding multisig %v - %w", address, err)
	}
	if layout.NumSigners > MaxSigners {
		return nil, ErrorInvalidSigners
	}

	signers := layout.Signers[:layout.NumSigners]
	if err := validateSigners(signers, layout.Threshold); err != nil {
		return nil, fmt.Errorf("decoding multisig %v - %w", address, err)
	}

	m := &Multisig{
		Address:   address,
		Signers:   append([]solana.PublicKey(nil), signers...),
		Threshold: layout.Threshold,
		Bump:      layout.Bump,
		Pending:   make(map[Digest]SignerSet, len(layout.Pending)),
	}

	// A pending entry holds at least one and fewer than threshold configured signers.
	slots := firstSlots(len(signers))
	for _, p := range layout.Pending {
		signed := SignerSet(p.Signed)
		if signed == 0 || signed&^slots != 0 || signed.Count() >= m.Threshold {
			return nil, fmt.Errorf("%w: multisig %v has invalid signers %08b for %v", ErrorInvalidParams, address, p.Signed, p.Digest)
		}
		if _, dup := m.Pending[p.Digest]; dup {
			return nil, fmt.Errorf("%w: multisig %v lists %v twice", ErrorInvalidParams, address, p.Digest)
		}
		m.Pending[p.Digest] = signed
	}

	return m, nil
}
