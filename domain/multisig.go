package domain

import (
	"bytes"
	"log"
	"sort"

	"github.com/gagliardetto/solana-go"
)

// MaxSigners is the width of a SignerSet.
const MaxSigners = 6

// SignerSet is a bitmap of signer slots, bit i standing for Multisig.Signers[i].
type SignerSet uint8

// firstSlots returns the set of the first n signer slots.
func firstSlots(n int) SignerSet {
	return SignerSet(1<<n - 1)
}

func (set SignerSet) Has(idx int) bool {
	return set&(1<<idx) != 0
}

func (set SignerSet) With(idx int) SignerSet {
	return set | 1<<idx
}

func (set SignerSet) Count() uint8 {
	var count uint8
	for i := 0; i < MaxSigners; i++ {
		if set.Has(i) {
			count++
		}
	}
	return count
}

// Signer is a caller identity together with its signature over the digest being approved.
type Signer struct {
	Key       solana.PublicKey
	Signature solana.Signature
}

func NewSigner(key solana.PrivateKey, digest Digest) (Signer, error) {
	signature, err := key.Sign(digest[:])
	if err != nil {
		return Signer{}, err
	}
	return Signer{Key: key.PublicKey(), Signature: signature}, nil
}

// SignedOff reports whether the signature was made by Key over digest.
func (s Signer) SignedOff(digest Digest) bool {
	return s.Signature.Verify(s.Key, digest[:])
}

// Multisig gates admin instructions behind a threshold of distinct signers.
type Multisig struct {
	Address   solana.PublicKey
	Signers   []solana.PublicKey
	Threshold uint8
	Bump      uint8
	Pending   map[Digest]SignerSet
}

func NewMultisig(programID solana.PublicKey, signers []solana.PublicKey, threshold uint8) (*Multisig, error) {
	if err := validateSigners(signers, threshold); err != nil {
		return nil, err
	}

	address, bump, err := GetMultisigPDA(programID)
	if err != nil {
		return nil, err
	}

	return &Multisig{
		Address:   address,
		Signers:   append([]solana.PublicKey(nil), signers...),
		Threshold: threshold,
		Bump:      bump,
		Pending:   make(map[Digest]SignerSet),
	}, nil
}

func validateSigners(signers []solana.PublicKey, threshold uint8) error {
	if len(signers) == 0 || len(signers) > MaxSigners {
		return ErrorInvalidSigners
	}

	seen := make(map[solana.PublicKey]bool, len(signers))
	for _, signer := range signers {
		if signer.IsZero() || seen[signer] {
			return ErrorInvalidSigners
		}
		seen[signer] = true
	}

	if threshold == 0 || int(threshold) > len(signers) {
		return ErrorInvalidThreshold
	}
	return nil
}

// SignerIndex returns the slot of key in the signer list.
func (m *Multisig) SignerIndex(key solana.PublicKey) (int, bool) {
	for i, signer := range m.Signers {
		if signer.Equals(key) {
			return i, true
		}
	}
	return -1, false
}

// Sign records caller's approval of digest and returns how many signatures are still missing.
// When it returns 0 the pending entry is gone and the caller may execute the instruction once.
func (m *Multisig) Sign(programID solana.PublicKey, caller Signer, others []solana.PublicKey, digest Digest) (uint8, error) {
	if !VerifyMultisigPDA(m.Address, m.Bump, programID) {
		return 0, ErrorInvalidBump
	}

	idx, ok := m.SignerIndex(caller.Key)
	if !ok {
		log.Printf("🔴 %v is not a multisig signer\n", caller.Key)
		return 0, ErrorNotAuthorized
	}
	if !caller.SignedOff(digest) {
		log.Printf("🔴 signature of %v does not match instruction %v\n", caller.Key, digest)
		return 0, ErrorNotAuthorized
	}

	if err := m.checkCosigners(caller.Key, others); err != nil {
		return 0, err
	}

	signed := m.Pending[digest]
	if signed.Has(idx) {
		return 0, ErrorAlreadySigned
	}

	signed = signed.With(idx)
	remaining, ok := CheckedSub(m.Threshold, signed.Count())
	remaining, err := SafeUnwrap(remaining, ok)
	if err != nil {
		return 0, err
	}

	if m.Pending == nil {
		m.Pending = make(map[Digest]SignerSet)
	}

	if remaining > 0 {
		m.Pending[digest] = signed
		return remaining, nil
	}

	delete(m.Pending, digest)
	return 0, nil
}

// checkCosigners rejects accounts presented as other signers that are not configured ones.
func (m *Multisig) checkCosigners(caller solana.PublicKey, others []solana.PublicKey) error {
	seen := make(map[solana.PublicKey]bool, len(others))
	for _, other := range others {
		if _, ok := m.SignerIndex(other); !ok || other.Equals(caller) || seen[other] {
			log.Printf("🔴 %v is not a valid co-signer account\n", other)
			return ErrorNotAuthorized
		}
		seen[other] = true
	}
	return nil
}

// Remaining returns the number of signatures digest still needs.
func (m *Multisig) Remaining(digest Digest) uint8 {
	count := m.Pending[digest].Count()
	if count >= m.Threshold {
		return 0
	}
	return m.Threshold - count
}

func (m *Multisig) PendingDigests() []Digest {
	digests := make([]Digest, 0, len(m.Pending))
	for digest := range m.Pending {
		digests = append(digests, digest)
	}
	sort.Slice(digests, func(i, j int) bool {
		return bytes.Compare(digests[i][:], digests[j][:]) < 0
	})
	return digests
}

func (m *Multisig) Clone() *Multisig {
	clone := *m
	clone.Signers = append([]solana.PublicKey(nil), m.Signers...)
	clone.Pending = make(map[Digest]SignerSet, len(m.Pending))
	for digest, signed := range m.Pending {
		clone.Pending[digest] = signed
	}
	return &clone
}
