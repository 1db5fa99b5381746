package domain

import (
	"github.com/gagliardetto/solana-go"
)

var (
	seedMultisig          = []byte("multisig")
	seedMasterAgent       = []byte("master_agent")
	seedTransferAuthority = []byte("transfer_authority")
	seedMetadata          = []byte("metadata")
	seedEdition           = []byte("edition")
)

var (
	MetadataProgramID        = solana.TokenMetadataProgramID
	TokenProgramID           = solana.Token2022ProgramID
	AssociatedTokenProgramID = solana.SPLAssociatedTokenAccountProgramID
)

// GetMultisigPDA returns the address of the single multisig account of programID.
func GetMultisigPDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{seedMultisig}, programID)
}

// VerifyMultisigPDA checks address against the multisig seeds and the recorded bump.
func VerifyMultisigPDA(address solana.PublicKey, bump uint8, programID solana.PublicKey) bool {
	expected, err := solana.CreateProgramAddress([][]byte{seedMultisig, {bump}}, programID)
	if err != nil {
		return false
	}
	return expected.Equals(address)
}

func GetMasterAgentPDA(mint, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{seedMasterAgent, mint.Bytes()}, programID)
}

// GetTransferAuthorityPDA returns the empty account that owns the minted token accounts.
func GetTransferAuthorityPDA(programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{seedTransferAuthority}, programID)
}

func GetMetadataPDA(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		seedMetadata,
		MetadataProgramID.Bytes(),
		mint.Bytes(),
	}, MetadataProgramID)
}

func GetMasterEditionPDA(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		seedMetadata,
		MetadataProgramID.Bytes(),
		mint.Bytes(),
		seedEdition,
	}, MetadataProgramID)
}

func GetAssociatedTokenAddress(owner, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		owner.Bytes(),
		TokenProgramID.Bytes(),
		mint.Bytes(),
	}, AssociatedTokenProgramID)
}
