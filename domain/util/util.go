package util

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const lamportsPerSol = 9

func LamportsToSolString(lamports uint64) string {
	sol := decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -lamportsPerSol)
	return fmt.Sprintf("%v SOL", sol.String())
}

func SupplyString(supply uint64) string {
	return humanize.Comma(int64(supply))
}

func BasisPointsString(bps uint64) string {
	return fmt.Sprintf("%v%%", humanize.Commaf(float64(bps)/100))
}
