package types

import (
	"github.com/btcsuite/btcutil"
	"github.com/shopspring/decimal"
)

// UnitConverter moves amounts between a currency's smallest unit and its
// major unit.
type UnitConverter interface {
	ToMajor(amount decimal.Decimal) decimal.Decimal
	ToSmallest(amount decimal.Decimal) decimal.Decimal
}

type Currency struct {
	Code string `json:"code"`
	// digits after the point in the major unit, 8 for satoshi denominated coins
	Decimal uint8 `json:"decimal"`
}

var Bitcoin = Currency{Code: "BTC", Decimal: decimalsIn(btcutil.SatoshiPerBitcoin)}

var _ UnitConverter = Currency{}

func NewCurrency(code string, decimals uint8) Currency {
	return Currency{Code: code, Decimal: decimals}
}

//smallest units per major unit
func (c Currency) Unit() decimal.Decimal {
	return decimal.New(1, int32(c.Decimal))
}

//shifting the exponent is exact for any number of decimals
func (c Currency) ToMajor(amount decimal.Decimal) decimal.Decimal {
	return amount.Shift(-int32(c.Decimal))
}

func (c Currency) ToSmallest(amount decimal.Decimal) decimal.Decimal {
	return amount.Shift(int32(c.Decimal))
}

func decimalsIn(unit int64) uint8 {
	var n uint8
	for ; unit >= 10; unit /= 10 {
		n++
	}
	return n
}
