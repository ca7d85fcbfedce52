package api

import (
	"context"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"nodeclient-adapter/types"
)

// GetBalance sums the confirmed coins of address and returns the total in
// the client's major currency unit. Unconfirmed coins are left out. A
// failed lookup is reported as an error rather than a zero balance.
func (c *Client) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	res := c.GetUtxos(ctx, address)
	if !res.OK() {
		return decimal.Zero, errors.Wrapf(res.Err(), "failed to fetch coins for %s", address)
	}

	coins, err := types.ParseCoins(res.Body())
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "failed to parse coins for %s", address)
	}
	return ConfirmedBalance(coins, c.currency), nil
}

// ConfirmedBalance adds up the coins with a positive height. Values sent in
// the major unit are moved to the smallest unit first so that everything is
// summed in one accumulator, then the total is converted back.
func ConfirmedBalance(coins []types.Coin, conv types.UnitConverter) decimal.Decimal {
	total := decimal.Zero
	for _, coin := range coins {
		if !coin.Confirmed() {
			continue
		}
		value := coin.Value
		if coin.Major {
			value = conv.ToSmallest(value)
		}
		total = total.Add(value)
	}
	return conv.ToMajor(total)
}
