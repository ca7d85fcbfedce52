package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Coin is one unspent output as reported by a node's coin index.
type Coin struct {
	Hash    string          `json:"hash,omitempty"`
	Index   int64           `json:"index"`
	Height  int64           `json:"height"`
	Address string          `json:"address,omitempty"`
	Value   decimal.Decimal `json:"value"`
	// Major is set when the node sent value as a string, which nodes use
	// for amounts already expressed in the major unit.
	Major bool `json:"major,omitempty"`
}

// Confirmed reports whether the coin is included in a block.
func (c Coin) Confirmed() bool {
	return c.Height > 0
}

func ParseCoins(body []byte) ([]Coin, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("coin list is not valid json")
	}
	list := gjson.ParseBytes(body)
	if !list.IsArray() {
		return nil, errors.Errorf("coin list is %s, not an array", list.Type)
	}

	var coins []Coin
	var parseErr error
	list.ForEach(func(_, item gjson.Result) bool {
		coin, err := parseCoin(item)
		if err != nil {
			parseErr = errors.Wrapf(err, "coin %d", len(coins))
			return false
		}
		coins = append(coins, coin)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return coins, nil
}

func parseCoin(item gjson.Result) (Coin, error) {
	coin := Coin{
		Hash:    item.Get("hash").String(),
		Index:   item.Get("index").Int(),
		Height:  item.Get("height").Int(),
		Address: item.Get("address").String(),
	}

	value := item.Get("value")
	switch value.Type {
	case gjson.String:
		d, err := decimal.NewFromString(value.Str)
		if err != nil {
			return Coin{}, errors.Wrapf(err, "value %q", value.Str)
		}
		coin.Value = d
		coin.Major = true
	case gjson.Number:
		//use the raw text so large satoshi amounts skip float64
		d, err := decimal.NewFromString(value.Raw)
		if err != nil {
			return Coin{}, errors.Wrapf(err, "value %s", value.Raw)
		}
		coin.Value = d
	case gjson.Null:
		coin.Value = decimal.Zero
	default:
		return Coin{}, errors.Errorf("value has unsupported type %s", value.Type)
	}
	return coin, nil
}
