package api

import (
	"context"
	"encoding/json"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func testMsgTx() *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	prev := wire.NewOutPoint(&chainhash.Hash{0x01, 0x02}, 1)
	tx.AddTxIn(wire.NewTxIn(prev, []byte{0x51}, nil))
	tx.AddTxOut(wire.NewTxOut(50000, []byte{0x76, 0xa9, 0x14}))
	return tx
}

func Test_EncodeDecodeTransaction(t *testing.T) {
	tx := testMsgTx()
	raw, err := EncodeTransaction(tx)
	require.Nil(t, err)
	require.NotEmpty(t, raw)

	decoded, err := DecodeTransaction(raw)
	require.Nil(t, err)
	require.Equal(t, tx.TxHash(), decoded.TxHash())
	require.Equal(t, int64(50000), decoded.TxOut[0].Value)

	txid, err := TransactionID(raw)
	require.Nil(t, err)
	require.Equal(t, tx.TxHash().String(), txid.String())
}

func Test_DecodeTransaction_Invalid(t *testing.T) {
	_, err := DecodeTransaction("zz")
	require.Error(t, err)

	_, err = DecodeTransaction("0100")
	require.Error(t, err)

	_, err = EncodeTransaction(nil)
	require.Error(t, err)
}

func Test_BroadcastMsgTx(t *testing.T) {
	tx := testMsgTx()
	node := newFakeNode(t, reply(http.StatusOK, `"`+tx.TxHash().String()+`"`))
	client := newTestClient(t, []string{node.URL})

	res := client.BroadcastMsgTx(context.Background(), tx)
	require.True(t, res.OK())
	var txid string
	require.Nil(t, res.Decode(&txid))
	require.Equal(t, tx.TxHash().String(), txid)

	raw, err := EncodeTransaction(tx)
	require.Nil(t, err)

	var payload struct {
		Method string   `json:"method"`
		Params []string `json:"params"`
	}
	seen := node.requests()
	require.Len(t, seen, 1)
	require.Nil(t, json.Unmarshal([]byte(seen[0].Body), &payload))
	require.Equal(t, "sendrawtransaction", payload.Method)
	require.Equal(t, []string{raw}, payload.Params)
}

func Test_BroadcastMsgTx_Nil(t *testing.T) {
	client := newTestClient(t, []string{"http://a"})
	res := client.BroadcastMsgTx(context.Background(), nil)
	require.False(t, res.OK())
}
