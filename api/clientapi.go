package api

import (
	"bytes"
	"encoding/hex"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/juju/errors"
)

//serialize a signed tx to the hex form nodes accept
func EncodeTransaction(tx *wire.MsgTx) (string, error) {
	if tx == nil {
		return "", errors.New("nil transaction")
	}
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return "", errors.Annotate(err, "Serialize")
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func DecodeTransaction(rawTxHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(rawTxHex)
	if err != nil {
		return nil, errors.Annotate(err, "DecodeHEX")
	}
	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, errors.Annotate(err, "Deserialize")
	}
	return &tx, nil
}

// TransactionID returns the txid of a hex encoded transaction, the value a
// node answers with after sendrawtransaction.
func TransactionID(rawTxHex string) (*chainhash.Hash, error) {
	tx, err := DecodeTransaction(rawTxHex)
	if err != nil {
		return nil, errors.Annotate(err, "DecodeTransaction")
	}
	hash := tx.TxHash()
	return &hash, nil
}
