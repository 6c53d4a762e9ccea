package block

import (
	"encoding/hex"
	"strconv"

	"github.com/minio/sha256-simd"
)

// EmptyDigest is the digest of the empty byte sequence
var EmptyDigest = Digest(nil)

// Digest returns the lower case hex SHA-256 of d
func Digest(d []byte) string {
	sum := sha256.Sum256(d)
	return hex.EncodeToString(sum[:])
}

// TxPreimage is the part of the block preimage covering the transactions.
// It does not change while mining so the miner computes it once.
func TxPreimage(b *Block) []byte {
	var buf []byte
	for i := range b.Transactions {
		buf = b.Transactions[i].AppendPreimage(buf)
	}

	return buf
}

// AppendHeader appends the decimal nonce, decimal timestamp and raw
// prev hash to a transaction preimage
func AppendHeader(buf []byte, nonce uint32, timestamp uint64, prevHash string) []byte {
	buf = strconv.AppendUint(buf, uint64(nonce), 10)
	buf = strconv.AppendUint(buf, timestamp, 10)
	return append(buf, prevHash...)
}

// Preimage is the canonical serialization of the block contents
func Preimage(b *Block) []byte {
	return AppendHeader(TxPreimage(b), b.Nonce, b.Timestamp, b.PrevHash)
}

// ComputeHash hashes the current field values of b
func ComputeHash(b *Block) string {
	return Digest(Preimage(b))
}
