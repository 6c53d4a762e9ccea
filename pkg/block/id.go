package block

import (
	"encoding/hex"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
)

const (
	CIDEncoding = cid.Raw
)

var (
	idEncoder = multibase.MustNewEncoder(multibase.Base58BTC)
)

// ID wraps a hex block hash as a CID so blocks can be content addressed
func ID(hash string) (cid.Cid, error) {
	raw, err := hex.DecodeString(hash)
	if err != nil {
		return cid.Undef, errors.Wrap(err, "decoding block hash")
	}

	if len(raw) != HashLen/2 {
		return cid.Undef, errors.Errorf("block hash must be %d bytes, got %d", HashLen/2, len(raw))
	}

	mh, err := multihash.Encode(raw, multihash.SHA2_256)
	if err != nil {
		return cid.Undef, errors.Wrap(err, "encoding multihash")
	}

	return cid.NewCidV1(CIDEncoding, multihash.Multihash(mh)), nil
}

// FormatID renders a block id in base58btc
func FormatID(id cid.Cid) string {
	if !id.Defined() {
		return ""
	}

	return id.Encode(idEncoder)
}

// HashFromID recovers the hex block hash from a block id
func HashFromID(id cid.Cid) (string, error) {
	dmh, err := multihash.Decode(id.Hash())
	if err != nil {
		return "", errors.Wrap(err, "decoding multihash")
	}

	if dmh.Code != multihash.SHA2_256 {
		return "", errors.Errorf("unexpected hash function %x", dmh.Code)
	}

	return hex.EncodeToString(dmh.Digest), nil
}
