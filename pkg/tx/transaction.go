package tx

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// MaxPartyLen is the longest sender or recipient name accepted, in bytes
	MaxPartyLen = 63
)

var (
	ErrSenderInvalid    = errors.New("sender must be 1-63 bytes")
	ErrRecipientInvalid = errors.New("recipient must be 1-63 bytes")
)

// Tx moves Amount from Sender to Recipient. Funds are not tracked so there
// is no overdraft check.
type Tx struct {
	Amount    uint64 `msgpack:"a" yaml:"amount"`
	Sender    string `msgpack:"s" yaml:"sender"`
	Recipient string `msgpack:"r" yaml:"recipient"`
}

func New(amount uint64, sender, recipient string) Tx {
	return Tx{Amount: amount, Sender: sender, Recipient: recipient}
}

// Validate checks the tx fields are well formed
func (t *Tx) Validate() error {
	if !validParty(t.Sender) {
		return errors.Wrapf(ErrSenderInvalid, "got %d bytes", len(t.Sender))
	}

	if !validParty(t.Recipient) {
		return errors.Wrapf(ErrRecipientInvalid, "got %d bytes", len(t.Recipient))
	}

	return nil
}

func validParty(p string) bool {
	return len(p) > 0 && len(p) <= MaxPartyLen
}

// AppendPreimage appends the canonical encoding of the tx to b: the decimal
// amount followed by the raw sender and recipient, without delimiters.
func (t *Tx) AppendPreimage(b []byte) []byte {
	b = strconv.AppendUint(b, t.Amount, 10)
	b = append(b, t.Sender...)
	return append(b, t.Recipient...)
}

func (t *Tx) Preimage() []byte {
	return t.AppendPreimage(nil)
}

func (t *Tx) Marshal() ([]byte, error) {
	b, err := msgpack.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "mashaling tx")
	}

	return b, nil
}

func (t *Tx) Unmarshal(b []byte) error {
	if err := msgpack.Unmarshal(b, t); err != nil {
		return errors.Wrap(err, "unmarshaling tx")
	}

	return nil
}
