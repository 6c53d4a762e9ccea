package tx

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMarshal(t *testing.T) {
	tx := &Tx{
		Amount:    10,
		Sender:    "Alice",
		Recipient: "Bob",
	}

	b, err := tx.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	txRB := &Tx{}

	if err := txRB.Unmarshal(b); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, tx, txRB)
}

func TestPreimage(t *testing.T) {
	tx := New(10, "Alice", "Bob")

	assert.Equal(t, "10AliceBob", string(tx.Preimage()))
	assert.Equal(t, "prefix:0ab", string((&Tx{Sender: "a", Recipient: "b"}).AppendPreimage([]byte("prefix:"))))
}

func TestValidate(t *testing.T) {
	tx := New(0, "Alice", "Bob")
	assert.NoError(t, tx.Validate())

	tx = New(10, "", "Bob")
	assert.True(t, errors.Is(tx.Validate(), ErrSenderInvalid))

	tx = New(10, "Alice", "")
	assert.True(t, errors.Is(tx.Validate(), ErrRecipientInvalid))

	tx = New(10, strings.Repeat("a", MaxPartyLen), strings.Repeat("b", MaxPartyLen))
	assert.NoError(t, tx.Validate())

	tx = New(10, "Alice", strings.Repeat("b", MaxPartyLen+1))
	assert.True(t, errors.Is(tx.Validate(), ErrRecipientInvalid))
}
