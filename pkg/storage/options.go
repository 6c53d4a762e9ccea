package storage

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/minichain/pkg/pow"
)

type Option func(*Ledger) error

func WithID(id string) Option {
	return func(l *Ledger) error {
		l.id = id
		return nil
	}
}

// WithDifficulty sets the leading zero count every appended block must meet
func WithDifficulty(d uint) Option {
	return func(l *Ledger) error {
		if d > pow.MaxDifficulty {
			return errors.Wrapf(pow.ErrDifficultyUnreachable, "difficulty %d", d)
		}
		l.difficulty = d
		return nil
	}
}

func WithCapacity(n int) Option {
	return func(l *Ledger) error {
		if n <= 0 {
			return errors.New("capacity must be positive")
		}
		l.capacity = n
		return nil
	}
}

func WithValidator(v Validator) Option {
	return func(l *Ledger) error {
		l.validator = v
		return nil
	}
}

func WithStore(s Store) Option {
	return func(l *Ledger) error {
		l.store = s
		return nil
	}
}

func WithLogger(e *logrus.Entry) Option {
	return func(l *Ledger) error {
		l.logger = e
		return nil
	}
}
