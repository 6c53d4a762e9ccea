package pow

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Option func(*Miner) error

// WithCheckInterval sets how many nonces are tried between context checks
func WithCheckInterval(n uint64) Option {
	return func(m *Miner) error {
		if n == 0 {
			return errors.New("check interval must be positive")
		}
		m.checkInterval = n
		return nil
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(m *Miner) error {
		m.logger = l
		return nil
	}
}
