package node

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tcfw/minichain/pkg/pow"
	"github.com/tcfw/minichain/pkg/storage"
)

type NodeOption func(*Node) error

func WithLedger(l *storage.Ledger) NodeOption {
	return func(n *Node) error {
		n.ledger = l
		return nil
	}
}

func WithMiner(m *pow.Miner) NodeOption {
	return func(n *Node) error {
		n.miner = m
		return nil
	}
}

// WithClock sets the time source used for block timestamps
func WithClock(c func() time.Time) NodeOption {
	return func(n *Node) error {
		n.clock = c
		return nil
	}
}

func WithLogger(l *logrus.Entry) NodeOption {
	return func(n *Node) error {
		n.logger = l
		return nil
	}
}
