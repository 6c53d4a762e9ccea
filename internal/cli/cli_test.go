package cli

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/minichain/internal/config"
	"github.com/tcfw/minichain/internal/utils/logging"
	"github.com/tcfw/minichain/pkg/pow"
)

func TestNewMinerCheckInterval(t *testing.T) {
	m, err := newMiner(&config.Chain{CheckInterval: 7}, logging.Entry())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), m.CheckInterval())

	m, err = newMiner(&config.Chain{}, logging.Entry())
	require.NoError(t, err)
	assert.Equal(t, uint64(pow.DefaultCheckInterval), m.CheckInterval())
}

func TestWaitExitStop(t *testing.T) {
	// keeps SIGTERM from ending the test binary once waitExit unregisters
	guard := make(chan os.Signal, 2)
	signal.Notify(guard, syscall.SIGTERM)
	defer signal.Stop(guard)

	sigs, stop := waitExit()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case <-sigs:
	case <-time.After(time.Second):
		t.Fatal("signal not delivered")
	}
	<-guard

	stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case <-guard:
	case <-time.After(time.Second):
		t.Fatal("guard did not receive signal")
	}

	select {
	case <-sigs:
		t.Fatal("signal delivered after stop")
	case <-time.After(50 * time.Millisecond):
	}
}
