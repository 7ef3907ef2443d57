package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/texpkg/internal/app"
	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader   *mocks.MockConfigLoader
	sources  *mocks.MockSourceResolver
	reporter *mocks.MockReporter
	logger   *mocks.MockLogger
}

func newProvider(ctrl *gomock.Controller) (ComponentProvider, *appMocks) {
	m := &appMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		sources:  mocks.NewMockSourceResolver(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	application := app.New(
		m.loader,
		m.sources,
		mocks.NewMockDependencyExtractor(ctrl),
		mocks.NewMockPackageManager(ctrl),
		m.reporter,
		m.logger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, func() {}, nil
	}
	return provider, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, _ := newProvider(ctrl)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "texpkg version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that ordinary errors are logged once and exit 1.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, m := newProvider(ctrl)

	m.loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrConfigNotFound)
	m.logger.EXPECT().Error(domain.ErrConfigNotFound).Times(1)

	exitCode := run(context.Background(), []string{"-c", "missing.yaml"}, io.Discard, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_RunFailureNotLoggedTwice verifies that failures the reporter already
// summarized are not passed to the error logger.
func TestRun_RunFailureNotLoggedTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, m := newProvider(ctrl)

	m.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrVerificationFailed)
	m.logger.EXPECT().Error(gomock.Any()).Times(0)

	exitCode := run(context.Background(), []string{}, io.Discard, io.Discard, provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on cancellation.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, m := newProvider(ctrl)

	blockCh := make(chan struct{})
	m.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Config, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{}, io.Discard, io.Discard, provider)
	}()

	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
