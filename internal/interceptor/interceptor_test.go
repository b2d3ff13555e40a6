package interceptor

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type ping struct{}

func call(t *testing.T, ctx context.Context, i connect.UnaryInterceptorFunc, result error) error {
	t.Helper()
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if result != nil {
			return nil, result
		}
		return connect.NewResponse(&ping{}), nil
	}
	_, err := i(next)(ctx, connect.NewRequest(&ping{}))
	return err
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		message string
	}{
		{"success", nil, "rpc"},
		{"client error", connect.NewError(connect.CodeInvalidArgument, errors.New("bad month")), "rpc rejected"},
		{"server error", connect.NewError(connect.CodeInternal, errors.New("db down")), "rpc failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			err := call(t, context.Background(), Logging(zap.New(core)), tt.result)
			assert.Equal(t, tt.result, err)
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.message, logs.All()[0].Message)
		})
	}
}

func TestSentry(t *testing.T) {
	var captured []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			captured = append(captured, event)
			return nil
		},
	})
	require.NoError(t, err)
	ctx := sentry.SetHubOnContext(context.Background(), sentry.NewHub(client, sentry.NewScope()))

	t.Run("internal errors are reported", func(t *testing.T) {
		captured = nil
		err := call(t, ctx, Sentry(), connect.NewError(connect.CodeInternal, errors.New("db down")))
		assert.Error(t, err)
		require.Len(t, captured, 1)
		assert.Equal(t, "internal", captured[0].Tags["rpc.code"])
	})

	t.Run("client errors are not reported", func(t *testing.T) {
		captured = nil
		err := call(t, ctx, Sentry(), connect.NewError(connect.CodeNotFound, errors.New("no budget")))
		assert.Error(t, err)
		assert.Empty(t, captured)
	})

	t.Run("success is passed through", func(t *testing.T) {
		captured = nil
		assert.NoError(t, call(t, ctx, Sentry(), nil))
		assert.Empty(t, captured)
	})
}
