// Package interceptor provides Connect interceptors shared by every procedure.
package interceptor

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// Logging logs every unary call with its procedure, duration and resulting code.
func Logging(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("procedure", req.Spec().Procedure),
				zap.Duration("duration", time.Since(start)),
				zap.String("peer", req.Peer().Addr),
			}
			if err != nil {
				code := connect.CodeOf(err)
				fields = append(fields, zap.String("code", code.String()), zap.Error(err))
				if isServerFault(code) {
					logger.Error("rpc failed", fields...)
				} else {
					logger.Warn("rpc rejected", fields...)
				}
				return resp, err
			}
			logger.Info("rpc", fields...)
			return resp, nil
		}
	}
}

// Sentry reports server-side failures to the hub on ctx, or the current hub.
// Client errors such as invalid arguments are not reported.
func Sentry() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			resp, err := next(ctx, req)
			if err == nil || !isServerFault(connect.CodeOf(err)) {
				return resp, err
			}

			hub := sentry.GetHubFromContext(ctx)
			if hub == nil {
				hub = sentry.CurrentHub()
			}
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("rpc.procedure", req.Spec().Procedure)
				scope.SetTag("rpc.code", connect.CodeOf(err).String())
				cause := err
				var connectErr *connect.Error
				if errors.As(err, &connectErr) && connectErr.Unwrap() != nil {
					cause = connectErr.Unwrap()
				}
				hub.CaptureException(cause)
			})
			return resp, err
		}
	}
}

func isServerFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return true
	}
	return false
}
