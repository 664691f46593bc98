package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/swipe-match/internal/logger"
	"github.com/oggyb/swipe-match/internal/metrics"
)

// UnaryLogging logs and counts every unary call with its status code and
// latency.
// Client-side rejections log at warn, server-side failures at error.
// Handlers find a method-tagged logger via logger.FromContext.
func UnaryLogging(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx = logger.NewContext(ctx, log.With("method", info.FullMethod))
		resp, err := handler(ctx, req)

		code := status.Code(err)
		metrics.ObserveRPC(info.FullMethod, code.String(), time.Since(start))
		attrs := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
		switch code {
		case codes.OK:
			log.Debug("rpc", attrs...)
		case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
			log.Error("rpc failed", append(attrs, "err", err)...)
		default:
			log.Warn("rpc rejected", append(attrs, "err", err)...)
		}
		return resp, err
	}
}
