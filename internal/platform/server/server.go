package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/ogurasousui/employee-onboarding/internal/adapters/grpc/handler"
	"github.com/ogurasousui/employee-onboarding/internal/core/employee"
	"github.com/ogurasousui/employee-onboarding/internal/platform/config"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr      string
	shutdownTimeout time.Duration
	grpcServer      *grpc.Server
	health          *health.Server
	logger          *slog.Logger
}

// New は OnboardingService と標準ヘルスチェックを登録した gRPC サーバーを構築します。
func New(cfg config.ServerConfig, svc employee.UseCase, logger *slog.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(loggingUnaryInterceptor(logger))}, opts...)
	srv := grpc.NewServer(opts...)

	handler.RegisterOnboardingServiceServer(srv, handler.NewOnboardingGrpcHandler(svc))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(handler.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{
		listenAddr:      cfg.ListenAddr,
		shutdownTimeout: cfg.ShutdownTimeout,
		grpcServer:      srv,
		health:          healthSrv,
		logger:          logger,
	}
}

// Run は listenAddr で待ち受けを開始し、コンテキストがキャンセルされると停止します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は lis でサーバーを起動します。コンテキストのキャンセルで GracefulStop します。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			s.GracefulStop()
		case <-done:
		}
	}()

	s.logger.Info("gRPC server listening", "addr", lis.Addr().String())
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}
	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを停止します。
// shutdownTimeout を超えた場合は強制停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	if s.shutdownTimeout <= 0 {
		<-stopped
		return
	}

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()
	select {
	case <-stopped:
	case <-timer.C:
		s.logger.Warn("graceful stop timed out, forcing stop", "timeout", s.shutdownTimeout.String())
		s.grpcServer.Stop()
	}
}

func loggingUnaryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)

		code := status.Code(err)
		logger.LogAttrs(ctx, levelForCode(code), "rpc handled",
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}

// levelForCode はクライアント起因のステータスを Info、サーバー側の障害を Warn/Error に振り分けます。
func levelForCode(code codes.Code) slog.Level {
	switch code {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unimplemented:
		return slog.LevelError
	case codes.Aborted, codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
