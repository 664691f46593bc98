package match

import (
	"google.golang.org/grpc"

	"github.com/oggyb/swipe-match/internal/app"
	pb "github.com/oggyb/swipe-match/internal/proto/swipepb"
)

// Registrar ties the swipe service into the gRPC server
type Registrar struct {
	service *Service
}

// NewRegistrar creates a new Registrar for the swipe service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{service: NewMatchService(appCtx)}
}

// Service returns the service the registrar attaches.
func (r *Registrar) Service() *Service { return r.service }

// Register attaches the swipe service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterSwipeServiceServer(s, r.service)
}
