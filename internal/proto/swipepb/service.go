package swipepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "swipematch.v1.SwipeService"

const (
	SwipeService_StartSession_FullMethodName    = "/" + ServiceName + "/StartSession"
	SwipeService_RefreshQueue_FullMethodName    = "/" + ServiceName + "/RefreshQueue"
	SwipeService_Decide_FullMethodName          = "/" + ServiceName + "/Decide"
	SwipeService_CheckMatch_FullMethodName      = "/" + ServiceName + "/CheckMatch"
	SwipeService_SaveSettings_FullMethodName    = "/" + ServiceName + "/SaveSettings"
	SwipeService_RegisterProfile_FullMethodName = "/" + ServiceName + "/RegisterProfile"
	SwipeService_EndSession_FullMethodName      = "/" + ServiceName + "/EndSession"
	SwipeService_ListLikedYou_FullMethodName    = "/" + ServiceName + "/ListLikedYou"
	SwipeService_ListNewLikedYou_FullMethodName = "/" + ServiceName + "/ListNewLikedYou"
	SwipeService_CountLikedYou_FullMethodName   = "/" + ServiceName + "/CountLikedYou"
)

// SwipeServiceServer is the server API for SwipeService.
type SwipeServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*SessionResponse, error)
	RefreshQueue(context.Context, *SessionRequest) (*SessionResponse, error)
	Decide(context.Context, *DecideRequest) (*DecideResponse, error)
	CheckMatch(context.Context, *CheckMatchRequest) (*CheckMatchResponse, error)
	SaveSettings(context.Context, *SaveSettingsRequest) (*SaveSettingsResponse, error)
	RegisterProfile(context.Context, *RegisterProfileRequest) (*RegisterProfileResponse, error)
	EndSession(context.Context, *SessionRequest) (*EndSessionResponse, error)
	ListLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error)
	ListNewLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error)
	CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error)
	mustEmbedUnimplementedSwipeServiceServer()
}

// UnimplementedSwipeServiceServer must be embedded for forward compatibility.
type UnimplementedSwipeServiceServer struct{}

func (UnimplementedSwipeServiceServer) StartSession(context.Context, *StartSessionRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartSession not implemented")
}
func (UnimplementedSwipeServiceServer) RefreshQueue(context.Context, *SessionRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshQueue not implemented")
}
func (UnimplementedSwipeServiceServer) Decide(context.Context, *DecideRequest) (*DecideResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Decide not implemented")
}
func (UnimplementedSwipeServiceServer) CheckMatch(context.Context, *CheckMatchRequest) (*CheckMatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckMatch not implemented")
}
func (UnimplementedSwipeServiceServer) SaveSettings(context.Context, *SaveSettingsRequest) (*SaveSettingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveSettings not implemented")
}
func (UnimplementedSwipeServiceServer) RegisterProfile(context.Context, *RegisterProfileRequest) (*RegisterProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterProfile not implemented")
}
func (UnimplementedSwipeServiceServer) EndSession(context.Context, *SessionRequest) (*EndSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EndSession not implemented")
}
func (UnimplementedSwipeServiceServer) ListLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLikedYou not implemented")
}
func (UnimplementedSwipeServiceServer) ListNewLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNewLikedYou not implemented")
}
func (UnimplementedSwipeServiceServer) CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CountLikedYou not implemented")
}
func (UnimplementedSwipeServiceServer) mustEmbedUnimplementedSwipeServiceServer() {}

// RegisterSwipeServiceServer attaches srv to s.
func RegisterSwipeServiceServer(s grpc.ServiceRegistrar, srv SwipeServiceServer) {
	s.RegisterService(&SwipeService_ServiceDesc, srv)
}

// unary builds a method handler for one RPC, honouring interceptors the
// same way generated code does.
func unary[Req, Resp any](name string, call func(SwipeServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SwipeServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SwipeServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SwipeService_ServiceDesc is the grpc.ServiceDesc for SwipeService.
var SwipeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SwipeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("StartSession", SwipeServiceServer.StartSession),
		unary("RefreshQueue", SwipeServiceServer.RefreshQueue),
		unary("Decide", SwipeServiceServer.Decide),
		unary("CheckMatch", SwipeServiceServer.CheckMatch),
		unary("SaveSettings", SwipeServiceServer.SaveSettings),
		unary("RegisterProfile", SwipeServiceServer.RegisterProfile),
		unary("EndSession", SwipeServiceServer.EndSession),
		unary("ListLikedYou", SwipeServiceServer.ListLikedYou),
		unary("ListNewLikedYou", SwipeServiceServer.ListNewLikedYou),
		unary("CountLikedYou", SwipeServiceServer.CountLikedYou),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "swipematch/v1/swipe.json",
}

// SwipeServiceClient is the client API for SwipeService. Every call is
// sent with the JSON content-subtype.
type SwipeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSwipeServiceClient(cc grpc.ClientConnInterface) *SwipeServiceClient {
	return &SwipeServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SwipeServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, SwipeService_StartSession_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) RefreshQueue(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, SwipeService_RefreshQueue_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) Decide(ctx context.Context, in *DecideRequest, opts ...grpc.CallOption) (*DecideResponse, error) {
	return invoke[DecideResponse](ctx, c.cc, SwipeService_Decide_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) CheckMatch(ctx context.Context, in *CheckMatchRequest, opts ...grpc.CallOption) (*CheckMatchResponse, error) {
	return invoke[CheckMatchResponse](ctx, c.cc, SwipeService_CheckMatch_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) SaveSettings(ctx context.Context, in *SaveSettingsRequest, opts ...grpc.CallOption) (*SaveSettingsResponse, error) {
	return invoke[SaveSettingsResponse](ctx, c.cc, SwipeService_SaveSettings_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) RegisterProfile(ctx context.Context, in *RegisterProfileRequest, opts ...grpc.CallOption) (*RegisterProfileResponse, error) {
	return invoke[RegisterProfileResponse](ctx, c.cc, SwipeService_RegisterProfile_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) EndSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error) {
	return invoke[EndSessionResponse](ctx, c.cc, SwipeService_EndSession_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) ListLikedYou(ctx context.Context, in *ListLikedYouRequest, opts ...grpc.CallOption) (*ListLikedYouResponse, error) {
	return invoke[ListLikedYouResponse](ctx, c.cc, SwipeService_ListLikedYou_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) ListNewLikedYou(ctx context.Context, in *ListLikedYouRequest, opts ...grpc.CallOption) (*ListLikedYouResponse, error) {
	return invoke[ListLikedYouResponse](ctx, c.cc, SwipeService_ListNewLikedYou_FullMethodName, in, opts)
}

func (c *SwipeServiceClient) CountLikedYou(ctx context.Context, in *CountLikedYouRequest, opts ...grpc.CallOption) (*CountLikedYouResponse, error) {
	return invoke[CountLikedYouResponse](ctx, c.cc, SwipeService_CountLikedYou_FullMethodName, in, opts)
}
