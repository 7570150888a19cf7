package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "eventdeck"
	serviceName       = "eventdeck.plugin.v1.EventSource"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodListEvents  = "/" + serviceName + "/ListEvents"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "EVENTDECK_PLUGIN",
	MagicCookieValue: "eventdeck",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type ListEventsRequest struct {
	VaultPath string `json:"vault_path"`
	// AfterUnix filters out events starting at or before this instant; 0 disables it.
	AfterUnix int64 `json:"after_unix"`
	Limit     int32 `json:"limit"`
}

type Event struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	StartsAt     string  `json:"starts_at"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Category     string  `json:"category"`
	Attendees    int32   `json:"attendees"`
	MaxAttendees int32   `json:"max_attendees"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	Organizer    string  `json:"organizer"`
	Source       string  `json:"source"`
}

type ListEventsResponse struct {
	Events []Event `json:"events"`
}

type EventSourceServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	ListEvents(ctx context.Context, in *ListEventsRequest) (*ListEventsResponse, error)
}

type EventSourceClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	ListEvents(ctx context.Context, in *ListEventsRequest) (*ListEventsResponse, error)
}

type eventSourceClient struct {
	conn *grpc.ClientConn
}

func NewEventSourceClient(conn *grpc.ClientConn) EventSourceClient {
	return &eventSourceClient{conn: conn}
}

func (c *eventSourceClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventSourceClient) ListEvents(ctx context.Context, in *ListEventsRequest) (*ListEventsResponse, error) {
	out := &ListEventsResponse{}
	if err := c.conn.Invoke(ctx, methodListEvents, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func unaryMethod[Req any, Resp any](name, fullMethod string, call func(context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				typed, ok := req.(*Req)
				if !ok {
					return nil, fmt.Errorf("invalid request type")
				}
				return call(ctx, typed)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func RegisterEventSourceServer(server grpc.ServiceRegistrar, impl EventSourceServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*EventSourceServer)(nil),
		Methods: []grpc.MethodDesc{
			unaryMethod("GetMetadata", methodGetMetadata, impl.GetMetadata),
			unaryMethod("ListEvents", methodListEvents, impl.ListEvents),
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/event-source-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl EventSourceServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterEventSourceServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewEventSourceClient(conn), nil
}

func PluginMap(impl EventSourceServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
