package handler

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	pb "github.com/rl1809/volunteer-checkin/api/gen/go/checkin/v1"
)

func newGRPCConn(t *testing.T, f *fixture) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterCheckInServiceServer(srv, f.grpc)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func newGRPCClient(t *testing.T, f *fixture) pb.CheckInServiceClient {
	t.Helper()
	return pb.NewCheckInServiceClient(newGRPCConn(t, f))
}

func TestGRPCHandler_CheckIn(t *testing.T) {
	f := newFixture(t)
	client := newGRPCClient(t, f)
	ctx := context.Background()

	resp, err := client.CheckIn(ctx, &pb.CheckInRequest{SlotId: testSlotID, Name: "Alice", Email: " ALICE@example.com "})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, msgCheckedIn, resp.Message)
	assert.False(t, resp.AlreadyCheckedIn)

	resp, err = client.CheckIn(ctx, &pb.CheckInRequest{SlotId: testSlotID, Email: aliceEmail})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.AlreadyCheckedIn)

	resp, err = client.CheckIn(ctx, &pb.CheckInRequest{SlotId: testSlotID, Email: "mallory@example.com"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, msgNotRegistered, resp.Message)
	assert.False(t, resp.Retryable)
}

func TestGRPCHandler_CheckInStorageUnavailable(t *testing.T) {
	f := newFixture(t)
	client := newGRPCClient(t, f)
	require.NoError(t, f.db.Close())

	resp, err := client.CheckIn(context.Background(), &pb.CheckInRequest{SlotId: testSlotID, Email: aliceEmail})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.True(t, resp.Retryable)
}

func TestGRPCHandler_ListRegistrations(t *testing.T) {
	f := newFixture(t)
	client := newGRPCClient(t, f)
	ctx := context.Background()

	_, err := client.CheckIn(ctx, &pb.CheckInRequest{SlotId: testSlotID, Name: "Bob", Email: bobEmail})
	require.NoError(t, err)

	resp, err := client.ListRegistrations(ctx, &pb.ListRegistrationsRequest{SlotId: testSlotID, State: "checked_in"})
	require.NoError(t, err)
	require.Len(t, resp.Registrations, 1)
	assert.Equal(t, "Bob", resp.Registrations[0].Name)
	require.NotNil(t, resp.Registrations[0].GetCheckInTime())
	assert.False(t, resp.Registrations[0].GetCheckInTime().AsTime().IsZero())

	resp, err = client.ListRegistrations(ctx, &pb.ListRegistrationsRequest{SlotId: testSlotID})
	require.NoError(t, err)
	assert.Len(t, resp.Registrations, 2)

	_, err = client.ListRegistrations(ctx, &pb.ListRegistrationsRequest{SlotId: testSlotID, State: "bogus"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPCHandler_DefaultProtoCodec(t *testing.T) {
	f := newFixture(t)
	conn := newGRPCConn(t, f)

	// Plain Invoke with no call options uses the proto codec, as any stub would.
	req := &pb.CheckInRequest{SlotId: testSlotID, Name: "Alice", Email: aliceEmail}
	resp := new(pb.CheckInResponse)
	err := conn.Invoke(context.Background(), pb.CheckInService_CheckIn_FullMethodName, req, resp)
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())
	assert.Equal(t, msgCheckedIn, resp.GetMessage())
}

func TestCheckInMessages_WireFormat(t *testing.T) {
	req := &pb.CheckInRequest{SlotId: "slot-9", Name: "Grace", Email: "grace@example.com"}
	data, err := proto.Marshal(req)
	require.NoError(t, err)

	var got pb.CheckInRequest
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.True(t, proto.Equal(req, &got))

	fields := req.ProtoReflect().Descriptor().Fields()
	assert.Equal(t, "checkin.v1.CheckInRequest", string(req.ProtoReflect().Descriptor().FullName()))
	assert.EqualValues(t, 1, fields.ByName("slot_id").Number())
	assert.EqualValues(t, 3, fields.ByName("email").Number())

	ts := (&pb.Registration{}).ProtoReflect().Descriptor().Fields().ByName("check_in_time")
	require.NotNil(t, ts)
	assert.Equal(t, "google.protobuf.Timestamp", string(ts.Message().FullName()))
}

func TestGRPCHandler_UnimplementedEmbedded(t *testing.T) {
	var srv pb.CheckInServiceServer = pb.UnimplementedCheckInServiceServer{}
	_, err := srv.CheckIn(context.Background(), &pb.CheckInRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
