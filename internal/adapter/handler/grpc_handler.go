package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/rl1809/volunteer-checkin/api/gen/go/checkin/v1"
	"github.com/rl1809/volunteer-checkin/internal/core/domain"
	"github.com/rl1809/volunteer-checkin/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedCheckInServiceServer
	checkIn *service.CheckInService
	query   *service.SlotQueryService
	log     *zap.Logger
}

var _ pb.CheckInServiceServer = (*GRPCHandler)(nil)

func NewGRPCHandler(checkIn *service.CheckInService, query *service.SlotQueryService, log *zap.Logger) *GRPCHandler {
	return &GRPCHandler{checkIn: checkIn, query: query, log: log}
}

func (h *GRPCHandler) CheckIn(ctx context.Context, req *pb.CheckInRequest) (*pb.CheckInResponse, error) {
	result, err := h.checkIn.CheckIn(ctx, req.GetSlotId(), req.GetName(), req.GetEmail())
	if err != nil {
		if errors.Is(err, service.ErrNotRegistered) {
			return &pb.CheckInResponse{
				Success: false,
				Message: msgNotRegistered,
			}, nil
		}
		return &pb.CheckInResponse{
			Success:   false,
			Message:   msgUnavailable,
			Retryable: true,
		}, nil
	}

	resp := &pb.CheckInResponse{
		Success:          true,
		Message:          msgCheckedIn,
		AlreadyCheckedIn: !result.Transitioned,
	}
	if result.NameErr != nil {
		resp.Warning = msgNameWarning
	}
	return resp, nil
}

func (h *GRPCHandler) ListRegistrations(ctx context.Context, req *pb.ListRegistrationsRequest) (*pb.ListRegistrationsResponse, error) {
	regs, err := h.query.ListRegistrations(ctx, req.GetSlotId(), domain.RegistrationState(req.GetState()))
	if err != nil {
		if errors.Is(err, service.ErrInvalidState) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.log.Error("list registrations failed", zap.String("slot_id", req.GetSlotId()), zap.Error(err))
		return nil, status.Error(codes.Unavailable, msgUnavailable)
	}

	resp := &pb.ListRegistrationsResponse{Registrations: make([]*pb.Registration, 0, len(regs))}
	for _, reg := range regs {
		out := &pb.Registration{
			Id:          reg.ID,
			VolunteerId: reg.VolunteerID,
			Email:       reg.Email,
			Name:        reg.Name,
			State:       string(reg.State),
		}
		if reg.CheckInTime != nil {
			out.CheckInTime = timestamppb.New(*reg.CheckInTime)
		}
		resp.Registrations = append(resp.Registrations, out)
	}
	return resp, nil
}
