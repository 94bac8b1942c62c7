package handler

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rl1809/volunteer-checkin/internal/adapter/storage"
	"github.com/rl1809/volunteer-checkin/internal/core/domain"
	"github.com/rl1809/volunteer-checkin/internal/core/service"
)

const (
	testPositionID = "pos-1"
	testSlotID     = "slot-1"
	aliceEmail     = "alice@example.com"
	bobEmail       = "bob@example.com"
)

type fixture struct {
	db       *sql.DB
	registry *storage.SQLAdapter
	http     *HTTPHandler
	grpc     *GRPCHandler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + filepath.Join(t.TempDir(), "registry.db") + "?_pragma=busy_timeout(5000)"
	db, err := storage.Open(ctx, "sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.Migrate(ctx, db))

	registry := storage.NewSQLAdapter(db)
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, registry.CreatePosition(ctx, domain.Position{
		ID: testPositionID, EventID: "marathon-2026", Name: "Water station",
		StartTime: start, EndTime: start.Add(4 * time.Hour), Capacity: 10,
	}))
	require.NoError(t, registry.CreateSlot(ctx, domain.Slot{
		ID: testSlotID, PositionID: testPositionID,
		StartTime: start, EndTime: start.Add(2 * time.Hour), Capacity: 10,
	}))
	for i, email := range []string{aliceEmail, bobEmail} {
		volID := "vol-" + email
		require.NoError(t, registry.CreateVolunteer(ctx, domain.Volunteer{ID: volID, Email: email}))
		require.NoError(t, registry.CreateRegistration(ctx, "reg-"+string(rune('a'+i)), testSlotID, volID))
	}

	log := zaptest.NewLogger(t)
	agg := service.NewAggregateMaintainer(registry, registry, storage.LocalLease{}, log, nil, 1)
	checkIn := service.NewCheckInService(registry, agg, log, nil, service.CheckInConfig{
		WriteTimeout: 5 * time.Second,
		QueueSize:    10,
	})
	query := service.NewSlotQueryService(registry)

	return &fixture{
		db:       db,
		registry: registry,
		http:     NewHTTPHandler(checkIn, query, agg, log),
		grpc:     NewGRPCHandler(checkIn, query, log),
	}
}
