package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/volunteer-checkin/internal/adapter/storage"
	"github.com/rl1809/volunteer-checkin/internal/core/domain"
	"github.com/rl1809/volunteer-checkin/internal/core/service"
	"github.com/rl1809/volunteer-checkin/internal/platform/logger"
)

const (
	slotCount         = 5
	volunteersPerSlot = 40
	submitsPerPerson  = 3
	queueSize         = 1000
)

type signup struct {
	slotID string
	email  string
}

func main() {
	ctx := context.Background()

	log, err := logger.New("info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// REGISTRY_DRIVER/REGISTRY_DSN point the run at MySQL; default is a throwaway SQLite file.
	driver, dsn := os.Getenv("REGISTRY_DRIVER"), os.Getenv("REGISTRY_DSN")
	if driver == "" || dsn == "" {
		dir, err := os.MkdirTemp("", "checkin-stress")
		if err != nil {
			log.Fatal("failed to create temp dir", zap.Error(err))
		}
		defer os.RemoveAll(dir)
		driver = "sqlite"
		dsn = "file:" + filepath.Join(dir, "registry.db") + "?_pragma=busy_timeout(10000)"
	}

	db, err := storage.Open(ctx, driver, dsn)
	if err != nil {
		log.Fatal("failed to open registry", zap.String("driver", driver), zap.Error(err))
	}
	defer db.Close()
	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatal("failed to migrate registry", zap.Error(err))
	}

	registry := storage.NewSQLAdapter(db)
	positionID, signups, err := seed(ctx, registry)
	if err != nil {
		log.Fatal("failed to seed registry", zap.Error(err))
	}

	// Initialize services
	aggregates := service.NewAggregateMaintainer(registry, registry, storage.LocalLease{}, log.Named("aggregates"), nil, 1)
	checkIn := service.NewCheckInService(registry, aggregates, log.Named("checkin"), nil, service.CheckInConfig{
		WriteTimeout: 10 * time.Second,
		QueueSize:    queueSize,
	})

	// Drain the event queue in background
	var events atomic.Int32
	go func() {
		for range checkIn.GetEventQueue() {
			events.Add(1)
		}
	}()

	// Counters
	var transitioned atomic.Int32
	var repeated atomic.Int32
	var failCount atomic.Int32

	// Spawn concurrent requests, several per volunteer
	var wg sync.WaitGroup
	start := time.Now()

	for _, s := range signups {
		for i := 0; i < submitsPerPerson; i++ {
			wg.Add(1)
			go func(s signup) {
				defer wg.Done()

				result, err := checkIn.CheckIn(ctx, s.slotID, "Stress Volunteer", s.email)
				switch {
				case err != nil:
					failCount.Add(1)
				case result.Transitioned:
					transitioned.Add(1)
				default:
					repeated.Add(1)
				}
			}(s)
		}
	}

	wg.Wait()
	elapsed := time.Since(start)

	total := len(signups)
	position, err := registry.GetPosition(ctx, positionID)
	if err != nil || position == nil {
		log.Fatal("failed to read position", zap.String("position_id", positionID), zap.Error(err))
	}

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Registry:         %s\n", driver)
	fmt.Printf("Volunteers:       %d\n", total)
	fmt.Printf("Total Requests:   %d\n", total*submitsPerPerson)
	fmt.Printf("Checked In:       %d\n", transitioned.Load())
	fmt.Printf("Repeats:          %d\n", repeated.Load())
	fmt.Printf("Failed:           %d\n", failCount.Load())
	fmt.Printf("Events Queued:    %d\n", events.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if transitioned.Load() == int32(total) && failCount.Load() == 0 {
		fmt.Printf("PASS: Exactly %d check-ins transitioned\n", total)
	} else {
		fmt.Printf("FAIL: Expected %d transitions and 0 failures, got %d/%d\n",
			total, transitioned.Load(), failCount.Load())
	}

	fmt.Printf("Position Counter: %d\n", position.VolunteersCheckedIn)
	if position.VolunteersCheckedIn == int64(total) {
		fmt.Println("PASS: Counter matches checked-in registrations")
	} else {
		fmt.Printf("FAIL: Expected counter %d, got %d\n", total, position.VolunteersCheckedIn)
	}

	report, err := aggregates.Reconcile(ctx, positionID)
	if err != nil {
		log.Fatal("failed to reconcile", zap.Error(err))
	}
	if report.Swept == 0 && report.Drift() == 0 {
		fmt.Println("PASS: Reconcile found no drift")
	} else {
		fmt.Printf("FAIL: Reconcile swept %d, drift %d\n", report.Swept, report.Drift())
	}
}

func seed(ctx context.Context, registry *storage.SQLAdapter) (string, []signup, error) {
	start := time.Now().Truncate(time.Hour)
	positionID := uuid.NewString()
	err := registry.CreatePosition(ctx, domain.Position{
		ID:        positionID,
		EventID:   "stress-" + positionID[:8],
		Name:      "Stress test position",
		StartTime: start,
		EndTime:   start.Add(slotCount * time.Hour),
		Capacity:  slotCount * volunteersPerSlot,
	})
	if err != nil {
		return "", nil, err
	}

	var signups []signup
	for i := 0; i < slotCount; i++ {
		slotID := uuid.NewString()
		err := registry.CreateSlot(ctx, domain.Slot{
			ID:         slotID,
			PositionID: positionID,
			StartTime:  start.Add(time.Duration(i) * time.Hour),
			EndTime:    start.Add(time.Duration(i+1) * time.Hour),
			Capacity:   volunteersPerSlot,
		})
		if err != nil {
			return "", nil, err
		}

		for j := 0; j < volunteersPerSlot; j++ {
			v := domain.Volunteer{
				ID:    uuid.NewString(),
				Email: fmt.Sprintf("volunteer-%d-%d-%s@example.com", i, j, positionID[:8]),
			}
			if err := registry.CreateVolunteer(ctx, v); err != nil {
				return "", nil, err
			}
			if err := registry.CreateRegistration(ctx, uuid.NewString(), slotID, v.ID); err != nil {
				return "", nil, err
			}
			signups = append(signups, signup{slotID: slotID, email: v.Email})
		}
	}
	return positionID, signups, nil
}
