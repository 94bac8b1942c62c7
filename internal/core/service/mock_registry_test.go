package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
)

var errRegistryDown = errors.New("connection refused")

type mockRegistration struct {
	reg     domain.Registration
	counted bool
}

// Mock RegistryRepository and CounterRepository
type mockRegistry struct {
	mu         sync.Mutex
	positions  map[string]*domain.Position
	slots      map[string]string // slot -> position
	volunteers map[string]*domain.Volunteer
	regs       map[string]*mockRegistration
	nextID     int

	findErr       error
	transitionErr error
	// commitErr is returned after the transition has been applied.
	commitErr error
	nameErr       error
	incrementErr  error
	listErr       error

	// beforeTransition runs, unlocked, before each conditional write.
	beforeTransition func(registrationID string)
	transitionCalls  int
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{
		positions:  make(map[string]*domain.Position),
		slots:      make(map[string]string),
		volunteers: make(map[string]*domain.Volunteer),
		regs:       make(map[string]*mockRegistration),
	}
}

func (m *mockRegistry) addPosition(positionID string, slotIDs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions[positionID] = &domain.Position{ID: positionID, Name: "Position " + positionID}
	for _, slotID := range slotIDs {
		m.slots[slotID] = positionID
	}
}

// register signs email up for slotID and returns the registration ID.
func (m *mockRegistry) register(slotID, email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	email = domain.NormalizeEmail(email)
	var vol *domain.Volunteer
	for _, v := range m.volunteers {
		if v.Email == email {
			vol = v
		}
	}
	if vol == nil {
		m.nextID++
		vol = &domain.Volunteer{ID: "vol-" + strconv.Itoa(m.nextID), Email: email}
		m.volunteers[vol.ID] = vol
	}

	m.nextID++
	id := "reg-" + strconv.Itoa(m.nextID)
	m.regs[id] = &mockRegistration{reg: domain.Registration{
		ID:          id,
		SlotID:      slotID,
		PositionID:  m.slots[slotID],
		VolunteerID: vol.ID,
		State:       domain.RegistrationStateRegistered,
	}}
	return id
}

func (m *mockRegistry) project(r *mockRegistration) domain.Registration {
	reg := r.reg
	vol := m.volunteers[reg.VolunteerID]
	reg.Email = vol.Email
	reg.Name = vol.Name
	return reg
}

func (m *mockRegistry) registration(id string) domain.Registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.project(m.regs[id])
}

func (m *mockRegistry) counter(positionID string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.positions[positionID].VolunteersCheckedIn
}

func (m *mockRegistry) setCounter(positionID string, v int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions[positionID].VolunteersCheckedIn = v
}

func (m *mockRegistry) volunteerName(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volunteers[id].Name
}

func (m *mockRegistry) FindRegistration(ctx context.Context, slotID, email string) (*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, r := range m.regs {
		if r.reg.SlotID == slotID && m.volunteers[r.reg.VolunteerID].Email == email {
			reg := m.project(r)
			return &reg, nil
		}
	}
	return nil, nil
}

func (m *mockRegistry) TransitionIfRegistered(ctx context.Context, registrationID string, at time.Time) (bool, error) {
	if m.beforeTransition != nil {
		m.beforeTransition(registrationID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitionCalls++

	if err := ctx.Err(); err != nil {
		return false, err
	}
	if m.transitionErr != nil {
		return false, m.transitionErr
	}

	r, ok := m.regs[registrationID]
	if !ok || r.reg.State != domain.RegistrationStateRegistered {
		return false, nil
	}
	r.reg.State = domain.RegistrationStateCheckedIn
	r.reg.CheckInTime = &at
	if m.commitErr != nil {
		return false, m.commitErr
	}
	return true, nil
}

func (m *mockRegistry) SetDisplayName(ctx context.Context, volunteerID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nameErr != nil {
		return m.nameErr
	}
	v, ok := m.volunteers[volunteerID]
	if !ok {
		return errors.New("volunteer not found")
	}
	v.Name = name
	return nil
}

func (m *mockRegistry) ListSlotRegistrations(ctx context.Context, slotID string, state domain.RegistrationState) ([]domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}
	var regs []domain.Registration
	for _, r := range m.regs {
		if r.reg.SlotID != slotID || (state != "" && r.reg.State != state) {
			continue
		}
		regs = append(regs, m.project(r))
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].Email < regs[j].Email })
	return regs, nil
}

func (m *mockRegistry) GetPosition(ctx context.Context, positionID string) (*domain.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}
	p, ok := m.positions[positionID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockRegistry) ListPositionIDs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}
	var ids []string
	for id := range m.positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mockRegistry) IncrementCounter(ctx context.Context, positionID, registrationID string, delta int64) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.incrementErr != nil {
		return 0, false, m.incrementErr
	}
	p, ok := m.positions[positionID]
	if !ok {
		return 0, false, domain.ErrPositionNotFound
	}
	r, ok := m.regs[registrationID]
	if !ok || r.reg.State != domain.RegistrationStateCheckedIn || r.counted {
		return p.VolunteersCheckedIn, false, nil
	}
	r.counted = true
	p.VolunteersCheckedIn += delta
	return p.VolunteersCheckedIn, true, nil
}

func (m *mockRegistry) ListUncounted(ctx context.Context, positionID string) ([]domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}
	var regs []domain.Registration
	for _, r := range m.regs {
		if r.reg.PositionID == positionID && r.reg.State == domain.RegistrationStateCheckedIn && !r.counted {
			regs = append(regs, m.project(r))
		}
	}
	return regs, nil
}

func (m *mockRegistry) RecomputeCounter(ctx context.Context, positionID string) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.positions[positionID]
	if !ok {
		return 0, 0, domain.ErrPositionNotFound
	}
	var n int64
	for _, r := range m.regs {
		if r.reg.PositionID == positionID && r.reg.State == domain.RegistrationStateCheckedIn && r.counted {
			n++
		}
	}
	previous := p.VolunteersCheckedIn
	p.VolunteersCheckedIn = n
	return previous, n, nil
}

// Mock LeaseRepository
type mockLease struct {
	mu       sync.Mutex
	holder   string
	acquired int
	released int
}

func (l *mockLease) AcquireLease(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.holder != "" && l.holder != owner {
		return false, nil
	}
	l.holder = owner
	l.acquired++
	return true, nil
}

func (l *mockLease) ReleaseLease(ctx context.Context, key, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.holder == owner {
		l.holder = ""
		l.released++
	}
	return nil
}
