package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	policyRepo "github.com/tekom-dev/TKM-BookingService/internal/infra/storage/policy"
)

type fakeRepo struct {
	policy *domain.SchedulingPolicy
	getErr error
	setErr error
	saved  *domain.SchedulingPolicy
}

func (f *fakeRepo) Get(_ context.Context) (*domain.SchedulingPolicy, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.policy, nil
}

func (f *fakeRepo) Set(_ context.Context, p *domain.SchedulingPolicy) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.saved = p
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGet_ReturnsStoredPolicy(t *testing.T) {
	stored := domain.DefaultSchedulingPolicy()
	stored.StartHour = 8
	svc := NewService(&fakeRepo{policy: stored}, nopLogger{})

	p, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8, p.StartHour)
}

func TestGet_DefaultsWhenNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: policyRepo.ErrPolicyNotFound}, nopLogger{})

	p, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSchedulingPolicy(), p)
}

func TestGet_DefaultsWhenStorageUnavailable(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: policyRepo.ErrUnavailable}, nopLogger{})

	p, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSchedulingPolicy(), p)
}

func TestGet_FillsMissingSlicesFromOlderRecords(t *testing.T) {
	stored := &domain.SchedulingPolicy{
		StartHour:           9,
		EndHour:             17,
		SlotDurationMinutes: 30,
		AdvanceBookingDays:  30,
	}
	svc := NewService(&fakeRepo{policy: stored}, nopLogger{})

	p, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, p.WorkingDays)
	assert.NotNil(t, p.Breaks)
	assert.NotNil(t, p.BlockedDates)
	assert.NotNil(t, p.BlockedPeriods)
}

func TestReplace_SavesValidPolicy(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	p := domain.DefaultSchedulingPolicy()
	p.BlockedDates = []string{"2026-12-24"}

	saved, err := svc.Replace(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-12-24"}, saved.BlockedDates)
	require.NotNil(t, repo.saved)
}

func TestReplace_StorageUnavailable(t *testing.T) {
	svc := NewService(&fakeRepo{setErr: policyRepo.ErrUnavailable}, nopLogger{})

	_, err := svc.Replace(context.Background(), domain.DefaultSchedulingPolicy())

	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestReplace_RejectsInvalidConfig(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	cases := []func(*domain.SchedulingPolicy){
		func(p *domain.SchedulingPolicy) { p.StartHour = 17; p.EndHour = 9 },
		func(p *domain.SchedulingPolicy) { p.StartHour = -1 },
		func(p *domain.SchedulingPolicy) { p.SlotDurationMinutes = 5 },
		func(p *domain.SchedulingPolicy) { p.SlotDurationMinutes = 240 },
		func(p *domain.SchedulingPolicy) { p.BufferMinutes = -10 },
		func(p *domain.SchedulingPolicy) { p.AdvanceBookingDays = 0 },
		func(p *domain.SchedulingPolicy) { p.AdvanceBookingDays = 1000 },
		func(p *domain.SchedulingPolicy) { p.MinimumNoticeHours = -1 },
		func(p *domain.SchedulingPolicy) { p.WorkingDays = []int{} },
		func(p *domain.SchedulingPolicy) { p.WorkingDays = []int{7} },
		func(p *domain.SchedulingPolicy) {
			p.Breaks = []domain.BreakWindow{{StartHour: 13, EndHour: 12}}
		},
		func(p *domain.SchedulingPolicy) { p.BlockedDates = []string{"24.12.2026"} },
		func(p *domain.SchedulingPolicy) {
			p.BlockedPeriods = []domain.BlockedPeriod{{StartDate: "2026-01-10", EndDate: "2026-01-05"}}
		},
	}

	for i, mutate := range cases {
		p := domain.DefaultSchedulingPolicy()
		mutate(p)
		_, err := svc.Replace(context.Background(), p)
		assert.ErrorIs(t, err, ErrInvalidConfig, "case %d", i)
	}
}
