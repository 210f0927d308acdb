package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TsikyLalaina/miharina-hub-development/internal/entities"
	"github.com/TsikyLalaina/miharina-hub-development/internal/metrics"
	"github.com/TsikyLalaina/miharina-hub-development/internal/repository"
	"github.com/TsikyLalaina/miharina-hub-development/internal/scoring"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) ResolveUser(ctx context.Context, externalUID string) (string, error) {
	args := m.Called(ctx, externalUID)
	return args.String(0), args.Error(1)
}

func (m *repoMock) GetBusinessProfile(ctx context.Context, userID string) (*entities.BusinessProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusinessProfile), args.Error(1)
}

func (m *repoMock) ListBusinessCandidates(ctx context.Context, requesterUserID string, sectors []string, limit int) ([]entities.BusinessProfile, error) {
	args := m.Called(ctx, requesterUserID, sectors, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.BusinessProfile), args.Error(1)
}

func (m *repoMock) ListOpportunityCandidates(ctx context.Context, requesterUserID string, sectors []string, limit int) ([]entities.OpportunityCandidate, error) {
	args := m.Called(ctx, requesterUserID, sectors, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.OpportunityCandidate), args.Error(1)
}

func (m *repoMock) CreateMatch(ctx context.Context, match entities.Match) (*entities.Match, error) {
	args := m.Called(ctx, match)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Match), args.Error(1)
}

func (m *repoMock) ListMatches(ctx context.Context, userID string, direction entities.MatchDirection, status *entities.MatchStatus) ([]entities.MatchWithCounterpart, error) {
	args := m.Called(ctx, userID, direction, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MatchWithCounterpart), args.Error(1)
}

func (m *repoMock) UpdateMatchStatus(ctx context.Context, matchID, callerUserID string, status entities.MatchStatus) (*entities.Match, error) {
	args := m.Called(ctx, matchID, callerUserID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Match), args.Error(1)
}

func (m *repoMock) MatchStats(ctx context.Context, userID string) (entities.MatchStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return entities.MatchStats{}, args.Error(1)
	}
	return args.Get(0).(entities.MatchStats), args.Error(1)
}

type notifierStub struct {
	err  error
	sent chan entities.Match
}

func (n *notifierStub) MatchCreated(_ context.Context, m entities.Match) error {
	if n.sent != nil {
		n.sent <- m
	}
	return n.err
}

// Registered once: promauto panics on duplicate collectors.
var testMetrics = metrics.New()

func newTestUsecase(repo *repoMock, n *notifierStub) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, scoring.NewConstant(), n, testMetrics, time.Second)
}

func TestUsecase_FindCandidatesValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	_, err := uc.FindCandidates(context.Background(), "uid", entities.KindBusinesses, nil, 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.FindCandidates(context.Background(), "uid", "partners", nil, 10)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "ResolveUser", mock.Anything, mock.Anything)
}

func TestUsecase_FindCandidatesEmptyFilterShortCircuits(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	repo.On("GetBusinessProfile", mock.Anything, "u1").
		Return(&entities.BusinessProfile{ID: "p1", UserID: "u1", Sectors: []string{"agriculture"}}, nil)

	got, err := uc.FindCandidates(context.Background(), "uid", entities.KindBusinesses, []string{}, 10)
	require.NoError(t, err)
	require.Empty(t, got)
	repo.AssertNotCalled(t, "ListBusinessCandidates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_FindCandidatesUsesProfileSectors(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	repo.On("GetBusinessProfile", mock.Anything, "u1").
		Return(&entities.BusinessProfile{ID: "p1", UserID: "u1", Sectors: []string{"agriculture", "export"}}, nil)
	repo.On("ListBusinessCandidates", mock.Anything, "u1", []string{"agriculture", "export"}, 5).
		Return([]entities.BusinessProfile{
			{ID: "p2", BusinessName: "Vanilla Co", BusinessType: "cooperative", Region: "SAVA", Sectors: []string{"agriculture"}},
		}, nil)

	got, err := uc.FindCandidates(context.Background(), "uid", entities.KindBusinesses, nil, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Vanilla Co", got[0].BusinessName)
	require.Equal(t, 80, got[0].Score)
	require.Equal(t, []string{"Sector overlap", "Regional proximity", "Business synergy"}, got[0].Reasons)
	repo.AssertExpectations(t)
}

func TestUsecase_FindOpportunityCandidates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	repo.On("GetBusinessProfile", mock.Anything, "u1").
		Return(&entities.BusinessProfile{ID: "p1", UserID: "u1", Sectors: []string{"textile"}}, nil)
	repo.On("ListOpportunityCandidates", mock.Anything, "u1", []string{"textile"}, 10).
		Return([]entities.OpportunityCandidate{
			{
				Opportunity:  entities.Opportunity{ID: "o1", Title: "Export tender", Sectors: []string{"textile"}, Amount: 5000, Currency: "USD"},
				BusinessName: "Lamba SARL",
			},
		}, nil)

	got, err := uc.FindCandidates(context.Background(), "uid", entities.KindOpportunities, []string{"textile"}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 85, got[0].Score)
	require.NotNil(t, got[0].Amount)
	require.Equal(t, 5000.0, *got[0].Amount)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateMatchValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	_, err := uc.CreateMatch(context.Background(), "uid", "", nil, nil, nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	bad := 101
	_, err = uc.CreateMatch(context.Background(), "uid", "u2", nil, &bad, nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateMatch", mock.Anything, mock.Anything)
}

func TestUsecase_CreateMatchDefaultsAndNotifies(t *testing.T) {
	repo := &repoMock{}
	n := &notifierStub{sent: make(chan entities.Match, 1)}
	uc := newTestUsecase(repo, n)

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	created := &entities.Match{ID: "m1", RequesterID: "u1", TargetUserID: "u2", Score: 75, Reasons: []string{"Manual match"}, Status: entities.StatusPending}
	repo.On("CreateMatch", mock.Anything, mock.MatchedBy(func(m entities.Match) bool {
		return m.RequesterID == "u1" && m.TargetUserID == "u2" &&
			m.Score == 75 && len(m.Reasons) == 1 && m.Reasons[0] == "Manual match"
	})).Return(created, nil)

	got, err := uc.CreateMatch(context.Background(), "uid", "u2", nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, created, got)

	select {
	case event := <-n.sent:
		require.Equal(t, "m1", event.ID)
	case <-time.After(time.Second):
		t.Fatal("expected match notification")
	}
	repo.AssertExpectations(t)
}

func TestUsecase_CreateMatchConflictPassthrough(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	repo.On("CreateMatch", mock.Anything, mock.Anything).Return(nil, entities.ErrMatchExists)

	_, err := uc.CreateMatch(context.Background(), "uid", "u2", nil, nil, nil)
	require.ErrorIs(t, err, entities.ErrMatchExists)
}

func TestUsecase_CreateMatchNotifierFailureIgnored(t *testing.T) {
	repo := &repoMock{}
	n := &notifierStub{err: errors.New("redis down"), sent: make(chan entities.Match, 1)}
	uc := newTestUsecase(repo, n)

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	created := &entities.Match{ID: "m1", RequesterID: "u1", TargetUserID: "u2", Score: 75, Status: entities.StatusPending}
	repo.On("CreateMatch", mock.Anything, mock.Anything).Return(created, nil)

	got, err := uc.CreateMatch(context.Background(), "uid", "u2", nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, created, got)
	<-n.sent
}

func TestUsecase_ListMatchesDefaultsToSent(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	repo.On("ListMatches", mock.Anything, "u1", entities.DirectionSent, (*entities.MatchStatus)(nil)).
		Return([]entities.MatchWithCounterpart{}, nil)

	_, err := uc.ListMatches(context.Background(), "uid", "", "")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_ListMatchesValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	_, err := uc.ListMatches(context.Background(), "uid", "outbound", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.ListMatches(context.Background(), "uid", entities.DirectionReceived, "archived")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "ListMatches", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateMatchStatusValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	_, err := uc.UpdateMatchStatus(context.Background(), "uid", "", "accepted")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.UpdateMatchStatus(context.Background(), "uid", "m1", "pending")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_UpdateMatchStatusDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	updated := &entities.Match{ID: "m1", Status: entities.StatusAccepted}
	repo.On("UpdateMatchStatus", mock.Anything, "m1", "u1", entities.StatusAccepted).Return(updated, nil)

	got, err := uc.UpdateMatchStatus(context.Background(), "uid", "m1", "accepted")
	require.NoError(t, err)
	require.Equal(t, updated, got)
	repo.AssertExpectations(t)
}

func TestUsecase_MatchStats(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	repo.On("ResolveUser", mock.Anything, "uid").Return("u1", nil)
	repo.On("MatchStats", mock.Anything, "u1").
		Return(entities.MatchStats{Pending: 2, Accepted: 1, Rejected: 1, AverageScore: 77.5}, nil)

	got, err := uc.MatchStats(context.Background(), "uid")
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Pending)
	require.Equal(t, 77.5, got.AverageScore)
}

func TestUsecase_StatsUnknownUser(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, &notifierStub{})

	repo.On("ResolveUser", mock.Anything, "ghost").Return("", entities.ErrUserNotFound)

	_, err := uc.MatchStats(context.Background(), "ghost")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	repo.AssertNotCalled(t, "MatchStats", mock.Anything, mock.Anything)
}
