package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/internal/usecase"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/auth"
	"go-candidate-backend/pkg/report"
	"go-candidate-backend/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) FindByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) FindByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id string, u domain.CandidateUpdate) (*domain.Candidate, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCandidateRepo) Search(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(ctx context.Context, records []report.Record, format report.Format) (*report.Report, error) {
	args := m.Called(ctx, records, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Report), args.Error(1)
}

func newAuthUC(t *testing.T, repo domain.UserRepository) (domain.AuthUsecase, *auth.TokenService, *auth.BcryptHasher) {
	t.Helper()
	tokens, err := auth.NewTokenService("secret", "HS256", 15*time.Minute)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	secLog := security.NewSecurityLoggerWith(zap.NewNop(), "test")
	return usecase.NewAuthUsecase(repo, hasher, tokens, secLog), tokens, hasher
}

func assertAppError(t *testing.T, err error, kind apperror.Kind, code int) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
	assert.Equal(t, code, appErr.Code)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	req := domain.UserRegistration{FirstName: "John", LastName: "Doe", Email: "john@example.com", Password: "12345678"}

	t.Run("Should hash password and assign uuid", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc, _, hasher := newAuthUC(t, repo)

		repo.On("FindByEmail", ctx, req.Email).Return(nil, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEmpty(t, u.UUID)
			assert.NotEqual(t, req.Password, u.PasswordHash)
			assert.True(t, hasher.Verify(req.Password, u.PasswordHash))
			assert.Equal(t, "John", u.FirstName)
		})

		require.NoError(t, uc.Register(ctx, req))
		repo.AssertExpectations(t)
	})

	t.Run("Should fail with Conflict on duplicate email", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc, _, _ := newAuthUC(t, repo)
		repo.On("FindByEmail", ctx, req.Email).Return(&domain.User{Email: req.Email}, nil)

		err := uc.Register(ctx, req)
		assertAppError(t, err, apperror.KindConflict, http.StatusBadRequest)
		assert.Equal(t, domain.MsgEmailAlreadyExists, err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should propagate store failures", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc, _, _ := newAuthUC(t, repo)
		repo.On("FindByEmail", ctx, req.Email).Return(nil, apperror.Internal(errors.New("down")))

		err := uc.Register(ctx, req)
		assertAppError(t, err, apperror.KindInternal, http.StatusInternalServerError)
	})

	t.Run("Should reject passwords bcrypt cannot hash", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc, _, _ := newAuthUC(t, repo)
		long := req
		long.Password = strings.Repeat("é", 40)
		repo.On("FindByEmail", ctx, long.Email).Return(nil, nil)

		err := uc.Register(ctx, long)
		assertAppError(t, err, apperror.KindValidation, http.StatusUnprocessableEntity)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	uc, tokens, hasher := newAuthUC(t, repo)

	hash, err := hasher.Hash("12345678")
	require.NoError(t, err)
	stored := &domain.User{UUID: "user-1", Email: "john@example.com", PasswordHash: hash}
	repo.On("FindByEmail", ctx, "john@example.com").Return(stored, nil)
	repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, nil)

	t.Run("Should issue a verifiable token", func(t *testing.T) {
		token, err := uc.Login(ctx, domain.UserLogin{Email: "john@example.com", Password: "12345678"})
		require.NoError(t, err)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "john@example.com", claims.Email)
	})

	t.Run("Should reject wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, domain.UserLogin{Email: "john@example.com", Password: "wrong"})
		assertAppError(t, err, apperror.KindBadRequest, http.StatusBadRequest)
		assert.Equal(t, domain.MsgIncorrectEmailPassword, err.Error())
	})

	t.Run("Should reject unknown email the same way", func(t *testing.T) {
		_, err := uc.Login(ctx, domain.UserLogin{Email: "nobody@example.com", Password: "12345678"})
		assertAppError(t, err, apperror.KindBadRequest, http.StatusBadRequest)
		assert.Equal(t, domain.MsgIncorrectEmailPassword, err.Error())
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepo)
	uc, _, _ := newAuthUC(t, repo)

	repo.On("FindByEmail", ctx, "gone@example.com").Return(nil, nil)
	repo.On("FindByEmail", ctx, "john@example.com").Return(&domain.User{Email: "john@example.com"}, nil)

	_, err := uc.GetCurrentUser(ctx, "gone@example.com")
	assertAppError(t, err, apperror.KindUnauthenticated, http.StatusUnauthorized)

	user, err := uc.GetCurrentUser(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)
}

func sampleCandidate() *domain.Candidate {
	return &domain.Candidate{
		FirstName:         "John",
		LastName:          "Doe",
		Email:             "a@x.com",
		CareerLevel:       domain.CareerLevelJunior,
		JobMajor:          "Computer Science",
		YearsOfExperience: 2,
		DegreeType:        domain.DegreeBachelor,
		Skills:            []string{"Go"},
		Nationality:       "Jordanian",
		City:              "Amman",
		Salary:            1200,
		Gender:            domain.GenderMale,
	}
}

func TestCandidateCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should assign a fresh uuid", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockExporter))
		c := sampleCandidate()
		c.UUID = "client-supplied"

		repo.On("FindByEmail", ctx, c.Email).Return(nil, nil)
		repo.On("Create", ctx, c).Return(nil)

		id, err := uc.Create(ctx, c)
		require.NoError(t, err)
		assert.NotEqual(t, "client-supplied", id)
		assert.Equal(t, id, c.UUID)
	})

	t.Run("Should fail with Conflict on duplicate email", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockExporter))
		repo.On("FindByEmail", ctx, "a@x.com").Return(sampleCandidate(), nil)

		_, err := uc.Create(ctx, sampleCandidate())
		assertAppError(t, err, apperror.KindConflict, http.StatusBadRequest)
	})
}

func TestCandidateGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(repo, new(MockExporter))

	repo.On("FindByID", ctx, "missing").Return(nil, nil)
	_, err := uc.Get(ctx, "missing")
	assertAppError(t, err, apperror.KindNotFound, http.StatusNotFound)

	update := domain.CandidateUpdate{LastName: domain.Some("Doe2")}
	repo.On("Update", ctx, "missing", update).Return(nil, nil)
	_, err = uc.Update(ctx, "missing", update)
	assertAppError(t, err, apperror.KindNotFound, http.StatusNotFound)

	updated := sampleCandidate()
	updated.LastName = "Doe2"
	repo.On("Update", ctx, "c-1", update).Return(updated, nil)
	got, err := uc.Update(ctx, "c-1", update)
	require.NoError(t, err)
	assert.Equal(t, "Doe2", got.LastName)

	t.Run("Should reject invalid enum before reaching the store", func(t *testing.T) {
		bad := domain.CandidateUpdate{Gender: domain.Some(domain.Gender("Other"))}
		_, err := uc.Update(ctx, "c-1", bad)
		assertAppError(t, err, apperror.KindValidation, http.StatusUnprocessableEntity)
		repo.AssertNotCalled(t, "Update", ctx, "c-1", bad)
	})

	repo.On("Delete", ctx, "missing").Return(false, nil)
	err = uc.Delete(ctx, "missing")
	assertAppError(t, err, apperror.KindNotFound, http.StatusNotFound)

	repo.On("Delete", ctx, "c-1").Return(true, nil)
	assert.NoError(t, uc.Delete(ctx, "c-1"))
}

func TestCandidateSearch(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(repo, new(MockExporter))

	first := "John"
	johnFilter := domain.CandidateFilter{FirstName: &first}
	repo.On("Search", ctx, johnFilter).Return([]domain.Candidate{*sampleCandidate()}, nil)
	repo.On("Search", ctx, domain.CandidateFilter{}).Return([]domain.Candidate{}, nil)

	got, err := uc.Search(ctx, johnFilter)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	t.Run("Empty result is NotFound, not an empty list", func(t *testing.T) {
		got, err := uc.Search(ctx, domain.CandidateFilter{})
		assert.Nil(t, got)
		assertAppError(t, err, apperror.KindNotFound, http.StatusNotFound)
	})
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Should export every candidate", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		exporter := new(MockExporter)
		uc := usecase.NewCandidateUsecase(repo, exporter)

		all := []domain.Candidate{*sampleCandidate(), *sampleCandidate()}
		repo.On("Search", ctx, domain.CandidateFilter{}).Return(all, nil)
		exporter.On("Export", ctx, mock.MatchedBy(func(r []report.Record) bool { return len(r) == 2 }), report.FormatCSV).
			Return(&report.Report{Name: "r.csv", Rows: 2}, nil)

		rep, err := uc.GenerateReport(ctx, report.FormatCSV)
		require.NoError(t, err)
		assert.Equal(t, "r.csv", rep.Name)
		exporter.AssertExpectations(t)
	})

	t.Run("Should return NotFound without exporting when there are no candidates", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		exporter := new(MockExporter)
		uc := usecase.NewCandidateUsecase(repo, exporter)
		repo.On("Search", ctx, domain.CandidateFilter{}).Return([]domain.Candidate{}, nil)

		_, err := uc.GenerateReport(ctx, report.FormatCSV)
		assertAppError(t, err, apperror.KindNotFound, http.StatusNotFound)
		exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should wrap exporter failures as Internal", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		exporter := new(MockExporter)
		uc := usecase.NewCandidateUsecase(repo, exporter)
		repo.On("Search", ctx, domain.CandidateFilter{}).Return([]domain.Candidate{*sampleCandidate()}, nil)
		exporter.On("Export", ctx, mock.Anything, report.FormatXLSX).Return(nil, errors.New("disk full"))

		_, err := uc.GenerateReport(ctx, report.FormatXLSX)
		assertAppError(t, err, apperror.KindInternal, http.StatusInternalServerError)
	})
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	status, ok := usecase.NewHealthUsecase(pingerFunc(func(context.Context) error { return nil })).Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "ok", status["database"])

	status, ok = usecase.NewHealthUsecase(pingerFunc(func(context.Context) error { return errors.New("no primary") })).Check(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "degraded", status["status"])
	assert.Equal(t, "unavailable", status["database"])
	for _, v := range status {
		assert.NotContains(t, v, "no primary")
	}
}
