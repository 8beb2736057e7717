package impl

import (
	"context"
	"testing"
	"time"

	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/domain/repository"
	mockRepo "dashkeep/internal/mocks/repository"
	mockService "dashkeep/internal/mocks/service"
	"dashkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	txManager     *mockRepo.MockTransactionManager
	accountRepo   *mockRepo.MockAccountRepository
	profileRepo   *mockRepo.MockProfileRepository
	dashboardRepo *mockRepo.MockDashboardRepository
	hasher        *mockService.MockPasswordHasher
	tokens        *mockService.MockTokenService
	service       usecase.AccountUsecase
}

func newAccountFixture(t *testing.T) *accountFixture {
	f := &accountFixture{
		txManager:     mockRepo.NewMockTransactionManager(t),
		accountRepo:   mockRepo.NewMockAccountRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		dashboardRepo: mockRepo.NewMockDashboardRepository(t),
		hasher:        mockService.NewMockPasswordHasher(t),
		tokens:        mockService.NewMockTokenService(t),
	}
	f.service = NewAccountService(AccountServiceParams{
		TxManager:    f.txManager,
		AccountRepo:  f.accountRepo,
		ProfileRepo:  f.profileRepo,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Logger:       newDiscardLogger(),
	})

	return f
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		FullName:   "  Ana Souza ",
		Email:      " Ana@Example.COM ",
		Password:   "secret123",
		Phone:      "11987654321",
		NationalID: "123.456.789-01",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	expectTransaction(t, f.txManager, f.accountRepo, f.profileRepo, f.dashboardRepo)
	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrAccountNotFound)
	f.profileRepo.EXPECT().FindByNationalID(ctx, "12345678901").Return(nil, repository.ErrProfileNotFound)
	f.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	f.profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	f.dashboardRepo.EXPECT().
		GetOrCreate(ctx, mock.AnythingOfType("uuid.UUID"), entity.DefaultDashboardData()).
		Return(&entity.Dashboard{}, true, nil)
	f.tokens.EXPECT().Issue(mock.AnythingOfType("uuid.UUID")).Return("token", expiresAt, nil)

	out, err := f.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, "ana@example.com", out.Account.Email)
	assert.Equal(t, "hashed", out.Account.PasswordHash)
	assert.Equal(t, "Ana Souza", out.Profile.FullName)
	assert.Equal(t, "(11) 98765-4321", out.Profile.Phone)
	assert.Equal(t, "12345678901", out.Profile.NationalID)
	assert.Equal(t, out.Account.ID, out.Profile.AccountID)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	expectTransaction(t, f.txManager, f.accountRepo, f.profileRepo, f.dashboardRepo)
	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(&entity.Account{ID: uuid.New()}, nil)

	_, err := f.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAccountService_Register_DuplicateNationalID(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	expectTransaction(t, f.txManager, f.accountRepo, f.profileRepo, f.dashboardRepo)
	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrAccountNotFound)
	f.profileRepo.EXPECT().FindByNationalID(ctx, "12345678901").Return(&entity.Profile{}, nil)

	_, err := f.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateNationalID)
}

func TestAccountService_Register_ConstraintRaceIsReported(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	expectTransaction(t, f.txManager, f.accountRepo, f.profileRepo, f.dashboardRepo)
	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrAccountNotFound)
	f.profileRepo.EXPECT().FindByNationalID(ctx, "12345678901").Return(nil, repository.ErrProfileNotFound)
	f.accountRepo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrDuplicateEmail.WrapMessage("failed to create account"))

	_, err := f.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAccountService_Register_DashboardFailureFailsRegistration(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	boom := errors.New("boom")

	expectTransaction(t, f.txManager, f.accountRepo, f.profileRepo, f.dashboardRepo)
	f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, repository.ErrAccountNotFound)
	f.profileRepo.EXPECT().FindByNationalID(ctx, mock.Anything).Return(nil, repository.ErrProfileNotFound)
	f.accountRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.dashboardRepo.EXPECT().GetOrCreate(ctx, mock.Anything, mock.Anything).Return(nil, false, boom)

	_, err := f.service.Register(ctx, validRegisterInput())

	assert.ErrorIs(t, err, boom)
}

func TestAccountService_Register_InvalidProfileFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
	}{
		{name: "phone", mutate: func(in *usecase.RegisterInput) { in.Phone = "123" }},
		{name: "national id", mutate: func(in *usecase.RegisterInput) { in.NationalID = "123.456" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)
			input := validRegisterInput()
			tt.mutate(&input)

			_, err := f.service.Register(context.Background(), input)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidProfile)
		})
	}
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	f := newAccountFixture(t)
	f.hasher.EXPECT().Hash("secret123").Return("", errors.New("bcrypt"))

	_, err := f.service.Register(context.Background(), validRegisterInput())

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}
	profile := &entity.Profile{AccountID: account.ID, FullName: "Ana"}
	expiresAt := time.Now().Add(time.Hour)

	expectTransaction(t, f.txManager, f.accountRepo, f.profileRepo, nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(account, nil)
	f.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(profile, nil)
	f.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	f.tokens.EXPECT().Issue(account.ID).Return("token", expiresAt, nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{Email: "ANA@example.com ", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Same(t, account, out.Account)
	assert.Same(t, profile, out.Profile)
}

func TestAccountService_Login_UniformFailure(t *testing.T) {
	ctx := context.Background()

	unknown := newAccountFixture(t)
	expectTransaction(t, unknown.txManager, unknown.accountRepo, unknown.profileRepo, nil)
	unknown.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)
	_, unknownErr := unknown.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "secret123"})

	wrong := newAccountFixture(t)
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}
	expectTransaction(t, wrong.txManager, wrong.accountRepo, wrong.profileRepo, nil)
	wrong.accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(account, nil)
	wrong.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(&entity.Profile{}, nil)
	wrong.hasher.EXPECT().Check("nope", "hashed").Return(false)
	_, wrongErr := wrong.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "nope"})

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_MissingProfileIsIntegrityError(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}

	expectTransaction(t, f.txManager, f.accountRepo, f.profileRepo, nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(account, nil)
	f.profileRepo.EXPECT().FindByAccountID(ctx, account.ID).Return(nil, repository.ErrProfileNotFound)
	f.hasher.EXPECT().Check("secret123", "hashed").Return(true)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, domainerrors.ErrProfileIntegrity)
}

func TestAccountService_GetProfile(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	t.Run("found", func(t *testing.T) {
		f := newAccountFixture(t)
		f.accountRepo.EXPECT().FindByID(ctx, accountID).Return(&entity.Account{ID: accountID}, nil)
		f.profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(&entity.Profile{AccountID: accountID}, nil)

		out, err := f.service.GetProfile(ctx, accountID)

		require.NoError(t, err)
		assert.Equal(t, accountID, out.Profile.AccountID)
	})

	t.Run("missing profile", func(t *testing.T) {
		f := newAccountFixture(t)
		f.accountRepo.EXPECT().FindByID(ctx, accountID).Return(&entity.Account{ID: accountID}, nil)
		f.profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, repository.ErrProfileNotFound)

		_, err := f.service.GetProfile(ctx, accountID)

		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}
