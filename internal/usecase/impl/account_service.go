// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dashkeep/internal/delivery/context"
	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/domain/service"
	"dashkeep/internal/infra/metrics"
	"dashkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	profileRepo  repository.ProfileRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		profileRepo:  params.ProfileRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account, its profile and its default dashboard in one
// transaction, then opens the first session.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	phone, ok := entity.NormalizePhone(input.Phone)
	if !ok {
		return nil, domainerrors.ErrInvalidProfile.WithDetails("telefone")
	}
	nationalID, ok := entity.NormalizeNationalID(input.NationalID)
	if !ok {
		return nil, domainerrors.ErrInvalidProfile.WithDetails("cpf")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	account := entity.NewAccount(email, hash)
	profile := entity.NewProfile(account.ID, strings.TrimSpace(input.FullName), phone, nationalID)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.createAccount(ctx, repoFactory, account, profile)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}
	srv.metrics.DashboardCreated(metrics.SourceRegister)

	output, err := srv.openSession(account, profile)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return output, nil
}

// createAccount checks both unique fields up front for a precise error, then
// relies on the store constraints for the racing case.
func (srv *accountService) createAccount(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	account *entity.Account,
	profile *entity.Profile,
) error {
	accountRepo := repoFactory.AccountRepo()
	profileRepo := repoFactory.ProfileRepo()

	if _, err := accountRepo.FindByEmail(ctx, account.Email); err == nil {
		return domainerrors.ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	if _, err := profileRepo.FindByNationalID(ctx, profile.NationalID); err == nil {
		return domainerrors.ErrDuplicateNationalID
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(err, "failed to check national id availability")
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		return errors.Wrap(err, "failed to create account during registration")
	}
	if err := profileRepo.Create(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to create profile during registration")
	}
	if _, _, err := repoFactory.DashboardRepo().GetOrCreate(ctx, account.ID, entity.DefaultDashboardData()); err != nil {
		return errors.Wrap(err, "failed to create dashboard during registration")
	}

	return nil
}

// Login fails with the same error whether the email is unknown or the password is wrong.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	var (
		account *entity.Account
		profile *entity.Profile
	)
	// Read from primary in a short transaction to avoid stale reads on replicas.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		account, findErr = repoFactory.AccountRepo().FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find account by email")
		}

		profile, findErr = repoFactory.ProfileRepo().FindByAccountID(ctx, account.ID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProfileNotFound) {
				profile = nil

				return nil
			}

			return errors.Wrap(findErr, "failed to find profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if profile == nil {
		srv.log(ctx).Error("Authenticated account has no profile", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrProfileIntegrity.WrapMessage("login failed")
	}

	output, err := srv.openSession(account, profile)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token on login", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("Account logged in", slog.Any("accountID", account.ID))

	return output, nil
}

func (srv *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*usecase.ProfileOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	profile, err := srv.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return &usecase.ProfileOutput{Account: account, Profile: profile}, nil
}

func (srv *accountService) openSession(account *entity.Account, profile *entity.Profile) (*usecase.SessionOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return &usecase.SessionOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   account,
		Profile:   profile,
	}, nil
}
