package impl

import (
	"context"
	"log/slog"

	deliverycontext "dashkeep/internal/delivery/context"
	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/domain/service"
	"dashkeep/internal/infra/metrics"
	"dashkeep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sessionService struct {
	tokenService service.TokenService
	accountRepo  repository.AccountRepository
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TokenService service.TokenService
	AccountRepo  repository.AccountRepository
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		tokenService: params.TokenService,
		accountRepo:  params.AccountRepo,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the token, then confirms the account still exists.
// Nothing is cached; every request pays one account lookup.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	accountID, err := srv.tokenService.Verify(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			srv.metrics.AuthRejected(metrics.ReasonExpiredToken)

			return nil, domainerrors.ErrTokenExpired
		}
		srv.metrics.AuthRejected(metrics.ReasonInvalidToken)
		srv.log(ctx).Debug("Rejected malformed token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.metrics.AuthRejected(metrics.ReasonUnknownAccount)
			srv.log(ctx).Warn("Token references unknown account", slog.Any("accountID", accountID))

			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "failed to resolve token account")
	}

	return account, nil
}
