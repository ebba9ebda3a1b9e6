package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"shajghor/internal/domain/entities"
	mock_interfaces "shajghor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestIdentityUseCase_IssueToken(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("disabled account is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewIdentityUseCase(accounts, tokens)

		accounts.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(entities.Account{Email: "a@x.com", Status: entities.AccountStatusDisabled}, nil)

		_, _, err := uc.IssueToken(context.Background(), "a@x.com")
		if !errors.Is(err, ErrAccountDisabled) {
			t.Fatalf("expected ErrAccountDisabled, got %v", err)
		}
	})

	t.Run("active account gets a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewIdentityUseCase(accounts, tokens)
		uc.now = func() time.Time { return now }

		want := entities.Identity{Email: "a@x.com", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}
		accounts.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(entities.Account{Email: "a@x.com", Status: entities.AccountStatusActive}, nil)
		tokens.EXPECT().Issue("a@x.com", now).Return("signed", want, nil)

		token, got, err := uc.IssueToken(context.Background(), " a@x.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed" || got != want {
			t.Fatalf("unexpected token=%q identity=%+v", token, got)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewIdentityUseCase(accounts, nil)
		accounts.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(entities.Account{}, errors.New("db"))

		if _, _, err := uc.IssueToken(context.Background(), "a@x.com"); !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})
}

func TestIdentityUseCase_Authenticate(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		uc := NewIdentityUseCase(nil, nil)
		if _, err := uc.Authenticate(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewIdentityUseCase(nil, tokens)
		tokens.EXPECT().Verify("bad").Return(entities.Identity{}, errors.New("token is expired"))

		if _, err := uc.Authenticate(context.Background(), "bad"); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("does not re-check account status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewIdentityUseCase(accounts, tokens)
		tokens.EXPECT().Verify("good").Return(entities.Identity{Email: "a@x.com"}, nil)

		id, err := uc.Authenticate(context.Background(), "good")
		if err != nil || id.Email != "a@x.com" {
			t.Fatalf("unexpected identity=%+v err=%v", id, err)
		}
	})
}
