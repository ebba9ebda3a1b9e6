package handlers

import (
	"net/http"
	"testing"

	"shajghor/internal/adapter/http/handlers/mocks"
	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAccountHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("new account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(entities.Identity{})
		r.POST("/v1/users", h.Signup)

		id := "alice@x.com"
		uc.EXPECT().Signup(gomock.Any(), usecase.SignupInput{Name: "Alice", Email: "alice@x.com", PhotoURL: "p.png"}).
			Return(usecase.SignupResult{InsertedID: &id, Account: entities.Account{Role: entities.RoleUser}}, nil)

		w := doRequest(r, http.MethodPost, "/v1/users", `{"name":"Alice","email":"alice@x.com","photoURL":"p.png"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"acknowledged":true,"insertedId":"alice@x.com","role":"user"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(entities.Identity{})
		r.POST("/v1/users", h.Signup)

		uc.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(usecase.SignupResult{Message: usecase.MessageUserAlreadyExists}, nil)

		w := doRequest(r, http.MethodPost, "/v1/users", `{"email":"alice@x.com"}`)
		if w.Code != http.StatusOK || w.Body.String() != `{"acknowledged":true,"insertedId":null,"message":"User already exists"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(entities.Identity{})
		r.POST("/v1/users", h.Signup)

		uc.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(usecase.SignupResult{}, usecase.ErrInvalidEmail)

		w := doRequest(r, http.MethodPost, "/v1/users", `{"email":""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAccountHandler_GetRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAccountUseCase(ctrl)
	h := NewAccountHandler(uc)

	r := newRouter(entities.Identity{})
	r.GET("/v1/users/:email/role", h.GetRole)

	uc.EXPECT().GetRole(gomock.Any(), "deco@x.com").Return(entities.RoleDecorator, nil)
	uc.EXPECT().GetRole(gomock.Any(), "ghost@x.com").Return(entities.Role(""), usecase.ErrAccountNotFound)

	if w := doRequest(r, http.MethodGet, "/v1/users/deco@x.com/role", ""); w.Body.String() != `{"role":"decorator"}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if w := doRequest(r, http.MethodGet, "/v1/users/ghost@x.com/role", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAccountHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("self update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(alice)
		r.PATCH("/v1/users/profile", h.UpdateProfile)

		uc.EXPECT().UpdateProfile(gomock.Any(), alice, "alice@x.com", entities.ProfileUpdate{Phone: "555"}).
			Return(entities.Account{Email: "alice@x.com", Phone: "555"}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/users/profile?email=alice@x.com", `{"phone":"555"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("nothing to update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(alice)
		r.PATCH("/v1/users/profile", h.UpdateProfile)

		uc.EXPECT().UpdateProfile(gomock.Any(), alice, "alice@x.com", entities.ProfileUpdate{}).
			Return(entities.Account{}, usecase.ErrEmptyProfileUpdate)

		w := doRequest(r, http.MethodPatch, "/v1/users/profile?email=alice@x.com", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAccountHandler_AdminOperations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	admin := entities.Identity{Email: "admin@x.com"}

	t.Run("status requires a value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(admin)
		r.PATCH("/v1/admin/users/:email/status", h.UpdateStatus)

		w := doRequest(r, http.MethodPatch, "/v1/admin/users/bob@x.com/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("disable account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(admin)
		r.PATCH("/v1/admin/users/:email/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), admin, "bob@x.com", entities.AccountStatusDisabled).
			Return(entities.Account{Email: "bob@x.com", Status: entities.AccountStatusDisabled}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/admin/users/bob@x.com/status", `{"status":"disabled"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("role change by non admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(alice)
		r.PATCH("/v1/admin/users/:email/role", h.UpdateRole)

		uc.EXPECT().UpdateRole(gomock.Any(), alice, "alice@x.com", entities.RoleAdmin).Return(entities.Account{}, usecase.ErrForbiddenRole)

		w := doRequest(r, http.MethodPatch, "/v1/admin/users/alice@x.com/role", `{"role":"admin"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("lists never render null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		h := NewAccountHandler(uc)

		r := newRouter(admin)
		r.GET("/v1/admin/users", h.List)
		r.GET("/v1/admin/decorators", h.ListDecorators)

		uc.EXPECT().List(gomock.Any(), admin).Return(nil, nil)
		uc.EXPECT().ListDecorators(gomock.Any(), admin).Return(nil, nil)

		if w := doRequest(r, http.MethodGet, "/v1/admin/users", ""); w.Body.String() != "[]" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if w := doRequest(r, http.MethodGet, "/v1/admin/decorators", ""); w.Body.String() != "[]" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
