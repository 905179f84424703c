package user

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"gochat/internal/common"
	"gochat/internal/dbmysql"
)

// Handler wires HTTP requests to the user service.
type Handler struct {
	userService UserService
	validate    *validator.Validate
}

func NewHandler(userService UserService) *Handler {
	return &Handler{
		userService: userService,
		validate:    validator.New(),
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Phone string `json:"phone" validate:"omitempty"`
}

type authResponse struct {
	Token  string       `json:"token"`
	User   profileBody  `json:"user"`
}

type profileBody struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func toProfile(u *dbmysql.User) profileBody {
	return profileBody{
		UserID:    u.UserID,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.InvalidArgument("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, common.InvalidArgument(err.Error()))
		return
	}

	user, token, err := h.userService.RegisterUser(r.Context(), req.Name, req.Phone, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: toProfile(user)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.InvalidArgument("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, common.InvalidArgument(err.Error()))
		return
	}

	user, token, err := h.userService.LoginUser(r.Context(), req.Phone, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: toProfile(user)})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, toProfile(user))
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.InvalidArgument("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, common.InvalidArgument(err.Error()))
		return
	}

	if err := h.userService.UpdateProfile(r.Context(), userID, req.Name, req.Phone); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	if err := h.userService.DeleteAccount(r.Context(), userID); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
