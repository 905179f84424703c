package group

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"gochat/internal/common"
)

type Handler struct {
	groupService GroupService
	validate     *validator.Validate
}

func NewHandler(groupService GroupService) *Handler {
	return &Handler{
		groupService: groupService,
		validate:     validator.New(),
	}
}

type createGroupRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
	MemberIDs   []string `json:"member_ids" validate:"omitempty,dive,uuid4"`
}

type addMembersRequest struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1,dive,uuid4"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.InvalidArgument("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, common.InvalidArgument(err.Error()))
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), userID, req.Name, req.Description, req.MemberIDs)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, group)
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	group, err := h.groupService.GetGroup(r.Context(), userID, mux.Vars(r)["groupID"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, group)
}

func (h *Handler) AddMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	var req addMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.InvalidArgument("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, common.InvalidArgument(err.Error()))
		return
	}

	group, err := h.groupService.AddMembers(r.Context(), userID, mux.Vars(r)["groupID"], req.UserIDs)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, group)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	vars := mux.Vars(r)
	msg, err := h.groupService.RemoveMember(r.Context(), userID, vars["groupID"], vars["userID"])
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.InvalidArgument("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, common.InvalidArgument(err.Error()))
		return
	}

	vars := mux.Vars(r)
	msg, err := h.groupService.UpdateMemberRole(r.Context(), userID, vars["groupID"], vars["userID"], req.Role)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, messageResponse{Message: msg})
}
