package message

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"gochat/internal/common"
	"gochat/internal/pagination"
)

type Handler struct {
	msgService MessageService
	validate   *validator.Validate
}

func NewHandler(msgService MessageService) *Handler {
	return &Handler{
		msgService: msgService,
		validate:   validator.New(),
	}
}

type sendMessageRequest struct {
	Content    string  `json:"content" validate:"required"`
	ReceiverID *string `json:"receiver_id" validate:"omitempty,uuid4"`
	GroupID    *string `json:"group_id" validate:"omitempty,uuid4"`
	ReplyToID  *string `json:"reply_to_id" validate:"omitempty,uuid4"`
}

type editMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func paramsFromRequest(r *http.Request) pagination.Params {
	p := pagination.Params{
		Cursor: r.URL.Query().Get("cursor"),
		Sort:   r.URL.Query().Get("sort"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			p.Limit = n
		}
	}
	return p
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.InvalidArgument("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, common.InvalidArgument(err.Error()))
		return
	}

	msg, err := h.msgService.SendMessage(r.Context(), userID, SendMessageInput{
		Content:    req.Content,
		ReceiverID: req.ReceiverID,
		GroupID:    req.GroupID,
		ReplyToID:  req.ReplyToID,
	})
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, msg)
}

func (h *Handler) ListInbox(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	page, err := h.msgService.ListInbox(r.Context(), userID, paramsFromRequest(r))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) ListGroupMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	page, err := h.msgService.ListGroupMessages(r.Context(), userID, mux.Vars(r)["groupID"], paramsFromRequest(r))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	var req editMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.InvalidArgument("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		common.WriteError(w, common.InvalidArgument(err.Error()))
		return
	}

	msg, err := h.msgService.EditMessage(r.Context(), userID, mux.Vars(r)["messageID"], req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, msg)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthenticated("user not authenticated"))
		return
	}

	if err := h.msgService.DeleteMessage(r.Context(), userID, mux.Vars(r)["messageID"]); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
