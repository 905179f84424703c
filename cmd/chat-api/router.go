package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"gochat/internal/common"
	"gochat/internal/di"
)

func newRouter(app *di.Application) *mux.Router {
	r := mux.NewRouter()
	r.Use(common.LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", app.UserHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", app.UserHandler.Login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(common.AuthMiddleware)

	authed.HandleFunc("/users/me", app.UserHandler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", app.UserHandler.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/users/me", app.UserHandler.DeleteAccount).Methods(http.MethodDelete)

	authed.HandleFunc("/groups", app.GroupHandler.CreateGroup).Methods(http.MethodPost)
	authed.HandleFunc("/groups/{groupID}", app.GroupHandler.GetGroup).Methods(http.MethodGet)
	authed.HandleFunc("/groups/{groupID}/members", app.GroupHandler.AddMembers).Methods(http.MethodPost)
	authed.HandleFunc("/groups/{groupID}/members/{userID}", app.GroupHandler.RemoveMember).Methods(http.MethodDelete)
	authed.HandleFunc("/groups/{groupID}/members/{userID}/role", app.GroupHandler.UpdateMemberRole).Methods(http.MethodPut)

	authed.HandleFunc("/groups/{groupID}/messages", app.MessageHandler.ListGroupMessages).Methods(http.MethodGet)
	authed.HandleFunc("/messages", app.MessageHandler.SendMessage).Methods(http.MethodPost)
	authed.HandleFunc("/messages", app.MessageHandler.ListInbox).Methods(http.MethodGet)
	authed.HandleFunc("/messages/{messageID}", app.MessageHandler.EditMessage).Methods(http.MethodPut)
	authed.HandleFunc("/messages/{messageID}", app.MessageHandler.DeleteMessage).Methods(http.MethodDelete)

	return r
}
