package group

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"gochat/internal/common"
	"gochat/internal/dbmysql"
)

func newHandlerRouter(t *testing.T) (*mux.Router, *MockGroupService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := NewMockGroupService(ctrl)
	h := NewHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/groups", h.CreateGroup).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/groups/{groupID}", h.GetGroup).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/groups/{groupID}/members", h.AddMembers).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/groups/{groupID}/members/{userID}", h.RemoveMember).Methods(http.MethodDelete)
	r.HandleFunc("/api/v1/groups/{groupID}/members/{userID}/role", h.UpdateMemberRole).Methods(http.MethodPut)
	return r, svc
}

func doRequest(r *mux.Router, method, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(common.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreateGroup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := newHandlerRouter(t)

		svc.EXPECT().CreateGroup(gomock.Any(), creator, "engineering", "team chat", []string{member1}).
			Return(&dbmysql.Group{GroupID: gid, Name: "engineering"}, nil)

		body := `{"name":"engineering","description":"team chat","member_ids":["` + member1 + `"]}`
		rec := doRequest(r, http.MethodPost, "/api/v1/groups", body, creator)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), gid)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		rec := doRequest(r, http.MethodPost, "/api/v1/groups", `{"description":"x"}`, creator)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad json", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		rec := doRequest(r, http.MethodPost, "/api/v1/groups", `{`, creator)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		rec := doRequest(r, http.MethodPost, "/api/v1/groups", `{"name":"x"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandlerAddMembers(t *testing.T) {
	t.Run("conflict surfaces as 409", func(t *testing.T) {
		r, svc := newHandlerRouter(t)

		svc.EXPECT().AddMembers(gomock.Any(), creator, gid, []string{member1}).
			Return(nil, common.Conflict("users already members: "+member1))

		body := `{"user_ids":["` + member1 + `"]}`
		rec := doRequest(r, http.MethodPost, "/api/v1/groups/"+gid+"/members", body, creator)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "already members")
	})

	t.Run("non-uuid ids fail validation", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		rec := doRequest(r, http.MethodPost, "/api/v1/groups/"+gid+"/members", `{"user_ids":["bob"]}`, creator)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerRemoveMember(t *testing.T) {
	t.Run("creator removal is forbidden", func(t *testing.T) {
		r, svc := newHandlerRouter(t)

		svc.EXPECT().RemoveMember(gomock.Any(), member1, gid, creator).
			Return("", common.PermissionDenied("the group creator cannot be removed"))

		rec := doRequest(r, http.MethodDelete, "/api/v1/groups/"+gid+"/members/"+creator, "", member1)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("promotion message passes through", func(t *testing.T) {
		r, svc := newHandlerRouter(t)

		svc.EXPECT().RemoveMember(gomock.Any(), admin2, gid, admin2).
			Return("Member removed successfully; "+member1+" was promoted to admin", nil)

		rec := doRequest(r, http.MethodDelete, "/api/v1/groups/"+gid+"/members/"+admin2, "", admin2)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "promoted to admin")
	})
}

func TestHandlerUpdateMemberRole(t *testing.T) {
	t.Run("role outside the enum fails validation", func(t *testing.T) {
		r, _ := newHandlerRouter(t)

		rec := doRequest(r, http.MethodPut, "/api/v1/groups/"+gid+"/members/"+member1+"/role", `{"role":"owner"}`, creator)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("updated", func(t *testing.T) {
		r, svc := newHandlerRouter(t)

		svc.EXPECT().UpdateMemberRole(gomock.Any(), creator, gid, member1, dbmysql.RoleAdmin).
			Return("Member role updated successfully", nil)

		rec := doRequest(r, http.MethodPut, "/api/v1/groups/"+gid+"/members/"+member1+"/role", `{"role":"admin"}`, creator)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
