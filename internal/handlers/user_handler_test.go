package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/middleware"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/models"
)

func TestCreateUserInvalidBody(t *testing.T) {
	h := &UserHandler{}

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{broken`)))
	rec := httptest.NewRecorder()
	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUserMissingEmail(t *testing.T) {
	h := &UserHandler{}

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{"name":"No Email"}`)))
	rec := httptest.NewRecorder()
	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromoteAdminInvalidID(t *testing.T) {
	h := &UserHandler{}
	router := mux.NewRouter()
	router.HandleFunc("/users/admin/{id}", h.PromoteAdmin).Methods("PATCH")

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/not-an-object-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// The self-check endpoints deny early when the authenticated identity does
// not match the requested identity; no store read happens.
func TestIsAdminIdentityMismatch(t *testing.T) {
	h := &UserHandler{}
	router := mux.NewRouter()
	router.HandleFunc("/users/admin/{email}", h.IsAdmin).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/users/admin/b@x.com", nil)
	req = req.WithContext(middleware.ContextWithEmail(req.Context(), "a@x.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":true`)
}

func TestIsInstructorNoClaim(t *testing.T) {
	h := &UserHandler{}
	router := mux.NewRouter()
	router.HandleFunc("/users/instructor/{email}", h.IsInstructor).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/users/instructor/a@x.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Registering an email that already exists reports the duplicate and performs
// no insert.
func TestCreateUserDuplicateEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate is a no-op", func(mt *mtest.T) {
		h := &UserHandler{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, existing))

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{"email":"a@x.com"}`)))
		rec := httptest.NewRecorder()
		h.CreateUser(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)
		assert.Contains(mt, rec.Body.String(), "user already exists")

		findEvt := mt.GetStartedEvent()
		assert.Equal(mt, "find", findEvt.CommandName)
		assert.Nil(mt, mt.GetStartedEvent(), "no write should follow the duplicate lookup")
	})
}

func TestCreateUserInsertsNewEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("new email inserted with unset role", func(mt *mtest.T) {
		h := &UserHandler{collection: mt.Coll}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{"email":"new@x.com","name":"New Student"}`)))
		rec := httptest.NewRecorder()
		h.CreateUser(rec, req)

		assert.Equal(mt, http.StatusCreated, rec.Code)

		var created models.User
		assert.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(mt, "new@x.com", created.Email)
		assert.Equal(mt, models.RoleUnset, created.Role)
		assert.False(mt, created.ID.IsZero())
	})
}

func TestPromoteAdminResponseShape(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("promotion reports matched and modified", func(mt *mtest.T) {
		h := &UserHandler{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		router := mux.NewRouter()
		router.HandleFunc("/users/admin/{id}", h.PromoteAdmin).Methods("PATCH")

		req := httptest.NewRequest(http.MethodPatch, "/users/admin/507f1f77bcf86cd799439011", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(mt, http.StatusOK, rec.Code)

		var resp map[string]int64
		assert.NoError(mt, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(mt, int64(1), resp["matched"])
		assert.Equal(mt, int64(1), resp["modified"])

		updateEvt := mt.GetStartedEvent()
		assert.Equal(mt, "update", updateEvt.CommandName)
		assert.Equal(mt, "admin", updateEvt.Command.Lookup("updates", "0", "u", "$set", "role").StringValue())
	})
}
