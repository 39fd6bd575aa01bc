package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"harvestpro/entities"
	userRepoImp "harvestpro/pkg/user/repositoryImp"
)

func setup(t *testing.T) (*UserCtrl, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return New(userRepoImp.New(db)), db
}

func doPatch(ctrl *UserCtrl, id string, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	_ = ctrl.Patch(c)
	return rec
}

func TestListWithCounters(t *testing.T) {
	ctrl, db := setup(t)
	require.NoError(t, db.Create(&entities.User{Username: "a", Role: entities.RoleAdmin, IsActive: true}).Error)
	b := entities.User{Username: "b", Role: entities.RoleFieldWorker, IsActive: false}
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Model(&b).Update("is_active", false).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.List(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Users       []entities.User `json:"users"`
		TotalUsers  int64           `json:"total_users"`
		ActiveUsers int64           `json:"active_users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Users, 2)
	assert.Equal(t, int64(2), out.TotalUsers)
	assert.Equal(t, int64(1), out.ActiveUsers)
}

func TestPatchRole(t *testing.T) {
	ctrl, db := setup(t)
	u := entities.User{Username: "worker", Role: entities.RoleFieldWorker, IsActive: true}
	require.NoError(t, db.Create(&u).Error)
	id := strconv.FormatUint(uint64(u.UserID), 10)

	rec := doPatch(ctrl, id, `{"role":"farm_manager"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, entities.RoleFarmManager, got.Role)

	rec = doPatch(ctrl, id, `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.IsActive)
	assert.Equal(t, entities.RoleFarmManager, got.Role)
}

func TestPatchRejects(t *testing.T) {
	ctrl, db := setup(t)
	u := entities.User{Username: "worker", Role: entities.RoleFieldWorker, IsActive: true}
	require.NoError(t, db.Create(&u).Error)
	id := strconv.FormatUint(uint64(u.UserID), 10)

	rec := doPatch(ctrl, id, `{"role":"superuser"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doPatch(ctrl, "9999", `{"role":"admin"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
