package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"restaurant-menu-api/config"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"
	"restaurant-menu-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the full route table against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	user := models.User{Name: "Admin", Email: "admin@test.local", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func staffToken(t *testing.T) string {
	t.Helper()
	user := models.User{Name: "Staff", Email: "staff@test.local", PasswordHash: "x", Role: models.RoleStaff}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// doJSON performs a request with an optional body and bearer token.
func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedBranchMenu(t *testing.T) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.Branch{Code: "riyadh", Name: "Riyadh", IsActive: true}).Error)
	require.NoError(t, config.DB.Create(&[]models.MenuCategory{
		{Code: "drinks", Name: "Drinks", BranchCode: "riyadh", DisplayOrder: 1},
		{Code: "mains", Name: "Mains", BranchCode: "riyadh", DisplayOrder: 2},
		{Code: "cold", Name: "Cold", ParentCode: "drinks", BranchCode: "riyadh", DisplayOrder: 1},
		{Code: "hot", Name: "Hot", ParentCode: "drinks", BranchCode: "riyadh", DisplayOrder: 2},
	}).Error)
	require.NoError(t, config.DB.Create(&[]models.MenuItem{
		{Code: "cola", Name: "Coca Cola", CategoryCode: "cold", BranchCode: "riyadh", Price: "8 SAR", DisplayOrder: 1, ShowInWebsite: true, Saleable: true},
		{Code: "latte", Name: "Latte", CategoryCode: "hot", BranchCode: "riyadh", Price: "14 SAR", DisplayOrder: 2, ShowInWebsite: true, Saleable: true},
		{Code: "burger", Name: "Burger", CategoryCode: "mains", BranchCode: "riyadh", Price: "25 SAR", DisplayOrder: 1, ShowInWebsite: true, Saleable: true},
		{Code: "hidden", Name: "Hidden Special", CategoryCode: "cold", BranchCode: "riyadh", Price: "99 SAR", DisplayOrder: 3, ShowInWebsite: false, Saleable: true},
		{Code: "soldout", Name: "Sold Out Soda", CategoryCode: "cold", BranchCode: "riyadh", Price: "5 SAR", DisplayOrder: 4, ShowInWebsite: true, Saleable: false},
	}).Error)
}
