package erp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-menu-api/config"
	"restaurant-menu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func erpStub(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/branches/riyadh/menu":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"categories": [{"code": "mains", "name": "Mains", "display_order": 1}],
				"items": [
					{"code": "burger", "name": "Burger", "category_code": "mains", "price": "25 SAR", "show_in_website": true, "saleable": true},
					{"code": "kebab", "name": "Kebab", "category_code": "mains", "price": "30 SAR", "show_in_website": true, "saleable": true}
				]
			}`))
		case "/branches/jeddah/menu":
			http.Error(w, "branch not found in ERP", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestSyncAllReportsPartialFailure(t *testing.T) {
	db := setupDB(t)
	srv := erpStub(t)
	defer srv.Close()

	require.NoError(t, db.Create(&[]models.Branch{
		{Code: "riyadh", Name: "Riyadh", IsActive: true},
		{Code: "jeddah", Name: "Jeddah", IsActive: true},
		{Code: "closed", Name: "Closed", IsActive: false},
	}).Error)

	client := NewClient(srv.URL, db)
	report := client.SyncAll(context.Background())

	assert.False(t, report.Success())
	assert.Equal(t, []string{"riyadh"}, report.Synced)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "jeddah", report.Failed[0].Branch)
	assert.Contains(t, report.Failed[0].Error, "status 500")

	var count int64
	db.Model(&models.MenuItem{}).Where("branch_code = ?", "riyadh").Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestSyncBranchReplacesExistingRows(t *testing.T) {
	db := setupDB(t)
	srv := erpStub(t)
	defer srv.Close()

	require.NoError(t, db.Create(&models.MenuItem{
		Code: "stale", Name: "Stale Item", CategoryCode: "old", BranchCode: "riyadh",
	}).Error)

	client := NewClient(srv.URL, db)
	require.NoError(t, client.SyncBranch(context.Background(), "riyadh"))

	var items []models.MenuItem
	db.Where("branch_code = ?", "riyadh").Find(&items)
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.NotEqual(t, "stale", it.Code)
	}
}

func TestSyncBranchFailureLeavesRowsUntouched(t *testing.T) {
	db := setupDB(t)
	srv := erpStub(t)
	defer srv.Close()

	require.NoError(t, db.Create(&models.MenuItem{
		Code: "kept", Name: "Kept Item", CategoryCode: "mains", BranchCode: "jeddah",
	}).Error)

	client := NewClient(srv.URL, db)
	err := client.SyncBranch(context.Background(), "jeddah")
	assert.Error(t, err)

	var count int64
	db.Model(&models.MenuItem{}).Where("branch_code = ?", "jeddah").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestTruncateAndSyncAllWipesUnsyncedBranches(t *testing.T) {
	db := setupDB(t)
	srv := erpStub(t)
	defer srv.Close()

	require.NoError(t, db.Create(&models.Branch{Code: "riyadh", Name: "Riyadh", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.MenuItem{
		Code: "orphan", Name: "Orphan", CategoryCode: "x", BranchCode: "retired-branch",
	}).Error)

	client := NewClient(srv.URL, db)
	report, err := client.TruncateAndSyncAll(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Success())

	var count int64
	db.Model(&models.MenuItem{}).Where("branch_code = ?", "retired-branch").Count(&count)
	assert.EqualValues(t, 0, count)
}
