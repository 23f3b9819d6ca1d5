package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"restaurant-menu-api/models"

	"gorm.io/gorm"
)

// Client pulls menu snapshots from the external system of record and
// replaces the hosted rows with them. One branch is synced per request;
// a failing branch is reported and does not abort the run.
type Client struct {
	BaseURL string
	DB      *gorm.DB
	HTTP    *http.Client
}

// Snapshot is the wire format the ERP serves per branch.
type Snapshot struct {
	Categories []models.MenuCategory `json:"categories"`
	Items      []models.MenuItem     `json:"items"`
}

// BranchFailure records why a single branch could not be synced.
type BranchFailure struct {
	Branch string `json:"branch"`
	Error  string `json:"error"`
}

// Report summarizes a sync run across all branches.
type Report struct {
	Synced []string        `json:"synced"`
	Failed []BranchFailure `json:"failed"`
}

// Success is true when every branch synced.
func (r Report) Success() bool {
	return len(r.Failed) == 0
}

func NewClient(baseURL string, db *gorm.DB) *Client {
	return &Client{
		BaseURL: baseURL,
		DB:      db,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchSnapshot retrieves one branch's menu from the ERP.
func (c *Client) FetchSnapshot(ctx context.Context, branch string) (*Snapshot, error) {
	url := fmt.Sprintf("%s/branches/%s/menu", c.BaseURL, branch)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erp returned status %d for branch %s", resp.StatusCode, branch)
	}
	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot for branch %s: %w", branch, err)
	}
	return &snap, nil
}

// SyncBranch replaces one branch's categories and items with the ERP
// snapshot inside a single transaction.
func (c *Client) SyncBranch(ctx context.Context, branch string) error {
	snap, err := c.FetchSnapshot(ctx, branch)
	if err != nil {
		return err
	}

	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("branch_code = ?", branch).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("branch_code = ?", branch).Delete(&models.MenuCategory{}).Error; err != nil {
			return err
		}
		for i := range snap.Categories {
			snap.Categories[i].ID = 0
			snap.Categories[i].BranchCode = branch
		}
		for i := range snap.Items {
			snap.Items[i].ID = 0
			snap.Items[i].BranchCode = branch
		}
		if len(snap.Categories) > 0 {
			if err := tx.Create(&snap.Categories).Error; err != nil {
				return err
			}
		}
		if len(snap.Items) > 0 {
			if err := tx.Create(&snap.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SyncAll syncs every active branch sequentially and reports per-branch
// outcomes. Partial failure is expected operation, not an error.
func (c *Client) SyncAll(ctx context.Context) Report {
	var branches []models.Branch
	report := Report{Synced: []string{}, Failed: []BranchFailure{}}
	if err := c.DB.Where("is_active = ?", true).Find(&branches).Error; err != nil {
		report.Failed = append(report.Failed, BranchFailure{Branch: "*", Error: err.Error()})
		return report
	}

	for _, b := range branches {
		if err := c.SyncBranch(ctx, b.Code); err != nil {
			report.Failed = append(report.Failed, BranchFailure{Branch: b.Code, Error: err.Error()})
			continue
		}
		report.Synced = append(report.Synced, b.Code)
	}
	return report
}

// TruncateAndSyncAll wipes every branch's menu rows first, then runs a full
// sync. Used when the hosted store has drifted and must be rebuilt.
func (c *Client) TruncateAndSyncAll(ctx context.Context) (Report, error) {
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.MenuCategory{}).Error
	})
	if err != nil {
		return Report{}, fmt.Errorf("truncate failed: %w", err)
	}
	return c.SyncAll(ctx), nil
}
