package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// RolesSeparator joins individual role names into the delimited string
// persisted on a client row.
const RolesSeparator = ","

// Client is the core business record: licensing metadata, document prefixes,
// role strings, and an optional image reference managed by the asset store.
type Client struct {
	ID               int64     `json:"id"`
	ClientName       string    `json:"client_name"`
	LicenseNo        string    `json:"license_no"`
	IssueDate        string    `json:"issue_date"`
	ExpiryDate       string    `json:"expiry_date"`
	Status           string    `json:"status"`
	Duration         int       `json:"duration"`
	PlanName         string    `json:"plan_name"`
	LoginRole1       string    `json:"login_role1"`
	LoginRole2       string    `json:"login_role2"`
	LoginRole3       string    `json:"login_role3"`
	Address          string    `json:"address"`
	Prefix1          string    `json:"prefix1"`
	Prefix2          string    `json:"prefix2"`
	Prefix3          string    `json:"prefix3"`
	Prefix4          string    `json:"prefix4"`
	Param1           *float64  `json:"param1"`
	Param2           *float64  `json:"param2"`
	Roles            string    `json:"roles"`
	OrderPrefix      string    `json:"order_prefix"`
	InvoicePrefix    string    `json:"invoice_prefix"`
	OrderPrefixCount int       `json:"order_prefix_count"`
	DefaultDueOn     int       `json:"default_due_on"`
	MaxDueOn         int       `json:"max_due_on"`
	Image            string    `json:"image,omitempty"`
	AppUpdate        bool      `json:"app_update"`
	DownloadLink     string    `json:"download_link"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NormalizeRoles converts a roles value supplied by the caller into the
// delimited string form stored on the row. A JSON array ("["admin","pos"]")
// is joined with RolesSeparator; anything else passes through unchanged.
// Individual role names are not validated and duplicates are kept as sent.
func NormalizeRoles(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return raw
	}
	var list []string
	if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
		return raw
	}
	return strings.Join(list, RolesSeparator)
}
