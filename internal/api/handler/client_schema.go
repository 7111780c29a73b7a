package handler

import "github.com/licensehub/client-admin/internal/core/ports"

// clientFormRequest is the field set accepted by add_client and
// update_client. Both arrive as multipart forms when an image rides along,
// but plain JSON works too, so every field carries both tags.
//
// Mandatory numerics are pointers so a missing field is distinguishable from
// a legitimate zero.
type clientFormRequest struct {
	ClientName       string   `json:"client_name"        form:"client_name"        validate:"required"`
	LicenseNo        string   `json:"license_no"         form:"license_no"         validate:"required"`
	IssueDate        string   `json:"issue_date"         form:"issue_date"         validate:"required"`
	ExpiryDate       string   `json:"expiry_date"        form:"expiry_date"`
	Status           string   `json:"status"             form:"status"`
	Duration         *int     `json:"duration"           form:"duration"           validate:"required"`
	PlanName         string   `json:"plan_name"          form:"plan_name"`
	LoginRole1       string   `json:"login_role1"        form:"login_role1"`
	LoginRole2       string   `json:"login_role2"        form:"login_role2"`
	LoginRole3       string   `json:"login_role3"        form:"login_role3"`
	Address          string   `json:"address"            form:"address"`
	Prefix1          string   `json:"prefix1"            form:"prefix1"`
	Prefix2          string   `json:"prefix2"            form:"prefix2"`
	Prefix3          string   `json:"prefix3"            form:"prefix3"`
	Prefix4          string   `json:"prefix4"            form:"prefix4"`
	Param1           *float64 `json:"param1"             form:"param1"`
	Param2           *float64 `json:"param2"             form:"param2"`
	Roles            string   `json:"roles"              form:"roles"`
	OrderPrefix      string   `json:"order_prefix"       form:"order_prefix"`
	InvoicePrefix    string   `json:"invoice_prefix"     form:"invoice_prefix"`
	OrderPrefixCount *int     `json:"order_prefix_count" form:"order_prefix_count"`
	DefaultDueOn     *int     `json:"default_due_on"     form:"default_due_on"     validate:"required"`
	MaxDueOn         *int     `json:"max_due_on"         form:"max_due_on"         validate:"required"`
	AppUpdate        *bool    `json:"app_update"         form:"app_update"`
	DownloadLink     string   `json:"download_link"      form:"download_link"`
}

type updateClientRequest struct {
	ClientID *int64 `json:"client_id" form:"client_id" validate:"required"`
	clientFormRequest
}

type appUpdateRequest struct {
	ClientID     *int64  `json:"client_id"     validate:"required"`
	AppUpdate    *bool   `json:"app_update"    validate:"required"`
	DownloadLink *string `json:"download_link" validate:"required"`
}

type clientWriteResponse struct {
	Message       string `json:"message"`
	ClientID      int64  `json:"client_id"`
	ImageFileName string `json:"imageFileName"`
}

type appUpdateResponse struct {
	Message      string `json:"message"`
	ClientID     int64  `json:"client_id"`
	AppUpdate    bool   `json:"app_update"`
	DownloadLink string `json:"download_link"`
}

type searchResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type uploadResponse struct {
	Message       string `json:"message"`
	ImageFileName string `json:"imageFileName"`
}

func (r clientFormRequest) toInput() ports.ClientInput {
	in := ports.ClientInput{
		ClientName:    r.ClientName,
		LicenseNo:     r.LicenseNo,
		IssueDate:     r.IssueDate,
		ExpiryDate:    r.ExpiryDate,
		Status:        r.Status,
		PlanName:      r.PlanName,
		LoginRole1:    r.LoginRole1,
		LoginRole2:    r.LoginRole2,
		LoginRole3:    r.LoginRole3,
		Address:       r.Address,
		Prefix1:       r.Prefix1,
		Prefix2:       r.Prefix2,
		Prefix3:       r.Prefix3,
		Prefix4:       r.Prefix4,
		Param1:        r.Param1,
		Param2:        r.Param2,
		Roles:         r.Roles,
		OrderPrefix:   r.OrderPrefix,
		InvoicePrefix: r.InvoicePrefix,
		DownloadLink:  r.DownloadLink,
	}
	if r.Duration != nil {
		in.Duration = *r.Duration
	}
	if r.OrderPrefixCount != nil {
		in.OrderPrefixCount = *r.OrderPrefixCount
	}
	if r.DefaultDueOn != nil {
		in.DefaultDueOn = *r.DefaultDueOn
	}
	if r.MaxDueOn != nil {
		in.MaxDueOn = *r.MaxDueOn
	}
	if r.AppUpdate != nil {
		in.AppUpdate = *r.AppUpdate
	}
	return in
}
