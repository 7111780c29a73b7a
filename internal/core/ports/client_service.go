package ports

import (
	"context"
	"io"

	"github.com/licensehub/client-admin/internal/core/domain"
)

// ImageUpload carries an uploaded file from the transport layer into the
// service without tying the service to multipart specifics.
type ImageUpload struct {
	Content  io.Reader
	Filename string
}

// ClientInput is the validated field set accepted by create and update.
// Optional fields arrive as zero values; Roles is the raw caller value and
// is normalized by the service before persistence.
type ClientInput struct {
	ClientName       string
	LicenseNo        string
	IssueDate        string
	ExpiryDate       string
	Status           string
	Duration         int
	PlanName         string
	LoginRole1       string
	LoginRole2       string
	LoginRole3       string
	Address          string
	Prefix1          string
	Prefix2          string
	Prefix3          string
	Prefix4          string
	Param1           *float64
	Param2           *float64
	Roles            string
	OrderPrefix      string
	InvoicePrefix    string
	OrderPrefixCount int
	DefaultDueOn     int
	MaxDueOn         int
	AppUpdate        bool
	DownloadLink     string
}

// AppUpdateInfo is the app-update slice of a client row.
type AppUpdateInfo struct {
	ClientID     int64
	AppUpdate    bool
	DownloadLink string
}

// ClientService implements the business operations over client records,
// coordinating the repository and the asset store.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	// SearchByName returns clients whose name contains the fragment,
	// case-insensitively. Zero matches yield domain.ErrClientNotFound.
	SearchByName(ctx context.Context, fragment string) ([]domain.Client, error)
	// Create stores the optional image first, then inserts the row. On
	// insert failure the stored image is deleted again (best effort).
	Create(ctx context.Context, in ClientInput, image *ImageUpload) (int64, string, error)
	// Update behaves like Create for the image, signals
	// domain.ErrClientNotFound when the id matches no row, and deletes the
	// previously stored image after a successful replacement.
	Update(ctx context.Context, id int64, in ClientInput, image *ImageUpload) (string, error)
	// ReplaceImage stores a standalone upload and deletes oldName if given.
	ReplaceImage(ctx context.Context, image ImageUpload, oldName string) (string, error)
	GetAppUpdate(ctx context.Context, id int64) (AppUpdateInfo, error)
	SetAppUpdate(ctx context.Context, id int64, flag bool, link string) error
}
