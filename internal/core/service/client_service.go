package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/licensehub/client-admin/internal/core/domain"
	"github.com/licensehub/client-admin/internal/core/ports"
)

// ClientService coordinates the client repository and the asset store.
//
// Writes that carry an image follow a compensating sequence: store the asset,
// write the row, and on a failed write delete the asset again. Residual
// inconsistency (a delete that itself fails) is logged, never surfaced.
type ClientService struct {
	repo  ports.ClientRepository
	store ports.AssetStore
	log   zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, store ports.AssetStore, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, store: store, log: log}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *ClientService) SearchByName(ctx context.Context, fragment string) ([]domain.Client, error) {
	clients, err := s.repo.FindByNameContains(ctx, fragment)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, domain.ErrClientNotFound
	}
	return clients, nil
}

func (s *ClientService) Create(ctx context.Context, in ports.ClientInput, image *ports.ImageUpload) (int64, string, error) {
	imageName, err := s.storeImage(ctx, image)
	if err != nil {
		return 0, "", err
	}

	client := clientFromInput(in)
	client.Image = imageName

	id, err := s.repo.Insert(ctx, client)
	if err != nil {
		s.discardAsset(ctx, imageName, "insert failed")
		return 0, "", err
	}

	return id, imageName, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, in ports.ClientInput, image *ports.ImageUpload) (string, error) {
	oldImage := ""
	if image != nil {
		// Fetched up front so the replaced asset can be cleaned up after a
		// successful write.
		name, err := s.repo.ImageName(ctx, id)
		if err != nil {
			return "", err
		}
		oldImage = name
	}

	imageName, err := s.storeImage(ctx, image)
	if err != nil {
		return "", err
	}

	client := clientFromInput(in)
	client.Image = imageName

	affected, err := s.repo.UpdateByID(ctx, id, client)
	if err != nil {
		s.discardAsset(ctx, imageName, "update failed")
		return "", err
	}
	if affected == 0 {
		s.discardAsset(ctx, imageName, "no matching client")
		return "", domain.ErrClientNotFound
	}

	if imageName != "" && oldImage != "" && oldImage != imageName {
		s.discardAsset(ctx, oldImage, "replaced")
	}

	return imageName, nil
}

func (s *ClientService) ReplaceImage(ctx context.Context, image ports.ImageUpload, oldName string) (string, error) {
	name, err := s.store.Store(ctx, image.Content, image.Filename)
	if err != nil {
		return "", err
	}

	if oldName != "" {
		s.discardAsset(ctx, oldName, "replaced")
	}
	return name, nil
}

func (s *ClientService) GetAppUpdate(ctx context.Context, id int64) (ports.AppUpdateInfo, error) {
	flag, link, err := s.repo.AppUpdateInfo(ctx, id)
	if err != nil {
		return ports.AppUpdateInfo{}, err
	}
	return ports.AppUpdateInfo{ClientID: id, AppUpdate: flag, DownloadLink: link}, nil
}

func (s *ClientService) SetAppUpdate(ctx context.Context, id int64, flag bool, link string) error {
	affected, err := s.repo.SetAppUpdateInfo(ctx, id, flag, link)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (s *ClientService) storeImage(ctx context.Context, image *ports.ImageUpload) (string, error) {
	if image == nil {
		return "", nil
	}
	name, err := s.store.Store(ctx, image.Content, image.Filename)
	if err != nil {
		return "", err
	}
	return name, nil
}

// discardAsset deletes a stored asset as cleanup around a row write. Failures
// are logged, never propagated: the asset is the side effect, not the primary
// operation.
func (s *ClientService) discardAsset(ctx context.Context, name, reason string) {
	if name == "" {
		return
	}
	if err := s.store.Delete(ctx, name); err != nil {
		s.log.Warn().Err(err).
			Str("asset", name).
			Str("reason", reason).
			Msg("asset cleanup failed, file may be orphaned")
	}
}

func clientFromInput(in ports.ClientInput) *domain.Client {
	now := time.Now().UTC()
	return &domain.Client{
		ClientName:       in.ClientName,
		LicenseNo:        in.LicenseNo,
		IssueDate:        in.IssueDate,
		ExpiryDate:       in.ExpiryDate,
		Status:           in.Status,
		Duration:         in.Duration,
		PlanName:         in.PlanName,
		LoginRole1:       in.LoginRole1,
		LoginRole2:       in.LoginRole2,
		LoginRole3:       in.LoginRole3,
		Address:          in.Address,
		Prefix1:          in.Prefix1,
		Prefix2:          in.Prefix2,
		Prefix3:          in.Prefix3,
		Prefix4:          in.Prefix4,
		Param1:           in.Param1,
		Param2:           in.Param2,
		Roles:            domain.NormalizeRoles(in.Roles),
		OrderPrefix:      in.OrderPrefix,
		InvoicePrefix:    in.InvoicePrefix,
		OrderPrefixCount: in.OrderPrefixCount,
		DefaultDueOn:     in.DefaultDueOn,
		MaxDueOn:         in.MaxDueOn,
		AppUpdate:        in.AppUpdate,
		DownloadLink:     in.DownloadLink,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
