package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/licensehub/client-admin/internal/core/domain"
)

// ClientRepository persists client records in the clients table using
// parameterized single-statement queries; there is no multi-statement
// transaction anywhere in the contract.
type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `id, client_name, license_no, issue_date, expiry_date, status, duration,
	plan_name, login_role1, login_role2, login_role3, address,
	prefix1, prefix2, prefix3, prefix4, param1, param2, roles,
	order_prefix, invoice_prefix, order_prefix_count, default_due_on, max_due_on,
	COALESCE(image, ''), app_update, COALESCE(download_link, ''), created_at, updated_at`

func scanClient(row pgx.Row) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID, &c.ClientName, &c.LicenseNo, &c.IssueDate, &c.ExpiryDate, &c.Status, &c.Duration,
		&c.PlanName, &c.LoginRole1, &c.LoginRole2, &c.LoginRole3, &c.Address,
		&c.Prefix1, &c.Prefix2, &c.Prefix3, &c.Prefix4, &c.Param1, &c.Param2, &c.Roles,
		&c.OrderPrefix, &c.InvoicePrefix, &c.OrderPrefixCount, &c.DefaultDueOn, &c.MaxDueOn,
		&c.Image, &c.AppUpdate, &c.DownloadLink, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func (r *ClientRepository) FindByNameContains(ctx context.Context, fragment string) ([]domain.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE client_name ILIKE '%' || $1 || '%' ORDER BY id`,
		fragment,
	)
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func collectClients(rows pgx.Rows) ([]domain.Client, error) {
	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) Insert(ctx context.Context, c *domain.Client) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO clients (
			client_name, license_no, issue_date, expiry_date, status, duration,
			plan_name, login_role1, login_role2, login_role3, address,
			prefix1, prefix2, prefix3, prefix4, param1, param2, roles,
			order_prefix, invoice_prefix, order_prefix_count, default_due_on, max_due_on,
			image, app_update, download_link, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, NULLIF($24, ''), $25, $26, $27, $28
		) RETURNING id`,
		c.ClientName, c.LicenseNo, c.IssueDate, c.ExpiryDate, c.Status, c.Duration,
		c.PlanName, c.LoginRole1, c.LoginRole2, c.LoginRole3, c.Address,
		c.Prefix1, c.Prefix2, c.Prefix3, c.Prefix4, c.Param1, c.Param2, c.Roles,
		c.OrderPrefix, c.InvoicePrefix, c.OrderPrefixCount, c.DefaultDueOn, c.MaxDueOn,
		c.Image, c.AppUpdate, c.DownloadLink, c.CreatedAt, c.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert client: %w", err)
	}
	return id, nil
}

func (r *ClientRepository) UpdateByID(ctx context.Context, id int64, c *domain.Client) (int64, error) {
	// The image column is only overwritten when a new name was stored;
	// an empty name keeps whatever the row already references.
	tag, err := r.pool.Exec(ctx,
		`UPDATE clients SET
			client_name = $2, license_no = $3, issue_date = $4, expiry_date = $5,
			status = $6, duration = $7, plan_name = $8,
			login_role1 = $9, login_role2 = $10, login_role3 = $11, address = $12,
			prefix1 = $13, prefix2 = $14, prefix3 = $15, prefix4 = $16,
			param1 = $17, param2 = $18, roles = $19,
			order_prefix = $20, invoice_prefix = $21, order_prefix_count = $22,
			default_due_on = $23, max_due_on = $24,
			image = CASE WHEN $25 <> '' THEN $25 ELSE image END,
			app_update = $26, download_link = $27, updated_at = $28
		WHERE id = $1`,
		id,
		c.ClientName, c.LicenseNo, c.IssueDate, c.ExpiryDate,
		c.Status, c.Duration, c.PlanName,
		c.LoginRole1, c.LoginRole2, c.LoginRole3, c.Address,
		c.Prefix1, c.Prefix2, c.Prefix3, c.Prefix4,
		c.Param1, c.Param2, c.Roles,
		c.OrderPrefix, c.InvoicePrefix, c.OrderPrefixCount,
		c.DefaultDueOn, c.MaxDueOn,
		c.Image,
		c.AppUpdate, c.DownloadLink, c.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update client: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ClientRepository) ImageName(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(image, '') FROM clients WHERE id = $1`, id,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrClientNotFound
		}
		return "", fmt.Errorf("client image: %w", err)
	}
	return name, nil
}

func (r *ClientRepository) AppUpdateInfo(ctx context.Context, id int64) (bool, string, error) {
	var flag bool
	var link string
	err := r.pool.QueryRow(ctx,
		`SELECT app_update, COALESCE(download_link, '') FROM clients WHERE id = $1`, id,
	).Scan(&flag, &link)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, "", domain.ErrClientNotFound
		}
		return false, "", fmt.Errorf("app update info: %w", err)
	}
	return flag, link, nil
}

func (r *ClientRepository) SetAppUpdateInfo(ctx context.Context, id int64, flag bool, link string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clients SET app_update = $2, download_link = $3, updated_at = now() WHERE id = $1`,
		id, flag, link,
	)
	if err != nil {
		return 0, fmt.Errorf("set app update: %w", err)
	}
	return tag.RowsAffected(), nil
}
