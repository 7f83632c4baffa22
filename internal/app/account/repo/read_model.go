package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storefront-service/internal/app/account/contracts"
	"github.com/light-bringer/storefront-service/internal/app/account/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_address"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/models/m_order_item"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_user"
	"github.com/light-bringer/storefront-service/internal/models/m_wishlist"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// rowColumns is the listing projection of the users table. The
// credential hash is never selected here.
var rowColumns = []string{
	m_user.UserID,
	m_user.Name,
	m_user.Email,
	m_user.Role,
	m_user.Image,
	m_user.CreatedAt,
}

// ReadModelImpl implements the account ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProfile loads the account detail: identity, saved addresses and
// the most recent orders with their item counts.
func (rm *ReadModelImpl) GetProfile(ctx context.Context, userID string) (*contracts.Profile, error) {
	stmt := query.From(m_user.TableName).
		Select(rowColumns...).
		Where(query.Eq(m_user.UserID, userID)).
		Limit(1).
		Build()

	rows, err := rm.queryRows(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}

	addresses, err := rm.loadAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := rm.loadRecentOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &contracts.Profile{
		UserRow:      *rows[0],
		Addresses:    addresses,
		RecentOrders: orders,
	}, nil
}

// ListUsers retrieves a page of accounts for the back office. Search
// matches name or email; unknown sort keys fall back to registration
// date, newest first.
func (rm *ReadModelImpl) ListUsers(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	base := query.From(m_user.TableName)

	if filter.Search != "" {
		base = base.Where(query.Or(
			query.Contains(m_user.Name, filter.Search),
			query.Contains(m_user.Email, filter.Search),
		))
	}

	orderCol, orderDir := resolveUserOrder(filter.SortBy, filter.SortOrder)
	stmt := base.
		Select(rowColumns...).
		OrderBy(orderCol, orderDir).
		Limit(filter.Window.Limit).
		Offset(filter.Window.Skip).
		Build()

	users, err := rm.queryRows(ctx, stmt)
	if err != nil {
		return nil, err
	}

	totalCount, err := rm.queryCount(ctx, base.Count().Build())
	if err != nil {
		return nil, err
	}

	return &contracts.ListResult{
		Users:       users,
		TotalCount:  totalCount,
		TotalPages:  filter.Window.TotalPages(totalCount),
		CurrentPage: filter.Window.Page(),
	}, nil
}

// GetWishlist lists a user's wishlisted products, most recently added
// first. Deactivated products are filtered out by the join.
func (rm *ReadModelImpl) GetWishlist(ctx context.Context, userID string) ([]*contracts.WishlistItem, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, w.%s "+
				"FROM %s w JOIN %s p ON w.%s = p.%s "+
				"WHERE w.%s = @userID AND p.%s = TRUE ORDER BY w.%s DESC",
			m_product.ProductID, m_product.Slug, m_product.Name, m_product.Price,
			m_product.SalePrice, m_product.PrimaryImage, m_product.Inventory,
			m_wishlist.CreatedAt,
			m_wishlist.TableName, m_product.TableName, m_wishlist.ProductID, m_product.ProductID,
			m_wishlist.UserID, m_product.IsActive, m_wishlist.CreatedAt,
		),
		Params: map[string]interface{}{"userID": userID},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	items := []*contracts.WishlistItem{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate wishlist: %w", err)
		}

		var item contracts.WishlistItem
		var salePrice spanner.NullFloat64
		if err := row.Columns(
			&item.ProductID, &item.Slug, &item.Name, &item.Price,
			&salePrice, &item.PrimaryImage, &item.Inventory, &item.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to parse wishlist item: %w", err)
		}
		if salePrice.Valid {
			v := salePrice.Float64
			item.SalePrice = &v
		}
		items = append(items, &item)
	}

	return items, nil
}

// resolveUserOrder maps a listing sort key to a column from the
// allowlist plus a direction. Unknown keys fall back to registration
// date; an explicit order overrides the key's natural direction.
func resolveUserOrder(sortBy, sortOrder string) (string, query.Direction) {
	var column string
	var natural query.Direction

	switch sortBy {
	case contracts.SortByName:
		column, natural = m_user.Name, query.Asc
	case contracts.SortByEmail:
		column, natural = m_user.Email, query.Asc
	case contracts.SortByRole:
		column, natural = m_user.Role, query.Asc
	default:
		column, natural = m_user.CreatedAt, query.Desc
	}

	switch sortOrder {
	case contracts.SortAsc:
		return column, query.Asc
	case contracts.SortDesc:
		return column, query.Desc
	default:
		return column, natural
	}
}

// queryRows executes a listing-projection statement.
func (rm *ReadModelImpl) queryRows(ctx context.Context, stmt spanner.Statement) ([]*contracts.UserRow, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var users []*contracts.UserRow
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users: %w", err)
		}

		var user contracts.UserRow
		if err := row.Columns(
			&user.UserID, &user.Name, &user.Email,
			&user.Role, &user.Image, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to parse user: %w", err)
		}
		users = append(users, &user)
	}

	if users == nil {
		users = []*contracts.UserRow{}
	}
	return users, nil
}

// queryCount executes a COUNT(*) statement.
func (rm *ReadModelImpl) queryCount(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

// loadAddresses fetches a user's saved addresses, default first.
func (rm *ReadModelImpl) loadAddresses(ctx context.Context, userID string) ([]contracts.AddressDTO, error) {
	stmt := query.From(m_address.TableName).
		Select(
			m_address.AddressID,
			m_address.Recipient,
			m_address.Line1,
			m_address.Line2,
			m_address.City,
			m_address.State,
			m_address.PostalCode,
			m_address.Country,
			m_address.IsDefault,
		).
		Where(query.Eq(m_address.UserID, userID)).
		OrderBy(m_address.IsDefault, query.Desc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	addresses := []contracts.AddressDTO{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate addresses: %w", err)
		}

		var dto contracts.AddressDTO
		var line2 spanner.NullString
		if err := row.Columns(
			&dto.AddressID, &dto.Recipient, &dto.Line1, &line2,
			&dto.City, &dto.State, &dto.PostalCode, &dto.Country, &dto.IsDefault,
		); err != nil {
			return nil, fmt.Errorf("failed to parse address: %w", err)
		}
		if line2.Valid {
			dto.Line2 = line2.StringVal
		}
		addresses = append(addresses, dto)
	}

	return addresses, nil
}

// loadRecentOrders fetches a user's latest orders with their item
// counts.
func (rm *ReadModelImpl) loadRecentOrders(ctx context.Context, userID string) ([]contracts.OrderSummary, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT o.%s, o.%s, o.%s, o.%s, "+
				"(SELECT COUNT(*) FROM %s i WHERE i.%s = o.%s) "+
				"FROM %s o WHERE o.%s = @userID ORDER BY o.%s DESC LIMIT @limit",
			m_order.OrderID, m_order.Status, m_order.Total, m_order.CreatedAt,
			m_order_item.TableName, m_order_item.OrderID, m_order.OrderID,
			m_order.TableName, m_order.UserID, m_order.CreatedAt,
		),
		Params: map[string]interface{}{
			"userID": userID,
			"limit":  int64(contracts.ProfileRecentOrderLimit),
		},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	orders := []contracts.OrderSummary{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var summary contracts.OrderSummary
		if err := row.Columns(
			&summary.OrderID, &summary.Status, &summary.Total,
			&summary.CreatedAt, &summary.ItemCount,
		); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}
		orders = append(orders, summary)
	}

	return orders, nil
}
