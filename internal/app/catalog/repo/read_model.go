package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/models/m_order_item"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_review"
	"github.com/light-bringer/storefront-service/internal/models/m_user"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// recentOrderItemLimit caps the order items attached to an admin
// product detail.
const recentOrderItemLimit = 10

// cardColumns is the fixed column set of every card/grid projection.
var cardColumns = []string{
	m_product.ProductID,
	m_product.Slug,
	m_product.Name,
	m_product.Description,
	m_product.Price,
	m_product.SalePrice,
	m_product.Inventory,
	m_product.PrimaryImage,
	m_product.ModelImage,
	m_product.Images,
	m_product.Category,
	m_product.ClothType,
	m_product.Tags,
	m_product.Sizes,
	m_product.IsActive,
	m_product.Featured,
	m_product.TimesSold,
	m_product.CreatedAt,
	m_product.UpdatedAt,
}

// ReadModelImpl implements the catalog ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// ListProducts retrieves a page of active products with filtering and
// sorting. Absent filter parameters impose no constraint on their axis.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	base := query.From(m_product.TableName).
		Where(query.Eq(m_product.IsActive, true))

	if filter.Category != "" {
		base = base.Where(query.Eq(m_product.Category, domain.NormalizeCategory(filter.Category)))
	}
	if filter.Featured != nil {
		base = base.Where(query.Eq(m_product.Featured, *filter.Featured))
	}
	if filter.Search != "" {
		base = base.Where(query.Or(
			query.Contains(m_product.Name, filter.Search),
			query.Contains(m_product.Description, filter.Search),
			query.ArrayContains(m_product.Tags, filter.Search),
		))
	}

	orderCol, orderDir := resolveOrder(filter.Sort)
	stmt := base.
		Select(cardColumns...).
		OrderBy(orderCol, orderDir).
		Limit(filter.Window.Limit).
		Offset(filter.Window.Skip).
		Build()

	products, err := rm.queryCards(ctx, stmt)
	if err != nil {
		return nil, err
	}

	totalCount, err := rm.queryCount(ctx, base.Count().Build())
	if err != nil {
		return nil, err
	}

	return &contracts.ListResult{
		Products:   products,
		TotalCount: totalCount,
		HasMore:    filter.Window.HasMore(len(products), totalCount),
	}, nil
}

// GetProductBySlug retrieves the public detail of an active product,
// including reviews with reviewer identity, newest first.
func (rm *ReadModelImpl) GetProductBySlug(ctx context.Context, slug string) (*contracts.ProductDetail, error) {
	stmt := query.From(m_product.TableName).
		Select(cardColumns...).
		Where(query.Eq(m_product.Slug, slug)).
		Where(query.Eq(m_product.IsActive, true)).
		Limit(1).
		Build()

	cards, err := rm.queryCards(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, domain.ErrProductNotFound
	}

	reviews, err := rm.loadReviews(ctx, cards[0].ProductID)
	if err != nil {
		return nil, err
	}

	return &contracts.ProductDetail{
		ProductCard: *cards[0],
		Reviews:     reviews,
	}, nil
}

// SimilarProducts returns active products sharing the category or a
// tag with the given product, excluding it, best sellers first.
func (rm *ReadModelImpl) SimilarProducts(ctx context.Context, productID string, limit int64) ([]*contracts.ProductCard, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.Category,
		m_product.Tags,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var category string
	var tags []string
	if err := row.Columns(&category, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	related := []query.Condition{query.Eq(m_product.Category, category)}
	if len(tags) > 0 {
		related = append(related, query.ArrayOverlaps(m_product.Tags, tags))
	}

	stmt := query.From(m_product.TableName).
		Select(cardColumns...).
		Where(query.Neq(m_product.ProductID, productID)).
		Where(query.Eq(m_product.IsActive, true)).
		Where(query.Or(related...)).
		OrderBy(m_product.TimesSold, query.Desc).
		Limit(limit).
		Build()

	return rm.queryCards(ctx, stmt)
}

// ListAdminProducts retrieves a page of products for the back office:
// any status, ordered by last update, with relation counts attached.
func (rm *ReadModelImpl) ListAdminProducts(ctx context.Context, filter *contracts.AdminListFilter) (*contracts.AdminListResult, error) {
	base := query.From(m_product.TableName)

	switch filter.Status {
	case contracts.StatusActive:
		base = base.Where(query.Eq(m_product.IsActive, true))
	case contracts.StatusInactive:
		base = base.Where(query.Eq(m_product.IsActive, false))
	}

	if filter.Category != "" {
		base = base.Where(query.Eq(m_product.Category, filter.Category))
	}
	if filter.Search != "" {
		base = base.Where(query.Or(
			query.Contains(m_product.Name, filter.Search),
			query.Contains(m_product.Description, filter.Search),
			query.ArrayContains(m_product.Tags, filter.Search),
			query.Contains(m_product.Slug, filter.Search),
		))
	}

	stmt := base.
		Select(cardColumns...).
		OrderBy(m_product.UpdatedAt, query.Desc).
		Limit(filter.Window.Limit).
		Offset(filter.Window.Skip).
		Build()

	cards, err := rm.queryCards(ctx, stmt)
	if err != nil {
		return nil, err
	}

	totalCount, err := rm.queryCount(ctx, base.Count().Build())
	if err != nil {
		return nil, err
	}

	rows, err := rm.attachCounts(ctx, cards)
	if err != nil {
		return nil, err
	}

	return &contracts.AdminListResult{
		Products:    rows,
		TotalCount:  totalCount,
		TotalPages:  filter.Window.TotalPages(totalCount),
		CurrentPage: filter.Window.Page(),
	}, nil
}

// GetAdminProduct retrieves the admin detail for any product: reviews
// plus the most recent order items with their parent orders.
func (rm *ReadModelImpl) GetAdminProduct(ctx context.Context, productID string) (*contracts.AdminProductDetail, error) {
	stmt := query.From(m_product.TableName).
		Select(cardColumns...).
		Where(query.Eq(m_product.ProductID, productID)).
		Limit(1).
		Build()

	cards, err := rm.queryCards(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, domain.ErrProductNotFound
	}

	reviews, err := rm.loadReviews(ctx, productID)
	if err != nil {
		return nil, err
	}

	orderItems, err := rm.loadRecentOrderItems(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &contracts.AdminProductDetail{
		ProductCard:      *cards[0],
		Reviews:          reviews,
		RecentOrderItems: orderItems,
	}, nil
}

// resolveOrder maps a sort key to its storage ordering. Ties are left
// in storage-default order.
func resolveOrder(key domain.SortKey) (string, query.Direction) {
	switch key {
	case domain.SortPriceAsc:
		return m_product.Price, query.Asc
	case domain.SortPriceDesc:
		return m_product.Price, query.Desc
	case domain.SortPopular:
		return m_product.TimesSold, query.Desc
	default:
		return m_product.CreatedAt, query.Desc
	}
}

// queryCards executes a card-projection statement.
func (rm *ReadModelImpl) queryCards(ctx context.Context, stmt spanner.Statement) ([]*contracts.ProductCard, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var cards []*contracts.ProductCard
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		cards = append(cards, dataToCard(&data))
	}

	if cards == nil {
		cards = []*contracts.ProductCard{}
	}
	return cards, nil
}

// queryCount executes a COUNT(*) statement.
func (rm *ReadModelImpl) queryCount(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

// loadReviews fetches a product's reviews with reviewer identity
// projected, newest first.
func (rm *ReadModelImpl) loadReviews(ctx context.Context, productID string) ([]contracts.ReviewDTO, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT r.%s, r.%s, r.%s, r.%s, u.%s, u.%s, u.%s "+
				"FROM %s r JOIN %s u ON r.%s = u.%s "+
				"WHERE r.%s = @productID ORDER BY r.%s DESC",
			m_review.ReviewID, m_review.Rating, m_review.Content, m_review.CreatedAt,
			m_user.UserID, m_user.Name, m_user.Image,
			m_review.TableName, m_user.TableName, m_review.UserID, m_user.UserID,
			m_review.ProductID, m_review.CreatedAt,
		),
		Params: map[string]interface{}{"productID": productID},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	reviews := []contracts.ReviewDTO{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reviews: %w", err)
		}

		var dto contracts.ReviewDTO
		if err := row.Columns(
			&dto.ReviewID, &dto.Rating, &dto.Content, &dto.CreatedAt,
			&dto.Reviewer.UserID, &dto.Reviewer.Name, &dto.Reviewer.Image,
		); err != nil {
			return nil, fmt.Errorf("failed to parse review: %w", err)
		}
		reviews = append(reviews, dto)
	}

	return reviews, nil
}

// loadRecentOrderItems fetches the most recent sold units of a product
// with their parent orders.
func (rm *ReadModelImpl) loadRecentOrderItems(ctx context.Context, productID string) ([]contracts.OrderItemDTO, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, o.%s, o.%s, o.%s, o.%s "+
				"FROM %s i JOIN %s o ON i.%s = o.%s "+
				"WHERE i.%s = @productID ORDER BY i.%s DESC LIMIT @limit",
			m_order_item.OrderItemID, m_order_item.Quantity, m_order_item.UnitPrice,
			m_order_item.Size, m_order_item.Color, m_order_item.CreatedAt,
			m_order.OrderID, m_order.Status, m_order.Total, m_order.CreatedAt,
			m_order_item.TableName, m_order.TableName, m_order_item.OrderID, m_order.OrderID,
			m_order_item.ProductID, m_order_item.CreatedAt,
		),
		Params: map[string]interface{}{
			"productID": productID,
			"limit":     int64(recentOrderItemLimit),
		},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	items := []contracts.OrderItemDTO{}
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate order items: %w", err)
		}

		var dto contracts.OrderItemDTO
		if err := row.Columns(
			&dto.OrderItemID, &dto.Quantity, &dto.UnitPrice,
			&dto.Size, &dto.Color, &dto.CreatedAt,
			&dto.Order.OrderID, &dto.Order.Status, &dto.Order.Total, &dto.Order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to parse order item: %w", err)
		}
		items = append(items, dto)
	}

	return items, nil
}

// attachCounts decorates a page of cards with their order-item and
// review counts.
func (rm *ReadModelImpl) attachCounts(ctx context.Context, cards []*contracts.ProductCard) ([]*contracts.AdminProductRow, error) {
	rows := make([]*contracts.AdminProductRow, 0, len(cards))
	if len(cards) == 0 {
		return rows, nil
	}

	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.ProductID)
	}

	orderCounts, err := rm.countByProduct(ctx, m_order_item.TableName, m_order_item.ProductID, ids)
	if err != nil {
		return nil, err
	}
	reviewCounts, err := rm.countByProduct(ctx, m_review.TableName, m_review.ProductID, ids)
	if err != nil {
		return nil, err
	}

	for _, card := range cards {
		rows = append(rows, &contracts.AdminProductRow{
			ProductCard:    *card,
			OrderItemCount: orderCounts[card.ProductID],
			ReviewCount:    reviewCounts[card.ProductID],
		})
	}
	return rows, nil
}

// countByProduct groups row counts of a relation table by product.
func (rm *ReadModelImpl) countByProduct(ctx context.Context, table, column string, productIDs []string) (map[string]int64, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT %s, COUNT(*) FROM %s WHERE %s IN UNNEST(@ids) GROUP BY %s",
			column, table, column, column,
		),
		Params: map[string]interface{}{"ids": productIDs},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	counts := make(map[string]int64, len(productIDs))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}

		var id string
		var count int64
		if err := row.Columns(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to parse count row: %w", err)
		}
		counts[id] = count
	}

	return counts, nil
}

// dataToCard converts database Data to the card projection.
func dataToCard(data *m_product.Data) *contracts.ProductCard {
	card := &contracts.ProductCard{
		ProductID:    data.ProductID,
		Slug:         data.Slug,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Inventory:    data.Inventory,
		PrimaryImage: data.PrimaryImage,
		ModelImage:   data.ModelImage,
		Images:       data.Images,
		Category:     data.Category,
		ClothType:    data.ClothType,
		Tags:         data.Tags,
		Sizes:        data.Sizes,
		IsActive:     data.IsActive,
		Featured:     data.Featured,
		TimesSold:    data.TimesSold,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.SalePrice.Valid {
		salePrice := data.SalePrice.Float64
		card.SalePrice = &salePrice
	}

	return card
}
