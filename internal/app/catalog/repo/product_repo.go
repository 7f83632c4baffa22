package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
	}
}

// GetByID retrieves a product by ID.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
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
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToDomain(&data), nil
}

// SlugExists checks whether another product already owns the slug.
// excludeID, when non-empty, removes the record being updated from the
// check.
func (r *ProductRepo) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	builder := query.From(m_product.TableName).
		Select(m_product.ProductID).
		Where(query.Eq(m_product.Slug, slug)).
		Limit(1)

	if excludeID != "" {
		builder = builder.Where(query.Neq(m_product.ProductID, excludeID))
	}

	iter := r.client.Single().Query(ctx, builder.Build())
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return true, nil
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(domainToData(product))
}

// UpdateMut creates a mutation for the given field updates.
func (r *ProductRepo) UpdateMut(productID string, update *contracts.ProductUpdate) *spanner.Mutation {
	updates := make(map[string]interface{})

	if update.Name != nil {
		updates[m_product.Name] = *update.Name
	}
	if update.Slug != nil {
		updates[m_product.Slug] = *update.Slug
	}
	if update.Description != nil {
		updates[m_product.Description] = *update.Description
	}
	if update.Price != nil {
		updates[m_product.Price] = *update.Price
	}
	if update.SalePrice != nil {
		updates[m_product.SalePrice] = spanner.NullFloat64{Float64: *update.SalePrice, Valid: true}
	}
	if update.Inventory != nil {
		updates[m_product.Inventory] = *update.Inventory
	}
	if update.PrimaryImage != nil {
		updates[m_product.PrimaryImage] = *update.PrimaryImage
	}
	if update.ModelImage != nil {
		updates[m_product.ModelImage] = *update.ModelImage
	}
	if update.Images != nil {
		updates[m_product.Images] = update.Images
	}
	if update.Category != nil {
		updates[m_product.Category] = domain.NormalizeCategory(*update.Category)
	}
	if update.ClothType != nil {
		updates[m_product.ClothType] = *update.ClothType
	}
	if update.Tags != nil {
		updates[m_product.Tags] = update.Tags
	}
	if update.Sizes != nil {
		updates[m_product.Sizes] = update.Sizes
	}
	if update.IsActive != nil {
		updates[m_product.IsActive] = *update.IsActive
	}
	if update.Featured != nil {
		updates[m_product.Featured] = *update.Featured
	}

	if len(updates) == 0 {
		return nil
	}
	return r.model.UpdateMut(productID, updates)
}

// DeleteMut creates a mutation for deleting a product.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// domainToData converts a domain Product to database Data.
func domainToData(product *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductID:    product.ID,
		Slug:         product.Slug,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Inventory:    product.Inventory,
		PrimaryImage: product.PrimaryImage,
		ModelImage:   product.ModelImage,
		Images:       product.Images,
		Category:     product.Category,
		ClothType:    product.ClothType,
		Tags:         product.Tags,
		Sizes:        product.Sizes,
		IsActive:     product.IsActive,
		Featured:     product.Featured,
		TimesSold:    product.TimesSold,
	}

	if product.SalePrice != nil {
		data.SalePrice = spanner.NullFloat64{Float64: *product.SalePrice, Valid: true}
	}

	return data
}

// dataToDomain converts database Data to a domain Product.
func dataToDomain(data *m_product.Data) *domain.Product {
	product := &domain.Product{
		ID:           data.ProductID,
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
		product.SalePrice = &salePrice
	}

	return product
}
