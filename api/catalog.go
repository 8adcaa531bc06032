package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"shopadmin/models"
)

// ListCategories returns every category.
// GET /api/getCategories, envelope [[categories...]].
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out models.NestedList[models.Category]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/api/getCategories"}, &out)
	if err != nil {
		return nil, err
	}
	return out.First(), nil
}

// AddCategory creates a category.
// POST /api/addCategory.
func (c *Client) AddCategory(ctx context.Context, req models.CategoryRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: fiber.MethodPost, backend: RetailBackend, path: "/api/addCategory", body: req}, &out)
	return out, err
}

// DeleteCategory removes a category.
// DELETE /api/deleteCategory/:id.
func (c *Client) DeleteCategory(ctx context.Context, catID models.ID) error {
	return c.do(ctx, request{method: fiber.MethodDelete, backend: RetailBackend, path: "/api/deleteCategory/" + pathID(catID.String())}, nil)
}

// ListSubCategories returns every subcategory.
// GET /api/subCategory, envelope {data}.
func (c *Client) ListSubCategories(ctx context.Context) ([]models.SubCategory, error) {
	var out models.DataEnvelope[[]models.SubCategory]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: AdminBackend, path: "/api/subCategory"}, &out)
	return out.Data, err
}

// AddSubCategory creates a subcategory under an existing category.
// POST /api/subCategory.
func (c *Client) AddSubCategory(ctx context.Context, req models.SubCategoryRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, request{method: fiber.MethodPost, backend: AdminBackend, path: "/api/subCategory", body: req}, &out)
	return out, err
}

// DeleteSubCategory removes a subcategory.
// DELETE /api/delete_subCategory/:id.
func (c *Client) DeleteSubCategory(ctx context.Context, subCatID models.ID) error {
	return c.do(ctx, request{method: fiber.MethodDelete, backend: RetailBackend, path: "/api/delete_subCategory/" + pathID(subCatID.String())}, nil)
}

// ListProducts returns the product catalog.
// GET /products, envelope {data}.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out models.DataEnvelope[[]models.Product]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: AdminBackend, path: "/products"}, &out)
	return out.Data, err
}

// GetProduct returns one product.
// GET /products/:id, envelope {data}.
func (c *Client) GetProduct(ctx context.Context, productID models.ID) (models.Product, error) {
	var out models.DataEnvelope[models.Product]
	err := c.do(ctx, request{method: fiber.MethodGet, backend: RetailBackend, path: "/products/" + pathID(productID.String())}, &out)
	return out.Data, err
}
