package admin

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"shopadmin/models"
)

const (
	categoryFallback    = "Error adding category. Please try again."
	subCategoryFallback = "Error adding sub category. Please try again."
	productFallback     = "Failed to load product details"
)

// AddCategory creates a category and refetches the list.
func (c *Console) AddCategory(ctx context.Context, f CategoryForm) error {
	if _, err := c.api.AddCategory(ctx, models.CategoryRequest{CatName: strings.TrimSpace(f.CatName)}); err != nil {
		c.log.Error("add category", zap.String("name", f.CatName), zap.Error(err))
		return err
	}
	if _, err := c.Categories.Refresh(ctx); err != nil {
		c.log.Warn("refresh categories", zap.Error(err))
	}
	return nil
}

// CategoryOptions lists the categories a subcategory can belong to. It is
// nil until categories have loaded.
func (c *Console) CategoryOptions() []models.Category {
	if !c.Categories.Loaded() {
		return nil
	}
	return c.Categories.Items()
}

// AddSubCategory creates a subcategory under one of the loaded categories.
func (c *Console) AddSubCategory(ctx context.Context, f SubCategoryForm) error {
	if !c.Categories.Loaded() {
		return &ValidationError{Fields: map[string]string{"catId": "Categories are still loading"}}
	}
	if _, ok := c.Categories.Get(models.ID(f.CatID)); !ok {
		return &ValidationError{Fields: map[string]string{"catId": "Select a category"}}
	}

	resp, err := c.api.AddSubCategory(ctx, models.SubCategoryRequest{
		SubCatName: strings.TrimSpace(f.SubCatName),
		CatID:      f.CatID,
	})
	if err != nil {
		c.log.Error("add subcategory", zap.String("name", f.SubCatName), zap.Error(err))
		return err
	}
	if resp.Message != MsgSubCategoryCreated {
		msg := resp.Message
		if msg == "" {
			msg = subCategoryFallback
		}
		return &BusinessError{Message: msg}
	}
	if _, err := c.SubCategories.Refresh(ctx); err != nil {
		c.log.Warn("refresh subcategories", zap.Error(err))
	}
	return nil
}

// CategoryName resolves a category id through the cached categories.
func (c *Console) CategoryName(id models.ID) string {
	if cat, ok := c.Categories.Get(id); ok {
		return cat.CatName
	}
	return id.String()
}

func (c *Console) AddCategoryModal() *Modal[CategoryForm] {
	return NewModal(c.validate.Check, c.AddCategory, categoryFallback)
}

func (c *Console) AddSubCategoryModal() *Modal[SubCategoryForm] {
	return NewModal(c.validate.Check, c.AddSubCategory, subCategoryFallback)
}

func (c *Console) DeleteCategoryConfirm() *Confirm[models.Category] {
	return NewConfirm("Category", c.Categories, c.api.DeleteCategory)
}

func (c *Console) DeleteSubCategoryConfirm() *Confirm[models.SubCategory] {
	return NewConfirm("Sub Category", c.SubCategories, c.api.DeleteSubCategory)
}

// ProductDetail is the product detail view.
func (c *Console) ProductDetail() *Detail[models.Product] {
	return NewDetail(c.api.GetProduct, productFallback)
}
