package mockapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopadmin/models"
)

// HandleListCategories returns categories wrapped as [[categories], []].
// GET /api/getCategories
func (s *server) HandleListCategories(c *fiber.Ctx) error {
	cats := s.db.Categories()
	if cats == nil {
		cats = []models.Category{}
	}
	return c.JSON([]any{cats, []any{}})
}

// HandleAddCategory creates a category.
// POST /api/addCategory
func (s *server) HandleAddCategory(c *fiber.Ctx) error {
	var req models.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.CatName) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Category Name is required")
	}
	s.db.AddCategory(strings.TrimSpace(req.CatName))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Category added successfully"})
}

// HandleDeleteCategory removes a category that has no subcategories.
// DELETE /api/deleteCategory/:id
func (s *server) HandleDeleteCategory(c *fiber.Ctx) error {
	err := s.db.DeleteCategory(models.ID(c.Params("id")))
	switch {
	case errors.Is(err, errExists):
		return errorJSON(c, fiber.StatusConflict, "Category still has subcategories")
	case err != nil:
		return errorJSON(c, fiber.StatusNotFound, "Category not found")
	}
	return messageJSON(c, "Category deleted successfully")
}

// HandleListSubCategories returns {data: subcategories}.
// GET /api/subCategory
func (s *server) HandleListSubCategories(c *fiber.Ctx) error {
	subs := s.db.SubCategories()
	if subs == nil {
		subs = []models.SubCategory{}
	}
	return c.JSON(fiber.Map{"data": subs})
}

// HandleAddSubCategory creates a subcategory.
// POST /api/subCategory
func (s *server) HandleAddSubCategory(c *fiber.Ctx) error {
	var req models.SubCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.SubCatName) == "" || strings.TrimSpace(req.CatID) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "subCatName and catId are required")
	}
	if _, err := s.db.AddSubCategory(strings.TrimSpace(req.SubCatName), models.ID(req.CatID)); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Category not found")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Sub Category Created Successfully"})
}

// HandleDeleteSubCategory removes a subcategory.
// DELETE /api/delete_subCategory/:id
func (s *server) HandleDeleteSubCategory(c *fiber.Ctx) error {
	if err := s.db.DeleteSubCategory(models.ID(c.Params("id"))); err != nil {
		return errorJSON(c, fiber.StatusNotFound, "SubCategory not found")
	}
	return messageJSON(c, "SubCategory deleted successfully")
}

// HandleListProducts returns {data: products}.
// GET /products
func (s *server) HandleListProducts(c *fiber.Ctx) error {
	products := s.db.Products()
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleGetProduct returns {data: product}.
// GET /products/:id
func (s *server) HandleGetProduct(c *fiber.Ctx) error {
	p, err := s.db.Product(models.ID(c.Params("id")))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Product not found")
	}
	return c.JSON(fiber.Map{"data": p})
}
