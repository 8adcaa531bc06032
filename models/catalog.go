package models

// Category is a top-level product category.
type Category struct {
	CatID   ID     `json:"catId"`
	CatName string `json:"catName"`
}

func (c Category) Key() ID { return c.CatID }

// SubCategory belongs to exactly one Category through CatID.
type SubCategory struct {
	SubCatID   ID     `json:"subCatId"`
	SubCatName string `json:"subCatName"`
	CatID      ID     `json:"catId"`
}

func (s SubCategory) Key() ID { return s.SubCatID }

// Product is a catalog item. Images, colors, sizes and features arrive as
// JSON-encoded strings and are decoded at this boundary.
type Product struct {
	ProductID   ID          `json:"productId"`
	ProductName string      `json:"productName"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Brand       string      `json:"brand"`
	Price       Price       `json:"price"`
	Quantity    int         `json:"quantity"`
	Images      EncodedList `json:"images"`
	Colors      EncodedList `json:"colors"`
	Sizes       EncodedList `json:"sizes"`
	Features    EncodedList `json:"features"`
	Description string      `json:"description,omitempty"`
	AddedAt     Timestamp   `json:"addedAt"`
}

func (p Product) Key() ID { return p.ProductID }

// CategoryRequest is the body of POST /api/addCategory.
type CategoryRequest struct {
	CatName string `json:"catName"`
}

// SubCategoryRequest is the body of POST /api/subCategory.
type SubCategoryRequest struct {
	SubCatName string `json:"subCatName"`
	CatID      string `json:"catId"`
}

// RoleRequest is the body of the role create and update endpoints.
type RoleRequest struct {
	RoleID   string `json:"roleId"`
	RoleName string `json:"roleName"`
}
