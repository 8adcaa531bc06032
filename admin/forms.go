package admin

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"shopadmin/models"
)

// UserForm registers an admin account.
type UserForm struct {
	UserID   string `json:"userId" label:"User ID" validate:"required"`
	UserName string `json:"userName" label:"User Name" validate:"required"`
	Email    string `json:"email" label:"Email" validate:"required,email"`
	Password string `json:"password" label:"Password" validate:"required,min=6"`
}

// UserUpdateForm edits an admin account. UserID is fixed by the row.
type UserUpdateForm struct {
	UserID   string `json:"userId" label:"User ID" validate:"required"`
	UserName string `json:"userName" label:"User Name" validate:"required"`
	Email    string `json:"email" label:"Email" validate:"required,email"`
	Password string `json:"password" label:"Password" validate:"required"`
}

// RoleForm creates a role.
type RoleForm struct {
	RoleID   string `json:"roleId" label:"Role ID" validate:"required"`
	RoleName string `json:"roleName" label:"Role Name" validate:"required"`
}

// RoleUpdateForm renames a role.
type RoleUpdateForm struct {
	RoleID   string `json:"roleId" label:"Role ID" validate:"required"`
	RoleName string `json:"roleName" label:"Role Name" validate:"required"`
}

// CategoryForm creates a category.
type CategoryForm struct {
	CatName string `json:"catName" label:"Category Name" validate:"required"`
}

// SubCategoryForm creates a subcategory under a loaded category.
type SubCategoryForm struct {
	SubCatName string `json:"subCatName" label:"Sub Category Name" validate:"required"`
	CatID      string `json:"catId" label:"Category" validate:"required"`
}

// RetailerForm registers a retailer.
type RetailerForm struct {
	Name  string `json:"Retailer_Name" label:"Retailer Name" validate:"required"`
	Email string `json:"email" label:"Email" validate:"required,email"`
}

// TrackingForm appends a tracking event to an order.
type TrackingForm struct {
	Status string `json:"status" label:"Status" validate:"required,tracking_status"`
	Notes  string `json:"notes" label:"Notes"`
}

type formValidator struct {
	v *validator.Validate
}

func newFormValidator() *formValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("tracking_status", func(fl validator.FieldLevel) bool {
		return models.IsTrackingStatus(fl.Field().String())
	})
	return &formValidator{v: v}
}

// Check validates form and returns a *ValidationError keyed by JSON field
// name, or nil.
func (fv *formValidator) Check(form any) error {
	err := fv.v.Struct(form)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	t := reflect.Indirect(reflect.ValueOf(form)).Type()
	fields := make(map[string]string, len(ves))
	for _, fe := range ves {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		label := fe.Field()
		if sf, ok := t.FieldByName(fe.StructField()); ok && sf.Tag.Get("label") != "" {
			label = sf.Tag.Get("label")
		}
		fields[fe.Field()] = fieldMessage(label, fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "tracking_status":
		return "Select a valid status"
	default:
		return label + " is invalid"
	}
}
