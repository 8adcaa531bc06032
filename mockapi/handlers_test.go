package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shopadmin/models"
)

func call(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestListAdminUsersNestedEnvelope(t *testing.T) {
	app := New(Seed(), Options{})
	resp, raw := call(t, app, "POST", "/get_admin_user", "")
	assert.Equal(t, 200, resp.StatusCode)

	var out models.NestedList[models.AdminUser]
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out.First(), 3)
	assert.Equal(t, models.ID("U001"), out.First()[0].UserID)
}

func TestRegisterAdminUser(t *testing.T) {
	db := Seed()
	app := New(db, Options{})

	resp, raw := call(t, app, "POST", "/admin_user_registration",
		`{"userId":"U009","userName":"zoe","email":"zoe@example.com","password":"s3cret"}`)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"message":"User registered successfully"}`, string(raw))

	users := db.Users()
	last := users[len(users)-1]
	assert.Equal(t, models.ID("U009"), last.UserID)
	assert.Equal(t, "Inactive", last.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword(db.PasswordHash("U009"), []byte("s3cret")))

	// Duplicates are a business outcome, not an HTTP failure.
	resp, raw = call(t, app, "POST", "/admin_user_registration",
		`{"userId":"U009","userName":"zoe","email":"zoe@example.com","password":"s3cret"}`)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"message":"User already exists"}`, string(raw))

	resp, _ = call(t, app, "POST", "/admin_user_registration", `{"userId":"U010"}`)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateAndDeleteAdminUser(t *testing.T) {
	db := Seed()
	app := New(db, Options{})

	before := db.PasswordHash("U002")
	resp, _ := call(t, app, "PUT", "/admin_user_update",
		`{"userId":"U002","userName":"bilal.k","email":"bk@example.com"}`)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, before, db.PasswordHash("U002"), "empty password keeps the hash")

	resp, raw := call(t, app, "PUT", "/admin_user_update", `{"userId":"nope","userName":"x","email":"x@y.z"}`)
	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{"error":"User not found"}`, string(raw))

	resp, _ = call(t, app, "DELETE", "/delete_user/U002", "")
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = call(t, app, "DELETE", "/delete_user/U002", "")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestUserStatusAndRoles(t *testing.T) {
	db := Seed()
	app := New(db, Options{})

	resp, _ := call(t, app, "POST", "/update_admin_user_status", `{"userId":"U002","status":"Active"}`)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = call(t, app, "POST", "/update_admin_user_status", `{"userId":"U002","status":"Paused"}`)
	assert.Equal(t, 400, resp.StatusCode)

	resp, raw := call(t, app, "GET", "/get_user_roles/U002", "")
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))

	resp, _ = call(t, app, "POST", "/add_admin_role_assign", `{"userId":"U002","role":"Support"}`)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = call(t, app, "POST", "/add_admin_role_assign", `{"userId":"U002","role":"Astronaut"}`)
	assert.Equal(t, 404, resp.StatusCode)

	_, raw = call(t, app, "GET", "/get_user_roles/U002", "")
	assert.JSONEq(t, `[{"roleName":"Support"}]`, string(raw))
}

func TestRoleEndpoints(t *testing.T) {
	app := New(Seed(), Options{})

	_, raw := call(t, app, "GET", "/check_role_id_exists?roleId=R1", "")
	assert.JSONEq(t, `{"exists":true}`, string(raw))
	_, raw = call(t, app, "GET", "/check_role_name_exists?roleName=Auditor", "")
	assert.JSONEq(t, `{"exists":false}`, string(raw))

	resp, _ := call(t, app, "POST", "/add_admin_role", `{"roleId":"R9","roleName":"Auditor"}`)
	assert.Equal(t, 201, resp.StatusCode)
	resp, _ = call(t, app, "POST", "/add_admin_role", `{"roleId":"R9","roleName":"Other"}`)
	assert.Equal(t, 409, resp.StatusCode)
	resp, _ = call(t, app, "POST", "/add_admin_role", `{"roleId":"R10","roleName":"Auditor"}`)
	assert.Equal(t, 409, resp.StatusCode)

	resp, _ = call(t, app, "PUT", "/update_admin_role", `{"roleId":"R9","roleName":"Auditors"}`)
	assert.Equal(t, 200, resp.StatusCode)
	resp, _ = call(t, app, "DELETE", "/delete_admin_role/R9", "")
	assert.Equal(t, 200, resp.StatusCode)

	_, raw = call(t, app, "GET", "/get_admin_role", "")
	var roles []models.Role
	require.NoError(t, json.Unmarshal(raw, &roles))
	assert.Len(t, roles, 3)
}

func TestCatalogEndpoints(t *testing.T) {
	app := New(Seed(), Options{})

	_, raw := call(t, app, "GET", "/api/getCategories", "")
	var cats models.NestedList[models.Category]
	require.NoError(t, json.Unmarshal(raw, &cats))
	assert.Len(t, cats.First(), 3)

	resp, raw := call(t, app, "POST", "/api/subCategory", `{"subCatName":"Tablets","catId":"1"}`)
	assert.Equal(t, 201, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Sub Category Created Successfully"}`, string(raw))

	resp, _ = call(t, app, "POST", "/api/subCategory", `{"subCatName":"Orphans","catId":"99"}`)
	assert.Equal(t, 404, resp.StatusCode)

	resp, _ = call(t, app, "DELETE", "/api/deleteCategory/1", "")
	assert.Equal(t, 409, resp.StatusCode)

	resp, _ = call(t, app, "POST", "/api/addCategory", `{"catName":"  "}`)
	assert.Equal(t, 400, resp.StatusCode)

	_, raw = call(t, app, "GET", "/products/P101", "")
	var product models.DataEnvelope[models.Product]
	require.NoError(t, json.Unmarshal(raw, &product))
	assert.Equal(t, models.ListRaw, product.Data.Sizes.State)
	assert.Equal(t, "[7, 8, 9", product.Data.Sizes.Raw)

	resp, _ = call(t, app, "GET", "/products/P404", "")
	assert.Equal(t, 404, resp.StatusCode)
}

func TestRetailerAndTrackingEndpoints(t *testing.T) {
	app := New(Seed(), Options{})

	resp, _ := call(t, app, "POST", "/retailers", `{"Retailer_Name":"Fabrikam","email":"not-an-email"}`)
	assert.Equal(t, 400, resp.StatusCode)

	resp, raw := call(t, app, "POST", "/retailers", `{"Retailer_Name":"Fabrikam","email":"ops@fabrikam.example.com"}`)
	assert.Equal(t, 201, resp.StatusCode)
	var created models.DataEnvelope[models.Retailer]
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "Active", created.Data.Status)
	assert.NotEmpty(t, created.Data.RetailerID)

	_, raw = call(t, app, "GET", "/retailers/RT1/products", "")
	var products models.DataEnvelope[[]models.Product]
	require.NoError(t, json.Unmarshal(raw, &products))
	assert.Len(t, products.Data, 2)

	resp, _ = call(t, app, "POST", "/orders/O5001/tracking", `{"status":"Lost","notes":""}`)
	assert.Equal(t, 400, resp.StatusCode)
	resp, _ = call(t, app, "POST", "/orders/O5001/tracking", `{"status":"Delivered","notes":"Left at door"}`)
	assert.Equal(t, 201, resp.StatusCode)

	_, raw = call(t, app, "GET", "/orders/O5001/tracking", "")
	var events models.DataEnvelope[[]models.TrackingEvent]
	require.NoError(t, json.Unmarshal(raw, &events))
	require.Len(t, events.Data, 3)
	assert.Equal(t, models.TrackingDelivered, events.Data[2].Status)

	_, raw = call(t, app, "GET", "/users/C1/orders", "")
	var orders models.DataEnvelope[[]models.Order]
	require.NoError(t, json.Unmarshal(raw, &orders))
	assert.Equal(t, models.TrackingDelivered, orders.Data[0].OrderStatus)
}

func TestCustomerStatus(t *testing.T) {
	db := Seed()
	app := New(db, Options{})

	resp, _ := call(t, app, "PUT", "/users/C2/status", `{"status":"Active"}`)
	assert.Equal(t, 200, resp.StatusCode)
	c, err := db.Customer("C2")
	require.NoError(t, err)
	assert.Equal(t, "Active", c.Status)

	resp, _ = call(t, app, "PUT", "/users/C404/status", `{"status":"Active"}`)
	assert.Equal(t, 404, resp.StatusCode)
}
