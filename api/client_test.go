package api

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/mockapi"
	"shopadmin/models"
)

// serve starts app on a loopback port and returns its base URL.
func serve(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func newMockClient(t *testing.T) (*Client, *mockapi.Store) {
	t.Helper()
	db := mockapi.Seed()
	base := serve(t, mockapi.New(db, mockapi.Options{}))
	return New(Options{AdminURL: base, RetailURL: base, Timeout: 5 * time.Second}), db
}

func TestEnvelopes(t *testing.T) {
	c, _ := newMockClient(t)
	ctx := context.Background()

	users, err := c.ListAdminUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	roles, err := c.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 3)

	cats, err := c.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", cats[0].CatName)

	subs, err := c.ListSubCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 4)

	userRoles, err := c.UserRoles(ctx, "U003")
	require.NoError(t, err)
	assert.Equal(t, []models.UserRole{{RoleName: "Catalog Manager"}, {RoleName: "Support"}}, userRoles)

	products, err := c.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.False(t, products[2].Price.Valid)
	assert.Equal(t, []string{"Black", "Sage"}, products[0].Colors.Values())

	exists, err := c.RoleNameExists(ctx, "Support")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = c.RoleIDExists(ctx, "R42")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWritesRoundTrip(t *testing.T) {
	c, db := newMockClient(t)
	ctx := context.Background()

	resp, err := c.RegisterAdminUser(ctx, models.RegisterUserRequest{UserID: "U100", UserName: "kai", Email: "kai@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", resp.Message)

	resp, err = c.RegisterAdminUser(ctx, models.RegisterUserRequest{UserID: "U100", UserName: "kai", Email: "kai@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "User already exists", resp.Message)

	require.NoError(t, c.AssignRole(ctx, "U100", "Support"))
	require.NoError(t, c.UpdateAdminUserStatus(ctx, "U100", "Active"))
	require.NoError(t, c.SetRetailerStatus(ctx, "RT2", "Active"))
	require.NoError(t, c.SetCustomerStatus(ctx, "C2", "Active"))

	r, err := c.GetRetailer(ctx, "RT2")
	require.NoError(t, err)
	assert.Equal(t, "Active", r.Status)

	created, err := c.CreateRetailer(ctx, models.RetailerRequest{RetailerName: "Fabrikam", Email: "f@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Fabrikam", created.RetailerName)

	msg, err := c.AddSubCategory(ctx, models.SubCategoryRequest{SubCatName: "Tablets", CatID: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Sub Category Created Successfully", msg.Message)

	require.NoError(t, c.AddTracking(ctx, "O5002", models.TrackingRequest{Status: models.TrackingConfirmed}))
	events, err := c.Tracking(ctx, "O5002")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.TrackingConfirmed, events[0].Status)

	require.NoError(t, c.DeleteAdminUser(ctx, "U100"))
	assert.Len(t, db.Users(), 3)
}

func TestServerErrorMessage(t *testing.T) {
	c, _ := newMockClient(t)

	_, err := c.GetRetailer(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	msg, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Retailer not found", msg)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "GET /retailers/missing", apiErr.Endpoint)
}

func TestPlainTextAndDecodeErrors(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/get_admin_role", func(c *fiber.Ctx) error {
		return c.SendString("not json")
	})
	app.Get("/retailers", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).SendString("upstream down")
	})
	c := New(Options{AdminURL: serve(t, app)})

	_, err := c.ListRoles(context.Background())
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	_, err = c.ListRetailers(context.Background())
	msg, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "upstream down", msg)
}

func TestBearerTokenAndRequestID(t *testing.T) {
	secret := []byte("s3cret")
	token, err := mockapi.IssueToken(secret, "ops", time.Hour)
	require.NoError(t, err)

	seen := make(chan string, 1)
	app := mockapi.New(mockapi.Seed(), mockapi.Options{JWTSecret: string(secret)})
	app.Get("/echo", func(c *fiber.Ctx) error {
		seen <- c.Get(HeaderRequestID)
		return c.JSON([]models.Role{})
	})
	base := serve(t, app)

	_, err = New(Options{AdminURL: base}).ListRoles(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusUnauthorized, apiErr.Status)

	authed := New(Options{AdminURL: base, Token: token})
	_, err = authed.ListRoles(context.Background())
	require.NoError(t, err)

	require.NoError(t, authed.do(context.Background(), request{method: fiber.MethodGet, path: "/echo"}, nil))
	assert.Len(t, <-seen, 36)
}

func TestCancelledContextDiscardsResponse(t *testing.T) {
	release := make(chan struct{})
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/get_admin_role", func(c *fiber.Ctx) error {
		<-release
		return c.JSON([]models.Role{{RoleID: "R1"}})
	})
	c := New(Options{AdminURL: serve(t, app)})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	roles, err := c.ListRoles(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Nil(t, roles)
}

func TestTransportError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := New(Options{AdminURL: "http://" + addr, Timeout: time.Second})
	_, err = c.ListAdminUsers(context.Background())
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	_, ok := ServerMessage(err)
	assert.False(t, ok)
}

func TestRetailURLDefaultsToAdmin(t *testing.T) {
	c := New(Options{AdminURL: "http://admin.example.com/"})
	assert.Equal(t, "http://admin.example.com", c.retailURL)
	assert.Equal(t, "retail", RetailBackend.String())
}
