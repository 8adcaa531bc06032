package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/api"
	"shopadmin/models"
)

var _ API = (*fakeAPI)(nil)

func newConsole(t *testing.T) (*Console, *fakeAPI) {
	t.Helper()
	f := newFakeAPI()
	c := NewConsole(f, nil)
	c.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return c, f
}

func TestLoadUsersEnrichesRoles(t *testing.T) {
	c, f := newConsole(t)
	f.userRolesErr["U2"] = errOffline

	users, err := c.Users.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Super Admin", users[0].Roles)
	assert.Equal(t, "", users[1].Roles, "failed lookup leaves roles empty")
	assert.Equal(t, "Support, Catalog Manager", users[2].Roles)
	assert.Equal(t, 3, f.count("UserRoles"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil, "fallback"))
	assert.Equal(t, "fallback", Message(errOffline, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
	assert.Equal(t, "User already exists", Message(&BusinessError{Message: "User already exists"}, "fallback"))
	assert.Equal(t, "Role not found", Message(&api.Error{Status: 404, Message: "Role not found"}, "fallback"))
	assert.Equal(t, "fallback", Message(&api.Error{Status: 500}, "fallback"))
	assert.Equal(t, "Please correct the highlighted fields.", Message(&ValidationError{Fields: map[string]string{"a": "b"}}, "x"))
}

func TestRegisterUser(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()
	_, err := c.Users.Load(ctx)
	require.NoError(t, err)

	m := c.AddUserModal()
	m.Open(UserForm{UserID: "U9", UserName: "zoe", Email: "zoe@example.com", Password: "secret1"})
	require.NoError(t, m.Submit(ctx))
	assert.False(t, m.IsOpen())
	assert.Equal(t, UserForm{}, m.Form(), "form resets after success")

	u, ok := c.Users.Get("U9")
	require.True(t, ok)
	assert.Equal(t, "Inactive", u.Status)
	assert.Equal(t, "2024-05-01 10:00", u.RegisteredAt.Time.UTC().Format("2006-01-02 15:04"))

	f.registerMsg = "User already exists"
	m.Open(UserForm{UserID: "U9", UserName: "zoe", Email: "zoe@example.com", Password: "secret1"})
	err = m.Submit(ctx)
	var berr *BusinessError
	require.ErrorAs(t, err, &berr)
	assert.True(t, m.IsOpen())
	assert.Equal(t, "User already exists", m.Err())
	assert.Len(t, c.Users.Items(), 4)

	f.registerErr = errOffline
	err = m.Submit(ctx)
	require.Error(t, err)
	assert.Equal(t, "Error registering user. Please try again.", m.Err())
}

func TestRegisterUserValidationSkipsNetwork(t *testing.T) {
	c, f := newConsole(t)
	m := c.AddUserModal()
	m.Open(UserForm{UserID: "U9", Email: "not-an-email", Password: "123"})

	err := m.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"userName": "User Name is required",
		"email":    "Enter a valid email address",
		"password": "Password must be at least 6 characters",
	}, m.FieldErrors())
	assert.Equal(t, "", m.Err())
	assert.Equal(t, 0, f.count("RegisterAdminUser"))
	assert.True(t, m.IsOpen())
}

func TestSubmitClosedModal(t *testing.T) {
	c, _ := newConsole(t)
	m := c.AddCategoryModal()
	assert.ErrorIs(t, m.Submit(context.Background()), ErrModalClosed)

	m.Open(CategoryForm{CatName: "Toys"})
	m.Close()
	assert.ErrorIs(t, m.Submit(context.Background()), ErrModalClosed)
}

func TestUpdateUserPatchesRow(t *testing.T) {
	c, _ := newConsole(t)
	ctx := context.Background()
	users, err := c.Users.Load(ctx)
	require.NoError(t, err)

	m := c.UpdateUserModal()
	seed := UpdateUserSeed(users[1])
	seed.UserName = "bilal.k"
	seed.Password = "pw"
	m.Open(seed)
	require.NoError(t, m.Submit(ctx))

	u, _ := c.Users.Get("U2")
	assert.Equal(t, "bilal.k", u.UserName)
	assert.Equal(t, "bilal@example.com", u.Email)
}

func TestUserStatusToggle(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()
	_, err := c.Users.Load(ctx)
	require.NoError(t, err)

	tg, err := c.BeginUserToggle("U1")
	require.NoError(t, err)
	u, _ := c.Users.Get("U1")
	assert.Equal(t, "Inactive", u.Status, "flips before the write")
	require.NoError(t, tg.Commit(ctx))
	u, _ = c.Users.Get("U1")
	assert.Equal(t, "Inactive", u.Status)

	f.statusErr = errOffline
	tg, err = c.BeginUserToggle("U2")
	require.NoError(t, err)
	assert.Equal(t, "Inactive", tg.Prev)
	assert.Equal(t, "Active", tg.Next)
	u, _ = c.Users.Get("U2")
	assert.Equal(t, "Active", u.Status)
	require.Error(t, tg.Commit(ctx))
	u, _ = c.Users.Get("U2")
	assert.Equal(t, "Inactive", u.Status, "reverted after failed write")

	_, err = c.BeginUserToggle("nobody")
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestDeleteRemovesOnlyMatchingID(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()
	users, err := c.Users.Load(ctx)
	require.NoError(t, err)

	d := c.DeleteUserConfirm()
	assert.ErrorIs(t, d.Confirm(ctx), ErrModalClosed)

	d.Ask(users[1])
	assert.Len(t, c.Users.Items(), 3, "nothing deleted before confirming")
	assert.Equal(t, 0, f.count("DeleteAdminUser"))

	d.Cancel()
	_, pending := d.Pending()
	assert.False(t, pending)

	d.Ask(users[1])
	require.NoError(t, d.Confirm(ctx))
	var ids []models.ID
	for _, u := range c.Users.Items() {
		ids = append(ids, u.UserID)
	}
	assert.Equal(t, []models.ID{"U1", "U3"}, ids)

	f.deleteErr = errOffline
	d.Ask(users[0])
	require.Error(t, d.Confirm(ctx))
	assert.Equal(t, "Failed to delete User", d.Err())
	assert.Len(t, c.Users.Items(), 2)
	_, pending = d.Pending()
	assert.True(t, pending)
}

func TestRoleAssignment(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()
	_, err := c.Users.Load(ctx)
	require.NoError(t, err)
	_, err = c.Roles.Load(ctx)
	require.NoError(t, err)

	r := c.NewRoleAssignment()
	assert.ErrorIs(t, r.Submit(ctx), ErrModalClosed)

	r.Open("U2")
	assert.Equal(t, AssignOpen, r.State())
	assert.Equal(t, []string{"Super Admin", "Support"}, r.Options())
	assert.ErrorIs(t, r.Submit(ctx), ErrNoRoleSelected)
	assert.Equal(t, "Please select a role", r.Err())
	assert.Equal(t, 0, f.count("AssignRole"))

	r.Select("Support")
	assert.Equal(t, AssignSelected, r.State())
	require.NoError(t, r.Submit(ctx))
	assert.Equal(t, AssignClosed, r.State())
	u, _ := c.Users.Get("U2")
	assert.Equal(t, "Support", u.Roles)

	// Already held: no duplicate append.
	r.Open("U2")
	r.Select("support")
	require.NoError(t, r.Submit(ctx))
	u, _ = c.Users.Get("U2")
	assert.Equal(t, "Support", u.Roles)

	f.assignErr = errOffline
	r.Open("U1")
	r.Select("Support")
	require.Error(t, r.Submit(ctx))
	assert.Equal(t, AssignSelected, r.State())
	assert.Equal(t, "Failed to assign role", r.Err())
	u, _ = c.Users.Get("U1")
	assert.Equal(t, "Super Admin", u.Roles, "append rolled back")
}

func TestDetailRefetchesOnReopen(t *testing.T) {
	c, f := newConsole(t)
	ctx := context.Background()
	d := c.ProductDetail()

	assert.ErrorIs(t, d.Load(ctx), ErrModalClosed)

	d.Open("P1")
	assert.True(t, d.Loading())
	require.NoError(t, d.Load(ctx))
	p, ok := d.Value()
	require.True(t, ok)
	assert.Equal(t, models.ID("P1"), p.ProductID)

	d.Close()
	_, ok = d.Value()
	assert.False(t, ok)

	d.Open("P1")
	_, ok = d.Value()
	assert.False(t, ok, "no stale render on reopen")
	require.NoError(t, d.Load(ctx))
	assert.Equal(t, 2, f.count("GetProduct"))

	f.productErr = errOffline
	d.Open("P2")
	require.Error(t, d.Load(ctx))
	assert.Equal(t, "Failed to load product details", d.Err())
	assert.False(t, d.Loading())
}

func TestDetailDiscardsLateResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	d := NewDetail(func(_ context.Context, id models.ID) (string, error) {
		close(started)
		<-release
		return "value for " + id.String(), nil
	}, "failed")

	d.Open("A")
	done := make(chan error, 1)
	go func() { done <- d.Load(context.Background()) }()
	<-started

	d.Close()
	d.Open("B")
	close(release)

	assert.ErrorIs(t, <-done, ErrStale)
	_, ok := d.Value()
	assert.False(t, ok)
	assert.Equal(t, models.ID("B"), d.ID())
	assert.True(t, d.Loading())
}
