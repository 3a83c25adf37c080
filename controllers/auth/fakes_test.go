package authcontroller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rahul77977/gagan-server/auth"
	"github.com/Rahul77977/gagan-server/middleware"
	"github.com/Rahul77977/gagan-server/models"
)

type fakeUserStore struct {
	users   []*models.User
	created []*models.User
	err     error
}

func (f *fakeUserStore) FindUserByUID(_ context.Context, uid string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) UserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserStore) UpdateUserByUID(ctx context.Context, uid string, upd models.UserUpdate) (*models.User, error) {
	user, err := f.FindUserByUID(ctx, uid)
	if err != nil || user == nil {
		return nil, err
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Picture != nil {
		user.Picture = *upd.Picture
	}
	if upd.PhoneNumber != nil {
		user.PhoneNumber = *upd.PhoneNumber
	}
	return user, nil
}

func (f *fakeUserStore) Users(_ context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeOrderStore struct {
	orders []*models.Order
	err    error
}

func (f *fakeOrderStore) OrdersByBuyer(_ context.Context, buyerID primitive.ObjectID) ([]models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Order
	for _, o := range f.orders {
		if o.Buyer == buyerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) OrderByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderStore) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus) (*models.Order, error) {
	order, err := f.OrderByID(ctx, id)
	if err != nil || order == nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (f *fakeOrderStore) AllOrders(_ context.Context) ([]models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

type fakeCountStore struct {
	users, products, orders int64
	payments                []models.Payment
}

func (f *fakeCountStore) CountUsers(context.Context) (int64, error)    { return f.users, nil }
func (f *fakeCountStore) CountProducts(context.Context) (int64, error) { return f.products, nil }
func (f *fakeCountStore) CountOrders(context.Context) (int64, error)   { return f.orders, nil }
func (f *fakeCountStore) OrderPayments(context.Context) ([]models.Payment, error) {
	return f.payments, nil
}

// serve runs the handler with the given claims preset, mimicking what
// VerifyToken does on a real request.
func serve(t *testing.T, method, path string, body string, claims *auth.Claims, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if claims != nil {
		r.Use(func(c *gin.Context) { middleware.SetClaims(c, claims) })
	}
	register(r)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
