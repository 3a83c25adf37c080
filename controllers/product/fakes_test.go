package productcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rahul77977/gagan-server/auth"
	"github.com/Rahul77977/gagan-server/media"
	"github.com/Rahul77977/gagan-server/middleware"
	"github.com/Rahul77977/gagan-server/models"
	"github.com/Rahul77977/gagan-server/storage"
)

type fakeProductStore struct {
	products []*models.Product
	err      error

	lastLatestLimit int64
	lastPage        int64
	lastPerPage     int64
	lastFilter      storage.ProductFilter
	deleted         []primitive.ObjectID
	updated         []*models.Product
}

func (f *fakeProductStore) CreateProduct(_ context.Context, p *models.Product) error {
	if f.err != nil {
		return f.err
	}
	p.ID = primitive.NewObjectID()
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProductStore) ProductBySlug(_ context.Context, s string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.Slug == s {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductStore) ProductByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductStore) LatestProducts(_ context.Context, limit int64) ([]models.Product, error) {
	f.lastLatestLimit = limit
	return f.page(1, limit), nil
}

func (f *fakeProductStore) ProductPage(_ context.Context, page, perPage int64) ([]models.Product, error) {
	f.lastPage, f.lastPerPage = page, perPage
	return f.page(page, perPage), nil
}

func (f *fakeProductStore) FilterProducts(_ context.Context, filter storage.ProductFilter) ([]models.Product, error) {
	f.lastFilter = filter
	return f.page(1, int64(len(f.products))), nil
}

func (f *fakeProductStore) SearchProducts(_ context.Context, keyword string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(keyword)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) RelatedProducts(_ context.Context, categoryID, excludeID primitive.ObjectID, limit int64) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.Category == categoryID && p.ID != excludeID && int64(len(out)) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) ProductsByCategoryPage(_ context.Context, categoryID primitive.ObjectID, page, perPage int64) ([]models.Product, int64, error) {
	var all []models.Product
	for _, p := range f.products {
		if p.Category == categoryID {
			all = append(all, *p)
		}
	}
	start := (page - 1) * perPage
	end := start + perPage
	if start > int64(len(all)) {
		start = int64(len(all))
	}
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[start:end], int64(len(all)), nil
}

func (f *fakeProductStore) UpdateProduct(_ context.Context, p *models.Product) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeProductStore) DeleteProduct(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProductStore) DecrementProductStock(_ context.Context, id primitive.ObjectID, qty int) error {
	for _, p := range f.products {
		if p.ID == id {
			p.Stock -= qty
		}
	}
	return nil
}

func (f *fakeProductStore) CountProducts(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductStore) page(page, perPage int64) []models.Product {
	start := (page - 1) * perPage
	end := start + perPage
	if start > int64(len(f.products)) {
		start = int64(len(f.products))
	}
	if end > int64(len(f.products)) {
		end = int64(len(f.products))
	}
	out := make([]models.Product, 0, end-start)
	for _, p := range f.products[start:end] {
		out = append(out, *p)
	}
	return out
}

type fakeCategoryStore struct {
	categories []*models.Category
	err        error
	deleted    []primitive.ObjectID
}

func (f *fakeCategoryStore) CreateCategory(_ context.Context, cat *models.Category) error {
	if f.err != nil {
		return f.err
	}
	cat.ID = primitive.NewObjectID()
	f.categories = append(f.categories, cat)
	return nil
}

func (f *fakeCategoryStore) UpdateCategory(_ context.Context, cat *models.Category) error {
	return f.err
}

func (f *fakeCategoryStore) Categories(_ context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Category, 0, len(f.categories))
	for _, cat := range f.categories {
		out = append(out, *cat)
	}
	return out, nil
}

func (f *fakeCategoryStore) CategoryBySlug(_ context.Context, s string) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cat := range f.categories {
		if cat.Slug == s {
			return cat, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) CategoryByID(_ context.Context, id primitive.ObjectID) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cat := range f.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) DeleteCategory(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCarouselStore struct {
	images  []*models.CarouselImage
	err     error
	deleted []primitive.ObjectID
}

func (f *fakeCarouselStore) CreateCarouselImage(_ context.Context, img *models.CarouselImage) error {
	if f.err != nil {
		return f.err
	}
	img.ID = primitive.NewObjectID()
	f.images = append(f.images, img)
	return nil
}

func (f *fakeCarouselStore) CarouselImages(_ context.Context) ([]models.CarouselImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.CarouselImage, 0, len(f.images))
	for _, img := range f.images {
		out = append(out, *img)
	}
	return out, nil
}

func (f *fakeCarouselStore) CarouselImageByID(_ context.Context, id primitive.ObjectID) (*models.CarouselImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, img := range f.images {
		if img.ID == id {
			return img, nil
		}
	}
	return nil, nil
}

func (f *fakeCarouselStore) UpdateCarouselImage(ctx context.Context, id primitive.ObjectID, publicID, url string) (*models.CarouselImage, error) {
	img, err := f.CarouselImageByID(ctx, id)
	if err != nil || img == nil {
		return nil, err
	}
	img.PublicID = publicID
	img.URL = url
	return img, nil
}

func (f *fakeCarouselStore) DeleteCarouselImage(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type decrementCall struct {
	id  primitive.ObjectID
	qty int
}

type fakeCheckoutStore struct {
	users      []*models.User
	orders     []*models.Order
	decrements []decrementCall
	failOn     primitive.ObjectID
}

func (f *fakeCheckoutStore) FindUserByUID(_ context.Context, uid string) (*models.User, error) {
	for _, u := range f.users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeCheckoutStore) CreateOrder(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeCheckoutStore) DecrementProductStock(_ context.Context, id primitive.ObjectID, qty int) error {
	if id == f.failOn {
		return errors.New("write conflict")
	}
	f.decrements = append(f.decrements, decrementCall{id: id, qty: qty})
	return nil
}

type fakeUploader struct {
	uploaded   int
	destroyed  []string
	uploadErr  error
	destroyErr map[string]error
}

func (f *fakeUploader) Upload(_ context.Context, data []byte, contentType string) (media.Asset, error) {
	if f.uploadErr != nil {
		return media.Asset{}, f.uploadErr
	}
	f.uploaded++
	id := "asset-" + string(rune('0'+f.uploaded))
	return media.Asset{PublicID: id, URL: "https://cdn.example.com/" + id}, nil
}

func (f *fakeUploader) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return f.destroyErr[publicID]
}

// multipartBody builds a multipart form from field values plus optional
// fake image files under the given file field name.
func multipartBody(t *testing.T, fields map[string]string, fileField string, fileCount int) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for i := 0; i < fileCount; i++ {
		fw, err := mw.CreateFormFile(fileField, "img.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func newRouter(claims *auth.Claims, register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if claims != nil {
		r.Use(func(c *gin.Context) { middleware.SetClaims(c, claims) })
	}
	register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, r *gin.Engine, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
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
