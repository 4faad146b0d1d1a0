package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cartdomain "tourback/internal/cart/domain"
	"tourback/internal/cart/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
)

// fakeCartRepo is an in-memory CartRepository
type fakeCartRepo struct {
	items map[string]*cartdomain.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]*cartdomain.CartItem)}
}

func (f *fakeCartRepo) Create(item *cartdomain.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.AddedAt = time.Now()
	f.items[item.ID] = item
	return nil
}

func (f *fakeCartRepo) FindByUser(userID string, purchased bool) ([]*cartdomain.CartItem, error) {
	var out []*cartdomain.CartItem
	for _, item := range f.items {
		if item.UserID == userID && item.Purchased == purchased {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) DeletePending(userID, itemID string) (int64, error) {
	item, ok := f.items[itemID]
	if !ok || item.UserID != userID || item.Purchased {
		return 0, nil
	}
	delete(f.items, itemID)
	return 1, nil
}

func (f *fakeCartRepo) MarkPurchased(userID, itemID string, purchasedAt time.Time) (int64, error) {
	item, ok := f.items[itemID]
	if !ok || item.UserID != userID || item.Purchased {
		return 0, nil
	}
	item.Purchased = true
	item.PurchasedAt = &purchasedAt
	return 1, nil
}

// asUser stands in for the auth middleware in handler tests
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newCartRouter(repo *fakeCartRepo, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCartHandler(usecase.NewCartUsecase(repo))

	r := gin.New()
	r.Use(asUser(userID))
	r.POST("/cart", handler.AddItem)
	r.GET("/cart", handler.ListItems)
	r.DELETE("/cart/:id", handler.RemoveItem)
	r.POST("/checkout/:id", handler.Checkout)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddItem(t *testing.T) {
	t.Parallel()

	repo := newFakeCartRepo()
	r := newCartRouter(repo, "user-1")

	w := doJSON(r, http.MethodPost, "/cart", `{"tour_name":"Taroko Gorge Day Trip","tour_price":2400}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Added to cart"}`, w.Body.String())
	assert.Len(t, repo.items, 1)
}

func TestAddItem_MissingFields(t *testing.T) {
	t.Parallel()

	repo := newFakeCartRepo()
	r := newCartRouter(repo, "user-1")

	w := doJSON(r, http.MethodPost, "/cart", `{"tour_name":"No Price"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.items)
}

func TestListItems_StatusFilter(t *testing.T) {
	t.Parallel()

	repo := newFakeCartRepo()
	r := newCartRouter(repo, "user-1")

	doJSON(r, http.MethodPost, "/cart", `{"tour_name":"Pending Tour","tour_price":100}`)
	doJSON(r, http.MethodPost, "/cart", `{"tour_name":"Bought Tour","tour_price":200}`)

	var boughtID string
	for id, item := range repo.items {
		if item.TourName == "Bought Tour" {
			boughtID = id
		}
	}
	doJSON(r, http.MethodPost, "/checkout/"+boughtID, "")

	w := doJSON(r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	var pending []cartdomain.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "Pending Tour", pending[0].TourName)

	w = doJSON(r, http.MethodGet, "/cart?status=purchased", "")
	require.Equal(t, http.StatusOK, w.Code)
	var purchased []cartdomain.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &purchased))
	require.Len(t, purchased, 1)
	assert.Equal(t, "Bought Tour", purchased[0].TourName)
	assert.NotNil(t, purchased[0].PurchasedAt)
}

func TestRemoveItem_NotOwnedIsNotFound(t *testing.T) {
	t.Parallel()

	repo := newFakeCartRepo()

	owner := newCartRouter(repo, "user-1")
	doJSON(owner, http.MethodPost, "/cart", `{"tour_name":"Someone Else's Tour","tour_price":999}`)

	var itemID string
	for id := range repo.items {
		itemID = id
	}

	intruder := newCartRouter(repo, "user-2")
	w := doJSON(intruder, http.MethodDelete, "/cart/"+itemID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, repo.items, 1)

	// Same status for a row that does not exist at all
	w = doJSON(intruder, http.MethodDelete, "/cart/"+uuid.New().String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckout_ResponseShape(t *testing.T) {
	t.Parallel()

	repo := newFakeCartRepo()
	r := newCartRouter(repo, "user-1")

	doJSON(r, http.MethodPost, "/cart", `{"tour_name":"Checkout Tour","tour_price":500}`)
	var itemID string
	for id := range repo.items {
		itemID = id
	}

	w := doJSON(r, http.MethodPost, "/checkout/"+itemID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Item checkout success", resp["msg"])

	_, err := time.Parse(time.RFC3339, resp["purchased_at"])
	assert.NoError(t, err)

	// Checking out twice is a 404, not a double purchase
	w = doJSON(r, http.MethodPost, "/checkout/"+itemID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
