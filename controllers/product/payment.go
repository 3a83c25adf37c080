package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Rahul77977/gagan-server/middleware"
	"github.com/Rahul77977/gagan-server/models"
)

// No payment gateway is integrated; every checkout succeeds with this
// placeholder transaction id.
const dummyTransactionID = "dummyTransactionId123"

type cartItem struct {
	Product string  `json:"product"`
	Stock   int     `json:"stock"`
	Price   float64 `json:"price"`
}

type paymentRequest struct {
	Cart []cartItem `json:"cart" binding:"required"`
}

// Payment turns the submitted cart into an order and then decrements each
// product's stock. The decrement loop runs after the order is persisted and
// is not transactional with it: a failure partway through leaves the order
// in place with stock only partially adjusted. There is no availability
// check, so stock can go negative.
func Payment(store CheckoutStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Unauthorized"})
			return
		}

		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "Invalid cart payload"})
			return
		}

		var total float64
		items := make([]models.OrderProduct, 0, len(req.Cart))
		for _, item := range req.Cart {
			productID, err := primitive.ObjectIDFromHex(item.Product)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "Invalid product id"})
				return
			}

			qty := item.Stock
			if qty == 0 {
				qty = 1
			}
			total += item.Price * float64(qty)

			items = append(items, models.OrderProduct{
				Product: productID,
				Stock:   item.Stock,
				Price:   item.Price,
			})
		}

		ctx := c.Request.Context()
		user, err := store.FindUserByUID(ctx, claims.UID)
		if err != nil {
			zap.L().Error("buyer lookup failed", zap.String("uid", claims.UID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "An error occurred"})
			return
		}
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "User not found"})
			return
		}

		order := &models.Order{
			Products: items,
			Buyer:    user.ID,
			Status:   models.OrderStatusNotProcess,
			Payment: models.Payment{
				Status:        models.PaymentStatusSuccess,
				TransactionID: dummyTransactionID,
				Amount:        total,
			},
		}
		if err := store.CreateOrder(ctx, order); err != nil {
			zap.L().Error("order create failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "An error occurred"})
			return
		}

		for _, item := range order.Products {
			if err := store.DecrementProductStock(ctx, item.Product, item.Stock); err != nil {
				zap.L().Error("stock decrement failed",
					zap.String("product", item.Product.Hex()),
					zap.Int("qty", item.Stock),
					zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": "An error occurred"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "totalAmount": total})
	}
}
