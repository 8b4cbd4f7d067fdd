package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	database "github.com/abhi01326/eatoes/config"
	"github.com/abhi01326/eatoes/helper"
	"github.com/abhi01326/eatoes/models"
	"github.com/abhi01326/eatoes/pricing"
	"github.com/abhi01326/eatoes/search"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "orders")

// Attempts before giving up on a unique order number.
const orderNumberRetries = 3

// mongoCatalog adapts the menu item collection to the pricing engine's
// resolver contract.
type mongoCatalog struct {
	col *mongo.Collection
}

func (c mongoCatalog) ResolveMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := c.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Get all orders with pagination and status filtering
func GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := orderCollection.Find(ctx, filter, search.PageOptions(page, limit))
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding orders"}`, http.StatusInternalServerError)
		return
	}

	total, err := orderCollection.CountDocuments(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total order count"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"orders": orders,
		"total":  total,
	})
}

// expandedOrderLine carries the full menu item document in place of the
// reference for dashboard display. A dangling reference (item deleted
// after the order was placed) expands to null.
type expandedOrderLine struct {
	MenuItem *models.MenuItem `json:"menuItem"`
	Quantity int              `json:"quantity"`
	Price    float64          `json:"price"`
}

type expandedOrder struct {
	ID           primitive.ObjectID  `json:"_id"`
	OrderNumber  string              `json:"orderNumber"`
	Items        []expandedOrderLine `json:"items"`
	TotalAmount  float64             `json:"totalAmount"`
	Status       string              `json:"status"`
	CustomerName string              `json:"customerName,omitempty"`
	TableNumber  *int                `json:"tableNumber,omitempty"`
	Created_at   time.Time           `json:"createdAt"`
	Updated_at   time.Time           `json:"updatedAt"`
}

// Get a single order with menu item references expanded
func GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid order id format"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err = orderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	catalog := mongoCatalog{col: menuItemCollection}
	lines := make([]expandedOrderLine, 0, len(order.Items))
	for _, line := range order.Items {
		item, err := catalog.ResolveMenuItem(ctx, line.MenuItem)
		if err != nil {
			http.Error(w, `{"success": false, "message": "Error retrieving order items"}`, http.StatusInternalServerError)
			return
		}
		lines = append(lines, expandedOrderLine{
			MenuItem: item,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(expandedOrder{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		Items:        lines,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		CustomerName: order.CustomerName,
		TableNumber:  order.TableNumber,
		Created_at:   order.Created_at,
		Updated_at:   order.Updated_at,
	})
}

// Create a new order. Every line is resolved against the catalog and
// stamped with the authoritative price before anything is persisted;
// a single bad line rejects the whole order.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(req); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Order must contain at least one item"}`, http.StatusBadRequest)
		return
	}

	draft, err := pricing.PriceOrder(ctx, mongoCatalog{col: menuItemCollection}, req.Items)
	if errors.Is(err, pricing.ErrInvalidMenuItem) || errors.Is(err, pricing.ErrInvalidQuantity) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error resolving order items"}`, http.StatusInternalServerError)
		return
	}

	order := models.Order{
		ID:           primitive.NewObjectID(),
		Items:        draft.Items,
		TotalAmount:  draft.TotalAmount,
		Status:       models.StatusPending,
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Created_at:   time.Now(),
		Updated_at:   time.Now(),
	}

	// The unique index on orderNumber turns a numbering collision into a
	// duplicate-key error; regenerate and retry instead of overwriting.
	inserted := false
	for attempt := 0; attempt < orderNumberRetries; attempt++ {
		order.OrderNumber = helper.GenerateOrderNumber()
		_, err = orderCollection.InsertOne(ctx, order)
		if err == nil {
			inserted = true
			break
		}
		if !mongo.IsDuplicateKeyError(err) {
			http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
			return
		}
	}
	if !inserted {
		http.Error(w, `{"success": false, "message": "Could not assign a unique order number"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// Update order status. Transitions are unconstrained: any known status
// may replace any other.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid order id format"}`, http.StatusBadRequest)
		return
	}

	var requestBody struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !models.IsValidOrderStatus(requestBody.Status) {
		http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
		return
	}

	update := bson.M{
		"$set": bson.M{
			"status":    requestBody.Status,
			"updatedAt": time.Now(),
		},
	}

	result, err := orderCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update order status"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}
