package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "github.com/abhi01326/eatoes/config"
	"github.com/abhi01326/eatoes/models"
	"github.com/abhi01326/eatoes/search"
	"github.com/go-playground/validator"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menu_items")
var validate = validator.New()

// writeError emits the JSON error envelope. Dynamic messages go through
// the encoder so quotes in error text cannot break the body.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// Get all menu items with optional filters
func GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	query := r.URL.Query()
	filter := search.BuildListFilter(
		query.Get("category"),
		query.Get("isAvailable"),
		query.Get("minPrice"),
		query.Get("maxPrice"),
	)

	cursor, err := menuItemCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu items"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// Search menu items by name or ingredients (any word match)
func SearchMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	query := r.URL.Query()
	filter, ok := search.BuildSearchFilter(query.Get("q"), query.Get("category"), query.Get("isAvailable"))
	if !ok {
		// Empty query means "no search": return an empty set without
		// scanning the store.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.MenuItem{})
		return
	}

	cursor, err := menuItemCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error searching menu items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu items"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// Get a single menu item
func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid menu item id format"}`, http.StatusBadRequest)
		return
	}

	var item models.MenuItem
	err = menuItemCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// Create a menu item
func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	if !models.IsValidCategory(item.Category) {
		http.Error(w, `{"success": false, "message": "Category must be one of Appetizer, Main Course, Dessert, Beverage"}`, http.StatusBadRequest)
		return
	}

	// Availability defaults to true when omitted
	if item.IsAvailable == nil {
		available := true
		item.IsAvailable = &available
	}
	if item.Ingredients == nil {
		item.Ingredients = []string{}
	}

	item.ID = primitive.NewObjectID()
	item.Created_at = time.Now()
	item.Updated_at = time.Now()

	if _, err := menuItemCollection.InsertOne(ctx, item); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// Update a menu item (full-document replace)
func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid menu item id format"}`, http.StatusBadRequest)
		return
	}

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	if !models.IsValidCategory(item.Category) {
		http.Error(w, `{"success": false, "message": "Category must be one of Appetizer, Main Course, Dessert, Beverage"}`, http.StatusBadRequest)
		return
	}

	// Fetch the existing item to keep its creation timestamp
	var existing models.MenuItem
	err = menuItemCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu item"}`, http.StatusInternalServerError)
		return
	}

	if item.IsAvailable == nil {
		available := true
		item.IsAvailable = &available
	}
	if item.Ingredients == nil {
		item.Ingredients = []string{}
	}

	item.ID = id
	item.Created_at = existing.Created_at
	item.Updated_at = time.Now()

	if _, err := menuItemCollection.ReplaceOne(ctx, bson.M{"_id": id}, item); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item update failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// Delete a menu item. Existing orders keep their own price and quantity
// snapshot, so they are never touched here.
func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid menu item id format"}`, http.StatusBadRequest)
		return
	}

	result, err := menuItemCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error deleting menu item"}`, http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"message": "Menu item deleted"})
}

// Toggle availability status
func ToggleMenuItemAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 100*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid menu item id format"}`, http.StatusBadRequest)
		return
	}

	var item models.MenuItem
	err = menuItemCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu item"}`, http.StatusInternalServerError)
		return
	}

	toggled := true
	if item.IsAvailable != nil {
		toggled = !*item.IsAvailable
	}
	item.IsAvailable = &toggled
	item.Updated_at = time.Now()

	update := bson.M{"$set": bson.M{"isAvailable": toggled, "updatedAt": item.Updated_at}}
	if _, err := menuItemCollection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update availability"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}
