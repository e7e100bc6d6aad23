package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "github.com/HenricoAmalfi03/Menu-Interativo/config"
	"github.com/HenricoAmalfi03/Menu-Interativo/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var waiterCollection *mongo.Collection = database.OpenCollection(database.Client, "waiter")

// Get all waiters (admin panel listing)
func GetWaiters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cursor, err := waiterCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving waiters"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var waiters []models.Waiter
	if err = cursor.All(ctx, &waiters); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding waiter data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Waiters retrieved successfully",
		"data":    waiters,
	})
}

// Get the waiters offered to customers at checkout. Only active waiters are
// ever eligible to receive an order.
func GetActiveWaiters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cursor, err := waiterCollection.Find(ctx, bson.M{"active": true}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving waiters"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var waiters []models.Waiter
	if err = cursor.All(ctx, &waiters); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding waiter data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Waiters retrieved successfully",
		"data":    waiters,
	})
}

// Get a single waiter
func GetWaiter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	waiterId := mux.Vars(r)["waiter_id"]

	var waiter models.Waiter
	if err := waiterCollection.FindOne(ctx, bson.M{"waiter_id": waiterId}).Decode(&waiter); err != nil {
		http.Error(w, `{"success": false, "message": "Waiter not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Waiter retrieved successfully",
		"data":    waiter,
	})
}

// Create a waiter
func CreateWaiter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var waiter models.Waiter
	if err := json.NewDecoder(r.Body).Decode(&waiter); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(waiter); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	if waiter.Active == nil {
		active := true
		waiter.Active = &active
	}

	waiter.ID = primitive.NewObjectID()
	waiter.Waiter_id = uuid.NewString()
	waiter.Created_at = time.Now()
	waiter.Updated_at = time.Now()

	if _, insertErr := waiterCollection.InsertOne(ctx, waiter); insertErr != nil {
		http.Error(w, `{"success": false, "message": "Waiter could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Waiter created successfully",
		"data":    waiter,
	})
}

// Update a waiter
func UpdateWaiter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	waiterId := mux.Vars(r)["waiter_id"]

	var waiter models.Waiter
	if err := json.NewDecoder(r.Body).Decode(&waiter); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	var existingWaiter models.Waiter
	if err := waiterCollection.FindOne(ctx, bson.M{"waiter_id": waiterId}).Decode(&existingWaiter); err != nil {
		http.Error(w, `{"success": false, "message": "Waiter not found"}`, http.StatusNotFound)
		return
	}

	updateObj := bson.M{"updated_at": time.Now()}

	if waiter.Name != nil {
		updateObj["name"] = waiter.Name
	}
	if waiter.Photo_url != nil {
		updateObj["photo_url"] = waiter.Photo_url
	}
	if waiter.Phone != nil {
		updateObj["phone"] = waiter.Phone
	}
	if waiter.Active != nil {
		updateObj["active"] = waiter.Active
	}

	filter := bson.M{"waiter_id": waiterId}
	if _, err := waiterCollection.UpdateOne(ctx, filter, bson.M{"$set": updateObj}); err != nil {
		http.Error(w, `{"success": false, "message": "Waiter update failed"}`, http.StatusInternalServerError)
		return
	}

	var updatedWaiter models.Waiter
	if err := waiterCollection.FindOne(ctx, filter).Decode(&updatedWaiter); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated waiter"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Waiter updated successfully",
		"data":    updatedWaiter,
	})
}

// Delete a waiter
func DeleteWaiter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	waiterId := mux.Vars(r)["waiter_id"]

	result, err := waiterCollection.DeleteOne(ctx, bson.M{"waiter_id": waiterId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error deleting waiter"}`, http.StatusInternalServerError)
		return
	}

	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "No waiter found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Waiter deleted successfully",
	})
}
