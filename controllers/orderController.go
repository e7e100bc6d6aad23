package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	database "github.com/HenricoAmalfi03/Menu-Interativo/config"
	"github.com/HenricoAmalfi03/Menu-Interativo/models"
	"github.com/HenricoAmalfi03/Menu-Interativo/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

// fallbackWhatsAppNumber is used when the chosen waiter has no phone on
// file.
func fallbackWhatsAppNumber() string {
	if number := os.Getenv("FALLBACK_WHATSAPP_NUMBER"); number != "" {
		return number
	}
	return "5511999999999"
}

// orderSubmission is the order submission boundary payload: the checkout
// form fields plus the client-held cart.
type orderSubmission struct {
	service.CheckoutInfo
	Waiter_id string       `json:"waiter_id"`
	Items     service.Cart `json:"items"`
}

// SubmitOrder derives an immutable order from the submitted cart, persists
// it, and returns the WhatsApp payload for the client to open.
func SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var submission orderSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	// An unknown waiter id is handed to the pipeline as an absent waiter.
	var waiter *models.Waiter
	if submission.Waiter_id != "" {
		var found models.Waiter
		if err := waiterCollection.FindOne(ctx, bson.M{"waiter_id": submission.Waiter_id}).Decode(&found); err == nil {
			waiter = &found
		}
	}

	derivation, err := service.DeriveOrder(submission.Items, submission.CheckoutInfo, waiter, fallbackWhatsAppNumber(), time.Now())
	if err != nil {
		var fieldErrs service.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Validation failed",
				"errors":  fieldErrs,
			})
		case errors.Is(err, service.ErrEmptyCart):
			http.Error(w, `{"success": false, "message": "Cart is empty, add items before submitting"}`, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidWaiter):
			http.Error(w, `{"success": false, "message": "Selected waiter is not available"}`, http.StatusBadRequest)
		case errors.Is(err, service.ErrPriceInvariant):
			log.Printf("order submission hit a catalog price invariant violation: %v", err)
			http.Error(w, `{"success": false, "message": "Order could not be processed"}`, http.StatusInternalServerError)
		default:
			http.Error(w, `{"success": false, "message": "Order could not be processed"}`, http.StatusInternalServerError)
		}
		return
	}

	order := derivation.Order
	order.ID = primitive.NewObjectID()
	order.Order_id = uuid.NewString()
	order.Created_at = time.Now()
	order.Updated_at = time.Now()

	if _, insertErr := orderCollection.InsertOne(ctx, order); insertErr != nil {
		http.Error(w, `{"success": false, "message": "Order could not be saved, please try again"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order created successfully",
		"data": map[string]interface{}{
			"order":        order,
			"whatsapp_url": service.BuildWhatsAppLink(derivation.Target, derivation.Message),
			"notification": derivation.Message,
		},
	})
}

// Get all orders, newest first, with pagination
func GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
		}},
	}

	cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var allOrders []bson.M
	if err = cursor.All(ctx, &allOrders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order data"}`, http.StatusInternalServerError)
		return
	}

	totalOrders, err := orderCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total order count"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    allOrders,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_orders":     totalOrders,
			"total_pages":      (totalOrders + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Get a single order
func GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]
	if orderId == "" {
		http.Error(w, `{"success": false, "message": "Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// UpdateOrderStatus advances an order through the status enumeration
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var requestBody struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	validStatuses := map[string]bool{
		models.StatusPending:   true,
		models.StatusConfirmed: true,
		models.StatusCompleted: true,
		models.StatusCancelled: true,
	}

	if !validStatuses[requestBody.Status] {
		http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
		return
	}

	update := bson.M{
		"$set": bson.M{
			"status":     requestBody.Status,
			"updated_at": time.Now(),
		},
	}

	result, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update order status"}`, http.StatusInternalServerError)
		return
	}

	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
		"data":    order,
	})
}

// Delete an order
func DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	result, err := orderCollection.DeleteOne(ctx, bson.M{"order_id": orderId})
	if err != nil || result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Error deleting order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order deleted successfully",
		"data":    order,
	})
}
