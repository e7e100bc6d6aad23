package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	database "github.com/HenricoAmalfi03/Menu-Interativo/config"
	"github.com/HenricoAmalfi03/Menu-Interativo/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var productCollection *mongo.Collection = database.OpenCollection(database.Client, "product")

// validatePromotionWindow rejects unparseable promotion dates and inverted
// windows before they reach the catalog.
func validatePromotionWindow(product models.Product) string {
	var start, end time.Time
	var err error

	if product.Promotion_start != nil && *product.Promotion_start != "" {
		start, err = time.Parse(models.PromotionDateLayout, *product.Promotion_start)
		if err != nil {
			return "promotion_start must be a YYYY-MM-DD date"
		}
	}
	if product.Promotion_end != nil && *product.Promotion_end != "" {
		end, err = time.Parse(models.PromotionDateLayout, *product.Promotion_end)
		if err != nil {
			return "promotion_end must be a YYYY-MM-DD date"
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return "promotion_start must not be after promotion_end"
	}
	return ""
}

// Get all products with pagination
func GetProducts(w http.ResponseWriter, r *http.Request) {
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

	match := bson.D{}
	if r.URL.Query().Get("active") == "true" {
		match = bson.D{{Key: "active", Value: true}}
	}

	totalProducts, err := productCollection.CountDocuments(ctx, match)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total product count"}`, http.StatusInternalServerError)
		return
	}

	matchStage := bson.D{{Key: "$match", Value: match}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
		}},
	}

	cursor, err := productCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving products"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var allProducts []bson.M
	if err = cursor.All(ctx, &allProducts); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding product data"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    allProducts,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_products":   totalProducts,
			"total_pages":      (totalProducts + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Get a single product
func GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	productId := mux.Vars(r)["product_id"]

	var product models.Product
	if err := productCollection.FindOne(ctx, bson.M{"product_id": productId}).Decode(&product); err != nil {
		http.Error(w, `{"success": false, "message": "Product not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// Get all products for a specific category
func GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	categoryCount, err := categoryCollection.CountDocuments(ctx, bson.M{"category_id": categoryId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking category existence"}`, http.StatusInternalServerError)
		return
	}
	if categoryCount == 0 {
		http.Error(w, `{"success": false, "message": "Category not found"}`, http.StatusNotFound)
		return
	}

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	totalProducts, err := productCollection.CountDocuments(ctx, bson.M{"category_id": categoryId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total product count"}`, http.StatusInternalServerError)
		return
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "category_id", Value: categoryId}}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
		}},
	}

	cursor, err := productCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving products"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []bson.M
	if err := cursor.All(ctx, &products); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding products"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    products,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_products":   totalProducts,
			"total_pages":      (totalProducts + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Create a product
func CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(product); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	if msg := validatePromotionWindow(product); msg != "" {
		http.Error(w, `{"success": false, "message": "`+msg+`"}`, http.StatusBadRequest)
		return
	}

	categoryCount, err := categoryCollection.CountDocuments(ctx, bson.M{"category_id": product.Category_id})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking category existence"}`, http.StatusInternalServerError)
		return
	}
	if categoryCount == 0 {
		http.Error(w, `{"success": false, "message": "Category not found"}`, http.StatusNotFound)
		return
	}

	if product.Active == nil {
		active := true
		product.Active = &active
	}

	product.ID = primitive.NewObjectID()
	product.Product_id = uuid.NewString()
	product.Created_at = time.Now()
	product.Updated_at = time.Now()

	if _, insertErr := productCollection.InsertOne(ctx, product); insertErr != nil {
		http.Error(w, `{"success": false, "message": "Product could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

// Update a product
func UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	productId := mux.Vars(r)["product_id"]

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	var existingProduct models.Product
	if err := productCollection.FindOne(ctx, bson.M{"product_id": productId}).Decode(&existingProduct); err != nil {
		http.Error(w, `{"success": false, "message": "Product not found"}`, http.StatusNotFound)
		return
	}

	if msg := validatePromotionWindow(product); msg != "" {
		http.Error(w, `{"success": false, "message": "`+msg+`"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.M{"updated_at": time.Now()}

	if product.Name != nil {
		updateObj["name"] = product.Name
	}
	if product.Description != nil {
		updateObj["description"] = product.Description
	}
	if product.Price != nil {
		if *product.Price <= 0 {
			http.Error(w, `{"success": false, "message": "price must be positive"}`, http.StatusBadRequest)
			return
		}
		updateObj["price"] = product.Price
	}
	if product.Image_url != nil {
		updateObj["image_url"] = product.Image_url
	}
	if product.Category_id != nil {
		categoryCount, err := categoryCollection.CountDocuments(ctx, bson.M{"category_id": product.Category_id})
		if err != nil || categoryCount == 0 {
			http.Error(w, `{"success": false, "message": "Category not found"}`, http.StatusNotFound)
			return
		}
		updateObj["category_id"] = product.Category_id
	}
	if product.Is_promotion != existingProduct.Is_promotion {
		updateObj["is_promotion"] = product.Is_promotion
	}
	if product.Promotion_price != nil {
		if *product.Promotion_price <= 0 {
			http.Error(w, `{"success": false, "message": "promotion_price must be positive"}`, http.StatusBadRequest)
			return
		}
		updateObj["promotion_price"] = product.Promotion_price
	}
	if product.Promotion_start != nil {
		updateObj["promotion_start"] = product.Promotion_start
	}
	if product.Promotion_end != nil {
		updateObj["promotion_end"] = product.Promotion_end
	}
	if product.Active != nil {
		updateObj["active"] = product.Active
	}

	filter := bson.M{"product_id": productId}
	if _, err := productCollection.UpdateOne(ctx, filter, bson.M{"$set": updateObj}); err != nil {
		http.Error(w, `{"success": false, "message": "Product update failed"}`, http.StatusInternalServerError)
		return
	}

	var updatedProduct models.Product
	if err := productCollection.FindOne(ctx, filter).Decode(&updatedProduct); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated product"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product updated successfully",
		"data":    updatedProduct,
	})
}

// Delete a product
func DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	productId := mux.Vars(r)["product_id"]

	result, err := productCollection.DeleteOne(ctx, bson.M{"product_id": productId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error deleting product"}`, http.StatusInternalServerError)
		return
	}

	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "No product found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product deleted successfully",
	})
}
