package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "github.com/HenricoAmalfi03/Menu-Interativo/config"
	"github.com/HenricoAmalfi03/Menu-Interativo/models"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var categoryCollection *mongo.Collection = database.OpenCollection(database.Client, "category")
var validate = validator.New()

// Get all categories, sorted by display_order ascending (ties broken by
// creation order). Customers pass ?active=true to see only visible ones.
func GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if r.URL.Query().Get("active") == "true" {
		filter["active"] = true
	}

	sort := options.Find().SetSort(bson.D{
		{Key: "display_order", Value: 1},
		{Key: "created_at", Value: 1},
	})

	cursor, err := categoryCollection.Find(ctx, filter, sort)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving categories"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding category data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// Get a single category
func GetCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	var category models.Category
	if err := categoryCollection.FindOne(ctx, bson.M{"category_id": categoryId}).Decode(&category); err != nil {
		http.Error(w, `{"success": false, "message": "Category not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category retrieved successfully",
		"data":    category,
	})
}

// Create a category
func CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(category); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	existingCount, err := categoryCollection.CountDocuments(ctx, bson.M{"name": category.Name})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking existing categories"}`, http.StatusInternalServerError)
		return
	}
	if existingCount > 0 {
		http.Error(w, `{"success": false, "message": "A category with this name already exists"}`, http.StatusConflict)
		return
	}

	if category.Active == nil {
		active := true
		category.Active = &active
	}

	category.ID = primitive.NewObjectID()
	category.Category_id = uuid.NewString()
	category.Created_at = time.Now()
	category.Updated_at = time.Now()

	if _, insertErr := categoryCollection.InsertOne(ctx, category); insertErr != nil {
		http.Error(w, `{"success": false, "message": "Category could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category created successfully",
		"data":    category,
	})
}

// Update a category
func UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	var existingCategory models.Category
	if err := categoryCollection.FindOne(ctx, bson.M{"category_id": categoryId}).Decode(&existingCategory); err != nil {
		http.Error(w, `{"success": false, "message": "Category not found"}`, http.StatusNotFound)
		return
	}

	updateObj := bson.M{"updated_at": time.Now()}

	if category.Name != nil && *category.Name != *existingCategory.Name {
		duplicateCount, err := categoryCollection.CountDocuments(ctx, bson.M{"name": category.Name, "category_id": bson.M{"$ne": categoryId}})
		if err != nil {
			http.Error(w, `{"success": false, "message": "Error checking duplicate categories"}`, http.StatusInternalServerError)
			return
		}
		if duplicateCount > 0 {
			http.Error(w, `{"success": false, "message": "Another category with this name already exists"}`, http.StatusConflict)
			return
		}
		updateObj["name"] = category.Name
	}

	if category.Description != nil {
		updateObj["description"] = category.Description
	}
	if category.Display_order != existingCategory.Display_order {
		updateObj["display_order"] = category.Display_order
	}
	if category.Active != nil {
		updateObj["active"] = category.Active
	}

	filter := bson.M{"category_id": categoryId}
	if _, err := categoryCollection.UpdateOne(ctx, filter, bson.M{"$set": updateObj}); err != nil {
		http.Error(w, `{"success": false, "message": "Category update failed"}`, http.StatusInternalServerError)
		return
	}

	var updatedCategory models.Category
	if err := categoryCollection.FindOne(ctx, filter).Decode(&updatedCategory); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated category"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category updated successfully",
		"data":    updatedCategory,
	})
}

// Delete a category. The delete is hard: products keep their category_id and
// simply fall outside any category filter afterwards.
func DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	result, err := categoryCollection.DeleteOne(ctx, bson.M{"category_id": categoryId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error deleting category"}`, http.StatusInternalServerError)
		return
	}

	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "No category found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category deleted successfully",
	})
}
