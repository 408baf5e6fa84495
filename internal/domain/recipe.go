package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is a flat read-only nutritional document owned by the bulk importer.
// The API never mutates it.
type Recipe struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"    json:"id"`
	RecipeID      int                `bson:"recipe_id"        json:"recipe_id"`
	RecipeName    string             `bson:"recipe_name"      json:"recipe_name"`
	AverRate      float64            `bson:"aver_rate"        json:"aver_rate"`
	ImageURL      string             `bson:"image_url"        json:"image_url"`
	ReviewNums    int                `bson:"review_nums"      json:"review_nums"`
	Calories      float64            `bson:"calories"         json:"calories"`
	Fat           float64            `bson:"fat"              json:"fat"`
	Carbohydrates float64            `bson:"carbohydrates"    json:"carbohydrates"`
	Protein       float64            `bson:"protein"          json:"protein"`
	Cholesterol   float64            `bson:"cholesterol"      json:"cholesterol"`
	Sodium        float64            `bson:"sodium"           json:"sodium"`
	Fiber         float64            `bson:"fiber"            json:"fiber"`
	Ingredients   string             `bson:"ingredients_list" json:"ingredients_list"`
	VegNonVeg     string             `bson:"veg_nonveg"       json:"veg_nonveg"`
	CuisineType   string             `bson:"cuisine_type"     json:"cuisine_type"`
	RegionType    string             `bson:"region_type"      json:"region_type"`
	CreatedAt     time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
