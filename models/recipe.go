package models

// Recipe is a meal as returned by the recipe search API. Field names follow
// the MealDB wire format, which is also the shape stored under favorites.
type Recipe struct {
	IDMeal          string `json:"idMeal"`
	StrMeal         string `json:"strMeal"`
	StrMealThumb    string `json:"strMealThumb"`
	StrInstructions string `json:"strInstructions"`
}

// RecipeResponse is the search envelope. Meals is null when nothing matched.
type RecipeResponse struct {
	Meals []Recipe `json:"meals"`
}

// Favorite is a node under favorites/{pushKey}.
type Favorite struct {
	Key       string `json:"-"`
	UserEmail string `json:"userEmail"`
	Recipe    Recipe `json:"recipe"`
}

// Comment is a node under comments/{pushKey}.
type Comment struct {
	Key       string `json:"key,omitempty"`
	UserEmail string `json:"userEmail"`
	RecipeID  string `json:"recipeId"`
	Comment   string `json:"comment"`
}
