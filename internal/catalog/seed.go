// ABOUTME: Built-in catalog seed data.
// ABOUTME: VishScore values are recomputed at load; the literals here are advisory.
package catalog

import "github.com/vishlabs/vish/internal/models"

var seedItems = []models.FoodItem{
	{
		ID: "food-001", Name: "Organic Quinoa Power Bowl", Brand: "Harvest Kitchen",
		Category: "Prepared Meals", Barcode: "0786936224306",
		HealthScore: 95, TasteScore: 88, ConsumerScore: 93, EnvironmentalScore: 86, MoodScore: 82,
		Nutrition: models.NutritionFacts{
			Calories:      420,
			Fat:           models.Nutrient{Amount: 12, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 380, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 58, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 9, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 6, Unit: "g"},
			Protein:       models.Nutrient{Amount: 16, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 0, Unit: "mg"},
			Vitamins:      []string{"Iron", "Magnesium", "Folate"},
		},
		Ingredients:    []string{"quinoa", "kale", "chickpeas", "roasted sweet potato", "tahini dressing"},
		Allergens:      []string{"sesame"},
		Certifications: []string{"USDA Organic", "Non-GMO Project"},
		PriceRange:     "$$", DietaryTags: []string{"vegan", "gluten-free", "high-protein"},
		Origin: "USA",
	},
	{
		ID: "food-002", Name: "Greek Yogurt Parfait", Brand: "Olympus Dairy",
		Category: "Dairy", Barcode: "0041570054161",
		HealthScore: 82, TasteScore: 90, ConsumerScore: 88, EnvironmentalScore: 61, MoodScore: 74,
		Nutrition: models.NutritionFacts{
			Calories:      240,
			Fat:           models.Nutrient{Amount: 8, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 95, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 28, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 2, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 21, Unit: "g"},
			Protein:       models.Nutrient{Amount: 14, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 25, Unit: "mg"},
			Vitamins:      []string{"Calcium", "B12"},
		},
		Ingredients:    []string{"greek yogurt", "granola", "honey", "blueberries"},
		Allergens:      []string{"milk", "tree nuts"},
		Certifications: []string{"Grass-Fed Certified"},
		PriceRange:     "$$", DietaryTags: []string{"vegetarian", "high-protein"},
		Origin: "Greece",
	},
	{
		ID: "food-003", Name: "Crunchy Nacho Chips", Brand: "Fiesta Snacks",
		Category: "Snacks", Barcode: "0028400090896",
		HealthScore: 28, TasteScore: 85, ConsumerScore: 79, EnvironmentalScore: 35, MoodScore: 48,
		Nutrition: models.NutritionFacts{
			Calories:      150,
			Fat:           models.Nutrient{Amount: 8, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 210, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 17, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 1, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 1, Unit: "g"},
			Protein:       models.Nutrient{Amount: 2, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 0, Unit: "mg"},
		},
		Ingredients: []string{"corn", "vegetable oil", "cheese seasoning", "salt"},
		Allergens:   []string{"milk"},
		PriceRange:  "$", DietaryTags: []string{"vegetarian"},
		Origin: "Mexico",
	},
	{
		ID: "food-004", Name: "Wild Alaskan Salmon Fillet", Brand: "North Coast Seafood",
		Category: "Seafood", Barcode: "0731149348202",
		HealthScore: 94, TasteScore: 86, ConsumerScore: 84, EnvironmentalScore: 72, MoodScore: 88,
		Nutrition: models.NutritionFacts{
			Calories:      233,
			Fat:           models.Nutrient{Amount: 14, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 64, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 0, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 0, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 0, Unit: "g"},
			Protein:       models.Nutrient{Amount: 25, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 62, Unit: "mg"},
			Vitamins:      []string{"Omega-3", "Vitamin D", "B12"},
		},
		Ingredients:    []string{"wild alaskan salmon"},
		Allergens:      []string{"fish"},
		Certifications: []string{"MSC Certified"},
		PriceRange:     "$$$", DietaryTags: []string{"keto", "paleo", "high-protein"},
		Origin: "USA",
	},
	{
		ID: "food-005", Name: "Double Chocolate Fudge Cookies", Brand: "Sweet Tooth Bakery",
		Category: "Baked Goods", Barcode: "0044000032029",
		HealthScore: 18, TasteScore: 92, ConsumerScore: 87, EnvironmentalScore: 30, MoodScore: 65,
		Nutrition: models.NutritionFacts{
			Calories:      180,
			Fat:           models.Nutrient{Amount: 9, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 110, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 24, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 1, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 14, Unit: "g"},
			Protein:       models.Nutrient{Amount: 2, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 10, Unit: "mg"},
		},
		Ingredients: []string{"wheat flour", "sugar", "cocoa", "butter", "eggs", "chocolate chips"},
		Allergens:   []string{"wheat", "milk", "eggs", "soy"},
		PriceRange:  "$", DietaryTags: []string{"vegetarian"},
		Origin: "USA",
	},
	{
		ID: "food-006", Name: "Cold-Pressed Green Juice", Brand: "Verde Press",
		Category: "Beverages", Barcode: "0852909003077",
		HealthScore: 88, TasteScore: 64, ConsumerScore: 71, EnvironmentalScore: 90, MoodScore: 76,
		Nutrition: models.NutritionFacts{
			Calories:      110,
			Fat:           models.Nutrient{Amount: 0, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 65, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 25, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 1, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 18, Unit: "g"},
			Protein:       models.Nutrient{Amount: 2, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 0, Unit: "mg"},
			Vitamins:      []string{"Vitamin C", "Vitamin K", "Folate"},
		},
		Ingredients:    []string{"kale", "cucumber", "celery", "green apple", "lemon", "ginger"},
		Allergens:      []string{},
		Certifications: []string{"USDA Organic", "Cold Pressure Verified"},
		PriceRange:     "$$$", DietaryTags: []string{"vegan", "gluten-free", "raw"},
		Origin: "USA",
	},
	{
		ID: "food-007", Name: "Instant Ramen Noodles", Brand: "Tokyo Pantry",
		Category: "Pantry", Barcode: "0070662035016",
		HealthScore: 22, TasteScore: 78, ConsumerScore: 82, EnvironmentalScore: 28, MoodScore: 52,
		Nutrition: models.NutritionFacts{
			Calories:      380,
			Fat:           models.Nutrient{Amount: 14, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 1590, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 52, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 2, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 2, Unit: "g"},
			Protein:       models.Nutrient{Amount: 9, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 0, Unit: "mg"},
		},
		Ingredients: []string{"wheat noodles", "palm oil", "salt", "soy sauce powder", "msg"},
		Allergens:   []string{"wheat", "soy"},
		PriceRange:  "$", DietaryTags: []string{},
		Origin: "Japan",
	},
	{
		ID: "food-008", Name: "Almond Butter Protein Bar", Brand: "Summit Fuel",
		Category: "Snacks", Barcode: "0722252100900",
		HealthScore: 74, TasteScore: 80, ConsumerScore: 76, EnvironmentalScore: 58, MoodScore: 70,
		Nutrition: models.NutritionFacts{
			Calories:      230,
			Fat:           models.Nutrient{Amount: 11, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 140, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 22, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 4, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 9, Unit: "g"},
			Protein:       models.Nutrient{Amount: 12, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 0, Unit: "mg"},
			Vitamins:      []string{"Vitamin E", "Magnesium"},
		},
		Ingredients: []string{"almond butter", "dates", "pea protein", "chia seeds", "sea salt"},
		Allergens:   []string{"tree nuts"},
		PriceRange:  "$$", DietaryTags: []string{"vegan", "gluten-free", "high-protein"},
		Origin: "USA",
	},
	{
		ID: "food-009", Name: "Heritage Sourdough Loaf", Brand: "Stone Mill Bakery",
		Category: "Baked Goods", Barcode: "0073410013922",
		HealthScore: 66, TasteScore: 89, ConsumerScore: 85, EnvironmentalScore: 75, MoodScore: 68,
		Nutrition: models.NutritionFacts{
			Calories:      120,
			Fat:           models.Nutrient{Amount: 0.5, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 230, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 24, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 1, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 0, Unit: "g"},
			Protein:       models.Nutrient{Amount: 4, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 0, Unit: "mg"},
		},
		Ingredients: []string{"stone-ground wheat flour", "water", "sourdough culture", "sea salt"},
		Allergens:   []string{"wheat"},
		PriceRange:  "$$", DietaryTags: []string{"vegan", "vegetarian"},
		Origin: "France",
	},
	{
		ID: "food-010", Name: "Matcha Green Tea Powder", Brand: "Uji Fields",
		Category: "Beverages", Barcode: "4901085081603",
		HealthScore: 91, TasteScore: 72, ConsumerScore: 74, EnvironmentalScore: 84, MoodScore: 90,
		Nutrition: models.NutritionFacts{
			Calories:      10,
			Fat:           models.Nutrient{Amount: 0, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 0, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 1, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 1, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 0, Unit: "g"},
			Protein:       models.Nutrient{Amount: 1, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 0, Unit: "mg"},
			Vitamins:      []string{"Antioxidants", "L-theanine"},
		},
		Ingredients:    []string{"stone-ground green tea leaves"},
		Allergens:      []string{},
		Certifications: []string{"JAS Organic"},
		PriceRange:     "$$$", DietaryTags: []string{"vegan", "gluten-free", "keto"},
		Origin: "Japan",
	},
	{
		ID: "food-011", Name: "Lentil Vegetable Soup", Brand: "Hearth & Garden",
		Category: "Prepared Meals", Barcode: "0051000012616",
		HealthScore: 86, TasteScore: 75, ConsumerScore: 80, EnvironmentalScore: 88, MoodScore: 72,
		Nutrition: models.NutritionFacts{
			Calories:      160,
			Fat:           models.Nutrient{Amount: 2, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 480, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 27, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 8, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 4, Unit: "g"},
			Protein:       models.Nutrient{Amount: 9, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 0, Unit: "mg"},
			Vitamins:      []string{"Iron", "Folate", "Potassium"},
		},
		Ingredients: []string{"lentils", "carrots", "celery", "tomatoes", "onion", "vegetable broth"},
		Allergens:   []string{},
		PriceRange:  "$", DietaryTags: []string{"vegan", "gluten-free", "low-fat"},
		Origin: "Canada",
	},
	{
		ID: "food-012", Name: "Aged Cheddar Cheese Block", Brand: "Somerset Creamery",
		Category: "Dairy", Barcode: "5000295142893",
		HealthScore: 55, TasteScore: 91, ConsumerScore: 89, EnvironmentalScore: 42, MoodScore: 64,
		Nutrition: models.NutritionFacts{
			Calories:      110,
			Fat:           models.Nutrient{Amount: 9, Unit: "g"},
			Sodium:        models.Nutrient{Amount: 180, Unit: "mg"},
			Carbohydrates: models.Nutrient{Amount: 0, Unit: "g"},
			Fiber:         models.Nutrient{Amount: 0, Unit: "g"},
			Sugars:        models.Nutrient{Amount: 0, Unit: "g"},
			Protein:       models.Nutrient{Amount: 7, Unit: "g"},
			Cholesterol:   models.Nutrient{Amount: 30, Unit: "mg"},
			Vitamins:      []string{"Calcium", "Vitamin A"},
		},
		Ingredients:    []string{"pasteurized milk", "salt", "cultures", "rennet"},
		Allergens:      []string{"milk"},
		Certifications: []string{"PDO West Country Farmhouse"},
		PriceRange:     "$$", DietaryTags: []string{"vegetarian", "keto"},
		Origin: "UK",
	},
}
