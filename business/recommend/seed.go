package recommend

import "dabbaMarket/domain"

// seedCatalog is the built-in fallback used when the catalog store cannot
// be read. Ten dishes spanning five cuisines so every scorer still has
// something to work with.
func seedCatalog() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID: "M001", Name: "Butter Chicken", Cuisine: "North Indian",
			Price: 350, Rating: 4.8, OrderCount: 120,
			IsVegetarian: false, Tags: "non-veg,popular",
			Ingredients: "chicken,butter,tomato,cream", MealTime: "dinner",
			IsAvailable: true,
		},
		{
			ID: "M002", Name: "Paneer Butter Masala", Cuisine: "North Indian",
			Price: 280, Rating: 4.7, OrderCount: 95,
			IsVegetarian: true, Tags: "veg,popular,dairy",
			Ingredients: "paneer,butter,tomato,cream", MealTime: "dinner",
			IsAvailable: true,
		},
		{
			ID: "M003", Name: "Masala Dosa", Cuisine: "South Indian",
			Price: 120, Rating: 4.9, OrderCount: 150,
			IsVegetarian: true, IsGlutenFree: true, Tags: "veg,breakfast",
			Ingredients: "rice,lentils,potato,onion", MealTime: "breakfast",
			IsAvailable: true,
		},
		{
			ID: "M004", Name: "Vada Pav", Cuisine: "Maharashtrian",
			Price: 30, Rating: 4.6, OrderCount: 200,
			IsVegetarian: true, Tags: "veg,snack,gluten",
			Ingredients: "potato,bread,chili,garlic", MealTime: "snack",
			IsAvailable: true,
		},
		{
			ID: "M005", Name: "Hyderabadi Biryani", Cuisine: "Hyderabadi",
			Price: 350, Rating: 4.8, OrderCount: 180,
			IsVegetarian: false, Tags: "non-veg,popular",
			Ingredients: "rice,chicken,saffron,mint", MealTime: "lunch",
			IsAvailable: true,
		},
		{
			ID: "M006", Name: "Chole Bhature", Cuisine: "Punjabi",
			Price: 180, Rating: 4.5, OrderCount: 80,
			IsVegetarian: true, Tags: "veg,popular,gluten",
			Ingredients: "chickpeas,flour,onion,spices", MealTime: "lunch",
			IsAvailable: true,
		},
		{
			ID: "M007", Name: "Idli Sambar", Cuisine: "South Indian",
			Price: 80, Rating: 4.7, OrderCount: 130,
			IsVegetarian: true, IsVegan: true, IsGlutenFree: true, Tags: "veg,breakfast",
			Ingredients: "rice,lentils,tamarind", MealTime: "breakfast",
			IsAvailable: true,
		},
		{
			ID: "M008", Name: "Pav Bhaji", Cuisine: "Maharashtrian",
			Price: 150, Rating: 4.6, OrderCount: 110,
			IsVegetarian: true, Tags: "veg,street food,gluten,dairy",
			Ingredients: "potato,butter,bread,peas", MealTime: "snack",
			IsAvailable: true,
		},
		{
			ID: "M009", Name: "Palak Paneer", Cuisine: "North Indian",
			Price: 250, Rating: 4.5, OrderCount: 70,
			IsVegetarian: true, Tags: "veg,popular,dairy",
			Ingredients: "paneer,spinach,cream,garlic", MealTime: "dinner",
			IsAvailable: true,
		},
		{
			ID: "M010", Name: "Chicken Biryani", Cuisine: "Hyderabadi",
			Price: 320, Rating: 4.7, OrderCount: 160,
			IsVegetarian: false, Tags: "non-veg,popular",
			Ingredients: "rice,chicken,yogurt,onion", MealTime: "lunch",
			IsAvailable: true,
		},
	}
}
