package catalog

import (
	"vineyard/internal/model"

	"github.com/shopspring/decimal"
)

type ing struct{ name, typ string }

type defaultEntry struct {
	name, description, image, price, foodType string
	ingredients                               []ing
}

var defaultMenu = []defaultEntry{
	{"Bread Rolls", "Warm, freshly baked bread rolls with butter.", "breadRoll.jpg", "5.99", "Appetizer", []ing{{"Bread", "grain"}, {"Butter", "dairy"}}},
	{"Mozzarella Sticks", "Crispy breaded mozzarella sticks served with marinara.", "mozzarellaStick.jpg", "7.99", "Appetizer", []ing{{"Cheese", "dairy"}, {"Bread Crumbs", "grain"}, {"Oil", "fat"}, {"Tomato Sauce", "sauce"}}},
	{"Creamy Ravioli", "Soft cheese-filled ravioli tossed in a creamy sauce.", "creamyRavioli.jpg", "8.99", "Appetizer", []ing{{"Pasta", "grain"}, {"Cheese", "dairy"}, {"Cream Sauce", "sauce"}, {"Herbs", "seasoning"}}},
	{"French Fries", "Crispy golden fries lightly salted.", "frenchFries.jpg", "3.99", "Side", []ing{{"Potatoes", "vegetable"}, {"Oil", "fat"}, {"Salt", "seasoning"}}},
	{"Steamed Broccoli", "Fresh broccoli steamed until tender.", "steamedBroccoli.jpg", "3.49", "Side", []ing{{"Broccoli", "vegetable"}, {"Salt", "seasoning"}, {"Olive Oil", "fat"}}},
	{"Mini-Salad", "A small mixed salad with dressing.", "miniSalad.jpg", "3.99", "Side", []ing{{"Lettuce", "vegetable"}, {"Tomato", "vegetable"}, {"Cucumber", "vegetable"}, {"Dressing", "sauce"}}},
	{"Garlic Bread", "Toasted bread slices topped with garlic butter.", "garlicBread.jpg", "4.49", "Side", []ing{{"Bread", "grain"}, {"Butter", "dairy"}, {"Garlic", "vegetable"}, {"Herbs", "seasoning"}}},
	{"Lasagna", "Layers of pasta baked with meat sauce and cheese.", "lasagna.jpg", "14.99", "Main", []ing{{"Pasta", "grain"}, {"Beef", "meat"}, {"Tomato Sauce", "sauce"}, {"Cheese", "dairy"}}},
	{"Chicken Alfredo Pasta", "Creamy Alfredo pasta topped with grilled chicken.", "chickenAlfredo.png", "16.99", "Main", []ing{{"Pasta", "grain"}, {"Chicken", "meat"}, {"Cream Sauce", "sauce"}, {"Parmesan", "dairy"}}},
	{"Chicken Parmesan", "Breaded chicken topped with marinara and melted cheese.", "chickenParm.jpg", "15.99", "Main", []ing{{"Chicken", "meat"}, {"Bread Crumbs", "grain"}, {"Cheese", "dairy"}, {"Tomato Sauce", "sauce"}}},
	{"Shrimp Alfredo Pasta", "Creamy Alfredo pasta with sautéed shrimp.", "shrimpAlfredoPastajpg.jpg", "17.99", "Main", []ing{{"Pasta", "grain"}, {"Shrimp", "seafood"}, {"Cream Sauce", "sauce"}, {"Parmesan", "dairy"}}},
	{"Caesar Salad", "Crisp romaine lettuce with Caesar dressing and croutons.", "caesarSalad.jpg", "10.99", "Main", []ing{{"Lettuce", "vegetable"}, {"Croutons", "grain"}, {"Cheese", "dairy"}, {"Dressing", "sauce"}}},
	{"Spaghetti & Meatballs (Gluten-Free)", "Gluten-free spaghetti with homemade meatballs.", "spaghettiMeatballs.jpg", "13.99", "Main", []ing{{"Gluten-Free Pasta", "grain"}, {"Beef", "meat"}, {"Tomato Sauce", "sauce"}, {"Herbs", "seasoning"}}},
	{"Black Ink Pasta", "Squid ink pasta served with seafood and light sauce.", "blackInkPasta.jpg", "18.99", "Main", []ing{{"Pasta", "grain"}, {"Squid Ink", "seafood"}, {"Seafood", "seafood"}, {"Olive Oil", "fat"}}},
	{"Water", "Fresh chilled water served with optional ice.", "waterBottle.jpg", "1.99", "Drink", []ing{{"Water", "beverage"}, {"Ice", "beverage"}}},
	{"Coke", "Classic carbonated cola beverage.", "cocacola.jpg", "2.99", "Drink", []ing{{"Carbonated Water", "beverage"}, {"Sweetener", "sweetener"}, {"Flavoring", "flavor"}}},
	{"Lemonade", "Fresh lemonade made with real lemons.", "lemonade.jpg", "3.49", "Drink", []ing{{"Water", "beverage"}, {"Lemon", "fruit"}, {"Sugar", "sweetener"}}},
	{"Raspberry Lemonade", "Tart lemonade mixed with raspberry flavor.", "raspberryLemonade.jpg", "3.99", "Drink", []ing{{"Water", "beverage"}, {"Lemon", "fruit"}, {"Raspberry", "fruit"}, {"Sugar", "sweetener"}}},
	{"Passion Smoothie", "Sweet passionfruit blended into a chilled smoothie.", "passionSmoothie.jpg", "4.99", "Drink", []ing{{"Passionfruit", "fruit"}, {"Ice", "beverage"}, {"Sugar", "sweetener"}}},
	{"Watermelon Smoothie", "Refreshing frozen watermelon smoothie.", "watermelonSmoothie.jpg", "4.99", "Drink", []ing{{"Watermelon", "fruit"}, {"Ice", "beverage"}, {"Sugar", "sweetener"}}},
	{"Cheesecake", "Classic creamy cheesecake with a graham crust.", "cheesecake.jpg", "6.49", "Dessert", []ing{{"Cheese", "dairy"}, {"Crust", "grain"}, {"Sugar", "sweetener"}, {"Cream", "dairy"}}},
	{"Molten Chocolate Cake", "Warm chocolate cake with a soft melted center.", "moltenChocolateCake.jpg", "6.99", "Dessert", []ing{{"Chocolate", "sweet"}, {"Flour", "grain"}, {"Butter", "dairy"}, {"Sugar", "sweetener"}}},
	{"Gelato", "Smooth Italian-style ice cream.", "sorbet.jpg", "5.49", "Dessert", []ing{{"Milk", "dairy"}, {"Sugar", "sweetener"}, {"Flavoring", "flavor"}}},
	{"Melon Sorbet", "Light and refreshing melon-flavored sorbet.", "melonSorbet.jpg", "4.99", "Dessert", []ing{{"Melon", "fruit"}, {"Sugar", "sweetener"}, {"Water", "beverage"}}},
	{"Chicken Tenders & Fries", "Crispy chicken tenders with a side of fries.", "chickenTender.jpg", "8.99", "Kids Menu", []ing{{"Chicken", "meat"}, {"Batter", "grain"}, {"Potatoes", "vegetable"}, {"Oil", "fat"}}},
	{"Cheeseburger & Fries", "Mini cheeseburger served with crispy fries.", "cheeseBurger.jpg", "9.49", "Kids Menu", []ing{{"Beef", "meat"}, {"Cheese", "dairy"}, {"Bun", "grain"}, {"Potatoes", "vegetable"}}},
	{"Mini-Pizza & Fries", "Small cheese pizza with a side of fries.", "miniPizzapg.jpg", "8.49", "Kids Menu", []ing{{"Dough", "grain"}, {"Cheese", "dairy"}, {"Tomato Sauce", "sauce"}, {"Potatoes", "vegetable"}}},
	{"Macaroni & One Side", "Creamy macaroni pasta served with your choice of side.", "macaroni.jpg", "7.99", "Kids Menu", []ing{{"Pasta", "grain"}, {"Cheese Sauce", "sauce"}}},
}

// DefaultItems returns the house menu used when no seed file is configured.
func DefaultItems() []RawItem {
	items := make([]RawItem, len(defaultMenu))
	for i, e := range defaultMenu {
		ingredients := make([]model.Ingredient, len(e.ingredients))
		for j, in := range e.ingredients {
			ingredients[j] = model.Ingredient{Name: in.name, Type: in.typ}
		}
		items[i] = RawItem{
			Name:        e.name,
			Description: e.description,
			Image:       "assets/menu/" + e.image,
			Price:       decimal.RequireFromString(e.price),
			FoodType:    e.foodType,
			Ingredients: ingredients,
		}
	}
	return items
}
