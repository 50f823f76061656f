package catalog

import "github.com/mickey-panda/caffeine-club-online/internal/models"

// DefaultMenu is the café's menu as seed data for a fresh deployment.
var DefaultMenu = []models.CatalogItem{
	{ID: 1, Name: "Veggie Delight", Category: "Pizza", Price: 109, IsAvailable: true},
	{ID: 2, Name: "Paneer Tikka", Category: "Pizza", Price: 139, IsAvailable: true},
	{ID: 3, Name: "Cheese Burst Margherita", Category: "Pizza", Price: 129, IsAvailable: true},
	{ID: 4, Name: "Chicken Tikka", Category: "Pizza", Price: 149, IsAvailable: true},
	{ID: 5, Name: "Tandoori Chicken", Category: "Pizza", Price: 159, IsAvailable: true},
	{ID: 6, Name: "Periperi Chicken", Category: "Pizza", Price: 149, IsAvailable: true},
	{ID: 7, Name: "White Sauce", Category: "Pasta", Price: 119, IsAvailable: true},
	{ID: 8, Name: "Red Sauce", Category: "Pasta", Price: 119, IsAvailable: true},
	{ID: 9, Name: "Pink Sauce", Category: "Pasta", Price: 119, IsAvailable: true},
	{ID: 10, Name: "Pesto Sauce", Category: "Pasta", Price: 139, IsAvailable: true},
	{ID: 11, Name: "Aglio Olio", Category: "Pasta", Price: 129, IsAvailable: true},
	{ID: 12, Name: "Corn Veggie", Category: "Sandwich", Price: 69, IsAvailable: true},
	{ID: 13, Name: "Corn Veggie Cheese", Category: "Sandwich", Price: 89, IsAvailable: true},
	{ID: 14, Name: "Paneer Tikka", Category: "Sandwich", Price: 89, IsAvailable: true},
	{ID: 15, Name: "Paneer Tikka Cheese", Category: "Sandwich", Price: 109, IsAvailable: true},
	{ID: 16, Name: "Tandoori Chicken", Category: "Sandwich", Price: 99, IsAvailable: true},
	{ID: 17, Name: "Tandoori Chicken Cheese", Category: "Sandwich", Price: 119, IsAvailable: true},
	{ID: 18, Name: "Veg", Category: "Burger", Price: 79, IsAvailable: true},
	{ID: 19, Name: "Double Decker Veg", Category: "Burger", Price: 109, IsAvailable: true},
	{ID: 20, Name: "Paneer", Category: "Burger", Price: 109, IsAvailable: true},
	{ID: 21, Name: "Chicken", Category: "Burger", Price: 109, IsAvailable: true},
	{ID: 22, Name: "Double Decker Chicken", Category: "Burger", Price: 149, IsAvailable: true},
	{ID: 23, Name: "Classic", Category: "Maggie", Price: 39, IsAvailable: true},
	{ID: 24, Name: "Veggie", Category: "Maggie", Price: 49, IsAvailable: true},
	{ID: 25, Name: "Egg", Category: "Maggie", Price: 69, IsAvailable: true},
	{ID: 26, Name: "Chicken", Category: "Maggie", Price: 79, IsAvailable: true},
	{ID: 27, Name: "Veg", Category: "Momo", Price: 89, IsAvailable: true},
	{ID: 28, Name: "Corn Cheese", Category: "Momo", Price: 109, IsAvailable: true},
	{ID: 29, Name: "Chicken", Category: "Momo", Price: 129, IsAvailable: true},
	{ID: 30, Name: "Chicken BBQ Fried", Category: "Momo", Price: 149, IsAvailable: true},
	{ID: 31, Name: "Chicken Kurkure Fried", Category: "Momo", Price: 149, IsAvailable: true},
	{ID: 32, Name: "Veg Kurkure Fried", Category: "Momo", Price: 129, IsAvailable: true},
	{ID: 33, Name: "Nutella", Category: "Waffle", Price: 109, IsAvailable: true},
	{ID: 34, Name: "Lotus Biscoff", Category: "Waffle", Price: 119, IsAvailable: true},
	{ID: 35, Name: "Kitkat", Category: "Waffle", Price: 119, IsAvailable: true},
	{ID: 36, Name: "Maple Butter", Category: "Waffle", Price: 99, IsAvailable: true},
	{ID: 37, Name: "Blueberry", Category: "Waffle", Price: 89, IsAvailable: true},
	{ID: 38, Name: "Strawberry", Category: "Waffle", Price: 89, IsAvailable: true},
	{ID: 39, Name: "Nutella Cloud", Category: "Waffle with Ice-Cream", Price: 139, IsAvailable: true},
	{ID: 40, Name: "Biscoff Crunch Melt", Category: "Waffle with Ice-Cream", Price: 149, IsAvailable: true},
	{ID: 41, Name: "Strawberry Fantasy", Category: "Waffle with Ice-Cream", Price: 119, IsAvailable: true},
	{ID: 42, Name: "Vanilla", Category: "Ice Cream", Price: 30, IsAvailable: true},
	{ID: 43, Name: "Chocolate", Category: "Ice Cream", Price: 35, IsAvailable: true},
	{ID: 44, Name: "Strawberry", Category: "Ice Cream", Price: 30, IsAvailable: true},
	{ID: 45, Name: "Chocochips", Category: "Ice Cream", Price: 35, IsAvailable: true},
	{ID: 46, Name: "Black Currant", Category: "Ice Cream", Price: 45, IsAvailable: true},
	{ID: 47, Name: "Butterscotch", Category: "Ice Cream", Price: 35, IsAvailable: true},
	{ID: 48, Name: "Caramel Biscotti", Category: "Special Ice Cream", Price: 50, IsAvailable: true},
	{ID: 49, Name: "Choco Overload", Category: "Special Ice Cream", Price: 55, IsAvailable: true},
	{ID: 50, Name: "Strawberry Pop", Category: "Special Ice Cream", Price: 50, IsAvailable: true},
	{ID: 51, Name: "Berry-Nut Crave", Category: "Special Ice Cream", Price: 65, IsAvailable: true},
	{ID: 52, Name: "Smiles(4)", Category: "Snacks", Price: 59, IsAvailable: true},
	{ID: 53, Name: "Veg Nuggets(6)", Category: "Snacks", Price: 89, IsAvailable: true},
	{ID: 54, Name: "Veg Fingers(6)", Category: "Snacks", Price: 109, IsAvailable: true},
	{ID: 55, Name: "Chicken Nuggets(6)", Category: "Snacks", Price: 119, IsAvailable: true},
	{ID: 56, Name: "Chicken Fingers(6)", Category: "Snacks", Price: 119, IsAvailable: true},
	{ID: 57, Name: "Chicken Cheese Balls(6)", Category: "Snacks", Price: 139, IsAvailable: true},
	{ID: 58, Name: "Chicken Strips(4)", Category: "Snacks", Price: 139, IsAvailable: true},
	{ID: 59, Name: "Chicken Popcorn(150Gms)", Category: "Snacks", Price: 149, IsAvailable: true},
	{ID: 60, Name: "Chicken Wings(4)", Category: "Snacks", Price: 159, IsAvailable: true},
	{ID: 61, Name: "Veg Spring Roll(4)", Category: "Snacks", Price: 109, IsAvailable: true},
	{ID: 62, Name: "Paneer Spring Roll(4)", Category: "Snacks", Price: 129, IsAvailable: true},
	{ID: 63, Name: "Chicken Spring Roll(4)", Category: "Snacks", Price: 129, IsAvailable: true},
	{ID: 64, Name: "Salted", Category: "French Fries", Price: 79, IsAvailable: true},
	{ID: 65, Name: "Peri Peri", Category: "French Fries", Price: 99, IsAvailable: true},
	{ID: 66, Name: "Regular Tea", Category: "Hot Beverages", Price: 15, IsAvailable: true},
	{ID: 67, Name: "Ginger Tea", Category: "Hot Beverages", Price: 20, IsAvailable: true},
	{ID: 68, Name: "Elaichi Tea", Category: "Hot Beverages", Price: 20, IsAvailable: true},
	{ID: 69, Name: "Coffee", Category: "Hot Beverages", Price: 20, IsAvailable: true},
	{ID: 70, Name: "Espresso", Category: "Hot Beverages", Price: 20, IsAvailable: true},
	{ID: 71, Name: "Cappuccino", Category: "Hot Beverages", Price: 30, IsAvailable: true},
	{ID: 72, Name: "Latte", Category: "Hot Beverages", Price: 35, IsAvailable: true},
	{ID: 73, Name: "Mocha", Category: "Hot Beverages", Price: 45, IsAvailable: true},
	{ID: 74, Name: "Boost", Category: "Hot Beverages", Price: 30, IsAvailable: true},
	{ID: 75, Name: "Horlicks", Category: "Hot Beverages", Price: 30, IsAvailable: true},
	{ID: 76, Name: "Hot Chocolate", Category: "Hot Beverages", Price: 40, IsAvailable: true},
	{ID: 77, Name: "Lemon Tea", Category: "Hot Beverages", Price: 20, IsAvailable: true},
	{ID: 78, Name: "Green Tea", Category: "Hot Beverages", Price: 25, IsAvailable: true},
	{ID: 79, Name: "Classic", Category: "Cold Coffee", Price: 49, IsAvailable: true},
	{ID: 80, Name: "Classic with Ice Cream", Category: "Cold Coffee", Price: 69, IsAvailable: true},
	{ID: 81, Name: "Mocha", Category: "Cold Coffee", Price: 69, IsAvailable: true},
	{ID: 82, Name: "Hazelnut Cold Coffee", Category: "Cold Coffee", Price: 79, IsAvailable: true},
	{ID: 83, Name: "Caramel Cold Coffee", Category: "Cold Coffee", Price: 89, IsAvailable: true},
	{ID: 84, Name: "Latte", Category: "Cold Coffee", Price: 79, IsAvailable: true},
	{ID: 85, Name: "Virgin", Category: "Mojito", Price: 49, IsAvailable: true},
	{ID: 86, Name: "Lime & Mint", Category: "Mojito", Price: 49, IsAvailable: true},
	{ID: 87, Name: "Blue Lagoon", Category: "Mojito", Price: 49, IsAvailable: true},
	{ID: 88, Name: "Orange Crush", Category: "Mojito", Price: 59, IsAvailable: true},
	{ID: 89, Name: "Mango Crush", Category: "Mojito", Price: 59, IsAvailable: true},
	{ID: 90, Name: "Strawberry Crush", Category: "Mojito", Price: 59, IsAvailable: true},
	{ID: 91, Name: "Water Melon", Category: "Mojito", Price: 59, IsAvailable: true},
	{ID: 92, Name: "Kiwi", Category: "Mojito", Price: 69, IsAvailable: true},
	{ID: 93, Name: "Vanilla", Category: "Milkshakes", Price: 49, IsAvailable: true},
	{ID: 94, Name: "Butterscotch", Category: "Milkshakes", Price: 59, IsAvailable: true},
	{ID: 95, Name: "Chocolate", Category: "Milkshakes", Price: 59, IsAvailable: true},
	{ID: 96, Name: "Strawberry", Category: "Milkshakes", Price: 59, IsAvailable: true},
	{ID: 97, Name: "Mango", Category: "Milkshakes", Price: 69, IsAvailable: true},
	{ID: 98, Name: "Kitkat", Category: "Milkshakes", Price: 79, IsAvailable: true},
	{ID: 99, Name: "Oreo", Category: "Milkshakes", Price: 59, IsAvailable: true},
	{ID: 100, Name: "Nutella", Category: "Milkshakes", Price: 79, IsAvailable: true},
	{ID: 101, Name: "Brownie", Category: "Milkshakes", Price: 69, IsAvailable: true},
	{ID: 102, Name: "Chicken", Category: "Add Ons", Price: 30, IsAvailable: true},
	{ID: 103, Name: "Cheese", Category: "Add Ons", Price: 20, IsAvailable: true},
	{ID: 104, Name: "Peri Peri", Category: "Add Ons", Price: 10, IsAvailable: true},
	{ID: 105, Name: "Grill Sandwich", Category: "Add Ons", Price: 10, IsAvailable: true},
	{ID: 106, Name: "Fried Momo", Category: "Add Ons", Price: 15, IsAvailable: true},
	{ID: 107, Name: "Water Bottle", Category: "Add Ons", Price: 10, IsAvailable: true},
	{ID: 108, Name: "Cold Drink", Category: "Add Ons", Price: 20, IsAvailable: true},
	{ID: 109, Name: "Brownie", Category: "Brownies", Price: 89, IsAvailable: true},
	{ID: 110, Name: "Walnut Brownie", Category: "Brownies", Price: 99, IsAvailable: true},
	{ID: 111, Name: "Sizzler Brownie", Category: "Brownies", Price: 169, IsAvailable: true},
	{ID: 112, Name: "Sizzler Double Brownie", Category: "Brownies", Price: 189, IsAvailable: true},
	{ID: 113, Name: "Onion Rings(6)", Category: "Snacks", Price: 109, IsAvailable: true},
	{ID: 114, Name: "Paneer", Category: "Tortilla Wrap", Price: 129, IsAvailable: true},
	{ID: 115, Name: "Egg", Category: "Tortilla Wrap", Price: 109, IsAvailable: true},
	{ID: 116, Name: "Chicken", Category: "Tortilla Wrap", Price: 139, IsAvailable: true},
	{ID: 117, Name: "Chicken And Egg", Category: "Tortilla Wrap", Price: 159, IsAvailable: true},
	{ID: 118, Name: "Vanilla Muffins", Category: "Muffins", Price: 20, IsAvailable: true},
	{ID: 119, Name: "Chocolate Muffins", Category: "Muffins", Price: 25, IsAvailable: true},
}
