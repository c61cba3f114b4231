package taxonomy

import "github.com/mealdex/dietengine/internal/domain"

// defaultVersion identifies the built-in table. Bump whenever entries change
// so cached labels computed against older data are recognizably stale.
const defaultVersion = "builtin-2025.08"

// g is shorthand for an optional carbs-per-100g value. Entries without a
// value are carb-exempt: water, salt, oils, and spices used in trace
// quantities never count against keto.
func g(v float64) *float64 { return &v }

// defaultEntries returns the built-in ingredient reference table. Carb values
// are grams of digestible carbohydrate per 100g. Compound names (and
// multi-word aliases) double as protected phrases: "peanut butter" resolves
// before "butter" is ever considered.
func defaultEntries() []domain.TaxonomyEntry {
	return []domain.TaxonomyEntry{
		// Meat & poultry
		{CanonicalName: "meat", IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "chicken", Aliases: []string{"chicken breast", "chicken thigh", "chicken broth", "chicken stock"}, IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "beef", Aliases: []string{"ground beef", "flank steak", "steak", "beef broth"}, IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "pork", Aliases: []string{"pork shoulder", "pork chop", "pork belly"}, IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "bacon", IsAnimalDerived: true, CarbsPer100g: g(1.4), Category: domain.CategoryMeat},
		{CanonicalName: "ham", IsAnimalDerived: true, CarbsPer100g: g(1.5), Category: domain.CategoryMeat},
		{CanonicalName: "sausage", Aliases: []string{"chorizo", "pepperoni", "salami"}, IsAnimalDerived: true, CarbsPer100g: g(2), Category: domain.CategoryMeat},
		{CanonicalName: "lamb", IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "turkey", IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "duck", IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "veal", IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "prosciutto", IsAnimalDerived: true, Category: domain.CategoryMeat},
		{CanonicalName: "gelatin", Aliases: []string{"gelatine"}, IsAnimalDerived: true, Category: domain.CategoryOther},

		// Dairy
		{CanonicalName: "milk", Aliases: []string{"whole milk", "skim milk", "dairy"}, IsAnimalDerived: true, CarbsPer100g: g(5), Category: domain.CategoryDairy},
		{CanonicalName: "butter", Aliases: []string{"salted butter", "unsalted butter"}, IsAnimalDerived: true, CarbsPer100g: g(0.1), Category: domain.CategoryDairy},
		{CanonicalName: "cheese", Aliases: []string{"cheddar", "mozzarella", "parmesan", "feta", "gouda", "ricotta", "brie"}, IsAnimalDerived: true, CarbsPer100g: g(1.3), Category: domain.CategoryDairy},
		{CanonicalName: "cream", Aliases: []string{"heavy cream", "whipping cream", "half and half"}, IsAnimalDerived: true, CarbsPer100g: g(3), Category: domain.CategoryDairy},
		{CanonicalName: "cream cheese", IsAnimalDerived: true, CarbsPer100g: g(4), Category: domain.CategoryDairy},
		{CanonicalName: "sour cream", IsAnimalDerived: true, CarbsPer100g: g(5), Category: domain.CategoryDairy},
		{CanonicalName: "yogurt", Aliases: []string{"yoghurt", "greek yogurt"}, IsAnimalDerived: true, CarbsPer100g: g(5), Category: domain.CategoryDairy},
		{CanonicalName: "buttermilk", IsAnimalDerived: true, CarbsPer100g: g(5), Category: domain.CategoryDairy},
		{CanonicalName: "ghee", IsAnimalDerived: true, Category: domain.CategoryDairy},
		{CanonicalName: "ice cream", IsAnimalDerived: true, CarbsPer100g: g(24), Category: domain.CategoryDairy},
		{CanonicalName: "condensed milk", IsAnimalDerived: true, CarbsPer100g: g(55), Category: domain.CategoryDairy},
		{CanonicalName: "evaporated milk", IsAnimalDerived: true, CarbsPer100g: g(10), Category: domain.CategoryDairy},
		{CanonicalName: "whey", IsAnimalDerived: true, CarbsPer100g: g(5), Category: domain.CategoryDairy},

		// Egg
		{CanonicalName: "egg", Aliases: []string{"egg white", "egg yolk"}, IsAnimalDerived: true, CarbsPer100g: g(1.1), Category: domain.CategoryEgg},
		{CanonicalName: "mayonnaise", Aliases: []string{"mayo"}, IsAnimalDerived: true, CarbsPer100g: g(0.6), Category: domain.CategoryEgg},

		// Seafood
		{CanonicalName: "fish", Aliases: []string{"cod", "tilapia", "halibut", "trout"}, IsAnimalDerived: true, Category: domain.CategorySeafood},
		{CanonicalName: "salmon", Aliases: []string{"salmon fillet", "smoked salmon"}, IsAnimalDerived: true, Category: domain.CategorySeafood},
		{CanonicalName: "tuna", IsAnimalDerived: true, Category: domain.CategorySeafood},
		{CanonicalName: "anchovy", Aliases: []string{"anchovy fillet"}, IsAnimalDerived: true, Category: domain.CategorySeafood},
		{CanonicalName: "sardine", IsAnimalDerived: true, Category: domain.CategorySeafood},
		{CanonicalName: "shrimp", Aliases: []string{"prawn"}, IsAnimalDerived: true, Category: domain.CategorySeafood},
		{CanonicalName: "crab", IsAnimalDerived: true, Category: domain.CategorySeafood},
		{CanonicalName: "lobster", IsAnimalDerived: true, Category: domain.CategorySeafood},
		{CanonicalName: "clam", IsAnimalDerived: true, CarbsPer100g: g(4), Category: domain.CategorySeafood},
		{CanonicalName: "oyster", IsAnimalDerived: true, CarbsPer100g: g(5), Category: domain.CategorySeafood},
		{CanonicalName: "mussel", IsAnimalDerived: true, CarbsPer100g: g(7), Category: domain.CategorySeafood},
		{CanonicalName: "scallop", IsAnimalDerived: true, CarbsPer100g: g(3), Category: domain.CategorySeafood},
		{CanonicalName: "squid", Aliases: []string{"calamari"}, IsAnimalDerived: true, CarbsPer100g: g(3), Category: domain.CategorySeafood},
		{CanonicalName: "octopus", IsAnimalDerived: true, CarbsPer100g: g(4), Category: domain.CategorySeafood},
		{CanonicalName: "caviar", IsAnimalDerived: true, CarbsPer100g: g(4), Category: domain.CategorySeafood},
		{CanonicalName: "fish sauce", IsAnimalDerived: true, CarbsPer100g: g(4), Category: domain.CategorySeafood},

		// Produce
		{CanonicalName: "zucchini", Aliases: []string{"courgette"}, CarbsPer100g: g(3.1), Category: domain.CategoryProduce},
		{CanonicalName: "bell pepper", Aliases: []string{"red bell pepper", "green bell pepper", "yellow bell pepper", "capsicum"}, CarbsPer100g: g(6), Category: domain.CategoryProduce},
		{CanonicalName: "onion", Aliases: []string{"red onion", "yellow onion", "white onion"}, CarbsPer100g: g(9), Category: domain.CategoryProduce},
		{CanonicalName: "green onion", Aliases: []string{"scallion", "spring onion"}, CarbsPer100g: g(7), Category: domain.CategoryProduce},
		{CanonicalName: "shallot", CarbsPer100g: g(17), Category: domain.CategoryProduce},
		{CanonicalName: "garlic", Aliases: []string{"garlic clove"}, CarbsPer100g: g(33), Category: domain.CategoryProduce},
		{CanonicalName: "tomato", Aliases: []string{"cherry tomato", "tomato paste", "tomato sauce"}, CarbsPer100g: g(3.9), Category: domain.CategoryProduce},
		{CanonicalName: "potato", Aliases: []string{"russet potato"}, CarbsPer100g: g(17), Category: domain.CategoryProduce},
		{CanonicalName: "sweet potato", Aliases: []string{"yam"}, CarbsPer100g: g(20), Category: domain.CategoryProduce},
		{CanonicalName: "carrot", CarbsPer100g: g(10), Category: domain.CategoryProduce},
		{CanonicalName: "apple", CarbsPer100g: g(14), Category: domain.CategoryProduce},
		{CanonicalName: "banana", CarbsPer100g: g(23), Category: domain.CategoryProduce},
		{CanonicalName: "orange", Aliases: []string{"orange juice"}, CarbsPer100g: g(12), Category: domain.CategoryProduce},
		{CanonicalName: "lemon", Aliases: []string{"lemon juice", "lemon zest"}, CarbsPer100g: g(9), Category: domain.CategoryProduce},
		{CanonicalName: "lime", Aliases: []string{"lime juice"}, CarbsPer100g: g(10), Category: domain.CategoryProduce},
		{CanonicalName: "avocado", CarbsPer100g: g(8.5), Category: domain.CategoryProduce},
		{CanonicalName: "spinach", CarbsPer100g: g(3.6), Category: domain.CategoryProduce},
		{CanonicalName: "kale", CarbsPer100g: g(8.8), Category: domain.CategoryProduce},
		{CanonicalName: "lettuce", Aliases: []string{"romaine"}, CarbsPer100g: g(2.9), Category: domain.CategoryProduce},
		{CanonicalName: "cabbage", CarbsPer100g: g(6), Category: domain.CategoryProduce},
		{CanonicalName: "broccoli", CarbsPer100g: g(7), Category: domain.CategoryProduce},
		{CanonicalName: "cauliflower", CarbsPer100g: g(5), Category: domain.CategoryProduce},
		{CanonicalName: "cucumber", CarbsPer100g: g(3.6), Category: domain.CategoryProduce},
		{CanonicalName: "celery", CarbsPer100g: g(3), Category: domain.CategoryProduce},
		{CanonicalName: "asparagus", CarbsPer100g: g(3.9), Category: domain.CategoryProduce},
		{CanonicalName: "artichoke", CarbsPer100g: g(11), Category: domain.CategoryProduce},
		{CanonicalName: "green bean", CarbsPer100g: g(7), Category: domain.CategoryProduce},
		{CanonicalName: "mushroom", Aliases: []string{"portobello", "shiitake", "cremini"}, CarbsPer100g: g(3.3), Category: domain.CategoryProduce},
		{CanonicalName: "eggplant", Aliases: []string{"aubergine"}, CarbsPer100g: g(6), Category: domain.CategoryProduce},
		{CanonicalName: "corn", Aliases: []string{"sweet corn", "corn kernel"}, CarbsPer100g: g(19), Category: domain.CategoryProduce},
		{CanonicalName: "pea", Aliases: []string{"snap pea", "snow pea"}, CarbsPer100g: g(14), Category: domain.CategoryProduce},
		{CanonicalName: "beet", Aliases: []string{"beetroot"}, CarbsPer100g: g(10), Category: domain.CategoryProduce},
		{CanonicalName: "pumpkin", CarbsPer100g: g(7), Category: domain.CategoryProduce},
		{CanonicalName: "strawberry", CarbsPer100g: g(7.7), Category: domain.CategoryProduce},
		{CanonicalName: "blueberry", CarbsPer100g: g(14), Category: domain.CategoryProduce},
		{CanonicalName: "raspberry", CarbsPer100g: g(12), Category: domain.CategoryProduce},
		{CanonicalName: "grape", CarbsPer100g: g(18), Category: domain.CategoryProduce},
		{CanonicalName: "pineapple", CarbsPer100g: g(13), Category: domain.CategoryProduce},
		{CanonicalName: "mango", CarbsPer100g: g(15), Category: domain.CategoryProduce},
		{CanonicalName: "peach", CarbsPer100g: g(9.5), Category: domain.CategoryProduce},
		{CanonicalName: "pear", CarbsPer100g: g(15), Category: domain.CategoryProduce},
		{CanonicalName: "watermelon", CarbsPer100g: g(8), Category: domain.CategoryProduce},
		{CanonicalName: "olive", Aliases: []string{"kalamata olive", "black olive"}, CarbsPer100g: g(6), Category: domain.CategoryProduce},
		{CanonicalName: "ginger", Aliases: []string{"ginger root"}, Category: domain.CategoryProduce},
		{CanonicalName: "cilantro", Aliases: []string{"coriander"}, Category: domain.CategoryProduce},
		{CanonicalName: "parsley", Category: domain.CategoryProduce},
		{CanonicalName: "basil", Category: domain.CategoryProduce},
		{CanonicalName: "mint", Category: domain.CategoryProduce},
		{CanonicalName: "dill", Category: domain.CategoryProduce},
		{CanonicalName: "chive", Category: domain.CategoryProduce},

		// Grains
		{CanonicalName: "flour", Aliases: []string{"all purpose flour", "wheat flour", "bread flour"}, CarbsPer100g: g(76), Category: domain.CategoryGrain},
		{CanonicalName: "rice", Aliases: []string{"white rice", "brown rice", "jasmine rice"}, CarbsPer100g: g(28), Category: domain.CategoryGrain},
		{CanonicalName: "pasta", Aliases: []string{"spaghetti", "macaroni", "noodle", "penne"}, CarbsPer100g: g(75), Category: domain.CategoryGrain},
		{CanonicalName: "bread", Aliases: []string{"bread crumb", "breadcrumb", "baguette"}, CarbsPer100g: g(49), Category: domain.CategoryGrain},
		{CanonicalName: "oat", Aliases: []string{"rolled oat", "oatmeal"}, CarbsPer100g: g(66), Category: domain.CategoryGrain},
		{CanonicalName: "cereal", CarbsPer100g: g(84), Category: domain.CategoryGrain},
		{CanonicalName: "quinoa", CarbsPer100g: g(21), Category: domain.CategoryGrain},
		{CanonicalName: "barley", CarbsPer100g: g(73), Category: domain.CategoryGrain},
		{CanonicalName: "couscous", CarbsPer100g: g(23), Category: domain.CategoryGrain},
		{CanonicalName: "cornmeal", Aliases: []string{"polenta"}, CarbsPer100g: g(77), Category: domain.CategoryGrain},
		{CanonicalName: "cornstarch", Aliases: []string{"corn starch"}, CarbsPer100g: g(91), Category: domain.CategoryGrain},
		{CanonicalName: "tortilla", CarbsPer100g: g(44), Category: domain.CategoryGrain},
		{CanonicalName: "cracker", CarbsPer100g: g(71), Category: domain.CategoryGrain},

		// Legumes, nuts & seeds
		{CanonicalName: "chickpea", Aliases: []string{"garbanzo", "garbanzo bean"}, CarbsPer100g: g(27), Category: domain.CategoryLegume},
		{CanonicalName: "lentil", CarbsPer100g: g(20), Category: domain.CategoryLegume},
		{CanonicalName: "bean", Aliases: []string{"black bean", "kidney bean", "pinto bean", "white bean"}, CarbsPer100g: g(16), Category: domain.CategoryLegume},
		{CanonicalName: "soybean", Aliases: []string{"soy", "edamame"}, CarbsPer100g: g(9), Category: domain.CategoryLegume},
		{CanonicalName: "tofu", CarbsPer100g: g(1.9), Category: domain.CategoryLegume},
		{CanonicalName: "hummus", CarbsPer100g: g(14), Category: domain.CategoryLegume},
		{CanonicalName: "peanut", CarbsPer100g: g(16), Category: domain.CategoryLegume},
		{CanonicalName: "almond", CarbsPer100g: g(9), Category: domain.CategoryLegume},
		{CanonicalName: "walnut", CarbsPer100g: g(7), Category: domain.CategoryLegume},
		{CanonicalName: "pecan", CarbsPer100g: g(4), Category: domain.CategoryLegume},
		{CanonicalName: "cashew", CarbsPer100g: g(27), Category: domain.CategoryLegume},
		{CanonicalName: "macadamia", CarbsPer100g: g(5), Category: domain.CategoryLegume},
		{CanonicalName: "hazelnut", CarbsPer100g: g(7), Category: domain.CategoryLegume},
		{CanonicalName: "pistachio", CarbsPer100g: g(18), Category: domain.CategoryLegume},
		{CanonicalName: "pine nut", CarbsPer100g: g(9), Category: domain.CategoryLegume},
		{CanonicalName: "coconut", Aliases: []string{"shredded coconut", "coconut flake"}, CarbsPer100g: g(6), Category: domain.CategoryLegume},
		{CanonicalName: "sesame seed", Aliases: []string{"sesame"}, CarbsPer100g: g(12), Category: domain.CategoryLegume},
		{CanonicalName: "chia seed", CarbsPer100g: g(8), Category: domain.CategoryLegume},
		{CanonicalName: "flaxseed", Aliases: []string{"flax seed", "linseed"}, CarbsPer100g: g(2), Category: domain.CategoryLegume},
		{CanonicalName: "sunflower seed", CarbsPer100g: g(11), Category: domain.CategoryLegume},

		// Protected plant compounds that naive substring decomposition gets wrong
		{CanonicalName: "peanut butter", CarbsPer100g: g(20), Category: domain.CategoryLegume},
		{CanonicalName: "almond butter", CarbsPer100g: g(19), Category: domain.CategoryLegume},
		{CanonicalName: "almond milk", CarbsPer100g: g(1.3), Category: domain.CategoryLegume},
		{CanonicalName: "soy milk", Aliases: []string{"soya milk"}, CarbsPer100g: g(4.9), Category: domain.CategoryLegume},
		{CanonicalName: "oat milk", CarbsPer100g: g(7), Category: domain.CategoryGrain},
		{CanonicalName: "rice milk", CarbsPer100g: g(22), Category: domain.CategoryGrain},
		{CanonicalName: "cashew milk", CarbsPer100g: g(2), Category: domain.CategoryLegume},
		{CanonicalName: "coconut milk", CarbsPer100g: g(6), Category: domain.CategoryLegume},
		{CanonicalName: "coconut cream", CarbsPer100g: g(7), Category: domain.CategoryLegume},
		{CanonicalName: "cocoa butter", Category: domain.CategoryFat},

		// Sweeteners
		{CanonicalName: "sugar", Aliases: []string{"brown sugar", "powdered sugar", "granulated sugar", "cane sugar"}, CarbsPer100g: g(100), Category: domain.CategorySweetener},
		{CanonicalName: "honey", IsAnimalDerived: true, CarbsPer100g: g(82), Category: domain.CategorySweetener},
		{CanonicalName: "maple syrup", CarbsPer100g: g(67), Category: domain.CategorySweetener},
		{CanonicalName: "molasses", CarbsPer100g: g(75), Category: domain.CategorySweetener},
		{CanonicalName: "agave", Aliases: []string{"agave nectar"}, CarbsPer100g: g(76), Category: domain.CategorySweetener},
		{CanonicalName: "corn syrup", CarbsPer100g: g(76), Category: domain.CategorySweetener},
		{CanonicalName: "jam", Aliases: []string{"jelly", "preserves"}, CarbsPer100g: g(49), Category: domain.CategorySweetener},
		{CanonicalName: "chocolate", Aliases: []string{"chocolate chip", "dark chocolate"}, CarbsPer100g: g(46), Category: domain.CategorySweetener},
		{CanonicalName: "cocoa powder", Aliases: []string{"cocoa"}, CarbsPer100g: g(58), Category: domain.CategorySweetener},
		{CanonicalName: "stevia", Category: domain.CategorySweetener},
		{CanonicalName: "erythritol", Category: domain.CategorySweetener},

		// Fats & oils
		{CanonicalName: "olive oil", Aliases: []string{"extra virgin olive oil"}, Category: domain.CategoryFat},
		{CanonicalName: "vegetable oil", Category: domain.CategoryFat},
		{CanonicalName: "canola oil", Category: domain.CategoryFat},
		{CanonicalName: "coconut oil", Category: domain.CategoryFat},
		{CanonicalName: "sesame oil", Category: domain.CategoryFat},
		{CanonicalName: "avocado oil", Category: domain.CategoryFat},
		{CanonicalName: "lard", IsAnimalDerived: true, Category: domain.CategoryFat},
		{CanonicalName: "shortening", Category: domain.CategoryFat},
		{CanonicalName: "margarine", CarbsPer100g: g(0.7), Category: domain.CategoryFat},

		// Condiments, seasonings & pantry
		{CanonicalName: "water", Aliases: []string{"ice"}, Category: domain.CategoryCondiment},
		{CanonicalName: "salt", Aliases: []string{"sea salt", "kosher salt", "table salt"}, Category: domain.CategoryCondiment},
		{CanonicalName: "black pepper", Aliases: []string{"pepper", "peppercorn", "white pepper"}, Category: domain.CategoryCondiment},
		{CanonicalName: "vinegar", Aliases: []string{"apple cider vinegar", "white vinegar", "rice vinegar", "balsamic vinegar"}, CarbsPer100g: g(0.9), Category: domain.CategoryCondiment},
		{CanonicalName: "soy sauce", Aliases: []string{"tamari"}, CarbsPer100g: g(4.9), Category: domain.CategoryCondiment},
		{CanonicalName: "mustard", Aliases: []string{"dijon", "dijon mustard"}, CarbsPer100g: g(5), Category: domain.CategoryCondiment},
		{CanonicalName: "ketchup", CarbsPer100g: g(27), Category: domain.CategoryCondiment},
		{CanonicalName: "salsa", CarbsPer100g: g(7), Category: domain.CategoryCondiment},
		{CanonicalName: "pesto", IsAnimalDerived: true, CarbsPer100g: g(6), Category: domain.CategoryCondiment},
		{CanonicalName: "hot sauce", Aliases: []string{"pepper sauce", "sriracha", "tabasco"}, Category: domain.CategoryCondiment},
		{CanonicalName: "caper", CarbsPer100g: g(5), Category: domain.CategoryCondiment},
		{CanonicalName: "vanilla extract", Aliases: []string{"vanilla"}, Category: domain.CategoryCondiment},
		{CanonicalName: "baking powder", Category: domain.CategoryCondiment},
		{CanonicalName: "baking soda", Category: domain.CategoryCondiment},
		{CanonicalName: "yeast", Category: domain.CategoryCondiment},
		{CanonicalName: "cinnamon", Category: domain.CategoryCondiment},
		{CanonicalName: "cumin", Category: domain.CategoryCondiment},
		{CanonicalName: "paprika", Category: domain.CategoryCondiment},
		{CanonicalName: "turmeric", Category: domain.CategoryCondiment},
		{CanonicalName: "oregano", Category: domain.CategoryCondiment},
		{CanonicalName: "thyme", Category: domain.CategoryCondiment},
		{CanonicalName: "rosemary", Category: domain.CategoryCondiment},
		{CanonicalName: "nutmeg", Category: domain.CategoryCondiment},
		{CanonicalName: "bay leaf", Category: domain.CategoryCondiment},
		{CanonicalName: "chili powder", Category: domain.CategoryCondiment},
		{CanonicalName: "curry powder", Category: domain.CategoryCondiment},
		{CanonicalName: "red pepper flake", Aliases: []string{"crushed red pepper"}, Category: domain.CategoryCondiment},
		{CanonicalName: "vegetable broth", Aliases: []string{"vegetable stock"}, Category: domain.CategoryCondiment},

		// Other
		{CanonicalName: "wine", Aliases: []string{"red wine", "white wine", "sherry"}, CarbsPer100g: g(2.6), Category: domain.CategoryOther},
		{CanonicalName: "beer", CarbsPer100g: g(3.6), Category: domain.CategoryOther},
		{CanonicalName: "vodka", Aliases: []string{"liqueur", "rum", "whiskey", "brandy"}, CarbsPer100g: g(0), Category: domain.CategoryOther},
		{CanonicalName: "coffee", Aliases: []string{"espresso"}, Category: domain.CategoryOther},
		{CanonicalName: "tea", Category: domain.CategoryOther},
	}
}
