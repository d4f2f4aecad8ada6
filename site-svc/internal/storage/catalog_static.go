package storage

import (
	"context"

	"sabor-autentico/site-svc/internal/domain"
)

var seedCategories = []domain.Category{
	{ID: "entradas", Label: "Entradas", Icon: "🥗"},
	{ID: "principales", Label: "Platos Principales", Icon: "🍽️"},
	{ID: "postres", Label: "Postres", Icon: "🍰"},
	{ID: "bebidas", Label: "Bebidas", Icon: "🥤"},
}

var seedItems = []domain.MenuItem{
	{
		ID:          "entrada-1",
		Category:    "entradas",
		Name:        "Carpaccio de Salmón",
		Description: "Finas láminas de salmón fresco con alcaparras, rúcula y vinagreta de limón",
		Price:       18,
		Image:       "https://images.pexels.com/photos/725199/pexels-photo-725199.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Salmón fresco", "Rúcula", "Alcaparras", "Limón", "Aceite de oliva"},
		Tags:        []string{"Sin gluten"},
		Rating:      4.8,
	},
	{
		ID:          "entrada-2",
		Category:    "entradas",
		Name:        "Ensalada César Premium",
		Description: "Lechuga romana, parmesano, crutones artesanales y nuestra salsa césar especial",
		Price:       14,
		Image:       "https://images.pexels.com/photos/1213710/pexels-photo-1213710.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Lechuga romana", "Parmesano", "Crutones", "Anchoas", "Pollo (opcional)"},
		Tags:        []string{"Vegetariano"},
		Rating:      4.6,
	},
	{
		ID:          "entrada-3",
		Category:    "entradas",
		Name:        "Tabla de Quesos Artesanales",
		Description: "Selección de quesos gourmet con frutos secos, miel y mermeladas caseras",
		Price:       22,
		Image:       "https://images.pexels.com/photos/1095550/pexels-photo-1095550.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Quesos artesanales", "Frutos secos", "Miel", "Mermeladas", "Pan tostado"},
		Tags:        []string{"Vegetariano"},
		Rating:      4.9,
	},
	{
		ID:          "principal-1",
		Category:    "principales",
		Name:        "Filete de Res Wellington",
		Description: "Tierno filete envuelto en pasta hojaldre con duxelles de hongos y foie gras",
		Price:       45,
		Image:       "https://images.pexels.com/photos/299347/pexels-photo-299347.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Filete de res", "Pasta hojaldre", "Hongos", "Foie gras", "Hierbas frescas"},
		Tags:        []string{},
		Rating:      4.9,
	},
	{
		ID:          "principal-2",
		Category:    "principales",
		Name:        "Salmón a la Parrilla",
		Description: "Salmón atlántico con quinoa, vegetables asados y salsa de eneldo",
		Price:       32,
		Image:       "https://images.pexels.com/photos/842142/pexels-photo-842142.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Salmón atlántico", "Quinoa", "Vegetables", "Eneldo", "Limón"},
		Tags:        []string{"Sin gluten", "Saludable"},
		Rating:      4.7,
	},
	{
		ID:          "principal-3",
		Category:    "principales",
		Name:        "Risotto de Hongos Trufados",
		Description: "Cremoso risotto con mezcla de hongos silvestres y aceite de trufa",
		Price:       28,
		Image:       "https://images.pexels.com/photos/1437267/pexels-photo-1437267.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Arroz arborio", "Hongos silvestres", "Trufa", "Parmesano", "Vino blanco"},
		Tags:        []string{"Vegetariano"},
		Rating:      4.8,
	},
	{
		ID:          "postre-1",
		Category:    "postres",
		Name:        "Tiramisú Clásico",
		Description: "El auténtico tiramisú italiano con mascarpone, café y cacao",
		Price:       12,
		Image:       "https://images.pexels.com/photos/6880219/pexels-photo-6880219.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Mascarpone", "Café espresso", "Ladyfingers", "Cacao", "Marsala"},
		Tags:        []string{"Vegetariano"},
		Rating:      4.8,
	},
	{
		ID:          "postre-2",
		Category:    "postres",
		Name:        "Tarta de Chocolate Belga",
		Description: "Intensa tarta de chocolate 70% con coulis de frutos rojos",
		Price:       14,
		Image:       "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Chocolate belga", "Frutos rojos", "Crema", "Mantequilla", "Huevos"},
		Tags:        []string{"Vegetariano"},
		Rating:      4.9,
	},
	{
		ID:          "bebida-1",
		Category:    "bebidas",
		Name:        "Cóctel Signature",
		Description: "Nuestra creación especial con gin artesanal, frutos cítricos y hierbas frescas",
		Price:       16,
		Image:       "https://images.pexels.com/photos/1304541/pexels-photo-1304541.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Gin artesanal", "Limón", "Hierbas frescas", "Tónica premium"},
		Tags:        []string{},
		Rating:      4.7,
	},
	{
		ID:          "bebida-2",
		Category:    "bebidas",
		Name:        "Agua Infusionada",
		Description: "Agua natural con pepino, menta y limón - perfecta para acompañar",
		Price:       6,
		Image:       "https://images.pexels.com/photos/1462630/pexels-photo-1462630.jpeg?auto=compress&cs=tinysrgb&w=800",
		Ingredients: []string{"Agua natural", "Pepino", "Menta", "Limón"},
		Tags:        []string{"Sin alcohol", "Vegano"},
		Rating:      4.5,
	},
}

// SeedCatalog returns copies of the built-in categories and items.
func SeedCatalog() ([]domain.Category, []domain.MenuItem) {
	categories := make([]domain.Category, len(seedCategories))
	copy(categories, seedCategories)

	items := make([]domain.MenuItem, len(seedItems))
	for i, item := range seedItems {
		item.Ingredients = append([]string{}, item.Ingredients...)
		item.Tags = append([]string{}, item.Tags...)
		items[i] = item
	}
	return categories, items
}

// StaticCatalog serves the built-in catalog without a database.
type StaticCatalog struct{}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

func (StaticCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, _ := SeedCatalog()
	return categories, nil
}

func (StaticCatalog) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	_, items := SeedCatalog()
	return items, nil
}
