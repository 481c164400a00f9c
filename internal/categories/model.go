package categories

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateRequest struct {
	Name string `json:"name"`
}

// DefaultCategories is served when the categories table has not been
// migrated yet; writes are rejected until the migration runs.
var DefaultCategories = []string{
	"Mercado",
	"Transporte",
	"Moradia",
	"Lazer",
	"Saúde",
	"Educação",
	"Restaurantes",
	"Linha de crédito",
	"Entradas",
	"Maya",
	"Outros",
}

func fallbackList() []Category {
	out := make([]Category, len(DefaultCategories))
	for i, name := range DefaultCategories {
		out[i] = Category{ID: int64(i + 1), Name: name}
	}
	return out
}
