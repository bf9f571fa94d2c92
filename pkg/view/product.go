package view

const (
	PlaceholderNoImage = "https://via.placeholder.com/400x200?text=Sem+imagem"
	PlaceholderBroken  = "https://via.placeholder.com/400x200?text=Imagem+n%C3%A3o+encontrada"
)

// ProductCard is one card on the product list.
type ProductCard struct {
	ID          string
	Title       string
	Category    string
	Price       string
	Description string
	Status      string
	ImageURL    string
	FallbackURL string
}

// StatusFilters are the options of the (unwired) status filter.
var StatusFilters = []string{"Anunciado", "Vendido", "Desativado"}
