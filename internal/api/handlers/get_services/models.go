package get_services

import "github.com/TPD2004/kenton-car-wash/internal/domain"

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Categories []Category `json:"categories"`
}

// Category категория услуг (тип транспорта)
type Category struct {
	ID      string   `json:"id"`
	Options []Option `json:"options"`
}

// Option пакет услуг с ценой
type Option struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FromCatalog конвертирует доменный каталог в HTTP response
func FromCatalog(catalog []domain.ServiceCategory) *CatalogResponse {
	categories := make([]Category, len(catalog))
	for i, cat := range catalog {
		options := make([]Option, len(cat.Options))
		for j, opt := range cat.Options {
			options[j] = Option{Name: opt.Name, Price: opt.Price}
		}
		categories[i] = Category{ID: cat.ID, Options: options}
	}
	return &CatalogResponse{Categories: categories}
}
