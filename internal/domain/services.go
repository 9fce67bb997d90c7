package domain

// ServiceOption is a single bookable package within a category
type ServiceOption struct {
	Name  string
	Price float64 // цена в рандах (ZAR)
}

// ServiceCategory groups packages by vehicle type
type ServiceCategory struct {
	ID      string
	Options []ServiceOption
}

// ServiceCatalog статический каталог услуг.
// Цены фиксированы в каталоге; оплата производится на месте,
// сервис не обрабатывает платежи.
var ServiceCatalog = []ServiceCategory{
	{
		ID: "Car",
		Options: []ServiceOption{
			{Name: "Express Wash", Price: 150},
			{Name: "Full Valet", Price: 450},
		},
	},
	{
		ID: "Boat",
		Options: []ServiceOption{
			{Name: "Hull Clean", Price: 800},
			{Name: "Full Deck & Hull", Price: 1500},
		},
	},
	{
		ID: "Other",
		Options: []ServiceOption{
			{Name: "Trailer Wash", Price: 250},
			{Name: "Caravan Detail", Price: 650},
		},
	},
}

// FindService ищет услугу в каталоге по категории и названию
func FindService(category, name string) (*ServiceOption, bool) {
	for _, cat := range ServiceCatalog {
		if cat.ID != category {
			continue
		}
		for i := range cat.Options {
			if cat.Options[i].Name == name {
				return &cat.Options[i], true
			}
		}
	}
	return nil, false
}
