package domain

// Addon an optional priced service attachable to a booking
// Справочные данные, не зависят от длительности проживания
type Addon struct {
	ID       int64
	Name     string
	Price    float64
	Category string
	Active   bool
}
