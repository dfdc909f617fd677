package dto

type CreateChefEventRequest struct {
	RequestedDate       string `json:"requested_date"` // YYYY-MM-DD (ISO date part)
	RequestedTime       string `json:"requested_time"` // HH:MM, 24h
	PartySize           int    `json:"party_size"`
	EventType           string `json:"event_type"`
	TemplateProductID   string `json:"template_product_id,omitempty"`
	LocationType        string `json:"location_type"`
	LocationAddress     string `json:"location_address"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	Notes               string `json:"notes,omitempty"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

type CreateMenuRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Courses     []CreateCourseRequest `json:"courses,omitempty"`
}

type CreateCourseRequest struct {
	Name      string              `json:"name"`
	SortOrder int                 `json:"sort_order"`
	Dishes    []CreateDishRequest `json:"dishes,omitempty"`
}

type CreateDishRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}
