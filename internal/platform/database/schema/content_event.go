package schema

// ContentEventTable represents the 'content.event' table
type ContentEventTable struct {
	Table           string
	ID              string
	Title           string
	Slug            string
	Description     string
	Location        string
	StartsAt        string
	EndsAt          string
	RegistrationURL string
	IsPublished     string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
}

// ContentEvent is the schema definition for content.event
var ContentEvent = ContentEventTable{
	Table:           "content.event",
	ID:              "id",
	Title:           "title",
	Slug:            "slug",
	Description:     "description",
	Location:        "location",
	StartsAt:        "startsat",
	EndsAt:          "endsat",
	RegistrationURL: "registrationurl",
	IsPublished:     "ispublished",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
}

func (t ContentEventTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.Location, t.StartsAt, t.EndsAt,
		t.RegistrationURL, t.IsPublished, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
