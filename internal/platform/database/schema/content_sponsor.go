package schema

// ContentSponsorTable represents the 'content.sponsor' table
type ContentSponsorTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	LogoURL     string
	WebsiteURL  string
	Description string
	Tier        string
	IsActive    string
	CreatedAt   string
	UpdatedAt   string
}

// ContentSponsor is the schema definition for content.sponsor
var ContentSponsor = ContentSponsorTable{
	Table:       "content.sponsor",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	LogoURL:     "logourl",
	WebsiteURL:  "websiteurl",
	Description: "description",
	Tier:        "tier",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t ContentSponsorTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.LogoURL, t.WebsiteURL, t.Description,
		t.Tier, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}
