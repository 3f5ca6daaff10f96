package schema

// ContentBannerTable represents the 'content.banner' table
type ContentBannerTable struct {
	Table     string
	ID        string
	Title     string
	ImageURL  string
	TargetURL string
	Placement string
	Position  string
	IsActive  string
	StartsAt  string
	EndsAt    string
	CreatedAt string
	UpdatedAt string
}

// ContentBanner is the schema definition for content.banner
var ContentBanner = ContentBannerTable{
	Table:     "content.banner",
	ID:        "id",
	Title:     "title",
	ImageURL:  "imageurl",
	TargetURL: "targeturl",
	Placement: "placement",
	Position:  "position",
	IsActive:  "isactive",
	StartsAt:  "startsat",
	EndsAt:    "endsat",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ContentBannerTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.ImageURL, t.TargetURL, t.Placement, t.Position,
		t.IsActive, t.StartsAt, t.EndsAt, t.CreatedAt, t.UpdatedAt,
	}
}
