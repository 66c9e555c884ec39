package entities

// Edition is a locally produced variant of the newspaper.
type Edition struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// EditionCatalog lists the editions deliverable to a postal code. An empty
// catalog is a valid answer meaning there is no local edition for the area.
type EditionCatalog struct {
	PostalCode string    `json:"postal_code"`
	Editions   []Edition `json:"editions"`
}

func (c EditionCatalog) IsEmpty() bool {
	return len(c.Editions) == 0
}

func (c EditionCatalog) Find(id int64) (Edition, bool) {
	for _, e := range c.Editions {
		if e.ID == id {
			return e, true
		}
	}
	return Edition{}, false
}
