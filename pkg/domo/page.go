package domo

// Page represents a Domo page and its nested child pages.
type Page struct {
	ID            *int64      `json:"id,omitempty"            yaml:"id,omitempty"`
	Name          *string     `json:"name,omitempty"          yaml:"name,omitempty"`
	ParentID      *int64      `json:"parentId,omitempty"      yaml:"parentId,omitempty"`
	OwnerID       *int64      `json:"ownerId,omitempty"       yaml:"ownerId,omitempty"`
	Locked        *bool       `json:"locked,omitempty"        yaml:"locked,omitempty"`
	CollectionIDs []int64     `json:"collectionIds,omitzero"  yaml:"collectionIds,omitempty"`
	CardIDs       []int64     `json:"cardIds,omitzero"        yaml:"cardIds,omitempty"`
	Children      []Page      `json:"children,omitzero"       yaml:"children,omitempty"`
	Visibility    *Visibility `json:"visibility,omitempty"    yaml:"visibility,omitempty"`
}

// Visibility lists the users and groups a page is shared with.
type Visibility struct {
	UserIDs  []int64 `json:"userIds,omitzero"   yaml:"userIds,omitempty"`
	GroupIDs []int64 `json:"groupIds,omitzero"  yaml:"groupIds,omitempty"`
}

// Collection is a titled group of cards on a page.
type Collection struct {
	ID          *int64  `json:"id,omitempty"          yaml:"id,omitempty"`
	Title       *string `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	CardIDs     []int64 `json:"cardIds,omitzero"      yaml:"cardIds,omitempty"`
}

// NewPageTemplate returns a placeholder page for an edit buffer.
func NewPageTemplate() *Page {
	return &Page{
		ID:            Ptr(int64(0)),
		Name:          Ptr("Page Name"),
		ParentID:      Ptr(int64(0)),
		OwnerID:       Ptr(int64(0)),
		Locked:        Ptr(false),
		CollectionIDs: []int64{1, 2, 3},
		CardIDs:       []int64{1, 2, 3},
		Children:      []Page{},
		Visibility: &Visibility{
			UserIDs:  []int64{1, 2, 3},
			GroupIDs: []int64{1, 2, 3},
		},
	}
}

// NewCollectionTemplate returns a placeholder collection for an edit buffer.
func NewCollectionTemplate() *Collection {
	return &Collection{
		ID:          Ptr(int64(0)),
		Title:       Ptr("Collection Title"),
		Description: Ptr("Collection Description"),
		CardIDs:     []int64{1, 2, 3},
	}
}

// FindCollection returns the collection with the given id, or
// ErrInvalidCollectionID when none of the collections match.
func FindCollection(collections []Collection, id int64) (*Collection, error) {
	for i := range collections {
		if collections[i].ID != nil && *collections[i].ID == id {
			return &collections[i], nil
		}
	}

	return nil, ErrInvalidCollectionID
}
