package models

type Document struct {
	Lists       map[string]*List `json:"lists"`
	CurrentList *string          `json:"current_list"`
	Users       map[string]*User `json:"users"`
}

// NewDocument returns an empty document with no selection.
func NewDocument() *Document {
	return &Document{
		Lists: map[string]*List{},
		Users: map[string]*User{},
	}
}

// Normalize fills in what the file format leaves implicit: nil maps and task
// slices become empty, and map keys are copied into List.ID and User.Username.
func (d *Document) Normalize() {
	if d.Lists == nil {
		d.Lists = map[string]*List{}
	}
	if d.Users == nil {
		d.Users = map[string]*User{}
	}
	for id, l := range d.Lists {
		l.ID = id
		if l.Tasks == nil {
			l.Tasks = []*Task{}
		}
	}
	for name, u := range d.Users {
		u.Username = name
	}
}

// Selected returns the current list id, or "" when nothing is selected.
func (d *Document) Selected() string {
	if d.CurrentList == nil {
		return ""
	}
	return *d.CurrentList
}

// Select sets the current list. An empty id clears the selection.
func (d *Document) Select(id string) {
	if id == "" {
		d.CurrentList = nil
		return
	}
	d.CurrentList = &id
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := &Document{
		Lists: make(map[string]*List, len(d.Lists)),
		Users: make(map[string]*User, len(d.Users)),
	}
	for id, l := range d.Lists {
		c.Lists[id] = l.Clone()
	}
	for name, u := range d.Users {
		c.Users[name] = u.Clone()
	}
	c.Select(d.Selected())
	return c
}
