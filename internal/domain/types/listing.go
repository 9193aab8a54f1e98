package types

// Race is an official race listing.
type Race struct {
	ID          RaceID    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	StartDate   string    `json:"start_date"`
	Distances   []float64 `json:"distances,omitempty"`
	URL         string    `json:"url,omitempty"`
	Description string    `json:"description,omitempty"`
}

// FilterLocation, FilterDistances and FilterDate expose the fields the list
// filter pipeline works on.
func (r Race) FilterLocation() string     { return r.Location }
func (r Race) FilterDistances() []float64 { return r.Distances }
func (r Race) FilterDate() string         { return r.StartDate }

// Event is a community run organised by a user or a group.
type Event struct {
	ID           EventID   `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	StartDate    string    `json:"start_date"`
	Distances    []float64 `json:"distances,omitempty"`
	Category     string    `json:"category,omitempty"`
	OrganizerID  UserID    `json:"organizer_id"`
	GroupID      GroupID   `json:"group_id,omitempty"`
	Description  string    `json:"description,omitempty"`
	Participants []UserID  `json:"participants,omitempty"`
}

func (e Event) FilterLocation() string     { return e.Location }
func (e Event) FilterDistances() []float64 { return e.Distances }
func (e Event) FilterDate() string         { return e.StartDate }

// NewEvent is the body of POST /events.
type NewEvent struct {
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	StartDate   string    `json:"start_date"`
	Distances   []float64 `json:"distances,omitempty"`
	Category    string    `json:"category,omitempty"`
	GroupID     GroupID   `json:"group_id,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Group is a running club.
type Group struct {
	ID           GroupID `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	City         string  `json:"city,omitempty"`
	MembersCount int     `json:"members_count"`
	OwnerID      UserID  `json:"owner_id"`
	IsMember     bool    `json:"is_member"`
}

// NewGroup is the body of POST /groups.
type NewGroup struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	City        string `json:"city,omitempty"`
}
