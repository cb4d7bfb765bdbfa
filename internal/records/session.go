package records

import (
	"slices"

	"github.com/google/uuid"
)

// PhotoSession is a planned shoot or an idea for one.
type PhotoSession struct {
	ID                uuid.UUID       `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Concept           string          `json:"concept"`
	Mood              string          `json:"mood"`
	Location          string          `json:"location"`
	Equipment         []string        `json:"equipment"`
	Models            []string        `json:"models"`
	Team              []string        `json:"team"`
	Budget            float64         `json:"budget"`
	Priority          SessionPriority `json:"priority"`
	Status            SessionStatus   `json:"status"`
	ScheduledDate     *Time           `json:"scheduledDate,omitempty"`
	EstimatedDuration int             `json:"estimatedDuration"` // hours
	WeatherDependency bool            `json:"weatherDependency"`
	IndoorOutdoor     IndoorOutdoor   `json:"indoorOutdoor"`
	Lighting          LightingType    `json:"lighting"`
	Style             PhotoStyle      `json:"style"`
	InspirationImages [][]byte        `json:"inspirationImages"`
	Notes             string          `json:"notes"`
	CreatedDate       Time            `json:"createdDate"`
}

// NewPhotoSession returns a session idea with a fresh ID and default values.
func NewPhotoSession() PhotoSession {
	return PhotoSession{
		ID:                uuid.New(),
		Equipment:         []string{},
		Models:            []string{},
		Team:              []string{},
		Priority:          SessionPriorityMedium,
		Status:            SessionIdea,
		EstimatedDuration: 2,
		IndoorOutdoor:     Indoor,
		Lighting:          LightingNatural,
		Style:             StyleModern,
		InspirationImages: [][]byte{},
		CreatedDate:       Now(),
	}
}

func (s PhotoSession) RecordID() uuid.UUID { return s.ID }

type SessionPriority string

const (
	SessionPriorityLow    SessionPriority = "Low"
	SessionPriorityMedium SessionPriority = "Medium"
	SessionPriorityHigh   SessionPriority = "High"
	SessionPriorityUrgent SessionPriority = "Urgent"
)

func SessionPriorityValues() []SessionPriority {
	return []SessionPriority{SessionPriorityLow, SessionPriorityMedium, SessionPriorityHigh, SessionPriorityUrgent}
}

func (p SessionPriority) Valid() bool { return slices.Contains(SessionPriorityValues(), p) }

func (p *SessionPriority) UnmarshalText(text []byte) error {
	v, err := parseLabel("session priority", SessionPriorityValues(), text)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

type SessionStatus string

const (
	SessionIdea       SessionStatus = "Idea"
	SessionPlanning   SessionStatus = "Planning"
	SessionScheduled  SessionStatus = "Scheduled"
	SessionInProgress SessionStatus = "In Progress"
	SessionCompleted  SessionStatus = "Completed"
	SessionCancelled  SessionStatus = "Cancelled"
)

func SessionStatusValues() []SessionStatus {
	return []SessionStatus{SessionIdea, SessionPlanning, SessionScheduled, SessionInProgress, SessionCompleted, SessionCancelled}
}

func (s SessionStatus) Valid() bool { return slices.Contains(SessionStatusValues(), s) }

func (s *SessionStatus) UnmarshalText(text []byte) error {
	v, err := parseLabel("session status", SessionStatusValues(), text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type IndoorOutdoor string

const (
	Indoor            IndoorOutdoor = "Indoor"
	Outdoor           IndoorOutdoor = "Outdoor"
	IndoorOutdoorBoth IndoorOutdoor = "Both"
)

func IndoorOutdoorValues() []IndoorOutdoor {
	return []IndoorOutdoor{Indoor, Outdoor, IndoorOutdoorBoth}
}

func (io IndoorOutdoor) Valid() bool { return slices.Contains(IndoorOutdoorValues(), io) }

func (io *IndoorOutdoor) UnmarshalText(text []byte) error {
	v, err := parseLabel("indoor/outdoor setting", IndoorOutdoorValues(), text)
	if err != nil {
		return err
	}
	*io = v
	return nil
}

type LightingType string

const (
	LightingNatural    LightingType = "Natural"
	LightingStudio     LightingType = "Studio"
	LightingMixed      LightingType = "Mixed"
	LightingLowLight   LightingType = "Low Light"
	LightingGoldenHour LightingType = "Golden Hour"
	LightingBlueHour   LightingType = "Blue Hour"
)

func LightingTypeValues() []LightingType {
	return []LightingType{LightingNatural, LightingStudio, LightingMixed, LightingLowLight, LightingGoldenHour, LightingBlueHour}
}

func (l LightingType) Valid() bool { return slices.Contains(LightingTypeValues(), l) }

func (l *LightingType) UnmarshalText(text []byte) error {
	v, err := parseLabel("lighting type", LightingTypeValues(), text)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

type PhotoStyle string

const (
	StyleModern      PhotoStyle = "Modern"
	StyleVintage     PhotoStyle = "Vintage"
	StyleMinimalist  PhotoStyle = "Minimalist"
	StyleDramatic    PhotoStyle = "Dramatic"
	StyleSoft        PhotoStyle = "Soft"
	StyleBold        PhotoStyle = "Bold"
	StyleArtistic    PhotoStyle = "Artistic"
	StyleDocumentary PhotoStyle = "Documentary"
)

func PhotoStyleValues() []PhotoStyle {
	return []PhotoStyle{StyleModern, StyleVintage, StyleMinimalist, StyleDramatic, StyleSoft, StyleBold, StyleArtistic, StyleDocumentary}
}

func (s PhotoStyle) Valid() bool { return slices.Contains(PhotoStyleValues(), s) }

func (s *PhotoStyle) UnmarshalText(text []byte) error {
	v, err := parseLabel("photo style", PhotoStyleValues(), text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
