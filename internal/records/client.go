package records

import (
	"slices"

	"github.com/google/uuid"
)

// Client is a customer or prospect. Other records refer to clients by
// display name only, never by ID.
type Client struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Company          *string           `json:"company,omitempty"`
	Position         *string           `json:"position,omitempty"`
	Address          string            `json:"address"`
	City             string            `json:"city"`
	Country          string            `json:"country"`
	ClientType       ClientType        `json:"clientType"`
	Status           ClientStatus      `json:"status"`
	Source           ClientSource      `json:"source"`
	Budget           float64           `json:"budget"`
	PreferredContact ContactMethod     `json:"preferredContact"`
	Notes            string            `json:"notes"`
	Tags             []string          `json:"tags"`
	TotalProjects    int               `json:"totalProjects"`
	TotalRevenue     float64           `json:"totalRevenue"`
	Rating           int               `json:"rating"`
	IsVIP            bool              `json:"isVIP"`
	SocialMedia      map[string]string `json:"socialMedia"`
	CreatedDate      Time              `json:"createdDate"`
}

// NewClient returns a prospect with a fresh ID and default values.
func NewClient() Client {
	return Client{
		ID:               uuid.New(),
		ClientType:       ClientTypeIndividual,
		Status:           ClientStatusProspect,
		Source:           SourceReferral,
		PreferredContact: ContactEmail,
		Tags:             []string{},
		Rating:           5,
		SocialMedia:      map[string]string{},
		CreatedDate:      Now(),
	}
}

func (c Client) RecordID() uuid.UUID { return c.ID }

type ClientType string

const (
	ClientTypeIndividual ClientType = "Individual"
	ClientTypeBusiness   ClientType = "Business"
	ClientTypeAgency     ClientType = "Agency"
	ClientTypeMagazine   ClientType = "Magazine"
	ClientTypeBrand      ClientType = "Brand"
	ClientTypeInfluencer ClientType = "Influencer"
	ClientTypeModel      ClientType = "Model"
	ClientTypeOther      ClientType = "Other"
)

func ClientTypeValues() []ClientType {
	return []ClientType{
		ClientTypeIndividual, ClientTypeBusiness, ClientTypeAgency, ClientTypeMagazine,
		ClientTypeBrand, ClientTypeInfluencer, ClientTypeModel, ClientTypeOther,
	}
}

func (t ClientType) Valid() bool { return slices.Contains(ClientTypeValues(), t) }

func (t *ClientType) UnmarshalText(text []byte) error {
	v, err := parseLabel("client type", ClientTypeValues(), text)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type ClientStatus string

const (
	ClientStatusProspect ClientStatus = "Prospect"
	ClientStatusLead     ClientStatus = "Lead"
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
	ClientStatusLost     ClientStatus = "Lost"
	ClientStatusReferral ClientStatus = "Referral"
)

func ClientStatusValues() []ClientStatus {
	return []ClientStatus{
		ClientStatusProspect, ClientStatusLead, ClientStatusActive,
		ClientStatusInactive, ClientStatusLost, ClientStatusReferral,
	}
}

func (s ClientStatus) Valid() bool { return slices.Contains(ClientStatusValues(), s) }

func (s *ClientStatus) UnmarshalText(text []byte) error {
	v, err := parseLabel("client status", ClientStatusValues(), text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type ClientSource string

const (
	SourceReferral    ClientSource = "Referral"
	SourceSocialMedia ClientSource = "Social Media"
	SourceWebsite     ClientSource = "Website"
	SourceNetworking  ClientSource = "Networking"
	SourceAdvertising ClientSource = "Advertising"
	SourceColdCall    ClientSource = "Cold Call"
	SourceExhibition  ClientSource = "Exhibition"
	SourceOther       ClientSource = "Other"
)

func ClientSourceValues() []ClientSource {
	return []ClientSource{
		SourceReferral, SourceSocialMedia, SourceWebsite, SourceNetworking,
		SourceAdvertising, SourceColdCall, SourceExhibition, SourceOther,
	}
}

func (s ClientSource) Valid() bool { return slices.Contains(ClientSourceValues(), s) }

func (s *ClientSource) UnmarshalText(text []byte) error {
	v, err := parseLabel("client source", ClientSourceValues(), text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type ContactMethod string

const (
	ContactEmail     ContactMethod = "Email"
	ContactPhone     ContactMethod = "Phone"
	ContactText      ContactMethod = "Text"
	ContactWhatsApp  ContactMethod = "WhatsApp"
	ContactInstagram ContactMethod = "Instagram"
	ContactFacebook  ContactMethod = "Facebook"
	ContactLinkedIn  ContactMethod = "LinkedIn"
	ContactOther     ContactMethod = "Other"
)

func ContactMethodValues() []ContactMethod {
	return []ContactMethod{
		ContactEmail, ContactPhone, ContactText, ContactWhatsApp,
		ContactInstagram, ContactFacebook, ContactLinkedIn, ContactOther,
	}
}

func (m ContactMethod) Valid() bool { return slices.Contains(ContactMethodValues(), m) }

func (m *ContactMethod) UnmarshalText(text []byte) error {
	v, err := parseLabel("contact method", ContactMethodValues(), text)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
